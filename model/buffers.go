package model

import "github.com/sheikhrachel/go-life/rules"

// bufferPair holds the two fixed generation buffers. The roles of "present"
// and "future" are exchanged by flipping cur; nothing is reallocated.
type bufferPair struct {
	arenas [2][][]rules.State
	cur    int
}

func newBufferPair(rows, cols int) bufferPair {
	var p bufferPair
	for i := range p.arenas {
		cells := make([][]rules.State, rows)
		for r := range cells {
			cells[r] = make([]rules.State, cols)
		}
		p.arenas[i] = cells
	}
	return p
}

// present returns the generation read during a step
func (p *bufferPair) present() [][]rules.State { return p.arenas[p.cur] }

// future returns the scratch generation written during a step
func (p *bufferPair) future() [][]rules.State { return p.arenas[1-p.cur] }

// swap makes the freshly computed future the new present
func (p *bufferPair) swap() { p.cur = 1 - p.cur }

// reset clears both arenas
func (p *bufferPair) reset() {
	for i := range p.arenas {
		for _, row := range p.arenas[i] {
			for c := range row {
				row[c] = rules.Dead
			}
		}
	}
}
