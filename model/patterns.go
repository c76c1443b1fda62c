package model

import (
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/rules"
)

// ErrUnknownPattern is returned by PatternByName for names it does not know
var ErrUnknownPattern = errors.New("unknown pattern")

// Pattern is a named set of live cells, as (row, col) offsets from its top-left corner
type Pattern struct {
	Name  string
	Cells [][2]int
}

var (
	// Glider moves one cell diagonally down-right every four generations
	Glider = Pattern{
		Name:  "glider",
		Cells: [][2]int{{0, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2}},
	}

	// Blinker is a period 2 oscillator, a horizontal bar of three cells
	Blinker = Pattern{
		Name:  "blinker",
		Cells: [][2]int{{0, 0}, {0, 1}, {0, 2}},
	}

	patterns = map[string]Pattern{
		Glider.Name:  Glider,
		Blinker.Name: Blinker,
	}
)

// PatternByName looks up a built-in pattern
func PatternByName(name string) (Pattern, error) {
	p, ok := patterns[name]
	if !ok {
		return Pattern{}, errors.Wrapf(ErrUnknownPattern, "[PatternByName] %q", name)
	}
	return p, nil
}

// Height returns the number of rows the pattern spans
func (p Pattern) Height() int {
	h := 0
	for _, cell := range p.Cells {
		h = max(h, cell[0]+1)
	}
	return h
}

// Width returns the number of columns the pattern spans
func (p Pattern) Width() int {
	w := 0
	for _, cell := range p.Cells {
		w = max(w, cell[1]+1)
	}
	return w
}

// Stamp sets the pattern's cells alive with its top-left corner at (row, col).
// Cells that fall outside the grid are skipped.
func (g *Grid) Stamp(p Pattern, row, col int) {
	for _, cell := range p.Cells {
		g.Set(row+cell[0], col+cell[1], rules.Alive)
	}
}

// StampCentered stamps the pattern in the middle of the grid
func (g *Grid) StampCentered(p Pattern) {
	g.Stamp(p, (g.rows-p.Height())/2, (g.cols-p.Width())/2)
}
