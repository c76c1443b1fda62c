package model

import (
	"crypto/md5"
	"fmt"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/rules"
)

// historySize is how many recent grid hashes are kept for cycle detection
const historySize = 5

// ErrInvalidDimensions is returned when a grid is constructed with a negative size
var ErrInvalidDimensions = errors.New("invalid grid dimensions")

// Grid represents a bounded (non-wrapping) Game of Life board
type Grid struct {
	rows       int
	cols       int
	buffers    bufferPair
	generation int
	history    []string // Store recent grid states for cycle detection
}

// NewGrid creates a new grid with the specified dimensions, every cell dead
func NewGrid(rows, cols int) (*Grid, error) {
	if rows < 0 || cols < 0 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "[NewGrid] rows=%d cols=%d", rows, cols)
	}
	return &Grid{
		rows:    rows,
		cols:    cols,
		buffers: newBufferPair(rows, cols),
	}, nil
}

// Rows returns the number of rows in the grid
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns in the grid
func (g *Grid) Cols() int {
	return g.cols
}

// Generation returns the number of steps applied since construction
func (g *Grid) Generation() int {
	return g.generation
}

func (g *Grid) inBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Set sets a cell of the current generation; out-of-range writes are ignored
func (g *Grid) Set(row, col int, s rules.State) {
	if g.inBounds(row, col) {
		g.buffers.present()[row][col] = s
	}
}

// Get returns the state of a cell in the current generation
func (g *Grid) Get(row, col int) rules.State {
	if !g.inBounds(row, col) {
		return rules.Dead
	}
	return g.buffers.present()[row][col]
}

// Row returns a copy of one row of the current generation
func (g *Grid) Row(row int) []rules.State {
	if row < 0 || row >= g.rows {
		return nil
	}
	out := make([]rules.State, g.cols)
	copy(out, g.buffers.present()[row])
	return out
}

// Each visits every cell of the current generation in row-major order
func (g *Grid) Each(fn func(row, col int, s rules.State)) {
	present := g.buffers.present()
	for r := range g.rows {
		for c := range g.cols {
			fn(r, c, present[r][c])
		}
	}
}

// Clear kills every cell and forgets the stagnation history
func (g *Grid) Clear() {
	g.buffers.reset()
	g.history = nil
}

// Randomize overwrites the current generation with one draw per cell
func (g *Grid) Randomize(src RandomSource) {
	present := g.buffers.present()
	for r := range g.rows {
		for c := range g.cols {
			present[r][c] = rules.State(src.Bool())
		}
	}
}

// CountAliveNeighbors counts live cells in the Moore neighborhood of (row, col).
// Neighbors outside the grid are excluded, there is no wraparound.
func (g *Grid) CountAliveNeighbors(row, col int) int {
	present := g.buffers.present()
	count := 0

	minR := max(0, row-1)
	maxR := min(g.rows-1, row+1)
	minC := max(0, col-1)
	maxC := min(g.cols-1, col+1)

	for nr := minR; nr <= maxR; nr++ {
		for nc := minC; nc <= maxC; nc++ {
			if nr == row && nc == col {
				continue // Skip the cell itself
			}
			if present[nr][nc] == rules.Alive {
				count++
			}
		}
	}

	return count
}

// Step advances the grid by one generation. Every cell of the future buffer
// is computed from the same present snapshot before the buffers swap roles.
func (g *Grid) Step() {
	var (
		present = g.buffers.present()
		future  = g.buffers.future()
	)

	for r := range g.rows {
		for c := range g.cols {
			future[r][c] = rules.ApplyConwayRules(g.CountAliveNeighbors(r, c), present[r][c])
		}
	}

	g.buffers.swap()
	g.generation++
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	g.Each(func(_, _ int, s rules.State) {
		if s == rules.Alive {
			count++
		}
	})
	return
}

// GetGridHash returns an MD5 hash of the current generation
func (g *Grid) GetGridHash() string {
	h := md5.New()
	g.Each(func(_, _ int, s rules.State) {
		if s == rules.Alive {
			h.Write([]byte{1})
		} else {
			h.Write([]byte{0})
		}
	})
	return fmt.Sprintf("%x", h.Sum(nil))
}

// UpdateHistory adds current state to history and maintains size
func (g *Grid) UpdateHistory() {
	g.history = append(g.history, g.GetGridHash())

	if len(g.history) > historySize {
		g.history = g.history[1:]
	}
}

// IsStagnant reports whether the current generation repeats one of the last
// three recorded generations (a still life or a period 2/3 oscillator).
// It needs at least three recorded generations before it reports anything,
// and must be called before UpdateHistory records the current generation.
func (g *Grid) IsStagnant() bool {
	if len(g.history) < 3 {
		return false
	}

	currentHash := g.GetGridHash()
	for back := 1; back <= 3; back++ {
		if g.history[len(g.history)-back] == currentHash {
			return true
		}
	}
	return false
}
