package model

import (
	"bufio"
	"io"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/rules"
)

const (
	gridPosAlive = "1"
	gridPosDead  = "0"
	gridPosBlock = "██"
	gridPosEmpty = "  "

	ansiClearScreen = "\033[H\033[2J"
)

// Render styles understood by NewTerminalRenderer
const (
	StyleDigits = "digits"
	StyleBlock  = "block"
)

// TerminalRenderer writes generations as text, one line per grid row
type TerminalRenderer struct {
	Out   io.Writer
	Alive string
	Dead  string
}

// NewTerminalRenderer returns a renderer for the given style; anything other
// than StyleBlock renders digits
func NewTerminalRenderer(out io.Writer, style string) *TerminalRenderer {
	if style == StyleBlock {
		return &TerminalRenderer{Out: out, Alive: gridPosBlock, Dead: gridPosEmpty}
	}
	return &TerminalRenderer{Out: out, Alive: gridPosAlive, Dead: gridPosDead}
}

// Display renders the current generation followed by a blank separator line
func (r *TerminalRenderer) Display(g *Grid) error {
	w := bufio.NewWriter(r.Out)
	present := g.buffers.present()
	for row := range g.rows {
		for col := range g.cols {
			if present[row][col] == rules.Alive {
				w.WriteString(r.Alive)
			} else {
				w.WriteString(r.Dead)
			}
		}
		w.WriteByte('\n')
	}
	w.WriteByte('\n')

	if err := w.Flush(); err != nil {
		return errors.Wrap(err, "[Display] failed to write grid")
	}
	return nil
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() error {
	if _, err := io.WriteString(r.Out, ansiClearScreen); err != nil {
		return errors.Wrap(err, "[Clear] failed to clear terminal")
	}
	return nil
}
