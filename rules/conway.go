package rules

// State is the binary state of a single cell
type State bool

const (
	Dead  State = false
	Alive State = true
)

// String renders the state as the digit used by the console renderer
func (s State) String() string {
	if s == Alive {
		return "1"
	}
	return "0"
}

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

A live cell survives with 2 or 3 live neighbors; a dead cell is born with exactly 3.
*/
func ApplyConwayRules(neighbors int, current State) State {
	if current == Alive {
		return State(neighbors == 2 || neighbors == 3)
	}
	return State(neighbors == 3)
}
