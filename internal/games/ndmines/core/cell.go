package core

// CellState is the player-visible state of a cell.
type CellState uint8

const (
	Pristine CellState = iota
	Revealed
	Flagged
)

// String returns a human-readable name for the state.
func (s CellState) String() string {
	switch s {
	case Pristine:
		return "pristine"
	case Revealed:
		return "revealed"
	case Flagged:
		return "flagged"
	default:
		return "unknown"
	}
}

// Cell is one entry of the board's flat storage.
type Cell struct {
	mine     bool
	state    CellState
	adjacent uint32 // mines among the neighbours, meaningful for non-mines
}

// IsMine reports whether the cell holds a mine. Always false before placement.
func (c Cell) IsMine() bool {
	return c.mine
}

// State returns the cell's player-visible state.
func (c Cell) State() CellState {
	return c.state
}

// Adjacent returns the number of neighbouring mines.
func (c Cell) Adjacent() int {
	return int(c.adjacent)
}
