package core

// CellView is what a presentation layer may know about a cell. Hidden
// information is only filled in once the game is over.
type CellView struct {
	Coord Coord
	State CellState

	// Adjacent is the neighbouring mine count of a revealed safe cell, or of
	// any safe cell once the game is over. Zero otherwise.
	Adjacent int

	// Mine is set for a revealed mine, or for every mine once the game is over.
	Mine bool

	// Exploded marks the mine that lost the game.
	Exploded bool

	// WrongFlag marks a flagged safe cell once the game is over.
	WrongFlag bool
}

// Known returns true if the view shows the cell's content.
func (v CellView) Known() bool {
	return v.State == Revealed || v.Mine
}

// Cell returns the player-facing view of the cell at c.
func (g *Game) Cell(c Coord) (CellView, error) {
	cell, err := g.board.Cell(c)
	if err != nil {
		return CellView{}, err
	}

	v := CellView{Coord: c.Clone(), State: cell.State()}
	over := g.phase.Terminal()

	if cell.IsMine() {
		v.Mine = over || cell.State() == Revealed
		v.Exploded = g.exploded != nil && g.exploded.Equal(c)
		return v, nil
	}

	if over || cell.State() == Revealed {
		v.Adjacent = cell.Adjacent()
	}
	v.WrongFlag = over && cell.State() == Flagged
	return v, nil
}
