package core

import "errors"

// Errors returned by the engine. Callers match them with errors.Is; the
// returned values usually wrap one of these with the offending coordinate.
var (
	// ErrOutOfBounds means a coordinate or flat index lies outside the space.
	ErrOutOfBounds = errors.New("out of bounds")

	// ErrInvalidConfiguration means the dimension spec or mine count cannot
	// form a board.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrAlreadyPlaced means mines were placed a second time.
	ErrAlreadyPlaced = errors.New("mines already placed")

	// ErrMinesNotPlaced means a reveal reached the board before placement.
	ErrMinesNotPlaced = errors.New("mines not placed")

	// ErrGameOver means an action was attempted after the game was won or lost.
	ErrGameOver = errors.New("game over")

	// ErrAlreadyRevealed means a reveal or flag targeted an open cell.
	ErrAlreadyRevealed = errors.New("cell already revealed")

	// ErrCellFlagged means a reveal targeted a flagged cell.
	ErrCellFlagged = errors.New("cell is flagged")

	// ErrNotRevealed means a chord targeted a cell that is not open.
	ErrNotRevealed = errors.New("cell not revealed")
)
