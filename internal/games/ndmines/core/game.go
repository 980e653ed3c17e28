package core

import "fmt"

// Phase is the lifecycle stage of a game.
type Phase int

const (
	AwaitingFirstMove Phase = iota
	InProgress
	Won
	Lost
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case AwaitingFirstMove:
		return "awaiting first move"
	case InProgress:
		return "in progress"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal returns true for Won and Lost.
func (p Phase) Terminal() bool {
	return p == Won || p == Lost
}

// Game wraps a Board with phase tracking and the first-move rule: mines are
// placed on the first reveal, never under the revealed cell.
//
// A Game is not safe for concurrent use. Whoever hosts it owns it.
type Game struct {
	board    *Board
	phase    Phase
	seed     int64
	moves    int
	exploded Coord // the mine that ended the game, nil otherwise
}

// NewGame creates a game awaiting its first move. The seed fixes the mine
// layout for any given first reveal.
func NewGame(d Dims, mines int, seed int64) (*Game, error) {
	board, err := NewBoard(d, mines)
	if err != nil {
		return nil, err
	}
	return &Game{board: board, phase: AwaitingFirstMove, seed: seed}, nil
}

// Reveal opens the cell at c. The first reveal places the mines.
func (g *Game) Reveal(c Coord) (RevealOutcome, error) {
	if g.phase.Terminal() {
		return RevealOutcome{}, ErrGameOver
	}

	if g.phase == AwaitingFirstMove {
		cell, err := g.board.Cell(c)
		if err != nil {
			return RevealOutcome{}, err
		}
		if cell.State() == Flagged {
			return RevealOutcome{}, fmt.Errorf("%w: %s", ErrCellFlagged, c)
		}
		if err := g.board.PlaceMines(c, g.seed); err != nil {
			return RevealOutcome{}, fmt.Errorf("first move: %w", err)
		}
		g.phase = InProgress
	}

	out, err := g.board.Reveal(c)
	if err != nil {
		return out, err
	}
	g.moves++
	g.settle(out)
	return out, nil
}

// ToggleFlag flips the flag on the cell at c.
func (g *Game) ToggleFlag(c Coord) error {
	if g.phase.Terminal() {
		return ErrGameOver
	}
	if err := g.board.ToggleFlag(c); err != nil {
		return err
	}
	g.moves++
	return nil
}

// Chord reveals the unflagged neighbours of a satisfied numbered cell.
func (g *Game) Chord(c Coord) (RevealOutcome, error) {
	if g.phase.Terminal() {
		return RevealOutcome{}, ErrGameOver
	}

	out, err := g.board.Chord(c)
	if err != nil {
		return out, err
	}
	if out.Kind != OutcomeNone {
		g.moves++
		g.settle(out)
	}
	return out, nil
}

func (g *Game) settle(out RevealOutcome) {
	switch {
	case out.HitMine():
		g.phase = Lost
		g.exploded = out.At.Clone()
	case g.board.IsWon():
		g.phase = Won
	}
}

// Phase returns the current phase.
func (g *Game) Phase() Phase { return g.phase }

// Over returns true once the game is won or lost.
func (g *Game) Over() bool { return g.phase.Terminal() }

// Seed returns the placement seed.
func (g *Game) Seed() int64 { return g.seed }

// Moves returns the number of successful reveals, flags and chords.
func (g *Game) Moves() int { return g.moves }

// Dims returns a copy of the dimension spec.
func (g *Game) Dims() Dims { return g.board.Dims() }

// Space returns the coordinate space of the board.
func (g *Game) Space() *Space { return g.board.Space() }

// TotalCells returns the number of cells.
func (g *Game) TotalCells() int { return g.board.TotalCells() }

// MineCount returns the number of mines.
func (g *Game) MineCount() int { return g.board.MineCount() }

// FlaggedCount returns the number of flagged cells.
func (g *Game) FlaggedCount() int { return g.board.FlaggedCount() }

// RevealedCount returns the number of revealed safe cells.
func (g *Game) RevealedCount() int { return g.board.RevealedCount() }

// RemainingMineEstimate returns mines minus flags, possibly negative.
func (g *Game) RemainingMineEstimate() int { return g.board.RemainingMineEstimate() }

// Exploded returns the mine that lost the game.
func (g *Game) Exploded() (Coord, bool) {
	if g.exploded == nil {
		return nil, false
	}
	return g.exploded.Clone(), true
}

// Mines returns every mine coordinate once the game is over, nil before.
func (g *Game) Mines() []Coord {
	if !g.phase.Terminal() {
		return nil
	}
	return g.board.Mines()
}
