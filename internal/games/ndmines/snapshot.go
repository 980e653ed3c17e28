package ndmines

import (
	"strings"

	"github.com/vovakirdan/ndsweeper/internal/games/ndmines/core"
)

// Snapshot captures the player-visible game state for determinism testing.
type Snapshot struct {
	Phase    core.Phase
	Cursor   string
	ViewX    int
	ViewY    int
	Focus    int
	Ticks    int
	Moves    int
	Revealed int
	Flagged  int
	Paused   bool

	// Cells holds one rune per cell in flat-index order:
	// '.' pristine, 'F' flagged, '*' mine, '0'-'9' counts, '+' above nine.
	Cells string
}

// Snapshot returns the current snapshot.
func (g *Game) Snapshot() Snapshot {
	if g.game == nil {
		return Snapshot{}
	}

	space := g.game.Space()
	var sb strings.Builder
	sb.Grow(space.Total())
	for i := 0; i < space.Total(); i++ {
		c, err := space.Coord(i)
		if err != nil {
			panic(err)
		}
		cv, err := g.game.Cell(c)
		if err != nil {
			panic(err)
		}
		sb.WriteRune(snapshotRune(cv))
	}

	return Snapshot{
		Phase:    g.game.Phase(),
		Cursor:   g.cursor.String(),
		ViewX:    g.view.X,
		ViewY:    g.view.Y,
		Focus:    g.view.Focus,
		Ticks:    g.ticks,
		Moves:    g.game.Moves(),
		Revealed: g.game.RevealedCount(),
		Flagged:  g.game.FlaggedCount(),
		Paused:   g.paused,
		Cells:    sb.String(),
	}
}

func snapshotRune(cv core.CellView) rune {
	switch {
	case cv.State == core.Flagged:
		return 'F'
	case cv.Mine:
		return '*'
	case cv.State == core.Revealed && cv.Adjacent > 9:
		return '+'
	case cv.State == core.Revealed:
		return rune('0' + cv.Adjacent)
	default:
		return '.'
	}
}
