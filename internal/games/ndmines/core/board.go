package core

import (
	"fmt"
	"math/rand"
)

// OutcomeKind classifies the result of a reveal or chord.
type OutcomeKind int

const (
	OutcomeNone     OutcomeKind = iota // nothing changed (e.g. an unsatisfied chord)
	OutcomeRevealed                    // one or more safe cells were revealed
	OutcomeHitMine                     // a mine was revealed
)

// String returns a human-readable name for the outcome.
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeNone:
		return "none"
	case OutcomeRevealed:
		return "revealed"
	case OutcomeHitMine:
		return "hit mine"
	default:
		return "unknown"
	}
}

// RevealOutcome reports what a reveal or chord did to the board.
type RevealOutcome struct {
	Kind OutcomeKind

	// At is the acted-on coordinate, or the mine that was hit.
	At Coord

	// Revealed lists newly revealed safe cells in the order they were opened.
	Revealed []Coord
}

// HitMine returns true if the action revealed a mine.
func (o RevealOutcome) HitMine() bool {
	return o.Kind == OutcomeHitMine
}

// Board is an N-dimensional minefield stored as a flat slice of cells.
// Mines are placed lazily by PlaceMines, normally on the first reveal.
type Board struct {
	space    *Space
	cells    []Cell
	mines    int
	flagged  int
	revealed int // revealed non-mine cells
	placed   bool
}

// NewBoard creates an unplaced board. The mine count must be in (0, total).
func NewBoard(d Dims, mines int) (*Board, error) {
	space, err := NewSpace(d)
	if err != nil {
		return nil, err
	}
	if mines <= 0 || mines >= space.Total() {
		return nil, fmt.Errorf("%w: %d mines on %s (need 0 < mines < %d)",
			ErrInvalidConfiguration, mines, d, space.Total())
	}

	return &Board{
		space: space,
		cells: make([]Cell, space.Total()),
		mines: mines,
	}, nil
}

// PlaceMines lays out the mines uniformly among every cell except exclude,
// then computes the adjacency counts. Only exclude itself is kept safe; its
// neighbours may hold mines. The same seed always yields the same layout.
func (b *Board) PlaceMines(exclude Coord, seed int64) error {
	if b.placed {
		return ErrAlreadyPlaced
	}
	skip, err := b.space.Index(exclude)
	if err != nil {
		return err
	}

	candidates := make([]int, 0, len(b.cells)-1)
	for i := range b.cells {
		if i != skip {
			candidates = append(candidates, i)
		}
	}

	// Partial Fisher-Yates: the first b.mines candidates become mines.
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < b.mines; i++ {
		j := i + rng.Intn(len(candidates)-i)
		candidates[i], candidates[j] = candidates[j], candidates[i]
		b.cells[candidates[i]].mine = true
	}

	b.countAdjacent()
	b.placed = true
	return nil
}

// countAdjacent adds one to every neighbour of every mine.
func (b *Board) countAdjacent() {
	var buf []int
	for i := range b.cells {
		if !b.cells[i].mine {
			continue
		}
		buf = b.space.appendNeighbors(buf[:0], i)
		for _, n := range buf {
			b.cells[n].adjacent++
		}
	}
}

// Reveal opens the cell at c. A zero-count cell cascades breadth-first
// through its connected zero region and that region's numbered border.
func (b *Board) Reveal(c Coord) (RevealOutcome, error) {
	idx, err := b.space.Index(c)
	if err != nil {
		return RevealOutcome{}, err
	}
	if !b.placed {
		return RevealOutcome{}, ErrMinesNotPlaced
	}
	return b.reveal(idx)
}

func (b *Board) reveal(idx int) (RevealOutcome, error) {
	cell := &b.cells[idx]
	at := b.space.coord(idx)

	switch cell.state {
	case Revealed:
		return RevealOutcome{}, fmt.Errorf("%w: %s", ErrAlreadyRevealed, at)
	case Flagged:
		return RevealOutcome{}, fmt.Errorf("%w: %s", ErrCellFlagged, at)
	}

	cell.state = Revealed
	if cell.mine {
		return RevealOutcome{Kind: OutcomeHitMine, At: at}, nil
	}
	b.revealed++

	out := RevealOutcome{Kind: OutcomeRevealed, At: at, Revealed: []Coord{at}}
	if cell.adjacent == 0 {
		out.Revealed = append(out.Revealed, b.cascade(idx)...)
	}
	return out, nil
}

// cascade expands from an already revealed zero-count cell. Every cell is
// visited at most once; flagged cells stay flagged and stop the expansion.
func (b *Board) cascade(start int) []Coord {
	visited := make([]bool, len(b.cells))
	visited[start] = true
	queue := []int{start}

	var opened []Coord
	var buf []int
	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		buf = b.space.appendNeighbors(buf[:0], cur)
		for _, n := range buf {
			if visited[n] {
				continue
			}
			visited[n] = true

			cell := &b.cells[n]
			if cell.state != Pristine {
				continue
			}
			if cell.mine {
				panic(fmt.Sprintf("core: mine at %s next to zero-count cell %s",
					b.space.coord(n), b.space.coord(cur)))
			}

			cell.state = Revealed
			b.revealed++
			opened = append(opened, b.space.coord(n))
			if cell.adjacent == 0 {
				queue = append(queue, n)
			}
		}
	}
	return opened
}

// ToggleFlag flips the cell at c between Pristine and Flagged.
func (b *Board) ToggleFlag(c Coord) error {
	idx, err := b.space.Index(c)
	if err != nil {
		return err
	}

	cell := &b.cells[idx]
	switch cell.state {
	case Revealed:
		return fmt.Errorf("%w: %s", ErrAlreadyRevealed, c)
	case Flagged:
		cell.state = Pristine
		b.flagged--
	default:
		cell.state = Flagged
		b.flagged++
	}
	return nil
}

// Chord reveals every pristine neighbour of a revealed numbered cell whose
// flagged neighbours already account for its count. It stops at the first
// mine. An unsatisfied chord returns OutcomeNone.
func (b *Board) Chord(c Coord) (RevealOutcome, error) {
	idx, err := b.space.Index(c)
	if err != nil {
		return RevealOutcome{}, err
	}

	cell := b.cells[idx]
	if cell.state != Revealed {
		return RevealOutcome{}, fmt.Errorf("%w: %s", ErrNotRevealed, c)
	}

	out := RevealOutcome{Kind: OutcomeNone, At: b.space.coord(idx)}
	if cell.mine || cell.adjacent == 0 {
		return out, nil
	}

	neighbours := b.space.appendNeighbors(nil, idx)
	flags := 0
	for _, n := range neighbours {
		if b.cells[n].state == Flagged {
			flags++
		}
	}
	if flags != int(cell.adjacent) {
		return out, nil
	}

	for _, n := range neighbours {
		// An earlier neighbour's cascade may already have opened this one.
		if b.cells[n].state != Pristine {
			continue
		}
		res, err := b.reveal(n)
		if err != nil {
			return out, err
		}
		if res.HitMine() {
			res.Revealed = out.Revealed
			return res, nil
		}
		out.Kind = OutcomeRevealed
		out.Revealed = append(out.Revealed, res.Revealed...)
	}
	return out, nil
}

// RemainingMineEstimate returns mines minus flags. It goes negative when the
// player over-flags.
func (b *Board) RemainingMineEstimate() int {
	return b.mines - b.flagged
}

// IsWon returns true once every non-mine cell is revealed.
func (b *Board) IsWon() bool {
	return b.placed && b.revealed == len(b.cells)-b.mines
}

// Cell returns a copy of the cell at c.
func (b *Board) Cell(c Coord) (Cell, error) {
	idx, err := b.space.Index(c)
	if err != nil {
		return Cell{}, err
	}
	return b.cells[idx], nil
}

// Mines returns the coordinates of every mine in flat-index order, or nil
// before placement.
func (b *Board) Mines() []Coord {
	if !b.placed {
		return nil
	}
	out := make([]Coord, 0, b.mines)
	for i := range b.cells {
		if b.cells[i].mine {
			out = append(out, b.space.coord(i))
		}
	}
	return out
}

// Dims returns a copy of the board's dimension spec.
func (b *Board) Dims() Dims { return b.space.Dims() }

// Space returns the board's coordinate space.
func (b *Board) Space() *Space { return b.space }

// TotalCells returns the number of cells.
func (b *Board) TotalCells() int { return len(b.cells) }

// MineCount returns the configured number of mines.
func (b *Board) MineCount() int { return b.mines }

// FlaggedCount returns the number of flagged cells.
func (b *Board) FlaggedCount() int { return b.flagged }

// RevealedCount returns the number of revealed safe cells.
func (b *Board) RevealedCount() int { return b.revealed }

// Placed returns true once mines have been placed.
func (b *Board) Placed() bool { return b.placed }
