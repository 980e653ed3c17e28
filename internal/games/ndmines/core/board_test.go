package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// layBoard builds a placed board with mines exactly at the given coordinates.
func layBoard(t *testing.T, d Dims, mines ...Coord) *Board {
	t.Helper()

	b, err := NewBoard(d, len(mines))
	require.NoError(t, err)
	for _, m := range mines {
		idx, err := b.space.Index(m)
		require.NoError(t, err)
		b.cells[idx].mine = true
	}
	b.countAdjacent()
	b.placed = true
	return b
}

func TestCascade1D(t *testing.T) {
	b := layBoard(t, Dims{7}, C(6))

	out, err := b.Reveal(C(0))
	require.NoError(t, err)

	assert.Equal(t, OutcomeRevealed, out.Kind)
	assert.Equal(t, []Coord{C(0), C(1), C(2), C(3), C(4), C(5)}, out.Revealed)
	assert.True(t, b.IsWon())
}

func TestCascadeStopsAtFlag(t *testing.T) {
	b := layBoard(t, Dims{7}, C(6))
	require.NoError(t, b.ToggleFlag(C(3)))

	out, err := b.Reveal(C(0))
	require.NoError(t, err)

	assert.Equal(t, []Coord{C(0), C(1), C(2)}, out.Revealed)

	flagged, err := b.Cell(C(3))
	require.NoError(t, err)
	assert.Equal(t, Flagged, flagged.State())

	beyond, err := b.Cell(C(4))
	require.NoError(t, err)
	assert.Equal(t, Pristine, beyond.State())
	assert.False(t, b.IsWon())
}

func TestCascade2DOrder(t *testing.T) {
	// . . .
	// . . .
	// . . *
	b := layBoard(t, Dims{3, 3}, C(2, 2))

	out, err := b.Reveal(C(0, 0))
	require.NoError(t, err)

	expected := []Coord{
		C(0, 0), C(1, 0), C(0, 1), C(1, 1),
		C(2, 0), C(2, 1), C(0, 2), C(1, 2),
	}
	assert.Equal(t, expected, out.Revealed)
	assert.Equal(t, 8, b.RevealedCount())
	assert.True(t, b.IsWon())
}

func TestCascadeBorderNotExpanded(t *testing.T) {
	// Mine in the middle of a 5-wide corridor: the wall of numbers around it
	// splits the board, so only the left side opens.
	b := layBoard(t, Dims{5, 3}, C(2, 0), C(2, 1), C(2, 2))

	out, err := b.Reveal(C(0, 1))
	require.NoError(t, err)

	assert.ElementsMatch(t, []Coord{
		C(0, 0), C(1, 0),
		C(0, 1), C(1, 1),
		C(0, 2), C(1, 2),
	}, out.Revealed)

	right, err := b.Cell(C(4, 1))
	require.NoError(t, err)
	assert.Equal(t, Pristine, right.State())
}

func TestRevealNumberedCell(t *testing.T) {
	b := layBoard(t, Dims{3, 3}, C(2, 2))

	out, err := b.Reveal(C(1, 1))
	require.NoError(t, err)
	assert.Equal(t, OutcomeRevealed, out.Kind)
	assert.Equal(t, []Coord{C(1, 1)}, out.Revealed)

	cell, err := b.Cell(C(1, 1))
	require.NoError(t, err)
	assert.Equal(t, 1, cell.Adjacent())
}

func TestRevealMine(t *testing.T) {
	b := layBoard(t, Dims{3, 3}, C(2, 2))

	out, err := b.Reveal(C(2, 2))
	require.NoError(t, err)
	assert.True(t, out.HitMine())
	assert.Equal(t, C(2, 2), out.At)
	assert.Empty(t, out.Revealed)

	cell, err := b.Cell(C(2, 2))
	require.NoError(t, err)
	assert.Equal(t, Revealed, cell.State())
	assert.Equal(t, 0, b.RevealedCount())
}

func TestChordOpensNeighbours(t *testing.T) {
	// * 1 0 0
	b := layBoard(t, Dims{4}, C(0))

	_, err := b.Reveal(C(1))
	require.NoError(t, err)

	out, err := b.Chord(C(1))
	require.NoError(t, err)
	assert.Equal(t, OutcomeNone, out.Kind, "chord without flags must do nothing")

	require.NoError(t, b.ToggleFlag(C(0)))
	out, err = b.Chord(C(1))
	require.NoError(t, err)
	assert.Equal(t, OutcomeRevealed, out.Kind)
	assert.Equal(t, []Coord{C(2), C(3)}, out.Revealed)
	assert.True(t, b.IsWon())
}

func TestChordWithWrongFlagHitsMine(t *testing.T) {
	// 0 1 * 1
	b := layBoard(t, Dims{4}, C(2))

	_, err := b.Reveal(C(1))
	require.NoError(t, err)
	require.NoError(t, b.ToggleFlag(C(0)))

	out, err := b.Chord(C(1))
	require.NoError(t, err)
	assert.True(t, out.HitMine())
	assert.Equal(t, C(2), out.At)
}

func TestChordRequiresRevealedCell(t *testing.T) {
	b := layBoard(t, Dims{4}, C(2))

	_, err := b.Chord(C(0))
	assert.ErrorIs(t, err, ErrNotRevealed)

	_, err = b.Chord(C(9))
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestAppendNeighborsClipsAtBorders(t *testing.T) {
	s, err := NewSpace(Dims{4, 3})
	require.NoError(t, err)

	corner, err := s.Index(C(3, 2))
	require.NoError(t, err)
	got := s.appendNeighbors(nil, corner)

	want := []int{}
	for _, c := range []Coord{C(2, 1), C(3, 1), C(2, 2)} {
		idx, err := s.Index(c)
		require.NoError(t, err)
		want = append(want, idx)
	}
	assert.Equal(t, want, got)
}

func TestSpaceCoordPanicsOutsideRange(t *testing.T) {
	s, err := NewSpace(Dims{2, 2})
	require.NoError(t, err)

	assert.Panics(t, func() { s.coord(4) })
}
