package ndmines

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	platformcore "github.com/vovakirdan/ndsweeper/internal/core"
	"github.com/vovakirdan/ndsweeper/internal/games/ndmines/core"
)

func TestNewView(t *testing.T) {
	v := NewView(1)
	assert.Equal(t, 0, v.X)
	assert.Equal(t, -1, v.Y)
	assert.Equal(t, -1, v.Focus)
	assert.Empty(t, v.Fixed())

	v = NewView(4)
	assert.Equal(t, 0, v.X)
	assert.Equal(t, 1, v.Y)
	assert.Equal(t, 2, v.Focus)
	assert.Equal(t, []int{2, 3}, v.Fixed())
}

func TestRotateVisitsEveryPair(t *testing.T) {
	v := NewView(3)
	seen := map[[2]int]bool{{v.X, v.Y}: true}

	for i := 0; i < 5; i++ {
		v = v.Rotate()
		require.NotEqual(t, v.X, v.Y)
		seen[[2]int{v.X, v.Y}] = true
		assert.True(t, v.IsFixed(v.Focus), "focus %d should be a fixed axis", v.Focus)
	}
	assert.Len(t, seen, 6)

	v = v.Rotate()
	assert.Equal(t, 0, v.X)
	assert.Equal(t, 1, v.Y)
}

func TestRotateOneDimensional(t *testing.T) {
	v := NewView(1)
	assert.Equal(t, v, v.Rotate())
}

func TestNextFocus(t *testing.T) {
	v := NewView(4)
	v = v.NextFocus()
	assert.Equal(t, 3, v.Focus)
	v = v.NextFocus()
	assert.Equal(t, 2, v.Focus)

	flat := NewView(2)
	assert.Equal(t, -1, flat.NextFocus().Focus)
}

func TestLabel(t *testing.T) {
	anchor := core.C(0, 1, 2, 3)
	assert.Equal(t, "x→ y↓ | [z=2] w=3", NewView(4).Label(anchor))
	assert.Equal(t, "x→ y↓ | z=2 [w=3]", NewView(4).NextFocus().Label(anchor))
	assert.Equal(t, "x→ y↓", NewView(2).Label(core.C(0, 0)))
	assert.Equal(t, "x→", NewView(1).Label(core.C(3)))
}

func TestAxisName(t *testing.T) {
	assert.Equal(t, "x", AxisName(0))
	assert.Equal(t, "w", AxisName(3))
	assert.Equal(t, "a4", AxisName(4))
	assert.Equal(t, "a11", AxisName(11))
}

func TestGlyph(t *testing.T) {
	tests := []struct {
		name  string
		cv    core.CellView
		width int
		text  string
		color platformcore.Color
	}{
		{"hidden", core.CellView{State: core.Pristine}, 2, " ·", platformcore.ColorGray},
		{"flag", core.CellView{State: core.Flagged}, 1, "F", platformcore.ColorBrightYellow},
		{"wrong flag", core.CellView{State: core.Flagged, WrongFlag: true}, 1, "X", platformcore.ColorMagenta},
		{"mine", core.CellView{State: core.Pristine, Mine: true}, 1, "*", platformcore.ColorRed},
		{"exploded", core.CellView{State: core.Revealed, Mine: true, Exploded: true}, 1, "*", platformcore.ColorBrightRed},
		{"zero", core.CellView{State: core.Revealed}, 2, "  ", platformcore.ColorDefault},
		{"number", core.CellView{State: core.Revealed, Adjacent: 3}, 2, " 3", platformcore.NumberColor(3)},
		{"wide number", core.CellView{State: core.Revealed, Adjacent: 26}, 2, "26", platformcore.NumberColor(26)},
		{"too wide", core.CellView{State: core.Revealed, Adjacent: 26}, 1, "+", platformcore.NumberColor(26)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, color := Glyph(tt.cv, tt.width)
			assert.Equal(t, tt.text, text)
			assert.Equal(t, tt.color, color)
		})
	}
}

func TestSliceText2D(t *testing.T) {
	g, err := core.NewGame(core.Dims{3, 2}, 1, 1)
	require.NoError(t, err)

	out, err := SliceText(g, NewView(2), core.C(0, 0), 1)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "x→ y↓", lines[0])
	assert.Equal(t, "   0 1 2", lines[1])
	assert.Equal(t, "0  · · ·", lines[2])
	assert.Equal(t, "1  · · ·", lines[3])
}

func TestSliceTextFollowsAnchor(t *testing.T) {
	g, err := core.NewGame(core.Dims{3, 3, 3}, 3, 42)
	require.NoError(t, err)
	_, err = g.Reveal(core.C(1, 1, 1))
	require.NoError(t, err)

	mid, err := SliceText(g, NewView(3), core.C(0, 0, 1), 1)
	require.NoError(t, err)
	assert.Contains(t, mid, "[z=1]")
	assert.Contains(t, mid, "1  · 3 ·")

	top, err := SliceText(g, NewView(3), core.C(0, 0, 0), 1)
	require.NoError(t, err)
	assert.NotContains(t, top, "3")
}

func TestSliceText1D(t *testing.T) {
	g, err := core.NewGame(core.Dims{5}, 1, 7)
	require.NoError(t, err)

	out, err := SliceText(g, NewView(1), core.C(0), 1)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "x→", lines[0])
	assert.Equal(t, "   0 1 2 3 4", lines[1])
	assert.Equal(t, "   · · · · ·", lines[2])
}

func TestSliceTextOutOfBounds(t *testing.T) {
	g, err := core.NewGame(core.Dims{3, 3}, 1, 1)
	require.NoError(t, err)

	_, err = SliceText(g, NewView(2), core.C(3, 0), 1)
	assert.ErrorIs(t, err, core.ErrOutOfBounds)
}

func TestSnapshotRunes(t *testing.T) {
	g := newTestGame(t, cubePreset, 42)
	assert.Equal(t, strings.Repeat(".", 27), g.Snapshot().Cells)

	g.Step(frame(platformcore.ActionFlag))
	assert.Equal(t, byte('F'), g.Snapshot().Cells[13])
}

func TestWithAxes(t *testing.T) {
	v, err := NewView(3).WithAxes(2, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, v.X)
	assert.Equal(t, 0, v.Y)
	assert.Equal(t, 1, v.Focus)

	_, err = NewView(3).WithAxes(1, 1)
	assert.ErrorIs(t, err, core.ErrOutOfBounds)
	_, err = NewView(3).WithAxes(3, 0)
	assert.ErrorIs(t, err, core.ErrOutOfBounds)
	_, err = NewView(1).WithAxes(0, 0)
	assert.ErrorIs(t, err, core.ErrOutOfBounds)

	v, err = NewView(1).WithAxes(0, -1)
	require.NoError(t, err)
	assert.Equal(t, NewView(1), v)
}

func TestParseAxis(t *testing.T) {
	for in, want := range map[string]int{"x": 0, "Y": 1, "z": 2, "w": 3, "a4": 4, "5": 5} {
		got, err := ParseAxis(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseAxis("q")
	assert.Error(t, err)
	_, err = ParseAxis("-1")
	assert.Error(t, err)
}

func TestSliceTextStyled(t *testing.T) {
	g, err := core.NewGame(core.Dims{3, 2}, 1, 1)
	require.NoError(t, err)

	paint := func(text string, c platformcore.Color) string {
		return "<" + text + ">"
	}
	out, err := SliceTextStyled(g, NewView(2), core.C(0, 0), 1, paint)
	require.NoError(t, err)
	assert.Contains(t, out, "0  <·> <·> <·>")
	assert.Contains(t, out, "   0 1 2")
}
