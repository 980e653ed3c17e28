package ndmines

import (
	"fmt"
	"strconv"
	"strings"

	platformcore "github.com/vovakirdan/ndsweeper/internal/core"
	"github.com/vovakirdan/ndsweeper/internal/games/ndmines/core"
)

// View selects the two axes drawn as columns (X) and rows (Y). Every other
// axis is fixed at the anchor's position along it.
type View struct {
	X, Y  int // Y is -1 on 1-D boards
	Focus int // fixed axis stepped by layer moves, -1 if there is none
	rank  int
}

// NewView returns the default view of a board: axis 0 across, axis 1 down.
func NewView(rank int) View {
	v := View{X: 0, Y: -1, Focus: -1, rank: rank}
	if rank > 1 {
		v.Y = 1
	}
	v.Focus = v.firstFixed()
	return v
}

// Rank returns the number of board axes the view was built for.
func (v View) Rank() int { return v.rank }

// IsFixed returns true if axis is neither the column nor the row axis.
func (v View) IsFixed(axis int) bool {
	return axis != v.X && axis != v.Y
}

// Fixed returns the fixed axes in ascending order.
func (v View) Fixed() []int {
	var out []int
	for axis := 0; axis < v.rank; axis++ {
		if v.IsFixed(axis) {
			out = append(out, axis)
		}
	}
	return out
}

func (v View) firstFixed() int {
	if fixed := v.Fixed(); len(fixed) > 0 {
		return fixed[0]
	}
	return -1
}

// Rotate moves to the next ordered axis pair: (0,1), (0,2), ..., (1,0),
// (1,2), ... and wraps. The focus stays put if its axis is still fixed.
func (v View) Rotate() View {
	if v.rank < 2 {
		return v
	}

	pair := v.X*v.rank + v.Y
	for {
		pair = (pair + 1) % (v.rank * v.rank)
		x, y := pair/v.rank, pair%v.rank
		if x != y {
			v.X, v.Y = x, y
			break
		}
	}

	if v.Focus < 0 || !v.IsFixed(v.Focus) {
		v.Focus = v.firstFixed()
	}
	return v
}

// NextFocus cycles the focus through the fixed axes.
func (v View) NextFocus() View {
	fixed := v.Fixed()
	if len(fixed) == 0 {
		return v
	}
	for i, axis := range fixed {
		if axis == v.Focus {
			v.Focus = fixed[platformcore.Wrap(i+1, len(fixed))]
			return v
		}
	}
	v.Focus = fixed[0]
	return v
}

// WithAxes returns a view drawing axis x as columns and y as rows. y is -1
// on 1-D boards.
func (v View) WithAxes(x, y int) (View, error) {
	valid := func(a int) bool { return a >= 0 && a < v.rank }
	switch {
	case !valid(x):
		return v, fmt.Errorf("%w: axis %d on a %d-axis board", core.ErrOutOfBounds, x, v.rank)
	case v.rank == 1 && y != -1:
		return v, fmt.Errorf("%w: a 1-D board has no row axis", core.ErrOutOfBounds)
	case v.rank > 1 && (!valid(y) || y == x):
		return v, fmt.Errorf("%w: row axis %d with column axis %d", core.ErrOutOfBounds, y, x)
	}

	v.X, v.Y = x, y
	if v.Focus < 0 || !v.IsFixed(v.Focus) {
		v.Focus = v.firstFixed()
	}
	return v, nil
}

// ParseAxis accepts an axis name (x, y, z, w, a4, ...) or a bare index.
func ParseAxis(s string) (int, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) == 1 {
		if i := strings.Index("xyzw", s); i >= 0 {
			return i, nil
		}
	}
	n, err := strconv.Atoi(strings.TrimPrefix(s, "a"))
	if err != nil || n < 0 {
		return 0, fmt.Errorf("bad axis %q", s)
	}
	return n, nil
}

// AxisName returns x, y, z, w for the first four axes and a4, a5, ... after.
func AxisName(axis int) string {
	if axis >= 0 && axis < 4 {
		return string("xyzw"[axis])
	}
	return "a" + strconv.Itoa(axis)
}

// Label describes the view relative to an anchor, e.g. "x→ y↓ | z=2 [w=0]".
// The focused axis is bracketed.
func (v View) Label(anchor core.Coord) string {
	var sb strings.Builder
	sb.WriteString(AxisName(v.X) + "→")
	if v.Y >= 0 {
		sb.WriteString(" " + AxisName(v.Y) + "↓")
	}

	fixed := v.Fixed()
	if len(fixed) > 0 {
		sb.WriteString(" |")
	}
	for _, axis := range fixed {
		part := fmt.Sprintf("%s=%d", AxisName(axis), anchor[axis])
		if axis == v.Focus {
			part = "[" + part + "]"
		}
		sb.WriteString(" " + part)
	}
	return sb.String()
}

// planeSize returns the number of columns and rows the view shows.
func (v View) planeSize(d core.Dims) (cols, rows int) {
	cols, rows = d[v.X], 1
	if v.Y >= 0 {
		rows = d[v.Y]
	}
	return cols, rows
}

// at returns the board coordinate of column col, row row in the plane
// through anchor.
func (v View) at(anchor core.Coord, col, row int) core.Coord {
	c := anchor.Clone()
	c[v.X] = col
	if v.Y >= 0 {
		c[v.Y] = row
	}
	return c
}

// Glyph returns the text and color for a cell, right-aligned to width.
func Glyph(cv core.CellView, width int) (string, platformcore.Color) {
	var text string
	var color platformcore.Color

	switch {
	case cv.State == core.Flagged && cv.WrongFlag:
		text, color = "X", platformcore.ColorMagenta
	case cv.State == core.Flagged:
		text, color = "F", platformcore.ColorBrightYellow
	case cv.Mine && cv.Exploded:
		text, color = "*", platformcore.ColorBrightRed
	case cv.Mine:
		text, color = "*", platformcore.ColorRed
	case cv.State == core.Revealed && cv.Adjacent == 0:
		text, color = " ", platformcore.ColorDefault
	case cv.State == core.Revealed:
		text, color = strconv.Itoa(cv.Adjacent), platformcore.NumberColor(cv.Adjacent)
		if len(text) > width {
			text = "+"
		}
	default:
		text, color = "·", platformcore.ColorGray
	}

	if pad := width - len([]rune(text)); pad > 0 {
		text = strings.Repeat(" ", pad) + text
	}
	return text, color
}

// SliceText renders the plane of v through anchor as plain text with
// column and row indices, for line-oriented front ends.
func SliceText(g *core.Game, v View, anchor core.Coord, width int) (string, error) {
	return SliceTextStyled(g, v, anchor, width, nil)
}

// SliceTextStyled is SliceText with every cell glyph passed through paint.
// A nil paint leaves glyphs unstyled.
func SliceTextStyled(g *core.Game, v View, anchor core.Coord, width int, paint func(text string, c platformcore.Color) string) (string, error) {
	d := g.Dims()
	if !d.Contains(anchor) {
		return "", fmt.Errorf("%w: anchor %s in %s", core.ErrOutOfBounds, anchor, d)
	}
	if width < 1 {
		width = 1
	}

	cols, rows := v.planeSize(d)
	label := len(strconv.Itoa(rows - 1))

	var sb strings.Builder
	sb.WriteString(v.Label(anchor))
	sb.WriteByte('\n')

	sb.WriteString(strings.Repeat(" ", label+1))
	for col := 0; col < cols; col++ {
		idx := strconv.Itoa(col)
		if len(idx) > width {
			idx = idx[len(idx)-width:]
		}
		sb.WriteString(" " + strings.Repeat(" ", width-len(idx)) + idx)
	}
	sb.WriteByte('\n')

	for row := 0; row < rows; row++ {
		rowLabel := ""
		if v.Y >= 0 {
			rowLabel = strconv.Itoa(row)
		}
		sb.WriteString(strings.Repeat(" ", label-len(rowLabel)) + rowLabel + " ")
		for col := 0; col < cols; col++ {
			cv, err := g.Cell(v.at(anchor, col, row))
			if err != nil {
				return "", err
			}
			text, color := Glyph(cv, width)
			if paint != nil {
				text = paint(text, color)
			}
			sb.WriteString(" " + text)
		}
		sb.WriteByte('\n')
	}
	return sb.String(), nil
}
