// Package core implements the N-dimensional minesweeper engine: the
// coordinate system, the flat-storage board and the game state machine.
// It performs no I/O and has no dependencies outside the standard library,
// so every presentation layer drives it through the same operations.
package core

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Dims is a dimension spec: the extent of each axis.
// Axis 0 varies fastest in flat storage.
type Dims []int

// NewDims validates the extents and returns them as a Dims.
func NewDims(extents ...int) (Dims, error) {
	d := Dims(append([]int(nil), extents...))
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

// ParseDims parses a dimension spec such as "9x9x3" or "9,9,3".
func ParseDims(s string) (Dims, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return nil, fmt.Errorf("%w: empty dimension spec", ErrInvalidConfiguration)
	}

	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == 'x' || r == ',' || r == '*'
	})
	extents := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("%w: bad extent %q in %q", ErrInvalidConfiguration, p, s)
		}
		extents = append(extents, n)
	}
	return NewDims(extents...)
}

// Validate reports ErrInvalidConfiguration for an empty spec, a
// non-positive extent, or a cell count that does not fit in an int.
func (d Dims) Validate() error {
	if len(d) == 0 {
		return fmt.Errorf("%w: at least one dimension is required", ErrInvalidConfiguration)
	}
	total := 1
	for axis, extent := range d {
		if extent < 1 {
			return fmt.Errorf("%w: axis %d has extent %d", ErrInvalidConfiguration, axis, extent)
		}
		if total > math.MaxInt/extent {
			return fmt.Errorf("%w: %s has too many cells", ErrInvalidConfiguration, d)
		}
		total *= extent
	}
	return nil
}

// Rank returns the number of dimensions.
func (d Dims) Rank() int {
	return len(d)
}

// Total returns the number of cells in the space.
func (d Dims) Total() int {
	total := 1
	for _, extent := range d {
		total *= extent
	}
	return total
}

// Contains returns true if c has the right arity and every component is in range.
func (d Dims) Contains(c Coord) bool {
	if len(c) != len(d) {
		return false
	}
	for axis, v := range c {
		if v < 0 || v >= d[axis] {
			return false
		}
	}
	return true
}

// Equal returns true if both specs have the same extents in the same order.
func (d Dims) Equal(other Dims) bool {
	if len(d) != len(other) {
		return false
	}
	for i := range d {
		if d[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy that does not share storage with d.
func (d Dims) Clone() Dims {
	return append(Dims(nil), d...)
}

// String formats the spec as "9x9x3".
func (d Dims) String() string {
	parts := make([]string, len(d))
	for i, extent := range d {
		parts[i] = strconv.Itoa(extent)
	}
	return strings.Join(parts, "x")
}

func (d Dims) check(c Coord) error {
	if !d.Contains(c) {
		return fmt.Errorf("%w: %s in %s", ErrOutOfBounds, c, d)
	}
	return nil
}

// Coord is a position in an N-dimensional space, one component per axis.
type Coord []int

// C is a convenience constructor for Coord.
func C(components ...int) Coord {
	return Coord(append([]int(nil), components...))
}

// String returns a representation like "(1,0,2)".
func (c Coord) String() string {
	parts := make([]string, len(c))
	for i, v := range c {
		parts[i] = strconv.Itoa(v)
	}
	return "(" + strings.Join(parts, ",") + ")"
}

// Equal returns true if two coordinates are the same.
func (c Coord) Equal(other Coord) bool {
	if len(c) != len(other) {
		return false
	}
	for i := range c {
		if c[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy that does not share storage with c.
func (c Coord) Clone() Coord {
	return append(Coord(nil), c...)
}

// ToIndex maps a coordinate to its flat index:
// c1 + d1*(c2 + d2*(c3 + ...)).
func ToIndex(c Coord, d Dims) (int, error) {
	if err := d.Validate(); err != nil {
		return 0, err
	}
	if err := d.check(c); err != nil {
		return 0, err
	}

	index := 0
	for axis := len(d) - 1; axis >= 0; axis-- {
		index = index*d[axis] + c[axis]
	}
	return index, nil
}

// ToCoord is the inverse of ToIndex.
func ToCoord(index int, d Dims) (Coord, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	if index < 0 || index >= d.Total() {
		return nil, fmt.Errorf("%w: index %d in %s", ErrOutOfBounds, index, d)
	}

	c := make(Coord, len(d))
	for axis, extent := range d {
		c[axis] = index % extent
		index /= extent
	}
	return c, nil
}

// Neighbors returns the in-bounds Moore neighbourhood of c: every coordinate
// that differs by -1, 0 or +1 on each axis, excluding c itself.
//
// The order is fixed: offsets are enumerated like an odometer whose fastest
// digit is axis 0, each digit running -1, 0, +1.
func Neighbors(c Coord, d Dims) ([]Coord, error) {
	space, err := NewSpace(d)
	if err != nil {
		return nil, err
	}
	return space.Neighbors(c)
}
