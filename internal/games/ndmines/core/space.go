package core

import "fmt"

// Space is a validated dimension spec with precomputed strides.
// It is immutable and safe to share.
type Space struct {
	dims    Dims
	strides []int // strides[axis] is the flat distance between neighbours on that axis
	total   int
}

// NewSpace validates d and precomputes its strides.
func NewSpace(d Dims) (*Space, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	dims := d.Clone()
	strides := make([]int, len(dims))
	stride := 1
	for axis, extent := range dims {
		strides[axis] = stride
		stride *= extent
	}

	return &Space{dims: dims, strides: strides, total: stride}, nil
}

// Dims returns a copy of the dimension spec.
func (s *Space) Dims() Dims {
	return s.dims.Clone()
}

// Rank returns the number of dimensions.
func (s *Space) Rank() int {
	return len(s.dims)
}

// Total returns the number of cells.
func (s *Space) Total() int {
	return s.total
}

// Contains returns true if c lies inside the space.
func (s *Space) Contains(c Coord) bool {
	return s.dims.Contains(c)
}

// Index returns the flat index of c.
func (s *Space) Index(c Coord) (int, error) {
	if err := s.dims.check(c); err != nil {
		return 0, err
	}
	return s.index(c), nil
}

// Coord returns the coordinate at flat index i.
func (s *Space) Coord(i int) (Coord, error) {
	if i < 0 || i >= s.total {
		return nil, fmt.Errorf("%w: index %d in %s", ErrOutOfBounds, i, s.dims)
	}
	return s.coord(i), nil
}

// Neighbors returns the Moore neighbourhood of c in the order documented on
// the package-level Neighbors.
func (s *Space) Neighbors(c Coord) ([]Coord, error) {
	idx, err := s.Index(c)
	if err != nil {
		return nil, err
	}

	flat := s.appendNeighbors(nil, idx)
	out := make([]Coord, len(flat))
	for i, n := range flat {
		out[i] = s.coord(n)
	}
	return out, nil
}

func (s *Space) index(c Coord) int {
	i := 0
	for axis, v := range c {
		i += v * s.strides[axis]
	}
	return i
}

func (s *Space) coord(i int) Coord {
	if i < 0 || i >= s.total {
		panic(fmt.Sprintf("core: flat index %d outside %s", i, s.dims))
	}
	c := make(Coord, len(s.dims))
	for axis, extent := range s.dims {
		c[axis] = i % extent
		i /= extent
	}
	return c
}

// appendNeighbors appends the flat indices of every in-bounds neighbour of
// idx to dst. Each digit of the odometer is clipped to the offsets that stay
// inside the space, so no out-of-range candidate is ever produced.
func (s *Space) appendNeighbors(dst []int, idx int) []int {
	n := len(s.dims)
	lo := make([]int, n)
	hi := make([]int, n)
	off := make([]int, n)

	rest := idx
	for axis, extent := range s.dims {
		v := rest % extent
		rest /= extent

		lo[axis], hi[axis] = -1, 1
		if v == 0 {
			lo[axis] = 0
		}
		if v == extent-1 {
			hi[axis] = 0
		}
		off[axis] = lo[axis]
	}

	for {
		delta := 0
		centre := true
		for axis, o := range off {
			if o != 0 {
				delta += o * s.strides[axis]
				centre = false
			}
		}
		if !centre {
			dst = append(dst, idx+delta)
		}

		axis := 0
		for ; axis < n; axis++ {
			if off[axis] < hi[axis] {
				off[axis]++
				break
			}
			off[axis] = lo[axis]
		}
		if axis == n {
			return dst
		}
	}
}
