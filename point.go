package kdtree

import (
	"fmt"
	"iter"
	"strings"

	"golang.org/x/exp/constraints"
)

// Number is the set of coordinate types a Point can hold.
type Number interface {
	constraints.Integer | constraints.Float
}

// Point is a fixed-size coordinate tuple. Points are values: the coordinates
// are copied on construction and no method modifies the receiver.
type Point[T Number] struct {
	coords []T
}

// NewPoint returns a k-dimensional point holding a copy of coords.
//
// Returns ErrInvalidDimension if k < 1 and ErrInvalidArity if
// len(coords) != k.
func NewPoint[T Number](k int, coords ...T) (Point[T], error) {
	if k < 1 {
		return Point[T]{}, fmt.Errorf("%w: %d", ErrInvalidDimension, k)
	}
	if len(coords) != k {
		return Point[T]{}, fmt.Errorf("%w: got %d coordinates, want %d", ErrInvalidArity, len(coords), k)
	}
	return Point[T]{coords: append([]T(nil), coords...)}, nil
}

// PointFromSeq consumes seq into a k-dimensional point. Consumption stops as
// soon as a (k+1)th value shows up, so an unbounded sequence is rejected
// without being drained.
func PointFromSeq[T Number](k int, seq iter.Seq[T]) (Point[T], error) {
	if k < 1 {
		return Point[T]{}, fmt.Errorf("%w: %d", ErrInvalidDimension, k)
	}
	coords := make([]T, 0, k)
	overflow := false
	for v := range seq {
		if len(coords) == k {
			overflow = true
			break
		}
		coords = append(coords, v)
	}
	if overflow {
		return Point[T]{}, fmt.Errorf("%w: more than %d coordinates", ErrInvalidArity, k)
	}
	if len(coords) != k {
		return Point[T]{}, fmt.Errorf("%w: got %d coordinates, want %d", ErrInvalidArity, len(coords), k)
	}
	return Point[T]{coords: coords}, nil
}

// Dim returns the number of coordinates (K) of p.
func (p Point[T]) Dim() int {
	return len(p.coords)
}

// At returns the coordinate at index i.
func (p Point[T]) At(i int) (T, error) {
	if i < 0 || i >= len(p.coords) {
		var zero T
		return zero, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, len(p.coords))
	}
	return p.coords[i], nil
}

// With returns a copy of p whose coordinate i is set to v.
func (p Point[T]) With(i int, v T) (Point[T], error) {
	if i < 0 || i >= len(p.coords) {
		return Point[T]{}, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, len(p.coords))
	}
	coords := append([]T(nil), p.coords...)
	coords[i] = v
	return Point[T]{coords: coords}, nil
}

// Equal reports whether p and o have the same dimension and pairwise equal
// coordinates. The comparison is exact.
func (p Point[T]) Equal(o Point[T]) bool {
	if len(p.coords) != len(o.coords) {
		return false
	}
	for i := range p.coords {
		if p.coords[i] != o.coords[i] {
			return false
		}
	}
	return true
}

// Coords returns a copy of the coordinates.
func (p Point[T]) Coords() []T {
	return append([]T(nil), p.coords...)
}

func (p Point[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, v := range p.coords {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, v)
	}
	sb.WriteByte(')')
	return sb.String()
}

// at is the unchecked accessor used on the tree's hot paths, where the
// dimension was validated on the way in.
func (p Point[T]) at(i int) T {
	return p.coords[i]
}
