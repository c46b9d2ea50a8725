// Package bruteforce provides a linear-scan point index answering the same
// membership and nearest-neighbour questions as a kdtree.Tree. It is the
// reference the tree is checked against.
package bruteforce

import (
	"errors"
	"math"

	"github.com/viant/vec/search"

	"kdtree"
)

// ErrEmpty is returned by Nearest on an index with no points.
var ErrEmpty = errors.New("bruteforce: empty index")

// Index keeps every added point along with a float32 copy of its coordinates
// for distance scoring.
type Index[T kdtree.Number] struct {
	points []kdtree.Point[T]
	vecs   []search.Float32s
}

// Add appends p to the index. Duplicates are kept.
func (i *Index[T]) Add(p kdtree.Point[T]) {
	i.points = append(i.points, p)
	i.vecs = append(i.vecs, float32s(p))
}

// Len returns the number of points added.
func (i *Index[T]) Len() int { return len(i.points) }

// Contains reports whether a point equal to p was added.
func (i *Index[T]) Contains(p kdtree.Point[T]) bool {
	for _, q := range i.points {
		if q.Equal(p) {
			return true
		}
	}
	return false
}

// Nearest scans every point and returns the first one at minimal Euclidean
// distance from q, with that distance.
func (i *Index[T]) Nearest(q kdtree.Point[T]) (kdtree.Point[T], float32, error) {
	if len(i.points) == 0 {
		return kdtree.Point[T]{}, 0, ErrEmpty
	}
	qv := float32s(q)
	best := -1
	bestDist := float32(math.Inf(1))
	for j, v := range i.vecs {
		if d := v.EuclideanDistance(qv); best < 0 || d < bestDist {
			best, bestDist = j, d
		}
	}
	return i.points[best], bestDist, nil
}

// Distance scores a against b with the same metric Nearest uses.
func Distance[T kdtree.Number](a, b kdtree.Point[T]) float32 {
	return float32s(a).EuclideanDistance(float32s(b))
}

func float32s[T kdtree.Number](p kdtree.Point[T]) search.Float32s {
	coords := p.Coords()
	v := make(search.Float32s, len(coords))
	for j, c := range coords {
		v[j] = float32(c)
	}
	return v
}
