package kdtree

import "math"

// Neighbor is the result of a nearest-neighbour query.
type Neighbor[T Number] struct {
	Point    Point[T]
	Distance float64
}

// Nearest returns the stored point closest to q under Euclidean distance.
// When several points are equally close any of them may be returned.
//
// Returns ErrEmptyTree if the tree holds no points and ErrInvalidArity if
// q.Dim() != t.K().
func (t *Tree[T]) Nearest(q Point[T]) (Point[T], error) {
	nb, err := t.NearestNeighbor(q)
	if err != nil {
		return Point[T]{}, err
	}
	return nb.Point, nil
}

// NearestCoords builds a point from coords and runs Nearest.
func (t *Tree[T]) NearestCoords(coords ...T) (Point[T], error) {
	q, err := NewPoint(t.k, coords...)
	if err != nil {
		return Point[T]{}, err
	}
	return t.Nearest(q)
}

// NearestNeighbor is Nearest, also returning the distance to q.
//
// If no stored point is at a comparable distance from q, as happens when q
// has a NaN coordinate, the root point is returned along with its distance.
func (t *Tree[T]) NearestNeighbor(q Point[T]) (Neighbor[T], error) {
	if err := t.check(q); err != nil {
		return Neighbor[T]{}, err
	}
	if t.root == nil {
		return Neighbor[T]{}, ErrEmptyTree
	}
	best, dist := t.nearest(t.root, q, 0, nil, math.Inf(1))
	if best == nil {
		best, dist = t.root, distance(t.root.p, q)
	}
	return Neighbor[T]{Point: Point[T]{coords: best.p.Coords()}, Distance: dist}, nil
}

// nearest is a depth-first branch and bound search below n, which splits on
// dim. It returns the better of (best, bestDist) and anything found below n.
func (t *Tree[T]) nearest(n *node[T], q Point[T], dim int, best *node[T], bestDist float64) (*node[T], float64) {
	if n == nil {
		return best, bestDist
	}
	if d := distance(n.p, q); d < bestDist {
		best, bestDist = n, d
	}

	// Ties go left, the side Insert sends them to.
	near, far := n.left, n.right
	if q.at(dim) > n.p.at(dim) {
		near, far = far, near
	}
	next := (dim + 1) % t.k

	best, bestDist = t.nearest(near, q, next, best, bestDist)

	// Nothing past the splitting plane is closer than the plane itself.
	if math.Abs(float64(q.at(dim))-float64(n.p.at(dim))) >= bestDist {
		return best, bestDist
	}
	return t.nearest(far, q, next, best, bestDist)
}

// distance is the Euclidean distance between a and b, computed in float64 so
// unsigned coordinates cannot wrap.
func distance[T Number](a, b Point[T]) float64 {
	var sum float64
	for i := range a.coords {
		d := float64(a.coords[i]) - float64(b.coords[i])
		sum += d * d
	}
	return math.Sqrt(sum)
}
