// Package kdtree implements an unbalanced k-d tree over fixed-dimension
// points, supporting insertion, exact membership lookup and Euclidean
// nearest-neighbour search.
//
// The split dimension cycles with depth: a node at depth d splits on
// coordinate d mod K. Points whose split coordinate is less than or equal to
// the node's go left, the rest go right. The tree is never rebalanced, so its
// shape depends on insertion order.
package kdtree

import (
	"fmt"
	"iter"

	"github.com/cznic/mathutil"
)

// Tree is a k-d tree of K-dimensional points. The zero value is not usable,
// create trees with New.
//
// A Tree is not safe for concurrent use; see SyncTree.
type Tree[T Number] struct {
	root *node[T]
	// Dimension of every stored point.
	k int
	// Number of stored points, duplicates included.
	count int
}

type node[T Number] struct {
	p           Point[T]
	left, right *node[T]
}

// New creates an empty tree for k-dimensional points.
//
// Returns ErrInvalidDimension if k < 1.
func New[T Number](k int) (*Tree[T], error) {
	if k < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDimension, k)
	}
	return &Tree[T]{k: k}, nil
}

// K returns the dimension of the points held by t.
func (t *Tree[T]) K() int {
	return t.k
}

// Len returns the number of points inserted into t.
func (t *Tree[T]) Len() int {
	return t.count
}

// Height returns the number of nodes on the longest root-to-leaf path, 0 for
// an empty tree.
func (t *Tree[T]) Height() int {
	return height(t.root)
}

func height[T Number](n *node[T]) int {
	if n == nil {
		return 0
	}
	return 1 + mathutil.Max(height(n.left), height(n.right))
}

func (t *Tree[T]) check(p Point[T]) error {
	if p.Dim() != t.k {
		return fmt.Errorf("%w: point is %d dimensional, tree is %d", ErrInvalidArity, p.Dim(), t.k)
	}
	return nil
}

// Insert adds a copy of p to the tree. Equal points are not merged: each
// insert creates a new node.
//
// Returns ErrInvalidArity if p.Dim() != t.K(), in which case the tree is
// left unchanged.
func (t *Tree[T]) Insert(p Point[T]) error {
	if err := t.check(p); err != nil {
		return err
	}
	link := &t.root
	dim := 0
	for *link != nil {
		n := *link
		if p.at(dim) <= n.p.at(dim) {
			link = &n.left
		} else {
			link = &n.right
		}
		dim = (dim + 1) % t.k
	}
	*link = &node[T]{p: Point[T]{coords: p.Coords()}}
	t.count++
	return nil
}

// InsertCoords builds a point from coords and inserts it.
func (t *Tree[T]) InsertCoords(coords ...T) error {
	p, err := NewPoint(t.k, coords...)
	if err != nil {
		return err
	}
	return t.Insert(p)
}

// InsertSeq builds a point from seq and inserts it.
func (t *Tree[T]) InsertSeq(seq iter.Seq[T]) error {
	p, err := PointFromSeq(t.k, seq)
	if err != nil {
		return err
	}
	return t.Insert(p)
}

// Find reports whether a point equal to p is stored in the tree.
//
// Find walks the same path Insert would take for p. Since an equal point
// agrees on every coordinate, it also agrees on each split coordinate, and
// the <= rule sends it down the branch its twin was inserted into.
func (t *Tree[T]) Find(p Point[T]) (bool, error) {
	if err := t.check(p); err != nil {
		return false, err
	}
	n := t.root
	dim := 0
	for n != nil {
		if p.Equal(n.p) {
			return true, nil
		}
		if p.at(dim) <= n.p.at(dim) {
			n = n.left
		} else {
			n = n.right
		}
		dim = (dim + 1) % t.k
	}
	return false, nil
}

// FindCoords builds a point from coords and looks it up.
func (t *Tree[T]) FindCoords(coords ...T) (bool, error) {
	p, err := NewPoint(t.k, coords...)
	if err != nil {
		return false, err
	}
	return t.Find(p)
}
