package kdtree

import (
	"fmt"
	"io"
	"strings"
)

// padding is the indentation, in spaces, of each tree level in Fprint.
const padding = 15

// Walk calls fn for every stored point, right subtree first, then the node,
// then the left subtree. depth is 0 for the root. Walk stops early when fn
// returns false.
func (t *Tree[T]) Walk(fn func(p Point[T], depth int) bool) {
	walk(t.root, 0, fn)
}

func walk[T Number](n *node[T], depth int, fn func(Point[T], int) bool) bool {
	if n == nil {
		return true
	}
	if !walk(n.right, depth+1, fn) {
		return false
	}
	if !fn(n.p, depth) {
		return false
	}
	return walk(n.left, depth+1, fn)
}

// Fprint writes a sideways drawing of the tree to w: one point per line,
// indented by depth, with the right subtree above its parent.
func (t *Tree[T]) Fprint(w io.Writer) error {
	var err error
	t.Walk(func(p Point[T], depth int) bool {
		_, err = fmt.Fprintf(w, "%s%s\n", strings.Repeat(" ", depth*padding), p)
		return err == nil
	})
	return err
}
