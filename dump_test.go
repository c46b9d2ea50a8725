package kdtree

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFprint(t *testing.T) {
	tree := scenarioTree(t)
	var buf bytes.Buffer
	require.NoError(t, tree.Fprint(&buf))

	pad := strings.Repeat(" ", padding)
	want := strings.Join([]string{
		pad + pad + "(9, 6)",
		pad + pad + pad + "(4, 7)",
		pad + "(5, 4)",
		pad + pad + "(8, 1)",
		pad + pad + pad + "(7, 2)",
		"(2, 3)",
	}, "\n") + "\n"
	assert.Equal(t, want, buf.String())
}

func TestFprintEmpty(t *testing.T) {
	tree, err := New[int](2)
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, tree.Fprint(&buf))
	assert.Empty(t, buf.String())
}

type failingWriter struct{ n int }

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.n == 0 {
		return 0, errors.New("disk full")
	}
	w.n--
	return len(p), nil
}

func TestFprintWriteError(t *testing.T) {
	tree := scenarioTree(t)
	w := &failingWriter{n: 2}
	assert.EqualError(t, tree.Fprint(w), "disk full")
	assert.Zero(t, w.n)
}

func TestWalk(t *testing.T) {
	tree := scenarioTree(t)
	var got []string
	var depths []int
	tree.Walk(func(p Point[int], depth int) bool {
		got = append(got, p.String())
		depths = append(depths, depth)
		return true
	})
	assert.Equal(t, []string{"(9, 6)", "(4, 7)", "(5, 4)", "(8, 1)", "(7, 2)", "(2, 3)"}, got)
	assert.Equal(t, []int{2, 3, 1, 2, 3, 0}, depths)

	visited := 0
	tree.Walk(func(Point[int], int) bool {
		visited++
		return visited < 3
	})
	assert.Equal(t, 3, visited)
}
