package kdtree

import (
	"bytes"
	"math/rand"
	"runtime"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSync(t *testing.T) {
	_, err := NewSync[int](0)
	assert.ErrorIs(t, err, ErrInvalidDimension)

	s, err := NewSync[int](2)
	require.NoError(t, err)
	assert.Equal(t, 2, s.K())

	_, err = s.Nearest(mustPoint(t, 1, 1))
	assert.ErrorIs(t, err, ErrEmptyTree)
}

func TestSyncTreeConcurrent(t *testing.T) {
	const count = 400
	max := runtime.GOMAXPROCS(-1)
	s, err := NewSync[int](3)
	require.NoError(t, err)
	require.NoError(t, s.InsertCoords(0, 0, 0))

	var wg sync.WaitGroup
	inserted := make([][]Point[int], max)
	for i := 0; i < max; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(int64(i)))
			for j := 0; j < count/max; j++ {
				p := randomPoint(rng, 3, 50)
				if err := s.Insert(p); err != nil {
					t.Error(err)
					return
				}
				inserted[i] = append(inserted[i], p)
			}
		}(i)
		go func(i int) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(int64(-i - 1)))
			for j := 0; j < count/max; j++ {
				q := randomPoint(rng, 3, 50)
				if _, err := s.Nearest(q); err != nil {
					t.Error(err)
					return
				}
				if _, err := s.Find(q); err != nil {
					t.Error(err)
					return
				}
			}
		}(i)
	}
	wg.Wait()

	total := 1
	for _, points := range inserted {
		total += len(points)
		for _, p := range points {
			found, err := s.Find(p)
			require.NoError(t, err)
			assert.True(t, found)
		}
	}
	assert.Equal(t, total, s.Len())
	assert.Positive(t, s.Height())

	nb, err := s.NearestNeighbor(mustPoint(t, 0, 0, 0))
	require.NoError(t, err)
	assert.Zero(t, nb.Distance)

	found, err := s.FindCoords(0, 0, 0)
	require.NoError(t, err)
	assert.True(t, found)

	var buf bytes.Buffer
	require.NoError(t, s.Fprint(&buf))
	assert.Equal(t, total, bytes.Count(buf.Bytes(), []byte("\n")))
}

func TestTreeSync(t *testing.T) {
	tree := scenarioTree(t)
	s := tree.Sync()
	assert.Equal(t, 6, s.Len())
	p, err := s.Nearest(mustPoint(t, 9, 2))
	require.NoError(t, err)
	assert.Equal(t, []int{8, 1}, p.Coords())
}
