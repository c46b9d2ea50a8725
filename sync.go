package kdtree

import (
	"io"
	"sync"
)

// SyncTree guards a Tree with a single read-write lock: inserts are
// exclusive, queries share the lock.
type SyncTree[T Number] struct {
	mutex sync.RWMutex
	tree  *Tree[T]
}

// NewSync creates an empty SyncTree for k-dimensional points.
func NewSync[T Number](k int) (*SyncTree[T], error) {
	t, err := New[T](k)
	if err != nil {
		return nil, err
	}
	return &SyncTree[T]{tree: t}, nil
}

// Sync wraps t in a SyncTree. t must not be used directly afterwards.
func (t *Tree[T]) Sync() *SyncTree[T] {
	return &SyncTree[T]{tree: t}
}

func (s *SyncTree[T]) K() int {
	return s.tree.K()
}

func (s *SyncTree[T]) Len() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.tree.Len()
}

func (s *SyncTree[T]) Height() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.tree.Height()
}

func (s *SyncTree[T]) Insert(p Point[T]) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.tree.Insert(p)
}

func (s *SyncTree[T]) InsertCoords(coords ...T) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.tree.InsertCoords(coords...)
}

func (s *SyncTree[T]) Find(p Point[T]) (bool, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.tree.Find(p)
}

func (s *SyncTree[T]) FindCoords(coords ...T) (bool, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.tree.FindCoords(coords...)
}

func (s *SyncTree[T]) Nearest(q Point[T]) (Point[T], error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.tree.Nearest(q)
}

func (s *SyncTree[T]) NearestNeighbor(q Point[T]) (Neighbor[T], error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.tree.NearestNeighbor(q)
}

// Fprint holds the read lock while writing, so a slow w delays inserts.
func (s *SyncTree[T]) Fprint(w io.Writer) error {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.tree.Fprint(w)
}
