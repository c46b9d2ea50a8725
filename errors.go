package kdtree

import "errors"

var (
	// ErrInvalidArity is returned when a coordinate sequence or point does not
	// have exactly K values.
	ErrInvalidArity = errors.New("kdtree: invalid arity")

	// ErrIndexOutOfRange is returned when a coordinate index falls outside [0, K).
	ErrIndexOutOfRange = errors.New("kdtree: index out of range")

	// ErrEmptyTree is returned by nearest-neighbour queries on a tree with no points.
	ErrEmptyTree = errors.New("kdtree: empty tree")

	// ErrInvalidDimension is returned when K is less than 1.
	ErrInvalidDimension = errors.New("kdtree: invalid dimension")
)
