package adjacency

import "errors"

// Sentinel errors for Store. Callers should branch with errors.Is.
var (
	// ErrInvalidNodeCount indicates a non-positive node count was passed to
	// NewStore.
	ErrInvalidNodeCount = errors.New("adjacency: invalid node count")

	// ErrInvalidNodeID indicates a node id outside [0,N) was referenced.
	ErrInvalidNodeID = errors.New("adjacency: invalid node id")

	// ErrSelfLoop indicates an operation was attempted with i == j, which
	// this package never permits (the graph model is simple and
	// irreflexive).
	ErrSelfLoop = errors.New("adjacency: self-loop not allowed")

	// ErrDuplicateEdge indicates SetEdges was given the same unordered
	// pair more than once.
	ErrDuplicateEdge = errors.New("adjacency: duplicate edge in input")
)
