package scratch

import "errors"

var (
	// ErrInvalidNodeCount indicates n < 1.
	ErrInvalidNodeCount = errors.New("scratch: invalid node count")

	// ErrInvalidEdge indicates an edge referencing an out-of-range id or a
	// self-loop.
	ErrInvalidEdge = errors.New("scratch: invalid edge")

	// ErrShapeMismatch indicates the caller-supplied running matrix in
	// Validate does not have n rows and orbit.Count columns.
	ErrShapeMismatch = errors.New("scratch: running matrix shape mismatch")

	// ErrMismatch indicates Validate found at least one cell where the
	// running matrix disagrees with the from-scratch recount.
	ErrMismatch = errors.New("scratch: running total diverges from recount")
)
