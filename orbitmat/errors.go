package orbitmat

import "errors"

// Sentinel errors for orbitmat. Callers should branch with errors.Is.
var (
	// ErrInvalidDimensions indicates a non-positive row or column count was
	// requested at construction time.
	ErrInvalidDimensions = errors.New("orbitmat: invalid dimensions")

	// ErrOutOfRange indicates a row or column index fell outside the
	// matrix's bounds.
	ErrOutOfRange = errors.New("orbitmat: index out of range")

	// ErrDimensionMismatch indicates an element-wise operation (Add/Sub)
	// was attempted between matrices of different shape.
	ErrDimensionMismatch = errors.New("orbitmat: dimension mismatch")
)
