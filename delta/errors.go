package delta

import "errors"

// ErrInvalidEndpoints indicates u or v was out of range, or u == v. Per
// spec, these are the only failure modes of Compute.
var ErrInvalidEndpoints = errors.New("delta: invalid endpoints")
