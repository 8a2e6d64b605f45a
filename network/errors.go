// Error taxonomy for network.Facade: bad construction arguments, bad node
// ids, and malformed edge lists each get their own sentinel below.
//
// A fourth category sometimes named alongside these — "a non-network value
// passed where a network is expected" — has no Go manifestation: Facade is
// a concrete *Facade pointer everywhere it is used, so the compiler rejects
// the wrong type before any of this code runs. It is therefore intentionally
// absent from the sentinel list below rather than represented by a sentinel
// nothing can ever trigger.
package network

import "errors"

var (
	// ErrInvalidNodeCount indicates n < 1 at construction.
	ErrInvalidNodeCount = errors.New("network: invalid node count")

	// ErrInvalidNodeID indicates an id outside [1,N] was referenced, or
	// i == j where distinct endpoints are required.
	ErrInvalidNodeID = errors.New("network: invalid node id")

	// ErrInvalidInput indicates a malformed edge list: an out-of-range
	// value, a self-loop, or a duplicate unordered pair.
	ErrInvalidInput = errors.New("network: invalid edge list")
)
