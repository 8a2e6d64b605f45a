// Package orbitmat provides a small dense, row-major integer matrix used to
// hold per-node orbit counts (shape N × orbit.Count) across the delta,
// network, and scratch packages.
//
// Dense stores int64 counts in a flat slice for cache-friendly access and
// supports the handful of operations the orbit-delta pipeline actually
// needs: indexed get/set, zero-valued construction, and element-wise
// Add/Sub so a running total can absorb a delta's add/rem matrices.
//
// Dense never returns negative values from Add/Sub beyond what the caller
// feeds it; overflow and sign are the caller's responsibility, matching the
// spec's statement that add/rem entries are themselves non-negative counts.
package orbitmat
