// Package adjacency provides Store, a mutable undirected adjacency
// representation over a fixed node universe [0,N).
//
// Store favours the three operations the delta engine leans on hardest:
// O(1) edge membership, O(deg) ordered neighbour iteration, and
// bounded-size common-neighbour intersection. Each node's neighbour set is
// a map[int]struct{} for O(1) membership and mutation; a sorted slice is
// cached lazily for Neighbours and invalidated on the next mutation of that
// node, matching the nested-map adjacency idiom the rest of this codebase's
// ancestry uses, narrowed to dense integer ids and without locking: callers
// are required to single-thread mutation of any one Store, so there is no
// concurrent access for a mutex to guard against (see DESIGN.md for the
// full rationale).
package adjacency
