// Package delta implements the incremental orbit-count delta engine: given
// the adjacency as it stood before a flip and the two endpoints being
// toggled, it enumerates every induced 2..5-vertex graphlet incident to
// {u,v} whose induced edge set changes, classifies each of its vertices
// via package orbit, and accumulates the resulting per-node orbit-count
// additions and removals into a pair of orbitmat.Dense matrices.
//
// Candidate vertex search. A k-vertex induced subgraph containing {u,v}
// can only have a different edge set before vs. after the flip; for it to
// be worth visiting at all it must also be connected in at least one of
// the two states. With only k-2 vertices beyond {u,v}, any such connected
// subgraph has every extra vertex within graph distance k-2 of the closer
// of {u,v} (the tightest case is a single path hung off one endpoint).
// Since k<=5 here, a breadth-first search of depth 3 from {u,v} is
// guaranteed to capture every vertex that could participate in any
// qualifying graphlet (this is a stronger, exact bound, not an
// approximation of the spec's informal "Nu ∪ Nv ∪ N(Nu) ∪ N(Nv)"
// description, which is only exact for k=4). Candidate k-2 subsets of that
// pool are then walked with gonum's stat/combin.Combinations, so each
// unordered subset is visited exactly once.
package delta
