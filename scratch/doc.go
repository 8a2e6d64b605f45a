// Package scratch provides an independent, from-scratch orbit-count
// recount, built on gonum's graph/simple.UndirectedGraph and
// stat/combin.Combinations rather than on adjacency.Store or delta.
//
// An incremental engine needs exactly this kind of independent collaborator:
// a full O(n^5) brute-force classification of every connected induced
// subgraph on 2..5 vertices, used both to seed a running total from a
// non-empty starting graph and to validate the incremental engine's output
// against ground truth. Keeping it off adjacency.Store (rather than, say,
// a thin wrapper around the same map-of-sets representation) means a bug
// shared between delta and adjacency cannot also hide in the oracle that
// checks them.
package scratch
