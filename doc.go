// Package incgraph computes, per single-edge toggle on an undirected graph,
// the per-node change in graphlet automorphism orbit counts across all 73
// orbits of the 30 connected graphlets on 2..5 vertices — without
// recounting the graph from scratch.
//
// Under the hood, everything is organized under per-concern subpackages:
//
//	adjacency/ — mutable undirected adjacency over a fixed node universe
//	orbit/     — the (graphlet, orbit) classification table for k=2..5
//	orbitmat/  — the shared dense N×73 int64 result matrix
//	delta/     — the incremental engine: one edge toggle in, add/rem out
//	scratch/   — an independent from-scratch recount, for seeding and validation
//	network/   — Facade, the 1-based validated public entry point
//
// Quick ASCII example:
//
//	  1───2
//	  │   │
//	  3───4
//
//	toggling the diagonal {1,4} turns this 4-cycle into a graph with two
//	triangles (1-2-4 and 1-3-4); delta.Compute reports exactly which nodes'
//	orbit counts change, and by how much, in O(d^3) rather than O(n^5).
//
// See DESIGN.md for the full component breakdown and how each package is
// grounded.
package incgraph
