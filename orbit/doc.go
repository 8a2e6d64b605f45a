// Package orbit classifies induced subgraphs on 2..5 labelled vertices into
// one of 73 automorphism orbits, per the Hočevar–Demšar graphlet-orbit
// enumeration (orbits of the 30 connected graphlets on up to 5 nodes).
//
// The table is not hand-transcribed from the published paper; it is derived
// once, at init time, by brute-force permutation search (see tables.go).
// For every k in {2,3,4,5} and every bitmask over the k·(k-1)/2 possible
// vertex pairs, the canonical form of the induced subgraph is the
// lexicographically smallest bitmask reachable by relabelling the k
// vertices; the permutations that fix a canonical form partition its
// vertices into automorphism orbits, and those orbits are numbered
// consecutively as k increases and, within a k, as canonical bitmasks
// increase. The derivation is self-checking: it must discover exactly 30
// graphlets and exactly 73 orbits in total, or init() panics.
//
// Callers never need to know the derivation: OrbitOf and GraphletOf are
// pure lookups keyed by (k, bitmask, focus-vertex) and (k, bitmask).
package orbit
