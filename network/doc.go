// Package network provides Facade, the public, 1-based-id entry point
// wrapping adjacency.Store, delta.Compute, and scratch.Count behind the
// argument-validation and translation rules the rest of this repository's
// packages leave to their callers.
//
// Every exported method accepts and returns 1-based node ids; internally
// Facade subtracts one before touching adjacency.Store (which is 0-based)
// and adds one back before returning results. This mirrors the teacher
// repository's convention of a thin "api.go" facade with no algorithmic
// logic of its own (core/api.go): Facade only validates, translates, and
// delegates.
package network
