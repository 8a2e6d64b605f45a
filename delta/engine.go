package delta

import (
	"sort"

	"gonum.org/v1/gonum/stat/combin"

	"github.com/katalvlaran/incgraph/adjacency"
	"github.com/katalvlaran/incgraph/orbit"
	"github.com/katalvlaran/incgraph/orbitmat"
)

// maxExtra is the largest number of vertices beyond {u,v} a graphlet can
// have (k=5 => 3 extra vertices), and therefore the BFS depth from {u,v}
// that is guaranteed to capture every candidate (see doc.go).
const maxExtra = orbit.MaxK - 2

// Compute enumerates every induced 2..5-vertex graphlet incident to {u,v}
// whose induced edge set differs between the current adjacency ("before")
// and the same adjacency with {u,v} toggled ("after"), and returns the
// resulting per-node orbit-count add/rem matrices. store is read but never
// mutated.
//
// Complexity: O(d̄^maxExtra) where d̄ bounds the size of the BFS-3
// candidate pool around {u,v}; see doc.go for why depth 3 is both
// necessary and sufficient for k<=5.
func Compute(store *adjacency.Store, u, v int) (add, rem *orbitmat.Dense, err error) {
	n := store.N()
	if u < 0 || u >= n || v < 0 || v >= n || u == v {
		return nil, nil, ErrInvalidEndpoints
	}

	add, err = orbitmat.NewDense(n, orbit.Count)
	if err != nil {
		return nil, nil, err
	}
	rem, err = orbitmat.NewDense(n, orbit.Count)
	if err != nil {
		return nil, nil, err
	}

	// k=2: the edge {u,v} itself.
	classifyPair(store, u, v, []int{u, v}, add, rem)

	pool, err := candidatePool(store, u, v, maxExtra)
	if err != nil {
		return nil, nil, err
	}

	for k := 3; k <= orbit.MaxK; k++ {
		extra := k - 2
		if extra > len(pool) {
			continue
		}
		for _, idx := range combin.Combinations(len(pool), extra) {
			s := make([]int, 0, k)
			s = append(s, u, v)
			for _, i := range idx {
				s = append(s, pool[i])
			}
			classifyPair(store, u, v, s, add, rem)
		}
	}

	return add, rem, nil
}

// classifyPair classifies the induced subgraph on vertex set s (with s[0]==u
// and s[1]==v) in both its before and after states, crediting rem for the
// before classification (if connected) and add for the after classification
// (if connected).
func classifyPair(store *adjacency.Store, u, v int, s []int, add, rem *orbitmat.Dense) {
	k := len(s)
	toggled := orbit.PairIndex(0, 1, k)

	before := orbit.MaskOf(k, func(a, b int) bool {
		ok, _ := store.Contains(s[a], s[b])
		return ok
	})
	after := before ^ (1 << uint(toggled))

	if orbit.Connected(before, k) {
		for f := 0; f < k; f++ {
			_ = rem.Incr(s[f], orbit.OrbitOf(k, before, f), 1)
		}
	}
	if orbit.Connected(after, k) {
		for f := 0; f < k; f++ {
			_ = add.Incr(s[f], orbit.OrbitOf(k, after, f), 1)
		}
	}
}

// candidatePool returns, in ascending order, every vertex other than u and
// v within graph distance maxDepth of the closer of {u,v}.
// Complexity: O(size of the pool plus its incident edges).
func candidatePool(store *adjacency.Store, u, v, maxDepth int) ([]int, error) {
	dist := map[int]int{u: 0, v: 0}
	frontier := []int{u, v}
	for d := 1; d <= maxDepth; d++ {
		var next []int
		for _, cur := range frontier {
			nbrs, err := store.Neighbours(cur)
			if err != nil {
				return nil, err
			}
			for _, w := range nbrs {
				if _, seen := dist[w]; !seen {
					dist[w] = d
					next = append(next, w)
				}
			}
		}
		frontier = next
	}

	pool := make([]int, 0, len(dist))
	for id := range dist {
		if id != u && id != v {
			pool = append(pool, id)
		}
	}
	// Sort ascending for a deterministic, canonical enumeration order.
	sort.Ints(pool)
	return pool, nil
}
