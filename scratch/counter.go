package scratch

import (
	"fmt"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/stat/combin"

	"github.com/katalvlaran/incgraph/orbit"
	"github.com/katalvlaran/incgraph/orbitmat"
)

// Count builds a gonum UndirectedGraph over nodes [0,n) and edges, then
// classifies every connected induced subgraph on 2..5 vertices via
// orbit.Classify, returning the resulting n×orbit.Count matrix.
//
// Complexity: O(sum_{k=2}^{5} C(n,k) * k), dominated by the k=5 term;
// this is the "slow but obviously correct" counterpart to delta.Compute,
// never the default path for an interactive CalculateDelta call.
func Count(n int, edges [][2]int) (*orbitmat.Dense, error) {
	if n < 1 {
		return nil, ErrInvalidNodeCount
	}

	g := simple.NewUndirectedGraph()
	for i := 0; i < n; i++ {
		g.AddNode(simple.Node(int64(i)))
	}
	for _, e := range edges {
		i, j := e[0], e[1]
		if i < 0 || i >= n || j < 0 || j >= n || i == j {
			return nil, fmt.Errorf("%w: {%d,%d}", ErrInvalidEdge, i, j)
		}
		g.SetEdge(simple.Edge{F: simple.Node(int64(i)), T: simple.Node(int64(j))})
	}

	m, err := orbitmat.NewDense(n, orbit.Count)
	if err != nil {
		return nil, err
	}

	for k := orbit.MinK; k <= orbit.MaxK; k++ {
		if k > n {
			continue
		}
		for _, combo := range combin.Combinations(n, k) {
			adjacent := func(a, b int) bool {
				return g.HasEdgeBetween(int64(combo[a]), int64(combo[b]))
			}
			class, ok := orbit.Classify(k, adjacent)
			if !ok {
				continue
			}
			for focus, o := range class.Orbits {
				if err := m.Incr(combo[focus], o, 1); err != nil {
					return nil, err
				}
			}
		}
	}
	return m, nil
}

// Validate recounts orbit occurrences from scratch over n and edges, then
// compares the result cell-by-cell against running (the caller's
// accumulated matrix, typically maintained by repeated delta.Compute
// calls). It returns ErrMismatch, wrapped with the first diverging cell,
// on any disagreement.
func Validate(n int, edges [][2]int, running *orbitmat.Dense) error {
	if running.Rows() != n || running.Cols() != orbit.Count {
		return ErrShapeMismatch
	}
	recount, err := Count(n, edges)
	if err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		for o := 0; o < orbit.Count; o++ {
			want, _ := recount.At(i, o)
			got, _ := running.At(i, o)
			if want != got {
				return fmt.Errorf("%w: node %d orbit %d: want %d, got %d", ErrMismatch, i, o, want, got)
			}
		}
	}
	return nil
}
