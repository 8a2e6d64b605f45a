package network

import (
	"github.com/katalvlaran/incgraph/adjacency"
	"github.com/katalvlaran/incgraph/delta"
	"github.com/katalvlaran/incgraph/scratch"
)

// Facade wraps an adjacency.Store behind a 1-based, validated API. It is
// the only stateful handle in this repository; every mutator translates
// 1-based external ids to the 0-based ids adjacency.Store expects.
type Facade struct {
	store *adjacency.Store
}

// New constructs an empty Facade over n >= 1 nodes.
// Complexity: O(n).
func New(n int) (*Facade, error) {
	if n < 1 {
		return nil, ErrInvalidNodeCount
	}
	store, err := adjacency.NewStore(n)
	if err != nil {
		return nil, ErrInvalidNodeCount
	}
	return &Facade{store: store}, nil
}

// NewFromEdges constructs a Facade sized to the largest id appearing in
// edges (1-based), then loads edges via SetNetwork.
func NewFromEdges(edges [][2]int) (*Facade, error) {
	maxID := 0
	for _, e := range edges {
		if e[0] > maxID {
			maxID = e[0]
		}
		if e[1] > maxID {
			maxID = e[1]
		}
	}
	if maxID < 1 {
		return nil, ErrInvalidNodeCount
	}
	f, err := New(maxID)
	if err != nil {
		return nil, err
	}
	if err := f.SetNetwork(edges); err != nil {
		return nil, err
	}
	return f, nil
}

// NewWithEdges constructs a Facade over n nodes and loads edges.
func NewWithEdges(n int, edges [][2]int) (*Facade, error) {
	f, err := New(n)
	if err != nil {
		return nil, err
	}
	if err := f.SetNetwork(edges); err != nil {
		return nil, err
	}
	return f, nil
}

// N returns the fixed node count.
func (f *Facade) N() int { return f.store.N() }

func toZero(id int) int { return id - 1 }
func toOne(id int) int  { return id + 1 }

func (f *Facade) validID(id int) bool {
	return id >= 1 && id <= f.store.N()
}

// Reset empties the graph.
func (f *Facade) Reset() { f.store.Reset() }

// Flip validates i,j and toggles the edge {i,j}.
// Complexity: O(1).
func (f *Facade) Flip(i, j int) error {
	if !f.validID(i) || !f.validID(j) {
		return ErrInvalidNodeID
	}
	if i == j {
		return ErrInvalidNodeID
	}
	if err := f.store.Flip(toZero(i), toZero(j)); err != nil {
		return ErrInvalidNodeID
	}
	return nil
}

// SetNetwork resets the graph, then loads edges (1-based). On any
// validation failure the graph is left reset, not the pre-call state:
// a bulk load either fully replaces the network or leaves it empty, never
// half-applied.
func (f *Facade) SetNetwork(edges [][2]int) error {
	zero := make([][2]int, len(edges))
	for i, e := range edges {
		if !f.validID(e[0]) || !f.validID(e[1]) || e[0] == e[1] {
			f.store.Reset()
			return ErrInvalidInput
		}
		zero[i] = [2]int{toZero(e[0]), toZero(e[1])}
	}
	if err := f.store.SetEdges(zero); err != nil {
		return ErrInvalidInput
	}
	return nil
}

// Contains reports whether {i,j} is an edge.
func (f *Facade) Contains(i, j int) (bool, error) {
	if !f.validID(i) || !f.validID(j) {
		return false, ErrInvalidNodeID
	}
	ok, err := f.store.Contains(toZero(i), toZero(j))
	if err != nil {
		return false, ErrInvalidNodeID
	}
	return ok, nil
}

// GetNeighbours returns the ascending, 1-based neighbour list of i.
func (f *Facade) GetNeighbours(i int) ([]int, error) {
	if !f.validID(i) {
		return nil, ErrInvalidNodeID
	}
	nbrs, err := f.store.Neighbours(toZero(i))
	if err != nil {
		return nil, ErrInvalidNodeID
	}
	out := make([]int, len(nbrs))
	for idx, v := range nbrs {
		out[idx] = toOne(v)
	}
	return out, nil
}

// NetworkAsMatrix returns every edge as {min,max}, 1-based, lex-sorted,
// each appearing exactly once.
func (f *Facade) NetworkAsMatrix() [][2]int {
	edges := f.store.EdgeList()
	out := make([][2]int, len(edges))
	for i, e := range edges {
		out[i] = [2]int{toOne(e[0]), toOne(e[1])}
	}
	return out
}

// CalculateDelta runs the delta engine on the current adjacency and the
// edge {i,j}, treating the current state as "before" and the toggled
// state as "after". It does not mutate the graph; callers that want to
// apply the toggle must call Flip separately. Results are returned as
// plain int64 matrices shaped [N][orbit.Count], 0-indexed by (1-based
// node - 1) to match NetworkAsMatrix's node ordering.
func (f *Facade) CalculateDelta(i, j int) (add, rem [][]int64, err error) {
	if !f.validID(i) || !f.validID(j) || i == j {
		return nil, nil, ErrInvalidNodeID
	}
	addM, remM, err := delta.Compute(f.store, toZero(i), toZero(j))
	if err != nil {
		return nil, nil, ErrInvalidNodeID
	}
	return addM.Rows2D(), remM.Rows2D(), nil
}

// CalculateOrbitCounts delegates to scratch.Count for a full recount from
// the current adjacency.
func (f *Facade) CalculateOrbitCounts() ([][]int64, error) {
	m, err := scratch.Count(f.store.N(), f.store.EdgeList())
	if err != nil {
		return nil, err
	}
	return m.Rows2D(), nil
}
