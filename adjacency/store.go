package adjacency

import "sort"

// Store is a mutable undirected simple graph over node ids [0,N).
// N is fixed for the lifetime of a Store; it is never resized.
type Store struct {
	n   int
	adj []map[int]struct{}

	sorted   [][]int // sorted[i] caches the ascending neighbour list of i
	sortedOK []bool  // sortedOK[i] is false once adj[i] has been mutated
}

// NewStore allocates an empty Store over n >= 1 nodes.
// Complexity: O(n).
func NewStore(n int) (*Store, error) {
	if n < 1 {
		return nil, ErrInvalidNodeCount
	}
	s := &Store{
		n:        n,
		adj:      make([]map[int]struct{}, n),
		sorted:   make([][]int, n),
		sortedOK: make([]bool, n),
	}
	for i := range s.adj {
		s.adj[i] = make(map[int]struct{})
	}
	return s, nil
}

// N returns the fixed node count.
func (s *Store) N() int { return s.n }

func (s *Store) validID(i int) bool { return i >= 0 && i < s.n }

// Contains reports whether {i,j} is an edge. i==j always returns false.
// Complexity: O(1).
func (s *Store) Contains(i, j int) (bool, error) {
	if !s.validID(i) || !s.validID(j) {
		return false, ErrInvalidNodeID
	}
	if i == j {
		return false, nil
	}
	_, ok := s.adj[i][j]
	return ok, nil
}

// Degree returns |adj[i]|.
// Complexity: O(1).
func (s *Store) Degree(i int) (int, error) {
	if !s.validID(i) {
		return 0, ErrInvalidNodeID
	}
	return len(s.adj[i]), nil
}

// Neighbours returns the ascending, freshly-allocated neighbour list of i.
// Complexity: O(deg(i)) if the cache is warm, O(deg(i) log deg(i)) on the
// first call after a mutation touching i.
func (s *Store) Neighbours(i int) ([]int, error) {
	if !s.validID(i) {
		return nil, ErrInvalidNodeID
	}
	if !s.sortedOK[i] {
		nbrs := make([]int, 0, len(s.adj[i]))
		for v := range s.adj[i] {
			nbrs = append(nbrs, v)
		}
		sort.Ints(nbrs)
		s.sorted[i] = nbrs
		s.sortedOK[i] = true
	}
	out := make([]int, len(s.sorted[i]))
	copy(out, s.sorted[i])
	return out, nil
}

func (s *Store) invalidate(i int) { s.sortedOK[i] = false }

// Flip toggles {i,j}: inserts it if absent, removes it if present.
// Returns ErrSelfLoop on i==j, ErrInvalidNodeID on an out-of-range id.
// Complexity: O(1).
func (s *Store) Flip(i, j int) error {
	if !s.validID(i) || !s.validID(j) {
		return ErrInvalidNodeID
	}
	if i == j {
		return ErrSelfLoop
	}
	if _, present := s.adj[i][j]; present {
		delete(s.adj[i], j)
		delete(s.adj[j], i)
	} else {
		s.adj[i][j] = struct{}{}
		s.adj[j][i] = struct{}{}
	}
	s.invalidate(i)
	s.invalidate(j)
	return nil
}

// Reset empties every adjacency set, preserving N.
// Complexity: O(N + E).
func (s *Store) Reset() {
	for i := range s.adj {
		s.adj[i] = make(map[int]struct{})
		s.invalidate(i)
	}
}

// SetEdges resets the store, then inserts every edge in edges. Each pair
// must reference valid, distinct node ids; a repeated unordered pair fails
// with ErrDuplicateEdge. On any error the store is left reset (empty), not
// in its pre-call state, matching the documented "reset then load"
// semantics.
// Complexity: O(N + E).
func (s *Store) SetEdges(edges [][2]int) error {
	s.Reset()
	seen := make(map[[2]int]struct{}, len(edges))
	for _, e := range edges {
		i, j := e[0], e[1]
		if !s.validID(i) || !s.validID(j) {
			s.Reset()
			return ErrInvalidNodeID
		}
		if i == j {
			s.Reset()
			return ErrSelfLoop
		}
		key := e
		if i > j {
			key = [2]int{j, i}
		}
		if _, dup := seen[key]; dup {
			s.Reset()
			return ErrDuplicateEdge
		}
		seen[key] = struct{}{}
		s.adj[i][j] = struct{}{}
		s.adj[j][i] = struct{}{}
		s.invalidate(i)
		s.invalidate(j)
	}
	return nil
}

// CommonNeighbours returns the ascending, deduplicated set adj[i] ∩ adj[j],
// iterating the smaller of the two neighbour sets so the cost is bounded by
// min(deg(i), deg(j)) rather than the larger degree.
// Complexity: O(min(deg(i),deg(j))).
func (s *Store) CommonNeighbours(i, j int) ([]int, error) {
	if !s.validID(i) || !s.validID(j) {
		return nil, ErrInvalidNodeID
	}
	small, large := s.adj[i], s.adj[j]
	if len(large) < len(small) {
		small, large = large, small
	}
	var out []int
	for v := range small {
		if _, ok := large[v]; ok {
			out = append(out, v)
		}
	}
	sort.Ints(out)
	return out, nil
}

// EdgeList returns every edge as {min,max}, lexicographically sorted, each
// appearing exactly once.
// Complexity: O(N + E log E).
func (s *Store) EdgeList() [][2]int {
	var out [][2]int
	for i := 0; i < s.n; i++ {
		nbrs, _ := s.Neighbours(i)
		for _, j := range nbrs {
			if j > i {
				out = append(out, [2]int{i, j})
			}
		}
	}
	return out
}
