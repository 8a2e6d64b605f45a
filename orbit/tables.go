package orbit

import "sort"

// Count is the total number of automorphism orbits across all connected
// graphlets on 2..5 vertices. It is asserted, not assumed: init() panics if
// the brute-force derivation below does not land on exactly 73.
const Count = 73

// GraphletCount is the number of connected graphlets (isomorphism classes)
// on 2..5 vertices: 1 (k=2) + 2 (k=3) + 6 (k=4) + 21 (k=5) = 30.
const GraphletCount = 30

// MinK and MaxK bound the graphlet sizes this package classifies.
const (
	MinK = 2
	MaxK = 5
)

// kTable holds the derived lookup for one vertex count k.
type kTable struct {
	k         int
	numPairs  int
	graphlet  []int   // graphlet[mask] in [0,GraphletCount), or -1 if disconnected
	vertexOrb [][]int // vertexOrb[mask][vertex] is an orbit id in [0,Count), nil if disconnected
}

var tables [MaxK + 1]*kTable

func init() {
	graphletSeq := 0
	orbitSeq := 0
	for k := MinK; k <= MaxK; k++ {
		t, gUsed, oUsed := buildTable(k, graphletSeq, orbitSeq)
		tables[k] = t
		graphletSeq += gUsed
		orbitSeq += oUsed
	}
	if graphletSeq != GraphletCount {
		panic("orbit: derived graphlet count mismatch")
	}
	if orbitSeq != Count {
		panic("orbit: derived orbit count mismatch")
	}
}

// NumPairs returns k·(k-1)/2, the number of vertex pairs (and hence bits in
// an induced-subgraph mask) for a k-vertex graphlet.
func NumPairs(k int) int {
	return k * (k - 1) / 2
}

// PairIndex returns the bit position within a k-vertex mask assigned to the
// unordered pair {a,b}. Pairs are ordered (0,1),(0,2),...,(0,k-1),(1,2),...
func PairIndex(a, b, k int) int {
	if a > b {
		a, b = b, a
	}
	idx := 0
	for i := 0; i < k; i++ {
		for j := i + 1; j < k; j++ {
			if i == a && j == b {
				return idx
			}
			idx++
		}
	}
	return -1
}

// Connected reports whether the induced subgraph on k labelled vertices
// described by mask is connected. mask==0 with k==1 is trivially connected;
// callers of this package only ever pass k>=2.
func Connected(mask uint16, k int) bool {
	if k <= 1 {
		return true
	}
	adj := make([][]int, k)
	for i := 0; i < k; i++ {
		for j := i + 1; j < k; j++ {
			if mask&(1<<uint(PairIndex(i, j, k))) != 0 {
				adj[i] = append(adj[i], j)
				adj[j] = append(adj[j], i)
			}
		}
	}
	seen := make([]bool, k)
	stack := []int{0}
	seen[0] = true
	count := 1
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, w := range adj[v] {
			if !seen[w] {
				seen[w] = true
				count++
				stack = append(stack, w)
			}
		}
	}
	return count == k
}

// relabel applies perm (old vertex -> new vertex) to mask, returning the
// mask of the relabelled graph.
func relabel(mask uint16, k int, perm []int) uint16 {
	var out uint16
	for i := 0; i < k; i++ {
		for j := i + 1; j < k; j++ {
			if mask&(1<<uint(PairIndex(i, j, k))) != 0 {
				out |= 1 << uint(PairIndex(perm[i], perm[j], k))
			}
		}
	}
	return out
}

// permutations returns every permutation of {0,...,k-1}.
func permutations(k int) [][]int {
	elems := make([]int, k)
	for i := range elems {
		elems[i] = i
	}
	var out [][]int
	var rec func(prefix, rest []int)
	rec = func(prefix, rest []int) {
		if len(rest) == 0 {
			p := make([]int, len(prefix))
			copy(p, prefix)
			out = append(out, p)
			return
		}
		for i, v := range rest {
			nextRest := make([]int, 0, len(rest)-1)
			nextRest = append(nextRest, rest[:i]...)
			nextRest = append(nextRest, rest[i+1:]...)
			rec(append(prefix, v), nextRest)
		}
	}
	rec(nil, elems)
	return out
}

// unionFind is a minimal disjoint-set structure over {0,...,n-1}.
type unionFind struct{ parent []int }

func newUnionFind(n int) *unionFind {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	return &unionFind{parent: p}
}

func (u *unionFind) find(x int) int {
	for u.parent[x] != x {
		u.parent[x] = u.parent[u.parent[x]]
		x = u.parent[x]
	}
	return x
}

func (u *unionFind) union(a, b int) {
	ra, rb := u.find(a), u.find(b)
	if ra != rb {
		u.parent[ra] = rb
	}
}

// buildTable derives the graphlet/orbit table for k vertices, assigning
// global graphlet ids starting at graphletBase and global orbit ids
// starting at orbitBase. It returns the table plus how many graphlet and
// orbit ids it consumed.
func buildTable(k, graphletBase, orbitBase int) (*kTable, int, int) {
	numPairs := NumPairs(k)
	numMasks := 1 << numPairs
	perms := permutations(k)

	canonicalOf := make([]uint16, numMasks)
	isConnected := make([]bool, numMasks)
	for m := 0; m < numMasks; m++ {
		mask := uint16(m)
		if !Connected(mask, k) {
			continue
		}
		isConnected[m] = true
		best := mask
		for _, p := range perms {
			if rm := relabel(mask, k, p); rm < best {
				best = rm
			}
		}
		canonicalOf[m] = best
	}

	// Collect unique canonical masks in ascending order.
	seen := make(map[uint16]bool)
	var canonicals []uint16
	for m := 0; m < numMasks; m++ {
		if !isConnected[m] {
			continue
		}
		c := canonicalOf[m]
		if !seen[c] {
			seen[c] = true
			canonicals = append(canonicals, c)
		}
	}
	sort.Slice(canonicals, func(i, j int) bool { return canonicals[i] < canonicals[j] })

	graphletID := make(map[uint16]int, len(canonicals))
	// orbitClassOf[c][vertex] = local class id within canonical mask c.
	orbitClassOf := make(map[uint16][]int, len(canonicals))
	// orbitGlobalBase[c] = first global orbit id used by canonical mask c's classes.
	orbitGlobalBase := make(map[uint16]int, len(canonicals))

	orbitSeq := 0
	for gi, c := range canonicals {
		graphletID[c] = graphletBase + gi

		uf := newUnionFind(k)
		for _, p := range perms {
			if relabel(c, k, p) == c {
				for v := 0; v < k; v++ {
					uf.union(v, p[v])
				}
			}
		}
		// Group vertices by root, then order classes by their minimal vertex.
		classOfRoot := make(map[int][]int)
		for v := 0; v < k; v++ {
			r := uf.find(v)
			classOfRoot[r] = append(classOfRoot[r], v)
		}
		var roots []int
		for r := range classOfRoot {
			roots = append(roots, r)
		}
		sort.Slice(roots, func(i, j int) bool {
			return minInt(classOfRoot[roots[i]]) < minInt(classOfRoot[roots[j]])
		})

		local := make([]int, k)
		orbitGlobalBase[c] = orbitBase + orbitSeq
		for classIdx, r := range roots {
			for _, v := range classOfRoot[r] {
				local[v] = classIdx
			}
			orbitSeq++
		}
		orbitClassOf[c] = local
	}

	graphlet := make([]int, numMasks)
	vertexOrb := make([][]int, numMasks)
	for m := 0; m < numMasks; m++ {
		graphlet[m] = -1
		if !isConnected[m] {
			continue
		}
		mask := uint16(m)
		c := canonicalOf[m]
		graphlet[m] = graphletID[c]

		// Find a witnessing permutation mapping mask to its canonical form c.
		var witness []int
		for _, p := range perms {
			if relabel(mask, k, p) == c {
				witness = p
				break
			}
		}
		orbits := make([]int, k)
		base := orbitGlobalBase[c]
		classes := orbitClassOf[c]
		for v := 0; v < k; v++ {
			orbits[v] = base + classes[witness[v]]
		}
		vertexOrb[m] = orbits
	}

	return &kTable{
		k:         k,
		numPairs:  numPairs,
		graphlet:  graphlet,
		vertexOrb: vertexOrb,
	}, len(canonicals), orbitSeq
}

func minInt(xs []int) int {
	m := xs[0]
	for _, x := range xs[1:] {
		if x < m {
			m = x
		}
	}
	return m
}

// OrbitOf returns the orbit id in [0,Count) of vertex focus within the
// connected induced subgraph on k vertices described by mask. Behaviour is
// undefined (and will index out of range) if the subgraph is disconnected;
// callers must check Connected first, which the delta and scratch packages
// always do before classifying.
func OrbitOf(k int, mask uint16, focus int) int {
	t := tables[k]
	return t.vertexOrb[mask][focus]
}

// GraphletOf returns the graphlet id in [0,GraphletCount) of the connected
// induced subgraph on k vertices described by mask, or -1 if disconnected.
func GraphletOf(k int, mask uint16) int {
	t := tables[k]
	return t.graphlet[mask]
}

// MaskOf builds the induced-subgraph mask for k labelled vertices 0..k-1
// given a symmetric adjacency predicate.
func MaskOf(k int, adjacent func(i, j int) bool) uint16 {
	var mask uint16
	for i := 0; i < k; i++ {
		for j := i + 1; j < k; j++ {
			if adjacent(i, j) {
				mask |= 1 << uint(PairIndex(i, j, k))
			}
		}
	}
	return mask
}
