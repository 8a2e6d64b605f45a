package orbit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/incgraph/orbit"
)

// TestDerivedCounts pins the exported GraphletCount and Count constants at
// 30 and 73. The brute-force derivation itself is checked against these
// constants by the package's init(), which panics before any test runs if
// it lands on different totals.
func TestDerivedCounts(t *testing.T) {
	assert.Equal(t, 30, orbit.GraphletCount)
	assert.Equal(t, 73, orbit.Count)
}

// TestEdgeOrbit verifies the k=2 base case: the single graphlet "edge" has
// one orbit, and both endpoints share it (the two endpoints of an edge are
// interchangeable under automorphism).
func TestEdgeOrbit(t *testing.T) {
	c, ok := orbit.Classify(2, func(i, j int) bool { return true })
	require.True(t, ok)
	assert.Equal(t, 0, c.Graphlet)
	assert.Equal(t, []int{c.Orbits[0], c.Orbits[0]}, c.Orbits)
}

// TestPathVsTriangle verifies the two k=3 graphlets are distinguished, and
// that a path's center and leaves fall into different orbits while a
// triangle's three vertices share one orbit.
func TestPathVsTriangle(t *testing.T) {
	// Path centered at vertex 0: edges (0,1) and (0,2), no edge (1,2).
	path, ok := orbit.Classify(3, func(i, j int) bool {
		return (i == 0 || j == 0) && i != j
	})
	require.True(t, ok)
	assert.NotEqual(t, path.Orbits[0], path.Orbits[1], "center must differ from leaf")
	assert.Equal(t, path.Orbits[1], path.Orbits[2], "the two leaves share an orbit")

	triangle, ok := orbit.Classify(3, func(i, j int) bool { return true })
	require.True(t, ok)
	assert.Equal(t, triangle.Orbits[0], triangle.Orbits[1])
	assert.Equal(t, triangle.Orbits[1], triangle.Orbits[2])

	assert.NotEqual(t, path.Graphlet, triangle.Graphlet)
}

// TestDisconnectedIsRejected verifies Classify reports false, never a
// fabricated orbit, for a disconnected induced subgraph.
func TestDisconnectedIsRejected(t *testing.T) {
	_, ok := orbit.Classify(3, func(i, j int) bool { return false })
	assert.False(t, ok)
}

// TestIsomorphicInstancesAgree checks that two differently-labelled
// instances of the same k=4 graphlet (a star centered on different
// vertices) are assigned identical orbit ids for corresponding roles.
func TestIsomorphicInstancesAgree(t *testing.T) {
	starAt := func(center int) func(i, j int) bool {
		return func(i, j int) bool { return i == center || j == center }
	}
	star0, ok := orbit.Classify(4, starAt(0))
	require.True(t, ok)
	star3, ok := orbit.Classify(4, starAt(3))
	require.True(t, ok)

	assert.Equal(t, star0.Graphlet, star3.Graphlet)
	// Center orbit matches across relabelling.
	assert.Equal(t, star0.Orbits[0], star3.Orbits[3])
	// Leaf orbit matches too.
	assert.Equal(t, star0.Orbits[1], star3.Orbits[0])
}

// TestAllMasksClassifiable exercises every connected mask for every k and
// ensures OrbitOf/GraphletOf never panics and always returns values within
// the documented ranges.
func TestAllMasksClassifiable(t *testing.T) {
	for k := orbit.MinK; k <= orbit.MaxK; k++ {
		numMasks := 1 << orbit.NumPairs(k)
		for m := 0; m < numMasks; m++ {
			mask := uint16(m)
			if !orbit.Connected(mask, k) {
				continue
			}
			g := orbit.GraphletOf(k, mask)
			require.GreaterOrEqual(t, g, 0)
			require.Less(t, g, orbit.GraphletCount)
			for v := 0; v < k; v++ {
				o := orbit.OrbitOf(k, mask, v)
				require.GreaterOrEqual(t, o, 0)
				require.Less(t, o, orbit.Count)
			}
		}
	}
}
