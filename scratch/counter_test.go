package scratch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/incgraph/orbit"
	"github.com/katalvlaran/incgraph/orbitmat"
	"github.com/katalvlaran/incgraph/scratch"
)

func TestCountRejectsBadNodeCount(t *testing.T) {
	_, err := scratch.Count(0, nil)
	assert.ErrorIs(t, err, scratch.ErrInvalidNodeCount)
}

func TestCountRejectsSelfLoop(t *testing.T) {
	_, err := scratch.Count(3, [][2]int{{0, 0}})
	assert.ErrorIs(t, err, scratch.ErrInvalidEdge)
}

// TestCountTriangle checks the k=2 and k=3 columns for a bare triangle:
// every vertex gets one "edge" credit per incident edge (2 each) and one
// "triangle" credit.
func TestCountTriangle(t *testing.T) {
	m, err := scratch.Count(3, [][2]int{{0, 1}, {1, 2}, {0, 2}})
	require.NoError(t, err)

	edgeOrbit, ok := orbit.Classify(2, func(i, j int) bool { return true })
	require.True(t, ok)
	triOrbit, ok := orbit.Classify(3, func(i, j int) bool { return true })
	require.True(t, ok)

	for v := 0; v < 3; v++ {
		got, err := m.At(v, edgeOrbit.Orbits[0])
		require.NoError(t, err)
		assert.Equal(t, int64(2), got, "vertex %d edge-orbit count", v)

		got, err = m.At(v, triOrbit.Orbits[v%len(triOrbit.Orbits)])
		require.NoError(t, err)
		assert.Equal(t, int64(1), got, "vertex %d triangle-orbit count", v)
	}
}

// TestCountIsolatedVertexIsZero checks that a vertex with no incident edges
// contributes nothing to any orbit column.
func TestCountIsolatedVertexIsZero(t *testing.T) {
	m, err := scratch.Count(4, [][2]int{{0, 1}, {1, 2}})
	require.NoError(t, err)

	for o := 0; o < orbit.Count; o++ {
		v, err := m.At(3, o)
		require.NoError(t, err)
		assert.Zerof(t, v, "isolated vertex 3, orbit %d", o)
	}
}

func TestValidateRejectsShapeMismatch(t *testing.T) {
	m, err := orbitmat.NewDense(2, orbit.Count-1)
	require.NoError(t, err)
	err = scratch.Validate(2, nil, m)
	assert.ErrorIs(t, err, scratch.ErrShapeMismatch)
}

func TestValidateAgreesWithItself(t *testing.T) {
	edges := [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}}
	m, err := scratch.Count(4, edges)
	require.NoError(t, err)
	assert.NoError(t, scratch.Validate(4, edges, m))
}

func TestValidateDetectsDrift(t *testing.T) {
	edges := [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}}
	m, err := scratch.Count(4, edges)
	require.NoError(t, err)
	require.NoError(t, m.Incr(0, 0, 1)) // corrupt one cell

	err = scratch.Validate(4, edges, m)
	assert.ErrorIs(t, err, scratch.ErrMismatch)
}
