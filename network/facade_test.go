package network_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/incgraph/network"
	"github.com/katalvlaran/incgraph/scratch"
)

func TestNewRejectsBadCount(t *testing.T) {
	_, err := network.New(0)
	assert.ErrorIs(t, err, network.ErrInvalidNodeCount)
}

func TestFlipRejectsOutOfRangeAndSelf(t *testing.T) {
	f, err := network.New(3)
	require.NoError(t, err)

	assert.ErrorIs(t, f.Flip(0, 1), network.ErrInvalidNodeID)
	assert.ErrorIs(t, f.Flip(1, 1), network.ErrInvalidNodeID)
	assert.ErrorIs(t, f.Flip(1, 4), network.ErrInvalidNodeID)
}

// TestOneBasedRoundTrip mirrors scenario S1: constructing over 1-based ids,
// toggling an edge, and reading it back through Contains/GetNeighbours.
func TestOneBasedRoundTrip(t *testing.T) {
	f, err := network.New(4)
	require.NoError(t, err)

	require.NoError(t, f.Flip(1, 2))
	require.NoError(t, f.Flip(1, 3))

	ok, err := f.Contains(1, 2)
	require.NoError(t, err)
	assert.True(t, ok)

	nbrs, err := f.GetNeighbours(1)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, nbrs)

	assert.Equal(t, [][2]int{{1, 2}, {1, 3}}, f.NetworkAsMatrix())
}

func TestSetNetworkRejectsInvalidInputAndResets(t *testing.T) {
	f, err := network.New(3)
	require.NoError(t, err)
	require.NoError(t, f.Flip(1, 2))

	err = f.SetNetwork([][2]int{{1, 4}})
	assert.ErrorIs(t, err, network.ErrInvalidInput)

	ok, err := f.Contains(1, 2)
	require.NoError(t, err)
	assert.False(t, ok, "a failed SetNetwork must leave the graph reset, not the pre-call state")
}

func TestNewFromEdgesInfersNodeCount(t *testing.T) {
	f, err := network.NewFromEdges([][2]int{{1, 2}, {2, 5}})
	require.NoError(t, err)
	assert.Equal(t, 5, f.N())
}

// TestCalculateDeltaAgreesWithScratch mirrors scenario S2/S3: running
// CalculateDelta before a toggle, applying the toggle, and checking the
// predicted before+add-rem state against an independent full recount.
func TestCalculateDeltaAgreesWithScratch(t *testing.T) {
	f, err := network.NewWithEdges(5, [][2]int{{1, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 1}})
	require.NoError(t, err)

	before, err := f.CalculateOrbitCounts()
	require.NoError(t, err)

	add, rem, err := f.CalculateDelta(1, 3)
	require.NoError(t, err)

	require.NoError(t, f.Flip(1, 3))
	after, err := f.CalculateOrbitCounts()
	require.NoError(t, err)

	for i := 0; i < f.N(); i++ {
		for o := range before[i] {
			predicted := before[i][o] + add[i][o] - rem[i][o]
			assert.Equalf(t, after[i][o], predicted, "node %d orbit %d", i, o)
		}
	}
}

func TestCalculateDeltaRejectsSameEndpoint(t *testing.T) {
	f, err := network.New(3)
	require.NoError(t, err)
	_, _, err = f.CalculateDelta(1, 1)
	assert.ErrorIs(t, err, network.ErrInvalidNodeID)
}

// TestCalculateOrbitCountsMatchesScratchDirectly cross-checks the facade's
// delegation against calling scratch.Count directly on the same edge list.
func TestCalculateOrbitCountsMatchesScratchDirectly(t *testing.T) {
	edges := [][2]int{{1, 2}, {1, 3}, {2, 3}, {3, 4}}
	f, err := network.NewFromEdges(edges)
	require.NoError(t, err)

	got, err := f.CalculateOrbitCounts()
	require.NoError(t, err)

	zero := make([][2]int, len(edges))
	for i, e := range edges {
		zero[i] = [2]int{e[0] - 1, e[1] - 1}
	}
	want, err := scratch.Count(f.N(), zero)
	require.NoError(t, err)

	assert.Equal(t, want.Rows2D(), got)
}
