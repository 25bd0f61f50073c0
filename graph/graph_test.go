package graph_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Achrafbennanizia/Dijkstra/graph"
)

func TestNewRejectsBadCount(t *testing.T) {
	for _, n := range []int{0, -1} {
		_, err := graph.New(n)
		require.ErrorIs(t, err, graph.ErrBadNodeCount)
	}
}

func TestAddEdgeValidation(t *testing.T) {
	g, err := graph.New(3)
	require.NoError(t, err)

	require.ErrorIs(t, g.AddEdge(0, 1, 1), graph.ErrBadNode)
	require.ErrorIs(t, g.AddEdge(1, 4, 1), graph.ErrBadNode)
	require.ErrorIs(t, g.AddEdge(4, 1, 1), graph.ErrBadNode)
	require.ErrorIs(t, g.AddEdge(1, 2, -1), graph.ErrNegativeWeight)
	require.NoError(t, g.AddEdge(1, 2, 0)) // zero weight is legal

	require.Equal(t, uint64(1), g.EdgeCount())
}

func TestAddEdgeWeightBound(t *testing.T) {
	g, err := graph.New(3)
	require.NoError(t, err)

	require.NoError(t, g.AddEdge(1, 2, graph.MaxWeight))
	require.ErrorIs(t, g.AddEdge(1, 2, graph.MaxWeight+1), graph.ErrWeightTooLarge)
	require.ErrorIs(t, g.AddEdge(2, 3, math.MaxInt64-2), graph.ErrWeightTooLarge)

	require.Equal(t, uint64(1), g.EdgeCount())
}

func TestDegreesAndCounts(t *testing.T) {
	g, err := graph.New(3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(1, 2, 1))
	require.NoError(t, g.AddEdge(1, 3, 1))
	require.NoError(t, g.AddEdge(1, 2, 2)) // parallel edge counts separately
	require.NoError(t, g.AddEdge(2, 3, 1))

	require.Equal(t, 3, g.NodeCount())
	require.Equal(t, uint64(4), g.EdgeCount())
	require.Equal(t, 3, g.OutDegree(1))
	require.Equal(t, 1, g.OutDegree(2))
	require.Equal(t, 0, g.OutDegree(3))
	require.Equal(t, 3, g.MaxOutDegree())

	require.True(t, g.Valid(1))
	require.True(t, g.Valid(3))
	require.False(t, g.Valid(0))
	require.False(t, g.Valid(4))
}
