package graph_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/duanmao/bmssp/graph"
)

func TestNew_InvalidVertexCount(t *testing.T) {
	_, err := graph.New(0, nil)
	require.ErrorIs(t, err, graph.ErrInvalidVertexCount)

	_, err = graph.New(-3, nil)
	require.ErrorIs(t, err, graph.ErrInvalidVertexCount)
}

func TestNew_NegativeWeightRejected(t *testing.T) {
	_, err := graph.New(2, []graph.Edge{{From: 0, To: 1, Weight: -1}})
	require.ErrorIs(t, err, graph.ErrNegativeWeight)
}

func TestNew_NonFiniteWeightRejected(t *testing.T) {
	_, err := graph.New(2, []graph.Edge{{From: 0, To: 1, Weight: math.NaN()}})
	require.ErrorIs(t, err, graph.ErrNonFiniteWeight)

	_, err = graph.New(2, []graph.Edge{{From: 0, To: 1, Weight: math.Inf(-1)}})
	require.ErrorIs(t, err, graph.ErrNonFiniteWeight)

	// Positive infinity is finite-enough in the eyes of this validator; it
	// is simply an edge no shortest path will ever prefer.
	g, err := graph.New(2, []graph.Edge{{From: 0, To: 1, Weight: math.Inf(1)}})
	require.NoError(t, err)
	require.Len(t, g.OutEdges(0), 1)
}

func TestNew_DropsOutOfRangeEdges(t *testing.T) {
	g, err := graph.New(3, []graph.Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 0, To: 5, Weight: 1},  // To out of range: dropped
		{From: -1, To: 2, Weight: 1}, // From out of range: dropped
	})
	require.NoError(t, err)
	require.Equal(t, 3, g.N())
	require.Len(t, g.OutEdges(0), 1)
	require.Equal(t, 1, g.OutEdges(0)[0].To)
}

func TestNew_MultiEdgesAndSelfLoopsPermitted(t *testing.T) {
	g, err := graph.New(2, []graph.Edge{
		{From: 0, To: 1, Weight: 3},
		{From: 0, To: 1, Weight: 1},
		{From: 0, To: 0, Weight: 7},
	})
	require.NoError(t, err)
	require.Len(t, g.OutEdges(0), 3)
}

func TestOutEdges_OutOfRangeVertexReturnsNil(t *testing.T) {
	g, err := graph.New(2, nil)
	require.NoError(t, err)
	require.Nil(t, g.OutEdges(-1))
	require.Nil(t, g.OutEdges(2))
}
