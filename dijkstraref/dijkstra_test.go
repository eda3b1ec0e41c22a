package dijkstraref_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/duanmao/bmssp/dijkstraref"
	"github.com/duanmao/bmssp/graph"
)

func TestShortestPaths_InvalidVertexCount(t *testing.T) {
	_, err := dijkstraref.ShortestPaths(0, nil, 0)
	require.ErrorIs(t, err, dijkstraref.ErrInvalidVertexCount)
}

func TestShortestPaths_SourceOutOfRange(t *testing.T) {
	_, err := dijkstraref.ShortestPaths(3, nil, 5)
	require.ErrorIs(t, err, dijkstraref.ErrSourceOutOfRange)
}

func TestShortestPaths_Diamond(t *testing.T) {
	edges := []graph.Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 0, To: 2, Weight: 4},
		{From: 1, To: 2, Weight: 2},
		{From: 1, To: 3, Weight: 5},
		{From: 2, To: 3, Weight: 1},
		{From: 3, To: 4, Weight: 3},
	}
	got, err := dijkstraref.ShortestPaths(5, edges, 0)
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{0, 1, 3, 4, 7}, got, 1e-9)
}
