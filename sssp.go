package bmssp

import (
	"github.com/duanmao/bmssp/bmssp"
	"github.com/duanmao/bmssp/graph"
	"github.com/duanmao/bmssp/state"
)

// ShortestPaths computes single-source shortest distances over a
// directed, non-negative-weighted graph of n vertices (ids 0..n-1)
// described by edges, using BMSSP. It builds the Graph, seeds a
// DistanceState at source, hands both to the recursion, and returns the
// resulting distance vector.
//
// dist[source] is always 0. A vertex unreachable from source has
// dist[v] == math.Inf(1). Every validation happens before any state is
// allocated, so a returned error leaves nothing partially built.
//
// obs may be nil; pass one only to observe the recursion's internal
// relax/pivot events for instrumentation or testing, never to affect the
// result.
func ShortestPaths(n int, edges []graph.Edge, source int, obs bmssp.Observer) ([]float64, error) {
	if n <= 0 {
		return nil, ErrInvalidVertexCount
	}
	if source < 0 || source >= n {
		return nil, ErrSourceOutOfRange
	}

	g, err := graph.New(n, edges)
	if err != nil {
		return nil, err
	}

	st := state.New(n, source)
	return bmssp.Run(g, st, source, obs), nil
}
