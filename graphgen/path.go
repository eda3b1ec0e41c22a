package graphgen

import (
	"math/rand"

	"github.com/duanmao/bmssp/graph"
)

// Path builds a directed path 0 -> 1 -> ... -> n-1, one edge per
// consecutive pair.
func Path(n int, opts ...Option) (int, []graph.Edge, error) {
	if n < 1 {
		return 0, nil, ErrTooFewVertices
	}
	c := newConfig(opts...)
	rng := rand.New(rand.NewSource(c.seed))

	edges := make([]graph.Edge, 0, n-1)
	for i := 0; i+1 < n; i++ {
		edges = append(edges, graph.Edge{From: i, To: i + 1, Weight: c.weightFn(rng)})
	}
	return n, edges, nil
}
