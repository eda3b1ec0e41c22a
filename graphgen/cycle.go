package graphgen

import (
	"math/rand"

	"github.com/duanmao/bmssp/graph"
)

// Cycle builds a directed ring 0 -> 1 -> ... -> n-1 -> 0.
func Cycle(n int, opts ...Option) (int, []graph.Edge, error) {
	if n < 1 {
		return 0, nil, ErrTooFewVertices
	}
	c := newConfig(opts...)
	rng := rand.New(rand.NewSource(c.seed))

	edges := make([]graph.Edge, 0, n)
	for i := 0; i < n; i++ {
		edges = append(edges, graph.Edge{From: i, To: (i + 1) % n, Weight: c.weightFn(rng)})
	}
	return n, edges, nil
}
