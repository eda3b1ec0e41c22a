package graphgen

import (
	"math/rand"

	"github.com/duanmao/bmssp/graph"
)

// RandomSparse builds a directed Erdős–Rényi digraph over n vertices,
// trialing each of the n(n-1) ordered pairs independently with the
// probability needed to land at roughly targetEdges expected edges, for
// sparse property-test instances with m ≈ 3n.
func RandomSparse(n int, targetEdges int, opts ...Option) (int, []graph.Edge, error) {
	if n < 1 {
		return 0, nil, ErrTooFewVertices
	}
	c := newConfig(opts...)
	rng := rand.New(rand.NewSource(c.seed))

	pairs := float64(n) * float64(n-1)
	p := 0.0
	if pairs > 0 {
		p = float64(targetEdges) / pairs
	}
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}

	edges := make([]graph.Edge, 0, targetEdges)
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if u == v {
				continue
			}
			if rng.Float64() < p {
				edges = append(edges, graph.Edge{From: u, To: v, Weight: c.weightFn(rng)})
			}
		}
	}
	return n, edges, nil
}
