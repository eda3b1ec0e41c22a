package graphgen

import (
	"math/rand"

	"github.com/duanmao/bmssp/graph"
)

// RandomDense builds a directed Erdős–Rényi digraph with edge
// probability p per ordered pair, grounded the same way RandomSparse is
// but exposing p directly: dense property-test instances want m ≈ n²/2,
// which p=0.5 gives over the n(n-1) ordered pairs.
func RandomDense(n int, p float64, opts ...Option) (int, []graph.Edge, error) {
	if n < 1 {
		return 0, nil, ErrTooFewVertices
	}
	if p < 0 || p > 1 {
		return 0, nil, ErrInvalidProbability
	}
	c := newConfig(opts...)
	rng := rand.New(rand.NewSource(c.seed))

	edges := make([]graph.Edge, 0, int(float64(n*(n-1))*p))
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
