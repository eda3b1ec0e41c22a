package dijkstraref

import (
	"container/heap"
	"errors"
	"math"

	"github.com/duanmao/bmssp/graph"
)

// Sentinel errors, matching the ones package bmssp's root ShortestPaths
// returns, so tests can compare error behavior directly.
var (
	ErrInvalidVertexCount = errors.New("dijkstraref: vertex count must be positive")
	ErrSourceOutOfRange   = errors.New("dijkstraref: source out of range")
)

// ShortestPaths computes exact single-source shortest distances with
// textbook Dijkstra over non-negative edge weights. It takes the same
// (n, edges, source) arguments as bmssp.ShortestPaths, without its trailing
// observer parameter, and returns a distance vector of the same shape, so
// the two can be compared vertex-for-vertex in tests.
func ShortestPaths(n int, edges []graph.Edge, source int) ([]float64, error) {
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

	dist := make([]float64, n)
	visited := make([]bool, n)
	for v := range dist {
		dist[v] = math.Inf(1)
	}
	dist[source] = 0

	pq := make(nodePQ, 0, n)
	heap.Init(&pq)
	heap.Push(&pq, &nodeItem{id: source, dist: 0})

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*nodeItem)
		u, d := item.id, item.dist

		if visited[u] {
			continue
		}
		if d > dist[u] {
			continue // stale entry superseded by a better one already popped
		}
		visited[u] = true

		for _, e := range g.OutEdges(u) {
			nd := d + e.Weight
			if nd < dist[e.To] {
				dist[e.To] = nd
				heap.Push(&pq, &nodeItem{id: e.To, dist: nd})
			}
		}
	}

	return dist, nil
}

// nodeItem and nodePQ implement container/heap.Interface for a
// lazy-decrease-key min-heap ordered by distance.
type nodeItem struct {
	id   int
	dist float64
}

type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
