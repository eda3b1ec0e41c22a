package bmssp

import "container/heap"

// pqItem is one pending vertex in the base case's priority queue, keyed by
// the lexicographic order (dist, pathLen, vertex). Unlike package state's
// Less, whose third key is the predecessor, the last tie-break here is the
// vertex id itself.
type pqItem struct {
	vertex  int
	dist    float64
	pathLen int
}

type pqHeap []pqItem

func (h pqHeap) Len() int      { return len(h) }
func (h pqHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h pqHeap) Less(i, j int) bool {
	a, b := h[i], h[j]
	if a.dist != b.dist {
		return a.dist < b.dist
	}
	if a.pathLen != b.pathLen {
		return a.pathLen < b.pathLen
	}
	return a.vertex < b.vertex
}
func (h *pqHeap) Push(x interface{}) { *h = append(*h, x.(pqItem)) }
func (h *pqHeap) Pop() interface{} {
	old := *h
	n := len(old)
	it := old[n-1]
	*h = old[:n-1]
	return it
}

// baseCase runs the bounded mini-Dijkstra base case of the recursion: a
// lazy-decrease-key priority queue seeded from every vertex in s, settling
// vertices one at a time within bound and stopping at k+1 settled, heap
// exhaustion, or a next key at or above bound.
func (r *runner) baseCase(bound float64, s []int) (float64, []int) {
	pq := make(pqHeap, 0, len(s))
	for _, x := range s {
		pq = append(pq, pqItem{vertex: x, dist: r.st.Dist(x), pathLen: r.st.PathLen(x)})
	}
	heap.Init(&pq)

	limit := r.k + 1
	settled := make([]bool, r.g.N())
	order := make([]int, 0, limit)

	for pq.Len() > 0 && len(order) < limit {
		top := pq[0]
		if top.dist > r.st.Dist(top.vertex) {
			heap.Pop(&pq) // stale: a better value was recorded since this was pushed
			continue
		}
		if top.dist >= bound {
			break
		}

		item := heap.Pop(&pq).(pqItem)
		if settled[item.vertex] {
			continue
		}
		settled[item.vertex] = true
		order = append(order, item.vertex)

		for _, e := range r.g.OutEdges(item.vertex) {
			old := r.st.Dist(e.To)
			if !r.st.Relax(item.vertex, e.To, e.Weight) {
				continue
			}
			r.obs.OnRelax(item.vertex, e.To, old, r.st.Dist(e.To))
			if r.st.Dist(e.To) < bound {
				heap.Push(&pq, pqItem{vertex: e.To, dist: r.st.Dist(e.To), pathLen: r.st.PathLen(e.To)})
			}
		}
	}

	if len(order) <= r.k {
		return bound, order
	}

	dStar := order[0]
	for _, v := range order {
		if r.st.Dist(v) > r.st.Dist(dStar) {
			dStar = v
		}
	}
	boundStar := r.st.Dist(dStar)

	filtered := make([]int, 0, len(order))
	for _, v := range order {
		if r.st.Dist(v) < boundStar {
			filtered = append(filtered, v)
		}
	}
	return boundStar, filtered
}
