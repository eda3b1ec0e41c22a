package pivots

import (
	"github.com/duanmao/bmssp/graph"
	"github.com/duanmao/bmssp/state"
)

// RelaxObserver is notified whenever FindPivots successfully relaxes an
// edge. It is purely an observability seam, never consulted for control
// flow.
type RelaxObserver interface {
	OnRelax(u, v int, oldDist, newDist float64)
}

// NoopRelaxObserver discards every notification. It is the zero-cost
// default when a caller passes nil.
type NoopRelaxObserver struct{}

func (NoopRelaxObserver) OnRelax(u, v int, oldDist, newDist float64) {}

// FindPivots runs k-step bounded relaxation against bound B and
// non-empty source set S (every x ∈ S must already have dist[x] < B). It
// returns a pivot set P ⊆ S and a working set W ⊇ S with
// W ⊆ {v : dist[v] < B}.
//
// k controls both the number of bounded-relaxation layers and the
// early-exit threshold k·|S|, and the subtree-size cutoff for pivot
// selection — all three are the same derived constant.
func FindPivots(g *graph.Graph, st *state.State, k int, bound float64, s []int, obs RelaxObserver) (pivotsOut, working []int) {
	if obs == nil {
		obs = NoopRelaxObserver{}
	}

	n := g.N()
	inW := make([]bool, n)
	w := make([]int, 0, len(s)*k+len(s))
	w = append(w, s...)
	for _, x := range s {
		inW[x] = true
	}

	limit := k * len(s)
	layer := s
	for i := 1; i <= k && len(layer) > 0; i++ {
		var next []int
		for _, u := range layer {
			for _, e := range g.OutEdges(u) {
				old := st.Dist(e.To)
				if !st.Relax(u, e.To, e.Weight) {
					continue
				}
				obs.OnRelax(u, e.To, old, st.Dist(e.To))
				if st.Dist(e.To) < bound && !inW[e.To] {
					inW[e.To] = true
					w = append(w, e.To)
					next = append(next, e.To)
				}
			}
		}
		if len(w) > limit {
			pivotsOut = append([]int{}, s...)
			return pivotsOut, w
		}
		layer = next
	}

	// Build the forest's children index from the current predecessor
	// array, restricted to parents that are themselves in W.
	children := make(map[int][]int, len(w))
	for _, v := range w {
		p := st.Pred(v)
		if p != v && inW[p] {
			children[p] = append(children[p], v)
		}
	}

	memo := make(map[int]int, len(w))
	var subtreeSize func(int) int
	subtreeSize = func(x int) int {
		if sz, ok := memo[x]; ok {
			return sz
		}
		memo[x] = 1 // breaks any accidental cycle before it can recurse forever
		total := 1
		for _, c := range children[x] {
			total += subtreeSize(c)
		}
		memo[x] = total
		return total
	}

	for _, x := range s {
		p := st.Pred(x)
		isRoot := p == x || !inW[p]
		if isRoot && subtreeSize(x) >= k {
			pivotsOut = append(pivotsOut, x)
		}
	}
	if len(pivotsOut) == 0 {
		pivotsOut = append([]int{}, s...)
	}
	return pivotsOut, w
}
