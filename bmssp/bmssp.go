package bmssp

import (
	"math"

	"github.com/duanmao/bmssp/frontier"
	"github.com/duanmao/bmssp/graph"
	"github.com/duanmao/bmssp/pivots"
	"github.com/duanmao/bmssp/state"
)

// runner bundles the read-only graph, the shared mutable DistanceState,
// the derived constants, and the observer for one ShortestPaths
// computation. A single runner is created in Run and threaded by pointer
// through the whole recursion.
type runner struct {
	g   *graph.Graph
	st  *state.State
	k   int
	t   int
	obs Observer
}

// Run invokes BMSSP at the top level, on top of a DistanceState the
// caller has already seeded via state.New, and returns the resulting
// distance vector.
func Run(g *graph.Graph, st *state.State, source int, obs Observer) []float64 {
	if obs == nil {
		obs = NoopObserver{}
	}
	params := computeParams(g.N())
	r := &runner{g: g, st: st, k: params.K, t: params.T, obs: obs}
	r.solve(params.MaxLevel, math.Inf(1), []int{source})
	return st.Snapshot()
}

// solve implements BMSSP(level, bound, s): the base case at level 0,
// the recursive case otherwise.
func (r *runner) solve(level int, bound float64, s []int) (float64, []int) {
	r.obs.OnLevelEnter(level, bound, len(s))

	if level == 0 {
		return r.baseCase(bound, s)
	}

	p, w := pivots.FindPivots(r.g, r.st, r.k, bound, s, r.obs)
	r.obs.OnPivotsFound(level, len(p), len(w))

	m := 1 << clampShift((level-1)*r.t)
	d, _ := frontier.New(m, bound) // m >= 1 always: New cannot fail here

	for _, x := range p {
		if r.st.Dist(x) < bound {
			d.Insert(x, r.st.Dist(x))
		}
	}

	bPrime := bound
	haveFinite := false
	for _, x := range p {
		if dx := r.st.Dist(x); !math.IsInf(dx, 1) && (!haveFinite || dx < bPrime) {
			bPrime = dx
			haveFinite = true
		}
	}
	if !haveFinite {
		bPrime = bound
	}

	u := make([]int, 0, r.k)
	inU := make(map[int]bool, r.k)
	uMax := r.k * (1 << clampShift(level*r.t))

	for len(u) < uMax && d.Len() > 0 {
		items, bi := d.Pull()
		if len(items) == 0 {
			break
		}
		si := make([]int, len(items))
		for i, it := range items {
			si[i] = it.Key
		}

		biPrime, ui := r.solve(level-1, bi, si)
		bPrime = biPrime

		for _, x := range ui {
			if !inU[x] {
				inU[x] = true
				u = append(u, x)
			}
		}

		var batch []frontier.Item
		for _, x := range ui {
			for _, e := range r.g.OutEdges(x) {
				old := r.st.Dist(e.To)
				if !r.st.Relax(x, e.To, e.Weight) {
					continue
				}
				r.obs.OnRelax(x, e.To, old, r.st.Dist(e.To))

				nd := r.st.Dist(e.To)
				switch {
				case nd >= bi && nd < bound:
					d.Insert(e.To, nd)
				case nd >= biPrime && nd < bi:
					batch = append(batch, frontier.Item{Key: e.To, Value: nd})
				}
				// nd < biPrime: already settled at a deeper level; nothing to do.
			}
		}
		for _, x := range si {
			if dx := r.st.Dist(x); dx >= biPrime && dx < bi {
				batch = append(batch, frontier.Item{Key: x, Value: dx})
			}
		}
		d.BatchPrepend(batch)
	}

	finalBPrime := bound
	if d.Len() > 0 {
		finalBPrime = bPrime
	}
	for _, x := range w {
		if !inU[x] && r.st.Dist(x) < finalBPrime {
			inU[x] = true
			u = append(u, x)
		}
	}

	return finalBPrime, u
}

// clampShift bounds a bit-shift exponent to a range that cannot overflow
// an int, for the block-size and workload-cap powers of two in spec
// §4.5/§4.1. Realistic vertex counts never approach this clamp; it exists
// only so a pathological maxLevel/t combination fails safe instead of
// overflowing.
func clampShift(e int) int {
	if e < 0 {
		return 0
	}
	if e > 30 {
		return 30
	}
	return e
}
