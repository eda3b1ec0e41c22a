package frontier

import "container/heap"

// Item is one (vertex, value) pair as returned by Pull or accepted by
// BatchPrepend.
type Item struct {
	Key   int
	Value float64
}

// entry is the heap's internal representation. Entries go stale when a
// vertex's value is superseded by a later Insert; stale entries are
// discarded lazily, the first time they would surface at the top of the
// heap, rather than being removed eagerly.
type entry struct {
	vertex int
	value  float64
}

type entryHeap []entry

func (h entryHeap) Len() int            { return len(h) }
func (h entryHeap) Less(i, j int) bool  { return h[i].value < h[j].value }
func (h entryHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *entryHeap) Push(x interface{}) { *h = append(*h, x.(entry)) }
func (h *entryHeap) Pop() interface{} {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]
	return e
}

// Structure is a bounded partial sorting structure: a multi-set of
// (key=vertex, value=real) pairs under upper bound B and block size M, at
// most one value per key, all stored values strictly less than B.
type Structure struct {
	bound   float64
	m       int
	valueOf map[int]float64
	pq      entryHeap
}

// New constructs a Structure with block size m (the caller's Pull batch
// granularity) and upper bound B.
func New(m int, bound float64) (*Structure, error) {
	if m <= 0 {
		return nil, ErrInvalidBlockSize
	}
	return &Structure{
		bound:   bound,
		m:       m,
		valueOf: make(map[int]float64),
	}, nil
}

// Len reports the number of distinct vertices currently stored.
func (s *Structure) Len() int { return len(s.valueOf) }

// Insert stores (v, x), subject to: values >= the upper bound are
// rejected outright; if v already has a stored value x0 <= x, the call is
// a no-op; otherwise the old pair (if any) is replaced by (v, x).
func (s *Structure) Insert(v int, x float64) {
	if x >= s.bound {
		return
	}
	if cur, ok := s.valueOf[v]; ok && cur <= x {
		return
	}
	s.valueOf[v] = x
	heap.Push(&s.pq, entry{vertex: v, value: x})
}

// BatchPrepend inserts every item, under the caller's guarantee that each
// value is strictly less than the structure's current minimum stored
// value. This implementation does not exploit that precondition for extra
// speed (see package doc); it applies ordinary Insert semantics to each
// item, which remains correct whether or not the precondition holds.
func (s *Structure) BatchPrepend(items []Item) {
	for _, it := range items {
		s.Insert(it.Key, it.Value)
	}
}

// Pull extracts up to m distinct vertices with the smallest stored values,
// removing them from the structure, and returns them together with B*: the
// smallest value still stored afterward, or the structure's upper bound B
// if it is now empty.
func (s *Structure) Pull() ([]Item, float64) {
	out := make([]Item, 0, s.m)
	for len(out) < s.m {
		e, ok := s.popValid()
		if !ok {
			break
		}
		delete(s.valueOf, e.vertex)
		out = append(out, Item{Key: e.vertex, Value: e.value})
	}

	bStar := s.bound
	if v, ok := s.peekValid(); ok {
		bStar = v
	}
	return out, bStar
}

// popValid pops and returns the next non-stale heap entry, discarding any
// stale entries (vertices whose stored value has since changed) it
// encounters along the way.
func (s *Structure) popValid() (entry, bool) {
	for s.pq.Len() > 0 {
		e := heap.Pop(&s.pq).(entry)
		if cur, ok := s.valueOf[e.vertex]; ok && cur == e.value {
			return e, true
		}
	}
	return entry{}, false
}

// peekValid returns the smallest still-current value without removing it,
// permanently discarding any stale entries above it.
func (s *Structure) peekValid() (float64, bool) {
	for s.pq.Len() > 0 {
		top := s.pq[0]
		if cur, ok := s.valueOf[top.vertex]; ok && cur == top.value {
			return top.value, true
		}
		heap.Pop(&s.pq)
	}
	return 0, false
}
