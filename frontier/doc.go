// Package frontier implements a bounded partial sorting structure: a
// multi-set of (vertex, value) pairs bounded above by B, supporting
// Insert, BatchPrepend, and Pull.
//
// This is the simplest correct construction that satisfies the
// interface: an ordered structure keyed by value plus a side table from
// vertex to its current value, giving O(log n) Insert and amortized
// O(log n) Pull — sufficient for correctness, though short of an
// amortized-O(1) block-structure bound. The ordering is realized with
// container/heap and lazy deletion: push a new entry instead of
// decreasing a key in place, and discard stale entries the first time
// they would surface at the top of the heap.
package frontier
