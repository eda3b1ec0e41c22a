// Package state holds the DistanceState shared by every level of the
// BMSSP recursion: the best-known distance, predecessor, and path length
// for each vertex, plus the Relax primitive that is the only way any of
// the three are ever mutated.
//
// DistanceState is exclusive, owned, mutable state for a single
// ShortestPaths computation: there is exactly one per run, mutated
// in-place by Relax calls originating anywhere in the recursion (FindPivots,
// BMSSP's recursive case, and the base-case mini-Dijkstra all share it).
// Because execution is single-threaded and cooperative, no locking is
// required — see the Relax doc comment for the monotonicity argument this
// relies on.
package state
