// Package pivots implements FindPivots: k bounded relaxation
// layers from a source set S, followed by construction of a shortest-path
// forest over the resulting working set W and selection of pivots by
// subtree size.
//
// The forest is never materialized as a standalone structure: the parent
// of each v ∈ W is read directly off the shared DistanceState's current
// predecessor, restricted to parents
// that are themselves in W; this is valid because every Relax call
// maintains dist/pathLen/pred as one consistent triple (package state),
// so "dist[v] = dist[parent] + w" holds for whatever predecessor is
// currently recorded. Subtree sizes are then computed once, locally to
// this call, via memoized recursion — nothing here outlives the call.
package pivots
