// Package bmssp implements the bounded multi-source recursion and its
// base case: a mini-Dijkstra capped at k+1 settled vertices.
//
// Run is the entry point a caller (the root ShortestPaths driver) uses
// once DistanceState has been seeded for the source. Everything else in
// this package — runner, the recursive case, the base case — is internal:
// a single runner is created per ShortestPaths call and threaded by
// pointer through the whole recursion, so every level shares the same
// graph, state, and derived constants without passing them individually.
package bmssp
