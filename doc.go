// Package bmssp computes single-source shortest paths over directed,
// non-negative-weighted graphs using the bounded multi-source shortest
// path algorithm of Duan, Mao, Mao, Shu & Yin (2025), which beats
// Dijkstra's Θ(m + n log n) sorting bottleneck on sparse graphs by
// recursively shrinking the frontier through a pivot-selection step
// before ever touching a full priority queue sweep.
//
// The package is organized into subpackages, one per stage of the
// computation:
//
//	graph/       — immutable forward adjacency, the read-only input graph
//	state/       — DistanceState: dist/pred/pathLen arrays and the Relax primitive
//	frontier/    — PartialSortingStructure: the bounded Insert/BatchPrepend/Pull queue
//	pivots/      — FindPivots: k-step relaxation and shortest-path-forest pivot selection
//	bmssp/       — the recursive driver and its bounded base case
//	dijkstraref/ — a plain Dijkstra oracle used only by this module's own tests
//	graphgen/    — deterministic and seeded-random test graph generators
//
// Call ShortestPaths for the whole algorithm end to end; the subpackages
// exist so each stage of the recursion can be tested and read on its own.
package bmssp
