// Package dijkstraref is the reference Dijkstra oracle used only by this
// module's own test suite to cross-check bmssp's distances against a
// trusted baseline. It is not part of the BMSSP recursion.
//
// It runs an unbounded full sweep over dense integer vertex ids and
// package graph.Graph, with no functional options: the oracle has exactly
// one behavior, a full single-source shortest path sweep with no
// distance cap.
package dijkstraref
