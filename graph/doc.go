// Package graph provides the immutable forward adjacency representation
// consumed by the BMSSP engine.
//
// A Graph is built once from a vertex count and an edge list, then never
// mutated again — the recursion in package bmssp only ever reads out-edges.
// Because the graph is immutable after New returns, no internal locking is
// needed; every method is safe to call concurrently from multiple readers.
//
// Vertex ids are dense integers in [0, n); see New for validation and
// drop/reject behavior for out-of-range and malformed edges.
package graph
