// Package graphgen builds deterministic and seeded-random test graphs:
// random sparse (m ≈ 3n) and dense (m ≈ n²/2) non-negative-weighted
// digraphs with up to a few thousand vertices, for property-based
// testing.
//
// Configuration follows the functional-options pattern (WithSeed,
// WithWeightFn); generators cover exactly the topologies shortest-path
// testing needs: path, cycle, random sparse, random dense.
package graphgen
