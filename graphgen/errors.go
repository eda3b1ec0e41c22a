package graphgen

import "errors"

// Sentinel errors for generator construction failures.
var (
	ErrTooFewVertices     = errors.New("graphgen: n must be at least 1")
	ErrInvalidProbability = errors.New("graphgen: probability must be in [0,1]")
)
