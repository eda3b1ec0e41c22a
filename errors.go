package bmssp

import "errors"

// Sentinel errors returned by ShortestPaths, so callers can compare with
// errors.Is instead of string matching.
var (
	ErrInvalidVertexCount = errors.New("bmssp: vertex count must be positive")
	ErrSourceOutOfRange   = errors.New("bmssp: source out of range")
)
