package bmssp

import "math"

// Params holds the derived algorithm constants: logn, k, t, and
// maxLevel. They govern the recursion depth, FindPivots' frontier-
// reduction factor, and the frontier structure's block sizes.
type Params struct {
	LogN     float64
	K        int
	T        int
	MaxLevel int
}

// computeParams derives Params from the vertex count n:
//
//	logn     = max(1, log2(n))
//	k        = max(2, floor(logn^(1/3)))
//	t        = max(1, floor(logn^(2/3)))
//	maxLevel = ceil(logn / t)
func computeParams(n int) Params {
	logn := math.Log2(float64(n))
	if logn < 1 {
		logn = 1
	}

	k := int(math.Floor(math.Pow(logn, 1.0/3.0)))
	if k < 2 {
		k = 2
	}

	t := int(math.Floor(math.Pow(logn, 2.0/3.0)))
	if t < 1 {
		t = 1
	}

	maxLevel := int(math.Ceil(logn / float64(t)))

	return Params{LogN: logn, K: k, T: t, MaxLevel: maxLevel}
}
