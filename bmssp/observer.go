package bmssp

// Observer is an optional instrumentation hook: a caller may attach one
// to watch the recursion unfold (a test harness, a visualizer), but no
// method on it ever influences control flow or the distances
// ShortestPaths returns. The zero value for "no observer" is
// NoopObserver, which costs nothing beyond a method call that returns
// immediately.
type Observer interface {
	// OnRelax fires whenever Relax succeeds, anywhere in the recursion.
	OnRelax(u, v int, oldDist, newDist float64)

	// OnLevelEnter fires on entry to each BMSSP recursion level, before
	// FindPivots runs.
	OnLevelEnter(level int, bound float64, frontierSize int)

	// OnPivotsFound fires once FindPivots returns at a given level, with
	// the sizes of the pivot set P and the working set W.
	OnPivotsFound(level int, pivots, working int)
}

// NoopObserver discards every notification.
type NoopObserver struct{}

func (NoopObserver) OnRelax(u, v int, oldDist, newDist float64)      {}
func (NoopObserver) OnLevelEnter(level int, bound float64, size int) {}
func (NoopObserver) OnPivotsFound(level int, pivots, working int)    {}
