package state_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/duanmao/bmssp/state"
)

func TestNew_SeedsSource(t *testing.T) {
	s := state.New(5, 2)
	require.Equal(t, 0.0, s.Dist(2))
	require.Equal(t, 2, s.Pred(2))
	require.Equal(t, 0, s.PathLen(2))

	for v := 0; v < 5; v++ {
		if v == 2 {
			continue
		}
		require.True(t, math.IsInf(s.Dist(v), 1))
		require.Equal(t, state.NoPred, s.Pred(v))
	}
}

func TestRelax_ImprovesStrictlySmallerDistance(t *testing.T) {
	s := state.New(3, 0)
	ok := s.Relax(0, 1, 5)
	require.True(t, ok)
	require.Equal(t, 5.0, s.Dist(1))
	require.Equal(t, 1, s.PathLen(1))
	require.Equal(t, 0, s.Pred(1))

	// A worse candidate is rejected.
	ok = s.Relax(1, 1, 10) // self-loop style call, distance 15 > 5
	require.False(t, ok)
}

func TestRelax_TieBreaksOnPathLengthThenPredecessor(t *testing.T) {
	s := state.New(4, 0)
	require.True(t, s.Relax(0, 2, 3)) // dist[2]=3 via 0, pathLen=1
	require.True(t, s.Relax(0, 1, 1)) // dist[1]=1 via 0
	require.False(t, s.Relax(1, 2, 2)) // candidate dist=3 too, but pathLen=2 > 1: should lose
	require.Equal(t, 3.0, s.Dist(2))
	require.Equal(t, 1, s.PathLen(2))
	require.Equal(t, 0, s.Pred(2))
}

func TestLess_LexicographicOrder(t *testing.T) {
	require.True(t, state.Less(1, 0, 0, 2, 0, 0))
	require.False(t, state.Less(2, 0, 0, 1, 0, 0))
	require.True(t, state.Less(1, 1, 5, 1, 2, 0))
	require.True(t, state.Less(1, 1, 2, 1, 1, 9))
	require.False(t, state.Less(1, 1, 9, 1, 1, 2))
}

func TestSnapshot_IsIndependentCopy(t *testing.T) {
	s := state.New(2, 0)
	snap := s.Snapshot()
	s.Relax(0, 1, 4)
	require.True(t, math.IsInf(snap[1], 1))
	require.Equal(t, 4.0, s.Dist(1))
}
