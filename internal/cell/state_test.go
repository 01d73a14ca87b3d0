package cell

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCodesRoundTrip(t *testing.T) {
	for code := 0; code < NumCodes; code++ {
		s, ok := fromCode(code)
		require.True(t, ok)
		require.True(t, s.Valid(), "code %d must map to a valid state", code)
		require.Equal(t, code, s.Code(), "state %s", s)
		require.Equal(t, CodeName(code), s.String())
	}
	_, ok := fromCode(NumCodes)
	require.False(t, ok)
	require.Equal(t, "", CodeName(-1))
}

func TestComponents(t *testing.T) {
	require.Equal(t, None, Dead.Owner())
	require.False(t, Dead.Alive())

	require.Equal(t, P1, P1Alive.Owner())
	require.True(t, P1Alive.Alive())
	require.True(t, P1Alive.Stable())

	require.Equal(t, P2, P2DeadMarked.Owner())
	require.False(t, P2DeadMarked.Alive())
	require.True(t, P2DeadMarked.Marked())

	require.True(t, P1AliveFuture.Future())
	require.False(t, P1AliveFuture.Stable())
}

func TestValidRejectsIllegalCombinations(t *testing.T) {
	require.False(t, State(aliveBit).Valid(), "alive without owner")
	require.False(t, State(markedBit).Valid(), "marked without owner")
	require.False(t, State(3).Valid(), "owner out of range")
	require.False(t, State(P1).Valid(), "owned dead cell that is neither staged nor marked")
	require.False(t, State(0x40).Valid(), "stray high bits")
}

func TestCommitClearsFuture(t *testing.T) {
	cases := []struct {
		in   State
		want State
	}{
		{P1AliveFuture, P1Alive},
		{P2AliveFuture, P2Alive},
		{P1DeadFuture, Dead},
		{P2DeadFuture, Dead},
		{P1AliveFuture | markedBit, P1AliveMarked},
		{P2DeadFuture | markedBit, P2DeadMarked},
		{Dead, Dead},
		{P1Alive, P1Alive},
	}
	for _, tc := range cases {
		got := tc.in.Commit()
		require.Equal(t, tc.want, got, "commit %s", tc.in)
		require.False(t, got.Future())
		require.True(t, got.Valid())
	}
}

func TestToFutureKeepsMark(t *testing.T) {
	require.Equal(t, P1AliveFuture, Dead.ToFuture(P1, true))
	require.Equal(t, P2DeadFuture, P2Alive.ToFuture(P2, false))
	require.Equal(t, Dead, Dead.ToFuture(None, false))

	staged := P1AliveMarked.ToFuture(P1, false)
	require.True(t, staged.Future())
	require.True(t, staged.Marked())
	require.Equal(t, P1DeadMarked, staged.Commit())
}

func TestToggle(t *testing.T) {
	require.Equal(t, P1Alive, Dead.Toggle(P1))
	require.Equal(t, Dead, P1Alive.Toggle(P1))
	require.Equal(t, P2Alive, P1Alive.Toggle(P2))
	require.Equal(t, P1AliveMarked, P2DeadMarked.Toggle(P1))
	require.Equal(t, P1DeadMarked, P1AliveMarked.Toggle(P1))
	require.Equal(t, P1Alive, P1Alive.Toggle(None))
}

func TestWithMarked(t *testing.T) {
	require.Equal(t, P2DeadMarked, Dead.WithMarked(true, P2))
	require.Equal(t, Dead, Dead.WithMarked(true, None))
	require.Equal(t, P1AliveMarked, P1Alive.WithMarked(true, P2))
	require.Equal(t, P1Alive, P1AliveMarked.WithMarked(false, None))
	require.Equal(t, Dead, P1DeadMarked.WithMarked(false, None))
}

func TestPlayerString(t *testing.T) {
	require.Equal(t, "p1", P1.String())
}
