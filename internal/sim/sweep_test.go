package sim

import (
	"testing"

	"github.com/stretchr/testify/require"

	"cube-ca/internal/config"
	"cube-ca/internal/rules"
)

func TestMatchups(t *testing.T) {
	ms := Matchups([]string{"conway", "seeds"})
	require.Len(t, ms, 8)
	require.Equal(t, Matchup{P1: "conway", P2: "conway", TieBreak: rules.Majority}, ms[0])
	require.Equal(t, "conway vs seeds (dies)", ms[3].String())
}

func TestPlayIsDeterministic(t *testing.T) {
	info := emptyInfo(t, 6)
	info.Density = 0.35
	m := Matchup{P1: "conway", P2: "highlife", TieBreak: rules.Majority}

	a, err := Play(info, m, 12)
	require.NoError(t, err)
	b, err := Play(info, m, 12)
	require.NoError(t, err)
	require.Equal(t, a, b)
	require.Equal(t, m, a.Matchup)

	_, err = Play(info, Matchup{P1: "nope", P2: "conway"}, 1)
	require.Error(t, err)
}

func TestPlayReportsExtinction(t *testing.T) {
	info := emptyInfo(t, 3)
	out, err := Play(info, Matchup{P1: "conway", P2: "conway"}, 5)
	require.NoError(t, err)
	require.Equal(t, 1, out.Extinct)
	require.Zero(t, out.P1+out.P2)
}

func TestSweepMatchesSerialPlay(t *testing.T) {
	info := emptyInfo(t, 5)
	info.Density = 0.4
	info.Sides[0].Pattern = config.PatternP1
	ms := Matchups([]string{"conway", "highlife", "seeds"})

	got, err := Sweep(info, ms, 6, 4)
	require.NoError(t, err)
	require.Len(t, got, len(ms))
	for i := 1; i < len(got); i++ {
		require.GreaterOrEqual(t, got[i-1].Margin(), got[i].Margin())
	}
	for _, out := range got {
		want, err := Play(info, out.Matchup, 6)
		require.NoError(t, err)
		require.Equal(t, want, out)
	}

	_, err = Sweep(info, []Matchup{{P1: "bogus", P2: "conway"}}, 1, 0)
	require.Error(t, err)
}
