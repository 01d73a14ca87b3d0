package rules

import (
	"testing"

	"github.com/stretchr/testify/require"

	"cube-ca/internal/cell"
)

func TestParseRule(t *testing.T) {
	cases := map[string]string{
		"B3/S23":         "B3/S23",
		"b36/s23":        "B36/S23",
		"S23/B3":         "B3/S23",
		"23/3":           "B3/S23",
		"B2/S":           "B2/S",
		" B3678/S34678 ": "B3678/S34678",
	}
	for in, want := range cases {
		r, err := ParseRule(in)
		require.NoError(t, err, in)
		require.Equal(t, want, r.String(), in)
	}

	for _, bad := range []string{"", "B3", "B9/S23", "B3/B2", "X3/S2", "B3/S2/S3", "/"} {
		_, err := ParseRule(bad)
		require.ErrorIs(t, err, ErrBadRule, bad)
	}
}

func TestConwayThresholds(t *testing.T) {
	r := Default().For(cell.P1)
	require.True(t, r.Born(3))
	require.False(t, r.Born(2))
	require.True(t, r.Survives(2))
	require.True(t, r.Survives(3))
	require.False(t, r.Survives(4))
	require.False(t, r.Survives(9))
}

func TestNextSurvivalUsesOwnCount(t *testing.T) {
	s := Default()
	owner, alive := s.Next(cell.P1Alive, 2, 5)
	require.Equal(t, cell.P1, owner)
	require.True(t, alive)

	owner, alive = s.Next(cell.P2Alive, 3, 1)
	require.Equal(t, cell.P2, owner)
	require.False(t, alive)
}

func TestNextContestedBirth(t *testing.T) {
	s := Set{Players: [2]Rule{{Birth: 1<<3 | 1<<4}, {Birth: 1<<3 | 1<<4}}}

	t.Run("single candidate", func(t *testing.T) {
		owner, alive := s.Next(cell.Dead, 3, 1)
		require.Equal(t, cell.P1, owner)
		require.True(t, alive)
	})

	t.Run("majority wins", func(t *testing.T) {
		owner, alive := s.Next(cell.Dead, 3, 4)
		require.Equal(t, cell.P2, owner)
		require.True(t, alive)
	})

	t.Run("equal counts stay dead", func(t *testing.T) {
		_, alive := s.Next(cell.Dead, 3, 3)
		require.False(t, alive)
	})

	t.Run("dies policy", func(t *testing.T) {
		d := s
		d.TieBreak = Dies
		_, alive := d.Next(cell.Dead, 3, 4)
		require.False(t, alive)
	})

	t.Run("marked dead cell keeps owner when not born", func(t *testing.T) {
		owner, alive := s.Next(cell.P2DeadMarked, 0, 0)
		require.Equal(t, cell.P2, owner)
		require.False(t, alive)
	})
}

func TestPresetsAndTieBreakNames(t *testing.T) {
	require.Contains(t, Names(), "conway")
	hl, err := Lookup("HighLife")
	require.NoError(t, err)
	require.Equal(t, "B36/S23", hl.For(cell.P2).String())
	_, err = Lookup("nope")
	require.Error(t, err)

	tb, err := ParseTieBreak("Dies")
	require.NoError(t, err)
	require.Equal(t, Dies, tb)
	require.Equal(t, "majority", Majority.String())
	_, err = ParseTieBreak("coin")
	require.Error(t, err)

	s := Default().With(cell.P2, Rule{Birth: 1 << 2})
	require.Equal(t, "B2/S", s.For(cell.P2).String())
	require.Equal(t, "B3/S23", s.For(cell.P1).String())
	require.Panics(t, func() { s.For(cell.None) })
}
