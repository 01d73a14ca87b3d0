package ui

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStatus(t *testing.T) {
	require.Equal(t, "gen 3   p1 10   p2 4   paused", Status(3, 10, 4, false, 0.5))
	require.Equal(t, "gen 0   p1 0   p2 0   autoplay 0.25s", Status(0, 0, 0, true, 0.25))
}
