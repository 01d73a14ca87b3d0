package app

import (
	"testing"

	"github.com/stretchr/testify/require"

	"cube-ca/internal/config"
	"cube-ca/internal/core"
)

func TestComputeViewportWindowed(t *testing.T) {
	display := config.DisplayInfo{Window: core.Size{W: 1000, H: 600}, Menu: core.Size{W: 250, H: 600}}
	v := ComputeViewport(1920, 1080, display)
	require.Equal(t, Viewport{Width: 1000, Height: 600, View: 750, Menu: 250}, v)
}

func TestComputeViewportFullScreen(t *testing.T) {
	for _, argv := range [][]string{{"-w", "full"}, {"-w", "0,0"}} {
		args, err := config.ParseArgs(argv)
		require.NoError(t, err)
		info := config.DefaultGameInfo()
		info.Apply(args)
		require.NoError(t, info.Resolve())

		before := ComputeViewport(0, 0, info.Display)
		require.Positive(t, before.Width, argv)
		require.Positive(t, before.Height, argv)
		require.Positive(t, before.View, argv)

		v := ComputeViewport(2560, 1440, info.Display)
		require.Equal(t, 2560, v.Width, argv)
		require.Equal(t, 1440, v.Height, argv)
		require.Equal(t, 2560-info.Display.Menu.W, v.View, argv)
	}
}

func TestComputeViewportDropsOversizedMenu(t *testing.T) {
	display := config.DisplayInfo{Window: core.Size{W: 200, H: 200}, Menu: core.Size{W: 300, H: 200}}
	v := ComputeViewport(0, 0, display)
	require.Equal(t, 0, v.Menu)
	require.Equal(t, 200, v.View)
}
