package app

import "cube-ca/internal/config"

// fallbackScreen sizes the viewport before the outside size is known.
var fallbackScreen = [2]int{1280, 720}

// Viewport is the logical screen split into the cube view on the left and
// the menu panel on the right.
type Viewport struct {
	Width  int
	Height int
	View   int
	Menu   int
}

// ComputeViewport sizes the screen for display. A windowed display keeps its
// configured size; a fullscreen one, or one without a usable window size,
// follows the outside size. The menu is dropped when it would leave no room
// for the cube. Every dimension of the result is at least one.
func ComputeViewport(outsideWidth, outsideHeight int, display config.DisplayInfo) Viewport {
	w, h := display.Window.W, display.Window.H
	if display.FullScreen || w <= 0 || h <= 0 {
		w, h = outsideWidth, outsideHeight
	}
	if w <= 0 || h <= 0 {
		w, h = fallbackScreen[0], fallbackScreen[1]
	}
	menu := display.Menu.W
	if menu < 0 || menu >= w {
		menu = 0
	}
	return Viewport{Width: w, Height: h, View: w - menu, Menu: menu}
}
