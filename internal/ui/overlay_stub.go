//go:build !ebiten

package ui

import "cube-ca/internal/render"

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct {
	ShowHelp     bool
	ShowOutlines bool
	ShowNet      bool
}

// NewOverlay constructs a stub overlay.
func NewOverlay(int, render.Palette) *Overlay { return &Overlay{} }

// Update is a no-op in headless builds.
func (o *Overlay) Update() {}

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any, any, any, float32, string) {}
