//go:build !ebiten

package ui

import "cube-ca/internal/core"

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(core.ParameterProvider, string, int) *HUD { return nil }

// Resize is a no-op in the headless build.
func (h *HUD) Resize(int) {}

// Update is a no-op in the headless build.
func (h *HUD) Update(int) bool { return false }

// Contains always reports false in the headless build.
func (h *HUD) Contains(int) bool { return false }

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, int, int) {}
