package ui

import "fmt"

// Status formats the one-line footer shared by the window and terminal
// frontends.
func Status(generation, p1, p2 int, autoplay bool, interval float64) string {
	state := "paused"
	if autoplay {
		state = fmt.Sprintf("autoplay %.2fs", interval)
	}
	return fmt.Sprintf("gen %d   p1 %d   p2 %d   %s", generation, p1, p2, state)
}
