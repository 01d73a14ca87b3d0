//go:build ebiten

package main

import (
	"errors"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"cube-ca/internal/app"
)

const prog = "cube"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(argv []string) int {
	app.SetupLogging(os.Stderr, zerolog.InfoLevel)

	session, err := app.Launch(prog, argv, os.Stdout)
	if err != nil {
		return app.Fail(os.Stderr, prog, err)
	}
	game, err := app.New(session)
	if err != nil {
		return app.Fail(os.Stderr, prog, err)
	}

	display := session.Engine.Info().Display
	ebiten.SetWindowTitle("cube-ca")
	if !display.FullScreen && display.Window.W > 0 && display.Window.H > 0 {
		ebiten.SetWindowSize(display.Window.W, display.Window.H)
	}
	ebiten.SetFullscreen(display.FullScreen)
	ebiten.SetTPS(60)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return app.Fail(os.Stderr, prog, err)
	}
	log.Info().Int("generation", session.Engine.Generation()).Msg("bye")
	return app.ExitOK
}
