package main

import (
	"context"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"cube-ca/internal/app"
	"cube-ca/internal/term"
)

const (
	prog  = "cube-term"
	frame = 33 * time.Millisecond
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(argv []string) int {
	app.SetupLogging(os.Stderr, zerolog.InfoLevel)

	session, err := app.Launch(prog, argv, os.Stdout)
	if err != nil {
		return app.Fail(os.Stderr, prog, err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return app.Fail(os.Stderr, prog, err)
	}
	if err := screen.Init(); err != nil {
		return app.Fail(os.Stderr, prog, err)
	}
	screen.EnableMouse()

	// The screen owns stderr until Fini.
	logger := log.Logger
	log.Logger = zerolog.Nop()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err = term.New(screen, session).Run(ctx, frame)
	stop()
	screen.Fini()
	log.Logger = logger

	if err != nil {
		return app.Fail(os.Stderr, prog, err)
	}
	log.Info().Int("generation", session.Engine.Generation()).Msg("bye")
	return app.ExitOK
}
