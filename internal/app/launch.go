package app

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"cube-ca/internal/config"
	"cube-ca/internal/sim"
)

// Exit statuses shared by every command.
const (
	ExitOK      = 0
	ExitFailure = -1
)

// SetupLogging routes the global logger to a console writer on w.
func SetupLogging(w io.Writer, level zerolog.Level) {
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen})
}

// Launch parses argv, loads the launch file and builds a session. On -h it
// writes the usage to stdout and returns config.ErrHelp.
func Launch(prog string, argv []string, stdout io.Writer) (*sim.Session, error) {
	args, err := config.ParseArgs(argv)
	if errors.Is(err, config.ErrHelp) {
		config.Usage(stdout, prog)
		return nil, err
	}
	if err != nil {
		return nil, err
	}
	info, err := config.Load(args)
	if err != nil {
		return nil, err
	}
	return sim.NewSession(info)
}

// Fail reports a launch or engine error and returns the exit status for it.
// Help is a success.
func Fail(stderr io.Writer, prog string, err error) int {
	if err == nil || errors.Is(err, config.ErrHelp) {
		return ExitOK
	}
	var argErr *config.ArgError
	if errors.As(err, &argErr) {
		fmt.Fprintf(stderr, "%s: %v\n", prog, err)
		config.Usage(stderr, prog)
		return ExitFailure
	}
	log.Error().Err(err).Msg(prog + " failed")
	return ExitFailure
}
