package config

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"

	"cube-ca/internal/core"
)

// DefaultLaunchFile is read when -l is not given.
const DefaultLaunchFile = "launch/DefaultConfig.txt"

// MaxAutoplayInterval is the longest autoplay interval accepted, in seconds.
const MaxAutoplayInterval = 3600.0

var errNotFinite = errors.New("not a finite number")

// parseFinite is strconv.ParseFloat that also rejects NaN and infinities.
func parseFinite(s string, bitSize int) (float64, error) {
	f, err := strconv.ParseFloat(s, bitSize)
	if err != nil {
		return 0, err
	}
	if !finite(f) {
		return 0, errNotFinite
	}
	return f, nil
}

func finite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }

func floatReason(err error) string {
	if errors.Is(err, errNotFinite) || errors.Is(err, strconv.ErrRange) {
		return "not a finite number"
	}
	return "not a number"
}

// Flag records which options were present on the command line.
type Flag uint16

const (
	FlagLaunchFile Flag = 1 << iota
	FlagAutoplay
	FlagNumObjects
	FlagAmbient
	FlagWindowSize
	FlagFullScreen
	FlagMenuSize
	FlagObjectFile
)

// Args holds the parsed command line.
type Args struct {
	Flags            Flag
	LaunchFile       string
	AutoplayInterval float64
	NumObjects       int
	Ambient          mgl32.Vec3
	WindowSize       core.Size
	MenuSize         core.Size
	ObjectFile       string
}

// Has reports whether f was set.
func (a Args) Has(f Flag) bool { return a.Flags&f != 0 }

// LaunchPath returns the launch file to read.
func (a Args) LaunchPath() string {
	if a.Has(FlagLaunchFile) {
		return a.LaunchFile
	}
	return DefaultLaunchFile
}

// ErrHelp is returned by ParseArgs when -h is given.
var ErrHelp = errors.New("config: help requested")

// ArgError describes an invalid command line token.
type ArgError struct {
	Flag   string
	Token  string
	Reason string
}

func (e *ArgError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("%s: %s", e.Flag, e.Reason)
	}
	return fmt.Sprintf("%s: invalid value %q: %s", e.Flag, e.Token, e.Reason)
}

// Usage writes the command line synopsis to w.
func Usage(w io.Writer, prog string) {
	fmt.Fprintf(w, "usage: %s [options]\n", prog)
	fmt.Fprintln(w, "  -h              show this help and exit")
	fmt.Fprintf(w, "  -l <path>       launch file (default %s)\n", DefaultLaunchFile)
	fmt.Fprintln(w, "  -s <seconds>    autoplay interval")
	fmt.Fprintln(w, "  -n <int>        cells along each board edge")
	fmt.Fprintln(w, "  -a r,g,b        ambient light (or -a r g b)")
	fmt.Fprintln(w, "  -w w,h          window size (or -w w h, -w full; a zero dimension means full)")
	fmt.Fprintln(w, "  -m w,h          menu panel size (or -m w h)")
	fmt.Fprintln(w, "  -o <path>       object file")
}

// ParseArgs parses engine options. Some options take one comma separated
// token or several space separated tokens, which the flag package cannot
// express, so the scan is done by hand.
func ParseArgs(argv []string) (Args, error) {
	var a Args
	s := scanner{argv: argv}
	for s.more() {
		flag := s.next()
		switch flag {
		case "-h", "-help", "--help":
			return a, ErrHelp
		case "-l":
			v, err := s.value(flag)
			if err != nil {
				return a, err
			}
			a.Flags |= FlagLaunchFile
			a.LaunchFile = v
		case "-s":
			v, err := s.value(flag)
			if err != nil {
				return a, err
			}
			f, err := parseFinite(v, 64)
			if err != nil {
				return a, &ArgError{Flag: flag, Token: v, Reason: floatReason(err)}
			}
			if f <= 0 {
				return a, &ArgError{Flag: flag, Token: v, Reason: "must be positive"}
			}
			if f > MaxAutoplayInterval {
				return a, &ArgError{Flag: flag, Token: v, Reason: fmt.Sprintf("must be at most %g", MaxAutoplayInterval)}
			}
			a.Flags |= FlagAutoplay
			a.AutoplayInterval = f
		case "-n":
			v, err := s.value(flag)
			if err != nil {
				return a, err
			}
			n, err := strconv.Atoi(v)
			if err != nil {
				return a, &ArgError{Flag: flag, Token: v, Reason: "not an integer"}
			}
			if n <= 0 {
				return a, &ArgError{Flag: flag, Token: v, Reason: "must be positive"}
			}
			a.Flags |= FlagNumObjects
			a.NumObjects = n
		case "-a":
			parts, err := s.tuple(flag, 3)
			if err != nil {
				return a, err
			}
			for i, p := range parts {
				f, err := parseFinite(p, 32)
				if err != nil {
					return a, &ArgError{Flag: flag, Token: p, Reason: floatReason(err)}
				}
				a.Ambient[i] = float32(f)
			}
			a.Flags |= FlagAmbient
		case "-w":
			if v, ok := s.peek(); ok && (v == "full" || v == "fullscreen") {
				s.next()
				a.Flags |= FlagFullScreen
				a.WindowSize = core.Size{}
				continue
			}
			size, err := s.size(flag, false)
			if err != nil {
				return a, err
			}
			a.Flags |= FlagWindowSize
			a.WindowSize = size
		case "-m":
			size, err := s.size(flag, true)
			if err != nil {
				return a, err
			}
			a.Flags |= FlagMenuSize
			a.MenuSize = size
		case "-o":
			v, err := s.value(flag)
			if err != nil {
				return a, err
			}
			a.Flags |= FlagObjectFile
			a.ObjectFile = v
		default:
			return a, &ArgError{Flag: flag, Reason: "unknown option"}
		}
	}
	return a, nil
}

type scanner struct {
	argv []string
	pos  int
}

func (s *scanner) more() bool { return s.pos < len(s.argv) }

func (s *scanner) next() string {
	v := s.argv[s.pos]
	s.pos++
	return v
}

func (s *scanner) peek() (string, bool) {
	if !s.more() {
		return "", false
	}
	return s.argv[s.pos], true
}

func (s *scanner) value(flag string) (string, error) {
	if !s.more() {
		return "", &ArgError{Flag: flag, Reason: "missing value"}
	}
	return s.next(), nil
}

// tuple reads n values given either as one comma separated token or as n
// separate tokens.
func (s *scanner) tuple(flag string, n int) ([]string, error) {
	first, err := s.value(flag)
	if err != nil {
		return nil, err
	}
	if strings.Contains(first, ",") {
		parts := strings.Split(first, ",")
		if len(parts) != n {
			return nil, &ArgError{Flag: flag, Token: first, Reason: fmt.Sprintf("want %d comma separated values", n)}
		}
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts, nil
	}
	parts := []string{first}
	for len(parts) < n {
		v, err := s.value(flag)
		if err != nil {
			return nil, err
		}
		parts = append(parts, v)
	}
	return parts, nil
}

func (s *scanner) size(flag string, positive bool) (core.Size, error) {
	parts, err := s.tuple(flag, 2)
	if err != nil {
		return core.Size{}, err
	}
	var dims [2]int
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil {
			return core.Size{}, &ArgError{Flag: flag, Token: p, Reason: "not an integer"}
		}
		if v < 0 || (positive && v == 0) {
			return core.Size{}, &ArgError{Flag: flag, Token: p, Reason: "dimension out of range"}
		}
		dims[i] = v
	}
	return core.Size{W: dims[0], H: dims[1]}, nil
}
