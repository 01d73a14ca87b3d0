package config

import (
	"bytes"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/require"

	"cube-ca/internal/core"
)

func TestParseArgsCommaAndSpaceForms(t *testing.T) {
	a, err := ParseArgs([]string{"-n", "4", "-s", "0.5", "-a", "0.2,0.3,0.4"})
	require.NoError(t, err)
	require.Equal(t, 4, a.NumObjects)
	require.Equal(t, 0.5, a.AutoplayInterval)
	require.Equal(t, mgl32.Vec3{0.2, 0.3, 0.4}, a.Ambient)
	require.True(t, a.Has(FlagNumObjects))
	require.True(t, a.Has(FlagAutoplay))
	require.True(t, a.Has(FlagAmbient))
	require.False(t, a.Has(FlagLaunchFile))

	b, err := ParseArgs([]string{"-a", "0.2", "0.3", "0.4"})
	require.NoError(t, err)
	require.Equal(t, a.Ambient, b.Ambient)
}

func TestParseArgsWindowAndMenu(t *testing.T) {
	a, err := ParseArgs([]string{"-w", "800,600", "-m", "200", "400", "-o", "cube.obj", "-l", "custom.txt"})
	require.NoError(t, err)
	require.Equal(t, core.Size{W: 800, H: 600}, a.WindowSize)
	require.Equal(t, core.Size{W: 200, H: 400}, a.MenuSize)
	require.Equal(t, "cube.obj", a.ObjectFile)
	require.Equal(t, "custom.txt", a.LaunchPath())

	for _, token := range []string{"full", "fullscreen"} {
		f, err := ParseArgs([]string{"-w", token, "-n", "3"})
		require.NoError(t, err)
		require.True(t, f.Has(FlagFullScreen))
		require.False(t, f.Has(FlagWindowSize))
		require.Equal(t, 3, f.NumObjects)
	}

	w, err := ParseArgs([]string{"-w", "640", "480"})
	require.NoError(t, err)
	require.Equal(t, core.Size{W: 640, H: 480}, w.WindowSize)
}

func TestParseArgsDefaults(t *testing.T) {
	a, err := ParseArgs(nil)
	require.NoError(t, err)
	require.Equal(t, Flag(0), a.Flags)
	require.Equal(t, DefaultLaunchFile, a.LaunchPath())
}

func TestParseArgsErrors(t *testing.T) {
	cases := []struct {
		name  string
		argv  []string
		flag  string
		token string
	}{
		{"malformed grid size", []string{"-n", "abc"}, "-n", "abc"},
		{"zero grid size", []string{"-n", "0"}, "-n", "0"},
		{"bad interval", []string{"-s", "fast"}, "-s", "fast"},
		{"bad ambient", []string{"-a", "0.2,x,0.4"}, "-a", "x"},
		{"short ambient", []string{"-a", "0.2,0.3"}, "-a", "0.2,0.3"},
		{"zero menu", []string{"-m", "0,10"}, "-m", "0"},
		{"negative window", []string{"-w", "-5", "10"}, "-w", "-5"},
		{"nan interval", []string{"-s", "NaN"}, "-s", "NaN"},
		{"infinite interval", []string{"-s", "Inf"}, "-s", "Inf"},
		{"huge interval", []string{"-s", "1e300"}, "-s", "1e300"},
		{"interval over an hour", []string{"-s", "3601"}, "-s", "3601"},
		{"nan ambient", []string{"-a", "0.1,NaN,0.1"}, "-a", "NaN"},
		{"overflowing ambient", []string{"-a", "1e50,0,0"}, "-a", "1e50"},
		{"unknown flag", []string{"-x"}, "-x", ""},
		{"missing value", []string{"-n"}, "-n", ""},
		{"missing ambient tokens", []string{"-a", "0.1", "0.2"}, "-a", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseArgs(tc.argv)
			var argErr *ArgError
			require.ErrorAs(t, err, &argErr)
			require.Equal(t, tc.flag, argErr.Flag)
			require.Equal(t, tc.token, argErr.Token)
			require.Contains(t, err.Error(), tc.flag)
		})
	}
}

func TestParseArgsHelp(t *testing.T) {
	_, err := ParseArgs([]string{"-n", "3", "-h", "-x"})
	require.ErrorIs(t, err, ErrHelp)

	var buf bytes.Buffer
	Usage(&buf, "cube")
	require.True(t, strings.HasPrefix(buf.String(), "usage: cube"))
	require.Contains(t, buf.String(), "-w w,h")
}
