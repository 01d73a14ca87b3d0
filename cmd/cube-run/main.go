package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"cube-ca/internal/app"
	"cube-ca/internal/sim"
)

const prog = "cube-run"

func main() {
	os.Exit(run())
}

func run() int {
	steps := flag.Int("steps", 100, "generations to simulate")
	every := flag.Int("every", 10, "report populations every n generations")
	csvPath := flag.String("csv", "", "also write populations to this CSV file")
	verbose := flag.Bool("v", false, "log every generation")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [tool flags] [-- engine options]\n", prog)
		flag.PrintDefaults()
	}
	flag.Parse()

	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	app.SetupLogging(os.Stderr, level)

	if *steps < 0 || *every < 1 {
		fmt.Fprintf(os.Stderr, "%s: -steps must be >= 0 and -every >= 1\n", prog)
		return app.ExitFailure
	}

	session, err := app.Launch(prog, flag.Args(), os.Stdout)
	if err != nil {
		return app.Fail(os.Stderr, prog, err)
	}
	e := session.Engine

	var table *csv.Writer
	if *csvPath != "" {
		f, err := os.Create(*csvPath)
		if err != nil {
			return app.Fail(os.Stderr, prog, err)
		}
		defer f.Close()
		table = csv.NewWriter(f)
		if err := table.Write([]string{"generation", "side", "p1", "p2"}); err != nil {
			return app.Fail(os.Stderr, prog, err)
		}
	}

	fmt.Printf("N=%d seed=%d rules=%s/%s tie=%s\n", e.Cube().N, e.Seed(),
		e.Rules().Players[0], e.Rules().Players[1], e.Rules().TieBreak)
	err = e.Run(*steps, *every, func(gen int, pops []sim.Population) error {
		printRow(os.Stdout, gen, pops)
		if table == nil {
			return nil
		}
		for _, p := range pops {
			rec := []string{strconv.Itoa(gen), p.Side.String(), strconv.Itoa(p.P1), strconv.Itoa(p.P2)}
			if err := table.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
	if table != nil {
		table.Flush()
		if ferr := table.Error(); err == nil {
			err = ferr
		}
	}
	if err != nil {
		return app.Fail(os.Stderr, prog, err)
	}
	return app.ExitOK
}

func printRow(w io.Writer, gen int, pops []sim.Population) {
	var b strings.Builder
	var p1, p2 int
	for _, p := range pops {
		fmt.Fprintf(&b, " %s=%d/%d", p.Side, p.P1, p.P2)
		p1 += p.P1
		p2 += p.P2
	}
	fmt.Fprintf(w, "gen %5d  total=%d/%d %s\n", gen, p1, p2, b.String())
}
