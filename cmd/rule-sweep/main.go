package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"cube-ca/internal/app"
	"cube-ca/internal/config"
	"cube-ca/internal/rules"
	"cube-ca/internal/sim"
)

const prog = "rule-sweep"

func main() {
	os.Exit(run())
}

func run() int {
	steps := flag.Int("steps", 200, "generations to simulate per matchup")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	names := flag.String("rules", strings.Join(rules.Names(), ","), "comma separated rule presets to pit against each other")
	top := flag.Int("top", 5, "results to list")
	flag.Parse()

	app.SetupLogging(os.Stderr, zerolog.WarnLevel)

	args, err := config.ParseArgs(flag.Args())
	if err != nil {
		return app.Fail(os.Stderr, prog, err)
	}
	info, err := config.Load(args)
	if err != nil {
		return app.Fail(os.Stderr, prog, err)
	}

	matchups := sim.Matchups(strings.Split(*names, ","))
	fmt.Printf("Sweeping %d matchups (%d workers, %d steps, N=%d, seed %d)\n", len(matchups), *workers, *steps, info.NumObjects, info.Seed)

	start := time.Now()
	all, err := sim.Sweep(info, matchups, *steps, *workers)
	if err != nil {
		return app.Fail(os.Stderr, prog, err)
	}
	elapsed := time.Since(start)

	fmt.Printf("\nTop %d results (elapsed %s):\n", *top, elapsed.Round(time.Millisecond))
	for i := 0; i < len(all) && i < *top; i++ {
		printOutcome(i+1, all[i])
	}
	if len(all) > *top {
		fmt.Println("\nWorst for P1:")
		printOutcome(len(all), all[len(all)-1])
	}
	return app.ExitOK
}

func printOutcome(rank int, o sim.Outcome) {
	extinct := ""
	if o.Extinct > 0 {
		extinct = fmt.Sprintf(" extinct@%d", o.Extinct)
	}
	fmt.Printf("%2d) margin=%+d p1=%d p2=%d%s %s\n", rank, o.Margin(), o.P1, o.P2, extinct, o.Matchup)
}
