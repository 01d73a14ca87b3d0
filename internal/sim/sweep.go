package sim

import (
	"fmt"
	"sort"
	"sync"

	"cube-ca/internal/cell"
	"cube-ca/internal/config"
	"cube-ca/internal/rules"
)

// Matchup pits one named rule per player against each other.
type Matchup struct {
	P1       string
	P2       string
	TieBreak rules.TieBreak
}

func (m Matchup) String() string {
	return fmt.Sprintf("%s vs %s (%s)", m.P1, m.P2, m.TieBreak)
}

// Outcome is the population left after playing a matchup.
type Outcome struct {
	Matchup Matchup
	Steps   int
	P1      int
	P2      int
	// Extinct is the generation at which the cube emptied, or 0.
	Extinct int
}

// Margin is the first player's lead in live cells.
func (o Outcome) Margin() int { return o.P1 - o.P2 }

// Matchups lists every ordered pair of names under every tie-break.
func Matchups(names []string) []Matchup {
	var out []Matchup
	for _, a := range names {
		for _, b := range names {
			for tb := rules.Majority; tb.Valid(); tb++ {
				out = append(out, Matchup{P1: a, P2: b, TieBreak: tb})
			}
		}
	}
	return out
}

// Play runs one matchup from the seeded initial state of info.
func Play(info config.GameInfo, m Matchup, steps int) (Outcome, error) {
	r1, err := rules.Lookup(m.P1)
	if err != nil {
		return Outcome{}, err
	}
	r2, err := rules.Lookup(m.P2)
	if err != nil {
		return Outcome{}, err
	}
	info.Rules = rules.Set{
		Players:  [2]rules.Rule{r1.For(cell.P1), r2.For(cell.P2)},
		TieBreak: m.TieBreak,
	}
	e, err := NewEngine(info)
	if err != nil {
		return Outcome{}, err
	}
	out := Outcome{Matchup: m, Steps: steps}
	for i := 0; i < steps; i++ {
		e.StepGeneration()
		if p1, p2 := e.Totals(); p1+p2 == 0 {
			out.Extinct = e.Generation()
			break
		}
	}
	out.P1, out.P2 = e.Totals()
	return out, nil
}

// Sweep plays every matchup on its own engine using a pool of workers and
// returns the outcomes sorted by margin, widest first lead for P1 on top.
func Sweep(info config.GameInfo, matchups []Matchup, steps, workers int) ([]Outcome, error) {
	if workers < 1 {
		workers = 1
	}
	type result struct {
		out Outcome
		err error
	}
	jobs := make(chan Matchup)
	results := make(chan result)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for m := range jobs {
				out, err := Play(info, m, steps)
				results <- result{out: out, err: err}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, m := range matchups {
			jobs <- m
		}
		close(jobs)
	}()

	var all []Outcome
	var firstErr error
	for res := range results {
		if res.err != nil {
			if firstErr == nil {
				firstErr = res.err
			}
			continue
		}
		all = append(all, res.out)
	}
	if firstErr != nil {
		return nil, firstErr
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Margin() != all[j].Margin() {
			return all[i].Margin() > all[j].Margin()
		}
		return all[i].Matchup.String() < all[j].Matchup.String()
	})
	return all, nil
}
