package sim

import (
	"fmt"
	"time"

	"cube-ca/internal/cell"
	"cube-ca/internal/config"
	"cube-ca/internal/core"
	"cube-ca/internal/rules"
)

// Session pairs an engine with its autoplay driver and the pending manual
// step request. Frontends drive it once per frame.
type Session struct {
	Engine   *Engine
	Autoplay *Autoplay

	stepOnce bool
}

// NewSession builds an engine from info. Autoplay starts disabled.
func NewSession(info config.GameInfo) (*Session, error) {
	e, err := NewEngine(info)
	if err != nil {
		return nil, err
	}
	return &Session{Engine: e, Autoplay: NewAutoplay(e, core.Seconds(info.AutoplayInterval))}, nil
}

// RequestStep queues a single manual generation for the next frame.
func (s *Session) RequestStep() { s.stepOnce = true }

// Frame runs the simulation part of one frame: a queued manual step, or an
// autoplay step if one is due. At most one generation is taken per frame.
func (s *Session) Frame(now time.Time) bool {
	if s.stepOnce {
		s.stepOnce = false
		s.Engine.StepGeneration()
		return true
	}
	return s.Autoplay.Tick(now)
}

const (
	keyAutoplayInterval = "autoplay_interval"
	keyTieBreak         = "tie_break"
)

// Parameters reports the values shown on the HUD.
func (s *Session) Parameters() core.ParameterSnapshot {
	e := s.Engine
	set := e.Rules()
	p1, p2 := e.Totals()

	pop := make([]core.Parameter, 0, core.NumSides)
	for _, p := range e.Populations() {
		b := e.Cube().Board(p.Side)
		pop = append(pop, core.TextParam("pop_"+p.Side.String(), b.Name, formatPair(p.P1, p.P2)))
	}

	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Session",
			Params: []core.Parameter{
				core.IntParam("generation", "Generation", e.Generation()),
				core.IntParam("n", "Grid", e.Cube().N),
				core.BoolParam("autoplay", "Autoplay", s.Autoplay.Enabled()),
				core.FloatParam(keyAutoplayInterval, "Interval (s)", s.Autoplay.Interval().Seconds()),
			},
		},
		{
			Name: "Rules",
			Params: []core.Parameter{
				core.TextParam("p1_rule", "P1 rule", set.For(cell.P1).String()),
				core.TextParam("p2_rule", "P2 rule", set.For(cell.P2).String()),
				core.IntParam(keyTieBreak, "Tie break", int(set.TieBreak)),
			},
		},
		{
			Name:   "Population",
			Params: append([]core.Parameter{core.TextParam("pop_total", "Total", formatPair(p1, p2))}, pop...),
		},
	}}
}

// ParameterControls lists the values the HUD may adjust.
func (s *Session) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: keyAutoplayInterval, Label: "Interval (s)", Type: core.ParamTypeFloat, Step: 0.05, Min: 0.05, Max: 10, HasMin: true, HasMax: true},
		{Key: keyTieBreak, Label: "Tie break", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: float64(rules.Dies), HasMin: true, HasMax: true,
			Choices: []string{rules.Majority.String(), rules.Dies.String()}},
	}
}

// SetFloatParameter implements core.FloatParameterSetter.
func (s *Session) SetFloatParameter(key string, value float64) bool {
	switch key {
	case keyAutoplayInterval:
		if !(value > 0 && value <= config.MaxAutoplayInterval) {
			return false
		}
		s.Autoplay.SetInterval(core.Seconds(value))
		return true
	}
	return false
}

// SetIntParameter implements core.IntParameterSetter.
func (s *Session) SetIntParameter(key string, value int) bool {
	switch key {
	case keyTieBreak:
		tb := rules.TieBreak(value)
		if value < 0 || !tb.Valid() {
			return false
		}
		set := s.Engine.Rules()
		set.TieBreak = tb
		s.Engine.SetRules(set)
		return true
	}
	return false
}

func formatPair(p1, p2 int) string { return fmt.Sprintf("%d / %d", p1, p2) }
