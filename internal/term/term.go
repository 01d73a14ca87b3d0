// Package term renders a session in a terminal as an unfolded cube net.
package term

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"

	"cube-ca/internal/cell"
	"cube-ca/internal/core"
	"cube-ca/internal/render"
	"cube-ca/internal/sim"
	"cube-ca/internal/ui"
)

const (
	originX      = 2
	originY      = 2
	cellWidth    = 2
	intervalStep = 0.05
)

// HelpLine lists the terminal key bindings.
const HelpLine = "space autoplay  n step  r reseed  c clear  [ ] interval  click p1  right-click p2  shift mark  q quit"

var glyphs = [cell.NumCodes]rune{
	cell.CodeDead:          '·',
	cell.CodeP1AliveFuture: '?',
	cell.CodeP2AliveFuture: '?',
	cell.CodeP1Alive:       'o',
	cell.CodeP2Alive:       'x',
	cell.CodeP1DeadFuture:  '?',
	cell.CodeP2DeadFuture:  '?',
	cell.CodeP1AliveMarked: 'O',
	cell.CodeP2AliveMarked: 'X',
	cell.CodeP1DeadMarked:  '+',
	cell.CodeP2DeadMarked:  '*',
}

// Glyph returns the character drawn for s.
func Glyph(s cell.State) rune { return glyphs[s.Code()] }

func style(s cell.State) tcell.Style {
	st := tcell.StyleDefault
	switch s.Owner() {
	case cell.P1:
		st = st.Foreground(tcell.ColorDodgerBlue)
	case cell.P2:
		st = st.Foreground(tcell.ColorRed)
	default:
		st = st.Foreground(tcell.ColorGray)
	}
	if s.Marked() {
		st = st.Bold(true).Background(tcell.ColorOlive)
	}
	return st
}

// Loop drives a session against a tcell screen. Only the goroutine calling
// Run touches the session.
type Loop struct {
	screen  tcell.Screen
	session *sim.Session
	net     render.Net
	buttons tcell.ButtonMask

	now func() time.Time
}

// New returns a loop drawing s on screen.
func New(screen tcell.Screen, s *sim.Session) *Loop {
	return &Loop{
		screen:  screen,
		session: s,
		net:     render.Net{N: s.Engine.Cube().N, Gap: 1},
		now:     time.Now,
	}
}

// Run processes events and autoplay ticks until a quit key arrives or ctx
// ends. frame is the redraw period and bounds the autoplay resolution.
func (l *Loop) Run(ctx context.Context, frame time.Duration) error {
	events := make(chan tcell.Event, 32)
	quit := make(chan struct{})
	go l.screen.ChannelEvents(events, quit)
	defer close(quit)

	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	l.Draw()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !l.HandleEvent(ev) {
				log.Info().Int("generation", l.session.Engine.Generation()).Msg("quit")
				return nil
			}
			l.Draw()
		case <-ticker.C:
			l.Tick(l.now())
		}
	}
}

// Tick runs the simulation part of a frame and redraws if a generation was
// taken.
func (l *Loop) Tick(now time.Time) bool {
	if !l.session.Frame(now) {
		return false
	}
	l.Draw()
	return true
}

// HandleEvent applies one input event. It returns false when the user asked
// to quit.
func (l *Loop) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return l.handleKey(ev)
	case *tcell.EventMouse:
		l.handleMouse(ev)
	case *tcell.EventResize:
		l.screen.Sync()
	}
	return true
}

func (l *Loop) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyRune:
	default:
		return true
	}
	e := l.session.Engine
	switch ev.Rune() {
	case 'q', 'Q':
		return false
	case ' ':
		l.session.Autoplay.Toggle(l.now())
	case 'n', 'N':
		l.session.RequestStep()
	case 'r', 'R':
		e.Reseed(e.Seed())
	case 'c', 'C':
		e.Clear()
	case '[':
		l.adjustInterval(-intervalStep)
	case ']':
		l.adjustInterval(intervalStep)
	}
	return true
}

func (l *Loop) adjustInterval(delta float64) {
	next := l.session.Autoplay.Interval().Seconds() + delta
	if next < intervalStep {
		next = intervalStep
	}
	l.session.SetFloatParameter("autoplay_interval", next)
}

func (l *Loop) handleMouse(ev *tcell.EventMouse) {
	buttons := ev.Buttons()
	pressed := buttons &^ l.buttons
	l.buttons = buttons

	var owner cell.Player
	switch {
	case pressed&tcell.Button1 != 0:
		owner = cell.P1
	case pressed&tcell.Button2 != 0:
		owner = cell.P2
	default:
		return
	}
	x, y := ev.Position()
	side, row, col, ok := l.Locate(x, y)
	if !ok {
		return
	}
	e := l.session.Engine
	var err error
	if ev.Modifiers()&tcell.ModShift != 0 {
		err = e.MarkCell(side, row, col, owner)
	} else {
		err = e.ToggleCell(side, row, col, owner)
	}
	if err != nil {
		log.Warn().Err(err).Msg("edit rejected")
	}
}

// CellPosition returns the screen position of a face cell.
func (l *Loop) CellPosition(side core.Side, row, col int) (x, y int) {
	ox, oy := l.net.Origin(side)
	return originX + (ox+col)*cellWidth, originY + oy + row
}

// Locate maps a screen position to a face cell.
func (l *Loop) Locate(x, y int) (side core.Side, row, col int, ok bool) {
	if x < originX || y < originY {
		return 0, 0, 0, false
	}
	return l.net.Locate((x-originX)/cellWidth, y-originY)
}

// Draw repaints the whole screen.
func (l *Loop) Draw() {
	s := l.screen
	s.Clear()
	e := l.session.Engine
	p1, p2 := e.Totals()
	drawText(s, 0, 0, ui.Status(e.Generation(), p1, p2, l.session.Autoplay.Enabled(), l.session.Autoplay.Interval().Seconds()), tcell.StyleDefault.Bold(true))

	for _, b := range e.Cube().Boards() {
		for r := 0; r < b.N; r++ {
			for c := 0; c < b.N; c++ {
				st := b.At(r, c)
				x, y := l.CellPosition(b.Side, r, c)
				s.SetContent(x, y, Glyph(st), nil, style(st))
			}
		}
	}
	drawText(s, 0, originY+l.net.Size().H+1, HelpLine, tcell.StyleDefault.Foreground(tcell.ColorGray))
	s.Show()
}

func drawText(s tcell.Screen, x, y int, text string, st tcell.Style) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, st)
		x++
	}
}
