package tui

import (
	"log"
	"time"

	"github.com/freeside-software/jack/internal/surface"

	tea "github.com/charmbracelet/bubbletea"
)

type pollTimeoutMsg struct{ seq int }

type wakeMsg struct{ seq int }

type replayMsg struct{ seq int }

// App is the top-level Bubble Tea model. It owns exactly one Screen, feeds it
// one input unit per Update as the screen's Wait asks, and swaps screens on
// NavigateTo.
type App struct {
	screen  Screen
	router  *Router
	width   int
	height  int
	wait    Wait
	seq     int
	pending []tea.KeyMsg
}

// NewApp starts on the screen built for target.
func NewApp(router *Router, target Target) *App {
	return &App{
		screen: router.Build(target, Params{}),
		router: router,
	}
}

// Screen is the screen currently owned by the app.
func (a *App) Screen() Screen { return a.screen }

func (a *App) Init() tea.Cmd {
	return a.arm()
}

// arm reads the screen's next Wait and schedules whatever wakes it. Every
// call bumps seq, so timers from earlier waits are ignored when they fire.
func (a *App) arm() tea.Cmd {
	a.wait = a.screen.Wait()
	a.seq++
	seq := a.seq

	if a.wait.Mode == WaitNone {
		return func() tea.Msg { return wakeMsg{seq: seq} }
	}
	if len(a.pending) > 0 {
		return func() tea.Msg { return replayMsg{seq: seq} }
	}
	if a.wait.Mode == WaitPoll {
		d := a.wait.Timeout
		if d <= 0 {
			d = time.Millisecond
		}
		return tea.Tick(d, func(time.Time) tea.Msg { return pollTimeoutMsg{seq: seq} })
	}
	return nil
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		if a.wait.Mode == WaitNone || len(a.pending) > 0 {
			a.pending = append(a.pending, msg)
			return a, nil
		}
		return a.step(KeyInput(msg))

	case pollTimeoutMsg:
		if msg.seq != a.seq || a.wait.Mode != WaitPoll {
			return a, nil
		}
		return a.step(Input{Kind: InputTimeout})

	case wakeMsg:
		if msg.seq != a.seq {
			return a, nil
		}
		return a.step(Input{Kind: InputNone})

	case replayMsg:
		if msg.seq != a.seq || len(a.pending) == 0 {
			return a, nil
		}
		next := a.pending[0]
		a.pending = a.pending[1:]
		return a.step(KeyInput(next))
	}
	return a, nil
}

// step runs one screen update and reacts to its response.
func (a *App) step(in Input) (tea.Model, tea.Cmd) {
	resp := a.screen.Update(in)

	switch resp.Kind {
	case Exit:
		return a, tea.Quit
	case NavigateTo:
		log.Printf("tui: navigate to %s", resp.Target)
		a.screen = a.router.Build(resp.Target, resp.Params)
	case QuitRound:
		if r, ok := a.screen.(RoundResetter); ok {
			r.ResetRound()
		}
	case Continue, Refresh:
	default:
		log.Printf("tui: unknown response %d treated as continue", resp.Kind)
	}
	return a, a.arm()
}

func (a *App) View() string {
	if a.width <= 0 || a.height <= 0 {
		return ""
	}
	s := surface.New(a.width, a.height)
	a.screen.Render(s)
	return s.String()
}
