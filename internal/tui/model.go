// Package tui shows a live progress bar while a simulation runs.
package tui

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	tracker "github.com/lox/preflop-equity/internal/progress"
)

const (
	padding  = 2
	maxWidth = 80

	refreshInterval = 100 * time.Millisecond
)

type tickMsg time.Time

// DoneMsg tells the model the simulation finished.
type DoneMsg struct {
	Err error
}

// Model renders a tracker's completion.
type Model struct {
	title    string
	tracker  *tracker.Tracker
	bar      progress.Model
	cancel   context.CancelFunc
	started  time.Time
	now      func() time.Time
	done     bool
	canceled bool
	err      error
}

// NewModel returns a model for tracker. cancel, if set, is called when the
// user quits before the run finishes.
func NewModel(title string, t *tracker.Tracker, cancel context.CancelFunc) Model {
	return Model{
		title:   title,
		tracker: t,
		bar:     progress.New(progress.WithDefaultGradient()),
		cancel:  cancel,
		started: time.Now(),
		now:     time.Now,
	}
}

func tick() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tick()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.canceled = true
			if m.cancel != nil {
				m.cancel()
			}
			return m, tea.Quit
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.bar.Width = min(msg.Width-padding*2-4, maxWidth)
		return m, nil

	case DoneMsg:
		m.done = true
		m.err = msg.Err
		return m, tea.Quit

	case tickMsg:
		if m.done {
			return m, nil
		}
		return m, tick()
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	pad := strings.Repeat(" ", padding)

	var b strings.Builder
	b.WriteString("\n" + pad + TitleStyle.Render(m.title) + "\n\n")
	b.WriteString(pad + m.bar.ViewAs(m.tracker.Fraction()) + "\n\n")
	b.WriteString(pad + StatsStyle.Render(m.stats()) + "\n")

	switch {
	case m.err != nil:
		b.WriteString(pad + ErrorStyle.Render(m.err.Error()) + "\n")
	case m.canceled:
		b.WriteString(pad + HelpStyle.Render("cancelled") + "\n")
	case !m.done:
		b.WriteString(pad + HelpStyle.Render("press q to cancel") + "\n")
	}
	return b.String()
}

func (m Model) stats() string {
	done := m.tracker.Done()
	s := fmt.Sprintf("%d / %d trials", done, m.tracker.Total())
	if elapsed := m.now().Sub(m.started); elapsed > 0 {
		s += fmt.Sprintf(" · %.0f trials/s", float64(done)/elapsed.Seconds())
	}
	return s
}

// Canceled reports whether the user quit before the run finished.
func (m Model) Canceled() bool {
	return m.canceled
}

// Run shows the progress bar on out until run returns, then returns run's
// error. Quitting the bar cancels the context passed to run.
func Run(ctx context.Context, out io.Writer, title string, t *tracker.Tracker, run func(context.Context) error, opts ...tea.ProgramOption) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	opts = append([]tea.ProgramOption{
		tea.WithOutput(out),
		tea.WithContext(ctx),
		tea.WithoutSignalHandler(),
	}, opts...)
	p := tea.NewProgram(NewModel(title, t, cancel), opts...)

	errCh := make(chan error, 1)
	go func() {
		err := run(ctx)
		errCh <- err
		p.Send(DoneMsg{Err: err})
	}()

	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		cancel()
		<-errCh
		return fmt.Errorf("progress display: %w", err)
	}
	return <-errCh
}
