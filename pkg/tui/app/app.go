// Package app hosts the calendar component in a full-screen program. It owns
// the selected value and displayed month, feeding callback results back into
// the component the way any embedding application would.
package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"go.uber.org/zap"

	"tableflip.dev/monthgrid/pkg/monthgrid"
	"tableflip.dev/monthgrid/pkg/store"
	"tableflip.dev/monthgrid/pkg/tui/components/calendar"
	"tableflip.dev/monthgrid/pkg/tui/components/eventviewer"
	"tableflip.dev/monthgrid/pkg/tui/events"
	"tableflip.dev/monthgrid/pkg/tui/theme"
)

const calendarID events.ComponentID = "calendar"

// Options configures the host model.
type Options struct {
	Grid        *monthgrid.Grid
	Persistence store.Persistence
	Logger      *zap.Logger
	// Changes delivers state saved by other processes.
	Changes <-chan store.Event
}

type stateChangedMsg store.Event

// Model is the top-level Bubble Tea model.
type Model struct {
	calendar *calendar.Model
	events   *eventviewer.Model

	persistence store.Persistence
	changes     <-chan store.Event
	// saved holds our own writes not yet seen back from the watcher, oldest first.
	saved []store.State
	logger      *zap.Logger

	theme theme.Theme

	width     int
	height    int
	status    string
	statusErr bool
}

// New builds the host model around opts.Grid.
func New(opts Options) *Model {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Model{
		calendar:    calendar.NewModel(calendarID, opts.Grid),
		events:      eventviewer.NewModel(100),
		persistence: opts.Persistence,
		changes:     opts.Changes,
		logger:      logger,
		theme:       theme.Default(),
	}
}

// Calendar exposes the embedded calendar component.
func (m *Model) Calendar() *calendar.Model { return m.calendar }

// Events exposes the callback log.
func (m *Model) Events() *eventviewer.Model { return m.events }

// Status returns the last status line.
func (m *Model) Status() string { return m.status }

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return m.waitForChange() }

func (m *Model) waitForChange() tea.Cmd {
	if m.changes == nil {
		return nil
	}
	ch := m.changes
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return stateChangedMsg(ev)
	}
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.events.SetSize(max(30, msg.Width-calendarWidth-4), max(6, msg.Height-2))
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "tab":
			if m.calendar.Focused() {
				return m, events.BlurCmd(calendarID)
			}
			return m, events.FocusCmd(calendarID)
		case "x":
			m.calendar.SetValue(nil)
			m.setStatus("selection cleared")
			m.logger.Info("selection cleared")
			m.save()
			return m, nil
		}
	case events.DateChangeMsg:
		m.onChange(msg)
	case events.DisplayChangeMsg:
		m.onChangeDisplay(msg)
	case stateChangedMsg:
		m.onStateChanged(store.Event(msg))
		return m, m.waitForChange()
	}

	if _, cmd := m.calendar.Update(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	m.events.Update(msg)

	return m, tea.Batch(cmds...)
}

func (m *Model) onChange(msg events.DateChangeMsg) {
	m.logger.Info("calendar change",
		zap.String("name", msg.Name),
		zap.Time("date", msg.Date))

	date := msg.Date
	m.calendar.SetValue(&date)
	display := m.calendar.Grid().DisplayMonth()
	if date.Year() != display.Year() || date.Month() != display.Month() {
		m.calendar.SetDisplayDate(date)
	}
	m.setStatus("selected " + date.Format("Mon Jan 2, 2006"))
	m.save()
}

func (m *Model) onChangeDisplay(msg events.DisplayChangeMsg) {
	m.logger.Info("calendar display change",
		zap.String("name", msg.Name),
		zap.Time("date", msg.Date))

	m.calendar.SetDisplayDate(msg.Date)
	m.setStatus("showing " + msg.Date.Format("January 2006"))
	m.save()
}

// onStateChanged applies state written elsewhere. Our own saves come back
// through the watcher too, possibly late, and are dropped.
func (m *Model) onStateChanged(ev store.Event) {
	if ev.Err != nil {
		m.logger.Warn("state watch failed", zap.Error(ev.Err))
		return
	}
	if m.ownSave(ev.State) {
		return
	}
	g := m.calendar.Grid()
	if sameValue(g.Value(), ev.State.Value) && (ev.State.Display.IsZero() || ev.State.Display.Equal(g.DisplayMonth())) {
		return
	}

	m.logger.Info("state changed on disk", zap.String("name", ev.State.Name))
	m.calendar.SetValue(ev.State.Value)
	if !ev.State.Display.IsZero() {
		m.calendar.SetDisplayDate(ev.State.Display)
	}
	m.setStatus("reloaded saved state")
}

// ownSave reports whether s is one of our pending writes. Echoes arrive in
// write order, so it and every older write are forgotten.
func (m *Model) ownSave(s store.State) bool {
	for i, w := range m.saved {
		if sameState(w, s) {
			m.saved = m.saved[i+1:]
			return true
		}
	}
	return false
}

func sameState(a, b store.State) bool {
	return a.Name == b.Name && sameValue(a.Value, b.Value) && a.Display.Equal(b.Display)
}

func sameValue(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

func (m *Model) save() {
	if m.persistence == nil {
		return
	}
	g := m.calendar.Grid()
	st := store.State{
		Name:    g.Name(),
		Value:   g.Value(),
		Display: g.DisplayMonth(),
	}
	if err := m.persistence.Save(st); err != nil {
		m.logger.Warn("failed to save state", zap.Error(err))
		m.status = "save failed: " + err.Error()
		m.statusErr = true
		return
	}
	if m.changes != nil {
		if len(m.saved) == maxPendingSaves {
			m.saved = m.saved[1:]
		}
		m.saved = append(m.saved, st)
	}
}

// maxPendingSaves bounds the writes remembered for echo suppression. The
// watcher coalesces bursts, so most echoes never arrive.
const maxPendingSaves = 32

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusErr = false
}

// calendarWidth is the rendered grid width plus the frame.
const calendarWidth = 20 + 6

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Resizing…"
	}
	frame := m.theme.Panel.Frame
	if m.calendar.Focused() {
		frame = m.theme.Panel.FocusedFrame
	}
	status := m.theme.Footer.Status
	if m.statusErr {
		status = m.theme.Footer.Error
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		frame.Render(m.calendar.View()),
		" ",
		m.events.View(),
	)
	footer := status.Render(m.status) + m.theme.Footer.Help.Render("  (tab focus, x clear, q quit)")
	return lipgloss.JoinVertical(lipgloss.Left, body, footer)
}

// Run launches the program and blocks until it exits. Persistence that can
// watch for changes keeps the calendar in sync with other instances.
func Run(ctx context.Context, opts Options) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if w, ok := opts.Persistence.(store.Watcher); ok && opts.Changes == nil {
		changes, err := w.Watch(ctx)
		if err != nil {
			return err
		}
		opts.Changes = changes
	}

	p := tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

// Restore applies saved state to a grid. Missing state leaves it unchanged.
func Restore(g *monthgrid.Grid, p store.Persistence) error {
	if p == nil {
		return nil
	}
	s, ok, err := p.Load()
	if err != nil || !ok {
		return err
	}
	g.SetValue(s.Value)
	if !s.Display.IsZero() {
		g.SetDisplayMonth(s.Display)
	}
	return nil
}
