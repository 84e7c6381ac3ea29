package calendar

import (
	"time"

	"github.com/charmbracelet/bubbles/v2/help"
	"github.com/charmbracelet/bubbles/v2/key"
	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/monthgrid/pkg/monthgrid"
	"tableflip.dev/monthgrid/pkg/tui/events"
	"tableflip.dev/monthgrid/pkg/tui/ui"
)

// Model renders a month grid with a movable cursor. Selections and month
// changes are reported as events.DateChangeMsg and events.DisplayChangeMsg;
// the host feeds the results back through SetValue and SetDisplayDate.
type Model struct {
	id   events.ComponentID
	grid *monthgrid.Grid

	cursor int
	// landing is the day the cursor moves to once the host shows the month
	// requested by walking off the grid edge.
	landing *time.Time

	focused  bool
	keys     KeyMap
	help     help.Model
	showHelp bool
	opts     Options

	width  int
	height int

	pending []tea.Cmd
}

var (
	_ ui.Component = (*Model)(nil)
	_ ui.Focusable = (*Model)(nil)
)

// NewModel wraps grid in a calendar component. The component takes over the
// grid's callbacks.
func NewModel(id events.ComponentID, grid *monthgrid.Grid) *Model {
	if grid == nil {
		grid = monthgrid.New()
	}
	m := &Model{
		id:       id,
		grid:     grid,
		focused:  true,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		showHelp: true,
		opts:     DefaultOptions(),
	}
	grid.SetOnChange(func(name string, date time.Time) {
		m.pending = append(m.pending, events.DateChangeCmd(m.id, name, date))
	})
	grid.SetOnChangeDisplay(func(name string, date time.Time) {
		m.pending = append(m.pending, events.DisplayChangeCmd(m.id, name, date))
	})
	m.resetCursor()
	return m
}

// ID returns the component identifier stamped on emitted events.
func (m *Model) ID() events.ComponentID { return m.id }

// Grid exposes the wrapped grid.
func (m *Model) Grid() *monthgrid.Grid { return m.grid }

// Cursor returns the focused day number.
func (m *Model) Cursor() int { return m.cursor }

// Focused reports whether the component reacts to keys.
func (m *Model) Focused() bool { return m.focused }

// SetFocus toggles key handling and the cursor highlight.
func (m *Model) SetFocus(f bool) { m.focused = f }

// SetOptions overrides the rendering options.
func (m *Model) SetOptions(opts Options) { m.opts = opts }

// SetKeyMap overrides the key bindings.
func (m *Model) SetKeyMap(k KeyMap) { m.keys = k }

// SetShowHelp toggles the key help line.
func (m *Model) SetShowHelp(show bool) { m.showHelp = show }

// SetValue updates the selected date and moves the cursor onto it when it is
// in the displayed month.
func (m *Model) SetValue(value *time.Time) {
	m.grid.SetValue(value)
	if value != nil && m.inDisplay(*value) {
		m.cursor = value.Day()
	}
}

// SetDisplayDate shows the month containing date.
func (m *Model) SetDisplayDate(date time.Time) {
	m.grid.SetDisplayMonth(date)
	if m.landing != nil && m.inDisplay(*m.landing) {
		m.cursor = m.landing.Day()
		m.landing = nil
		return
	}
	m.landing = nil
	m.resetCursor()
}

// SetSize records the available area.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Init implements ui.Component.
func (m *Model) Init() tea.Cmd { return nil }

// Update handles movement, selection and paging keys.
func (m *Model) Update(msg tea.Msg) (ui.Component, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
	case events.FocusMsg:
		if msg.Component == m.id {
			m.focused = true
		}
	case events.BlurMsg:
		if msg.Component == m.id {
			m.focused = false
		}
	case tea.KeyMsg:
		if m.focused {
			m.handleKey(msg)
		}
	}
	return m, m.flush()
}

// View renders the calendar and the key help.
func (m *Model) View() string {
	view := View{Today: m.grid.Now()}
	if m.focused {
		view.Cursor = m.cursor
	}
	out := Render(m.grid, view, m.opts)
	if m.showHelp {
		out += "\n\n" + m.help.View(m.keys)
	}
	return out
}

func (m *Model) handleKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.Left):
		m.move(-1)
	case key.Matches(msg, m.keys.Right):
		m.move(1)
	case key.Matches(msg, m.keys.Up):
		m.move(-7)
	case key.Matches(msg, m.keys.Down):
		m.move(7)
	case key.Matches(msg, m.keys.Select):
		if m.grid.IsValidDayNum(m.cursor) {
			m.grid.OnCellClick(m.cursor)
		}
	case key.Matches(msg, m.keys.Today):
		m.grid.OnSelectToday()
	case key.Matches(msg, m.keys.PrevMonth):
		m.grid.OnMonthNavigate(m.grid.PrevMonth())
	case key.Matches(msg, m.keys.NextMonth):
		m.grid.OnMonthNavigate(m.grid.NextMonth())
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
}

func (m *Model) move(delta int) {
	next := m.cursor + delta
	if m.grid.IsValidDayNum(next) {
		m.cursor = next
		return
	}
	target := m.grid.DateForDayNum(next)
	m.landing = &target
	m.grid.OnMonthNavigate(time.Date(target.Year(), target.Month(), 1, 0, 0, 0, 0, target.Location()))
}

func (m *Model) resetCursor() {
	if v := m.grid.Value(); v != nil && m.inDisplay(*v) {
		m.cursor = v.Day()
		return
	}
	if now := m.grid.Now(); m.inDisplay(now) {
		m.cursor = now.Day()
		return
	}
	m.cursor = 1
}

func (m *Model) inDisplay(t time.Time) bool {
	d := m.grid.DisplayMonth()
	return t.Year() == d.Year() && t.Month() == d.Month()
}

func (m *Model) flush() tea.Cmd {
	pending := m.pending
	m.pending = nil
	switch len(pending) {
	case 0:
		return nil
	case 1:
		return pending[0]
	default:
		return tea.Batch(pending...)
	}
}
