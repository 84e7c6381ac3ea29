package app

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/monthgrid/pkg/monthgrid"
	"tableflip.dev/monthgrid/pkg/store"
	"tableflip.dev/monthgrid/pkg/tui/events"
)

type memoryStore struct {
	state store.State
	saved int
	err   error
}

func (s *memoryStore) Load() (store.State, bool, error) { return s.state, s.saved > 0, nil }

func (s *memoryStore) Save(st store.State) error {
	if s.err != nil {
		return s.err
	}
	s.state = st
	s.saved++
	return nil
}

func (s *memoryStore) Reset() error {
	s.state = store.State{}
	s.saved = 0
	return nil
}

func newTestModel(p store.Persistence) *Model {
	g := monthgrid.New(
		monthgrid.WithName("due"),
		monthgrid.WithClock(monthgrid.FixedClock(time.Date(2019, time.December, 3, 10, 0, 0, 0, time.UTC))),
		monthgrid.WithDisplayDate(time.Date(2019, time.March, 1, 0, 0, 0, 0, time.UTC)),
	)
	return New(Options{Grid: g, Persistence: p})
}

// drive feeds msg through Update and then replays any emitted messages, the
// way the Bubble Tea runtime would.
func drive(m *Model, msg tea.Msg) {
	queue := []tea.Msg{msg}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		_, cmd := m.Update(next)
		if cmd == nil {
			continue
		}
		switch out := cmd().(type) {
		case nil:
		case tea.BatchMsg:
			for _, c := range out {
				if c != nil {
					queue = append(queue, c())
				}
			}
		default:
			queue = append(queue, out)
		}
	}
}

func TestEnterSelectsDayAndPersists(t *testing.T) {
	p := &memoryStore{}
	m := newTestModel(p)

	for i := 0; i < 13; i++ {
		drive(m, tea.KeyPressMsg{Code: tea.KeyRight})
	}
	drive(m, tea.KeyPressMsg{Code: tea.KeyEnter})

	g := m.Calendar().Grid()
	if !g.IsSelected(14) {
		t.Fatalf("expected day 14 to be selected")
	}
	if p.saved != 1 || p.state.Value == nil || p.state.Value.Day() != 14 || p.state.Name != "due" {
		t.Fatalf("unexpected saved state %+v (saves %d)", p.state, p.saved)
	}
	if len(m.Events().Entries()) != 1 {
		t.Fatalf("expected one logged callback, got %d", len(m.Events().Entries()))
	}
	if !strings.Contains(m.Status(), "Thu Mar 14, 2019") {
		t.Fatalf("unexpected status %q", m.Status())
	}
}

func TestPagingFeedsDisplayBack(t *testing.T) {
	p := &memoryStore{}
	m := newTestModel(p)

	drive(m, tea.KeyPressMsg{Text: "]", Code: ']'})
	if got := m.Calendar().Grid().DisplayMonth(); got.Month() != time.April {
		t.Fatalf("expected April, got %v", got)
	}
	if p.state.Display.Month() != time.April {
		t.Fatalf("expected April saved, got %v", p.state.Display)
	}
}

func TestTodayJumpsToItsMonth(t *testing.T) {
	m := newTestModel(nil)
	drive(m, tea.KeyPressMsg{Text: "t", Code: 't'})

	g := m.Calendar().Grid()
	if g.DisplayMonth().Month() != time.December || !g.IsSelected(3) {
		t.Fatalf("expected December 3 selected, got display %v value %v", g.DisplayMonth(), g.Value())
	}
	if m.Calendar().Cursor() != 3 {
		t.Fatalf("expected cursor on 3, got %d", m.Calendar().Cursor())
	}
}

func TestClearSelection(t *testing.T) {
	p := &memoryStore{}
	m := newTestModel(p)
	drive(m, tea.KeyPressMsg{Code: tea.KeyEnter})
	drive(m, tea.KeyPressMsg{Text: "x", Code: 'x'})
	if m.Calendar().Grid().Value() != nil || p.state.Value != nil {
		t.Fatalf("expected selection to be cleared")
	}
}

func TestSaveFailureShowsStatus(t *testing.T) {
	m := newTestModel(&memoryStore{err: errors.New("disk full")})
	drive(m, events.DateChangeMsg{Component: calendarID, Name: "due", Date: time.Date(2019, time.March, 2, 0, 0, 0, 0, time.UTC)})
	if !strings.Contains(m.Status(), "disk full") {
		t.Fatalf("expected failure in status, got %q", m.Status())
	}
}

func TestQuit(t *testing.T) {
	m := newTestModel(nil)
	_, cmd := m.Update(tea.KeyPressMsg{Text: "q", Code: 'q'})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected QuitMsg")
	}
}

func TestRestore(t *testing.T) {
	v := time.Date(2020, time.February, 29, 0, 0, 0, 0, time.UTC)
	p := &memoryStore{}
	_ = p.Save(store.State{Name: "due", Value: &v, Display: time.Date(2020, time.February, 1, 0, 0, 0, 0, time.UTC)})

	g := monthgrid.New()
	if err := Restore(g, p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.DisplayMonth().Month() != time.February || !g.IsSelected(29) {
		t.Fatalf("state not restored: display %v value %v", g.DisplayMonth(), g.Value())
	}
	if err := Restore(g, nil); err != nil {
		t.Fatalf("nil persistence should be ignored: %v", err)
	}
}

func TestViewWaitsForSize(t *testing.T) {
	m := newTestModel(nil)
	if m.View() != "Resizing…" {
		t.Fatalf("expected placeholder view")
	}
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 20})
	if !strings.Contains(m.View(), "March 2019") {
		t.Fatalf("expected calendar in view")
	}
}

func TestTabTogglesFocus(t *testing.T) {
	m := newTestModel(nil)
	drive(m, tea.KeyPressMsg{Code: tea.KeyTab})
	if m.Calendar().Focused() {
		t.Fatalf("expected calendar to blur")
	}
	drive(m, tea.KeyPressMsg{Code: tea.KeyRight})
	if m.Calendar().Cursor() != 1 {
		t.Fatalf("blurred calendar should ignore keys, cursor %d", m.Calendar().Cursor())
	}
	drive(m, tea.KeyPressMsg{Code: tea.KeyTab})
	if !m.Calendar().Focused() {
		t.Fatalf("expected calendar to regain focus")
	}
	if n := len(m.Events().Entries()); n != 2 {
		t.Fatalf("expected focus changes logged, got %d entries", n)
	}
}

func TestStateChangedElsewhere(t *testing.T) {
	changes := make(chan store.Event, 1)
	g := monthgrid.New(
		monthgrid.WithClock(monthgrid.FixedClock(time.Date(2019, time.December, 3, 10, 0, 0, 0, time.UTC))),
		monthgrid.WithDisplayDate(time.Date(2019, time.March, 1, 0, 0, 0, 0, time.UTC)),
	)
	p := &memoryStore{}
	m := New(Options{Grid: g, Persistence: p, Changes: changes})

	v := time.Date(2021, time.June, 20, 0, 0, 0, 0, time.UTC)
	changes <- store.Event{State: store.State{Value: &v, Display: time.Date(2021, time.June, 1, 0, 0, 0, 0, time.UTC)}}

	cmd := m.Init()
	if cmd == nil {
		t.Fatalf("expected Init to wait for changes")
	}
	_, next := m.Update(cmd())
	if next == nil {
		t.Fatalf("expected to keep waiting for changes")
	}
	if !g.IsSelected(20) || g.DisplayMonth().Month() != time.June {
		t.Fatalf("state not applied: display %v value %v", g.DisplayMonth(), g.Value())
	}
	if m.Calendar().Cursor() != 20 {
		t.Fatalf("expected cursor on 20, got %d", m.Calendar().Cursor())
	}
	if p.saved != 0 {
		t.Fatalf("external changes must not be saved again")
	}

	close(changes)
	if msg := next(); msg != nil {
		t.Fatalf("expected nil after close, got %T", msg)
	}
}

func TestLateEchoOfOwnSaveIsIgnored(t *testing.T) {
	p := &memoryStore{}
	g := monthgrid.New(
		monthgrid.WithClock(monthgrid.FixedClock(time.Date(2019, time.December, 3, 10, 0, 0, 0, time.UTC))),
		monthgrid.WithDisplayDate(time.Date(2019, time.March, 1, 0, 0, 0, 0, time.UTC)),
	)
	m := New(Options{Grid: g, Persistence: p, Changes: make(chan store.Event)})

	drive(m, tea.KeyPressMsg{Text: "]", Code: ']'})
	april := p.state
	drive(m, tea.KeyPressMsg{Text: "]", Code: ']'})
	may := p.state

	m.Update(stateChangedMsg(store.Event{State: april}))
	if got := g.DisplayMonth().Month(); got != time.May {
		t.Fatalf("stale echo moved display to %v, saved %v", got, p.state.Display.Month())
	}
	m.Update(stateChangedMsg(store.Event{State: may}))
	if got := g.DisplayMonth().Month(); got != time.May || m.Status() == "reloaded saved state" {
		t.Fatalf("own echo should be ignored, display %v status %q", got, m.Status())
	}

	// A state nobody here wrote is still applied.
	m.Update(stateChangedMsg(store.Event{State: april}))
	if got := g.DisplayMonth().Month(); got != time.April {
		t.Fatalf("expected external April to apply, got %v", got)
	}
}
