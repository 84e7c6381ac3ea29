// Package monthgrid computes the layout, selection state and interactions of a
// Sunday-first month calendar grid.
//
// A Grid is a pure function of two host inputs: the displayed month and the
// optional selected value. Hosts render the data it produces and receive user
// interactions back through the OnChange and OnChangeDisplay callbacks.
package monthgrid

import (
	"time"
)

// ChangeFunc receives the grid name and the date associated with an interaction.
type ChangeFunc func(name string, date time.Time)

// Grid holds the inputs of a month calendar and derives everything else.
type Grid struct {
	name    string
	value   *time.Time
	display time.Time

	dayNums []int

	clock     Clock
	matchYear bool

	onChange        ChangeFunc
	onChangeDisplay ChangeFunc
}

// Option configures a Grid.
type Option func(*Grid)

// WithName sets the label echoed back in callbacks.
func WithName(name string) Option {
	return func(g *Grid) { g.name = name }
}

// WithValue sets the selected date.
func WithValue(value time.Time) Option {
	return func(g *Grid) { g.SetValue(&value) }
}

// WithDisplayDate sets the displayed month. Any day of the month is accepted.
func WithDisplayDate(date time.Time) Option {
	return func(g *Grid) { g.SetDisplayMonth(date) }
}

// WithClock replaces the system clock used for defaults and "select today".
func WithClock(c Clock) Option {
	return func(g *Grid) {
		if c != nil {
			g.clock = c
		}
	}
}

// WithMatchYear makes selection checks compare the year as well as the month.
func WithMatchYear(match bool) Option {
	return func(g *Grid) { g.matchYear = match }
}

// WithOnChange registers the callback fired on day clicks and "select today".
func WithOnChange(fn ChangeFunc) Option {
	return func(g *Grid) { g.SetOnChange(fn) }
}

// WithOnChangeDisplay registers the callback fired on month navigation.
func WithOnChangeDisplay(fn ChangeFunc) Option {
	return func(g *Grid) { g.SetOnChangeDisplay(fn) }
}

// New creates a grid showing the clock's current month with no selection.
func New(opts ...Option) *Grid {
	g := &Grid{
		clock:           SystemClock{},
		onChange:        func(string, time.Time) {},
		onChangeDisplay: func(string, time.Time) {},
	}
	// Options run first so an injected clock decides the default month.
	for _, opt := range opts {
		opt(g)
	}
	if g.display.IsZero() && g.dayNums == nil {
		g.SetDisplayMonth(g.clock.Now())
	}
	return g
}

// Name returns the label echoed back in callbacks.
func (g *Grid) Name() string { return g.name }

// SetName updates the callback label.
func (g *Grid) SetName(name string) { g.name = name }

// Value returns the selected date, or nil when nothing is selected.
func (g *Grid) Value() *time.Time {
	if g.value == nil {
		return nil
	}
	v := *g.value
	return &v
}

// SetValue replaces the selected date. Nil clears the selection.
func (g *Grid) SetValue(value *time.Time) {
	if value == nil {
		g.value = nil
		return
	}
	v := *value
	g.value = &v
}

// MatchYear reports whether selection checks compare years.
func (g *Grid) MatchYear() bool { return g.matchYear }

// SetOnChange registers the day selection callback. Nil installs a no-op.
func (g *Grid) SetOnChange(fn ChangeFunc) {
	if fn == nil {
		fn = func(string, time.Time) {}
	}
	g.onChange = fn
}

// SetOnChangeDisplay registers the month navigation callback. Nil installs a no-op.
func (g *Grid) SetOnChangeDisplay(fn ChangeFunc) {
	if fn == nil {
		fn = func(string, time.Time) {}
	}
	g.onChangeDisplay = fn
}

// SetDisplayMonth truncates date to the first of its month and makes it the
// displayed month. Dates are not validated.
func (g *Grid) SetDisplayMonth(date time.Time) {
	g.display = time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
	g.recompute()
}

// DisplayMonth returns the first day of the displayed month.
func (g *Grid) DisplayMonth() time.Time { return g.display }

// DayOffset is the day number that lands in cell 0. Values below 1 are
// placeholders for the previous month.
func (g *Grid) DayOffset() int {
	return 1 - int(g.display.Weekday())
}

// DaysInMonth returns the length of the displayed month.
func (g *Grid) DaysInMonth() int {
	return time.Date(g.display.Year(), g.display.Month()+1, 0, 0, 0, 0, 0, g.display.Location()).Day()
}

// WeekCount returns the number of grid rows needed for the displayed month.
func (g *Grid) WeekCount() int {
	spaces := g.DaysInMonth() + int(g.display.Weekday())
	return (spaces + 6) / 7
}

// CellSequence returns the day number held by every cell, placeholders included.
func (g *Grid) CellSequence() []int {
	return append([]int(nil), g.dayNums...)
}

// IsValidDayNum reports whether n is a real day of the displayed month.
func (g *Grid) IsValidDayNum(n int) bool {
	return n > 0 && n <= g.DaysInMonth()
}

// DateForDayNum returns the displayed month with its day set to n. Out of
// range values roll over into the neighbouring months.
func (g *Grid) DateForDayNum(n int) time.Time {
	d := g.display
	return time.Date(d.Year(), d.Month(), n, d.Hour(), d.Minute(), d.Second(), d.Nanosecond(), d.Location())
}

// PrevMonth returns the first day of the month before the displayed one.
func (g *Grid) PrevMonth() time.Time { return g.display.AddDate(0, -1, 0) }

// NextMonth returns the first day of the month after the displayed one.
func (g *Grid) NextMonth() time.Time { return g.display.AddDate(0, 1, 0) }

func (g *Grid) recompute() {
	count := g.WeekCount() * 7
	offset := g.DayOffset()

	g.dayNums = make([]int, count)
	for i := range g.dayNums {
		g.dayNums[i] = i + offset
	}
}
