package monthgrid

import "time"

// OnCellClick reports day n of the displayed month through OnChange. The day
// is not validated; hosts only wire clicks to valid cells.
func (g *Grid) OnCellClick(n int) {
	g.onChange(g.name, g.DateForDayNum(n))
}

// OnSelectToday reports the clock's current instant through OnChange.
func (g *Grid) OnSelectToday() {
	g.onChange(g.name, g.clock.Now())
}

// OnMonthNavigate asks the host to display another month. The grid keeps its
// current month until the host sets a new one.
func (g *Grid) OnMonthNavigate(date time.Time) {
	g.onChangeDisplay(g.name, date)
}

// Now returns the grid clock's current instant.
func (g *Grid) Now() time.Time {
	return g.clock.Now()
}
