package monthgrid

import (
	"fmt"
	"time"
)

// DaySymbols are the Sunday-first weekday labels used for header rows.
var DaySymbols = [7]string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}

// DayRefPrefix prefixes the ID of every valid day cell.
const DayRefPrefix = "day-"

// Cell is the render data for one grid slot.
type Cell struct {
	Index    int        `json:"index"`
	Row      int        `json:"row"`
	Column   int        `json:"column"`
	Day      int        `json:"day"`
	Valid    bool       `json:"valid"`
	Selected bool       `json:"selected"`
	Today    bool       `json:"today"`
	Span     SpanMarker `json:"span"`
	ID       string     `json:"id,omitempty"`
}

// Weekday returns the weekday of the cell's column.
func (c Cell) Weekday() time.Weekday { return time.Weekday(c.Column) }

// CellFunc renders a single cell. Hosts inject one to customise output.
type CellFunc func(Cell) string

// Cells returns render data for every slot in the grid. today marks the cell
// matching that calendar date; pass the zero time to skip it.
func (g *Grid) Cells(today time.Time) []Cell {
	todayDay := 0
	if !today.IsZero() && today.Year() == g.display.Year() && today.Month() == g.display.Month() {
		todayDay = today.Day()
	}

	cells := make([]Cell, len(g.dayNums))
	for i, n := range g.dayNums {
		c := Cell{
			Index:  i,
			Row:    i / 7,
			Column: i % 7,
			Day:    n,
		}
		if g.IsValidDayNum(n) {
			c.Valid = true
			c.Selected = g.IsSelected(n)
			c.Today = n == todayDay
			c.Span = g.SpanMarker(n, i)
			c.ID = fmt.Sprintf("%s-%d", DayRefPrefix, i)
		}
		cells[i] = c
	}
	return cells
}

// Weeks groups cells into rows of seven.
func Weeks(cells []Cell) [][]Cell {
	rows := make([][]Cell, 0, (len(cells)+6)/7)
	for i := 0; i < len(cells); i += 7 {
		end := min(i+7, len(cells))
		rows = append(rows, cells[i:end])
	}
	return rows
}

// Each renders every cell with valid or placeholder depending on the cell.
func Each(cells []Cell, valid, placeholder CellFunc) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		if c.Valid {
			out[i] = valid(c)
			continue
		}
		out[i] = placeholder(c)
	}
	return out
}
