package monthgrid

import "fmt"

// SpanMarker describes a cell's place in the highlight band drawn across the
// selected date's week.
type SpanMarker int

const (
	// SpanNone marks cells outside the band.
	SpanNone SpanMarker = iota
	// SpanStart marks the first cell of the band.
	SpanStart
	// SpanEnd marks the last cell of the band.
	SpanEnd
	// SpanStartEnd marks a band that is a single cell wide.
	SpanStartEnd
	// SpanMiddle marks cells strictly inside the band.
	SpanMiddle
)

// String returns the compact symbol for the marker.
func (s SpanMarker) String() string {
	switch s {
	case SpanStart:
		return "<"
	case SpanEnd:
		return ">"
	case SpanStartEnd:
		return "<>"
	case SpanMiddle:
		return "="
	default:
		return ""
	}
}

// Name returns a readable name for the marker.
func (s SpanMarker) Name() string {
	switch s {
	case SpanStart:
		return "start"
	case SpanEnd:
		return "end"
	case SpanStartEnd:
		return "start-and-end"
	case SpanMiddle:
		return "middle"
	default:
		return "none"
	}
}

// MarshalText encodes the marker by name.
func (s SpanMarker) MarshalText() ([]byte, error) {
	return []byte(s.Name()), nil
}

// UnmarshalText decodes a marker name.
func (s *SpanMarker) UnmarshalText(text []byte) error {
	for m := SpanNone; m <= SpanMiddle; m++ {
		if m.Name() == string(text) {
			*s = m
			return nil
		}
	}
	return fmt.Errorf("unknown span marker %q", text)
}

// IsSelected reports whether day n of the displayed month is the selected date.
// Only the month is compared unless the grid matches years.
func (g *Grid) IsSelected(n int) bool {
	return g.value != nil &&
		g.value.Day() == n &&
		g.sameMonth()
}

// SelectedWeekRow returns the grid row holding the selected day. The row is
// computed from the day number alone, so it is only meaningful when the
// selection falls in the displayed month.
func (g *Grid) SelectedWeekRow() (int, bool) {
	if g.value == nil {
		return 0, false
	}
	return floorDiv(g.value.Day()-g.DayOffset(), 7), true
}

// SpanMarker returns the band role of the cell at cellIndex holding day n.
func (g *Grid) SpanMarker(n, cellIndex int) SpanMarker {
	if g.value == nil || !g.IsValidDayNum(n) || !g.sameMonth() {
		return SpanNone
	}
	row, _ := g.SelectedWeekRow()
	if floorDiv(cellIndex, 7) != row {
		return SpanNone
	}

	date := g.value.Day()
	weekday := int(g.value.Weekday())
	startDay := max(1, date-weekday)
	endDay := min(6-weekday+date, g.DaysInMonth())

	switch {
	case n == startDay && n == endDay:
		return SpanStartEnd
	case n == startDay:
		return SpanStart
	case n == endDay:
		return SpanEnd
	default:
		return SpanMiddle
	}
}

func (g *Grid) sameMonth() bool {
	if g.value == nil {
		return false
	}
	if g.value.Month() != g.display.Month() {
		return false
	}
	return !g.matchYear || g.value.Year() == g.display.Year()
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
