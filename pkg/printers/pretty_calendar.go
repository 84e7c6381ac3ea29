package printers

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/monthgrid/pkg/monthgrid"
)

const width = len("11 12 13 14 15 16 17") // an example week

// Month prints the grid's month with the selected week banded. Without colour
// the band is bracketed instead, using a one column margin on each side.
func (pp *PrettyPrint) Month(g *monthgrid.Grid, today time.Time) {
	out := pp.out()
	margin := ""
	if color.NoColor {
		margin = " "
	}

	tf := color.New(color.FgWhite, color.Italic)
	m := g.DisplayMonth().Format("January 2006")
	mid := max(0, (width-len(m))/2)
	_, _ = tf.Fprintf(out, "%s%s%s\n", margin, strings.Repeat(" ", mid), m)

	hf := color.New(color.Faint)
	_, _ = hf.Fprintln(out, margin+strings.Join(monthgrid.DaySymbols[:], " "))

	for _, week := range monthgrid.Weeks(g.Cells(today)) {
		var b strings.Builder
		if color.NoColor {
			b.WriteString(bracket(nil, &week[0]))
		}
		for i, c := range week {
			if i > 0 {
				if color.NoColor {
					b.WriteString(bracket(&week[i-1], &week[i]))
				} else {
					b.WriteString(gap(c))
				}
			}
			b.WriteString(day(c))
		}
		if color.NoColor {
			b.WriteString(bracket(&week[len(week)-1], nil))
		}
		_, _ = fmt.Fprintln(out, strings.TrimRight(b.String(), " "))
	}
	_, _ = fmt.Fprintln(out)
}

// Cells prints one row per grid cell.
func (pp *PrettyPrint) Cells(g *monthgrid.Grid, today time.Time) {
	header := []string{"index", "row", "col", "day", "valid", "selected", "today"}
	if pp.Markers {
		header = append(header, "span")
	}
	var rows [][]string
	for _, c := range g.Cells(today) {
		row := []string{
			strconv.Itoa(c.Index),
			strconv.Itoa(c.Row),
			monthgrid.DaySymbols[c.Column],
			strconv.Itoa(c.Day),
			strconv.FormatBool(c.Valid),
			strconv.FormatBool(c.Selected),
			strconv.FormatBool(c.Today),
		}
		if pp.Markers {
			row = append(row, c.Span.Name())
		}
		rows = append(rows, row)
	}
	pp.Table(header, rows)
}

var band = color.New(color.BgBlue, color.FgHiWhite)

func day(c monthgrid.Cell) string {
	if !c.Valid {
		return "  "
	}
	var attrs []color.Attribute
	switch {
	case c.Selected:
		attrs = append(attrs, color.BgHiBlue, color.FgBlack, color.Bold)
	case c.Span != monthgrid.SpanNone:
		attrs = append(attrs, color.BgBlue, color.FgHiWhite)
	}
	if c.Today {
		attrs = append(attrs, color.Underline)
	}
	return color.New(attrs...).Sprintf("%2d", c.Day)
}

// gap joins the band across the space before c.
func gap(c monthgrid.Cell) string {
	switch c.Span {
	case monthgrid.SpanMiddle, monthgrid.SpanEnd:
		return band.Sprint(" ")
	}
	return " "
}

// bracket is the plain-text separator between prev and next; either may be
// nil at a row edge.
func bracket(prev, next *monthgrid.Cell) string {
	if next != nil && (next.Span == monthgrid.SpanStart || next.Span == monthgrid.SpanStartEnd) {
		return "["
	}
	if prev != nil && (prev.Span == monthgrid.SpanEnd || prev.Span == monthgrid.SpanStartEnd) {
		return "]"
	}
	return " "
}
