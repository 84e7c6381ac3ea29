// Package calendar renders month grids and wraps them in a Bubble Tea component.
package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss/v2"
	colorful "github.com/lucasb-eyer/go-colorful"

	"tableflip.dev/monthgrid/pkg/monthgrid"
)

// cellWidth is the printable width of one day cell.
const cellWidth = 2

// Options controls calendar styling.
type Options struct {
	TitleStyle       lipgloss.Style
	HeaderStyle      lipgloss.Style
	DayStyle         lipgloss.Style
	PlaceholderStyle lipgloss.Style
	BandStyle        lipgloss.Style
	TodayStyle       lipgloss.Style
	SelectedStyle    lipgloss.Style
	CursorStyle      lipgloss.Style

	ShowTitle  bool
	ShowHeader bool

	// Header and Footer add extra lines around the grid.
	Header func(g *monthgrid.Grid) string
	Footer func(g *monthgrid.Grid) string

	// Day and Placeholder replace the built-in cell rendering.
	Day         monthgrid.CellFunc
	Placeholder monthgrid.CellFunc
}

// View carries the per-render state that is not part of the grid itself.
type View struct {
	Today time.Time
	// Cursor is the focused day number; zero hides the cursor.
	Cursor int
}

// Render produces a multi-line calendar string for the grid's month.
func Render(g *monthgrid.Grid, view View, opts Options) string {
	if g == nil {
		return ""
	}

	var lines []string
	if opts.Header != nil {
		if h := opts.Header(g); h != "" {
			lines = append(lines, h)
		}
	}
	if opts.ShowTitle {
		lines = append(lines, opts.TitleStyle.Render(Title(g.DisplayMonth())))
	}
	if opts.ShowHeader {
		lines = append(lines, opts.HeaderStyle.Render(strings.Join(monthgrid.DaySymbols[:], " ")))
	}

	day := opts.Day
	if day == nil {
		day = func(c monthgrid.Cell) string { return renderDay(c, view.Cursor, opts) }
	}
	placeholder := opts.Placeholder
	if placeholder == nil {
		placeholder = func(monthgrid.Cell) string { return opts.PlaceholderStyle.Render(strings.Repeat(" ", cellWidth)) }
	}

	for _, week := range monthgrid.Weeks(g.Cells(view.Today)) {
		rendered := monthgrid.Each(week, day, placeholder)
		var b strings.Builder
		for i, cell := range week {
			if i > 0 {
				b.WriteString(separator(cell, opts))
			}
			b.WriteString(rendered[i])
		}
		lines = append(lines, b.String())
	}

	if opts.Footer != nil {
		if f := opts.Footer(g); f != "" {
			lines = append(lines, f)
		}
	}
	return strings.Join(lines, "\n")
}

// Title centres the month name above a grid row.
func Title(month time.Time) string {
	width := 7*cellWidth + 6
	text := month.Format("January 2006")
	if len(text) >= width {
		return text
	}
	left := (width - len(text)) / 2
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", width-left-len(text))
}

// separator joins the band across the gap before cell.
func separator(cell monthgrid.Cell, opts Options) string {
	switch cell.Span {
	case monthgrid.SpanMiddle, monthgrid.SpanEnd:
		return opts.BandStyle.Render(" ")
	}
	return " "
}

func renderDay(c monthgrid.Cell, cursor int, opts Options) string {
	text := fmt.Sprintf("%*d", cellWidth, c.Day)

	style := opts.DayStyle
	if c.Span != monthgrid.SpanNone {
		style = style.Inherit(opts.BandStyle)
	}
	if c.Today {
		style = style.Inherit(opts.TodayStyle)
	}
	if c.Selected {
		style = opts.SelectedStyle.Inherit(style)
	}
	if cursor > 0 && c.Day == cursor {
		style = opts.CursorStyle.Inherit(style)
	}
	return style.Render(text)
}

// DefaultOptions returns the styling used for calendar rendering.
func DefaultOptions() Options {
	selected := "#5f5fff"
	band := blend(selected, "#1c1c1c", 0.65)

	return Options{
		TitleStyle:       lipgloss.NewStyle().Bold(true),
		HeaderStyle:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Bold(true),
		DayStyle:         lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
		PlaceholderStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		BandStyle:        lipgloss.NewStyle().Background(lipgloss.Color(band)),
		TodayStyle:       lipgloss.NewStyle().Underline(true),
		SelectedStyle:    lipgloss.NewStyle().Background(lipgloss.Color(selected)).Foreground(lipgloss.Color("0")).Bold(true),
		CursorStyle:      lipgloss.NewStyle().Reverse(true),
		ShowTitle:        true,
		ShowHeader:       true,
	}
}

// blend mixes two hex colours in Lab space, falling back to from on bad input.
func blend(from, to string, t float64) string {
	a, err := colorful.Hex(from)
	if err != nil {
		return from
	}
	b, err := colorful.Hex(to)
	if err != nil {
		return from
	}
	return a.BlendLab(b, t).Clamped().Hex()
}
