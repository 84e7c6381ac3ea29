package printers

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/monthgrid/pkg/monthgrid"
)

func march2019(t *testing.T) *monthgrid.Grid {
	t.Helper()
	v := time.Date(2019, time.March, 14, 0, 0, 0, 0, time.UTC)
	return monthgrid.New(
		monthgrid.WithDisplayDate(v),
		monthgrid.WithValue(v),
	)
}

func plain(t *testing.T) {
	t.Helper()
	was := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = was })
}

func TestMonth(t *testing.T) {
	plain(t)
	var buf bytes.Buffer
	pp := &PrettyPrint{Out: &buf}
	pp.Month(march2019(t), time.Date(2019, time.March, 3, 0, 0, 0, 0, time.UTC))

	lines := strings.Split(buf.String(), "\n")
	want := []string{
		"      March 2019",
		" Su Mo Tu We Th Fr Sa",
		"                 1  2",
		"  3  4  5  6  7  8  9",
		"[10 11 12 13 14 15 16]",
		" 17 18 19 20 21 22 23",
		" 24 25 26 27 28 29 30",
		" 31",
	}
	if len(lines) < len(want) {
		t.Fatalf("expected at least %d lines, got %d:\n%s", len(want), len(lines), buf.String())
	}
	for i, w := range want {
		if lines[i] != w {
			t.Fatalf("line %d: expected %q, got %q", i, w, lines[i])
		}
	}
}

func TestMonthBracketsBandAtMonthEdges(t *testing.T) {
	plain(t)
	tests := map[string]struct {
		selected time.Time
		row      int
		want     string
	}{
		"first week": {selected: time.Date(2019, time.March, 1, 0, 0, 0, 0, time.UTC), row: 0, want: strings.Repeat(" ", 15) + "[ 1  2]"},
		"last day":   {selected: time.Date(2019, time.March, 31, 0, 0, 0, 0, time.UTC), row: 5, want: "[31]"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			pp := &PrettyPrint{Out: &buf}
			pp.Month(monthgrid.New(monthgrid.WithDisplayDate(tt.selected), monthgrid.WithValue(tt.selected)), time.Time{})

			lines := strings.Split(buf.String(), "\n")
			if got := lines[2+tt.row]; got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestCells(t *testing.T) {
	plain(t)
	var buf bytes.Buffer
	pp := &PrettyPrint{Out: &buf, Markers: true}
	pp.Cells(march2019(t), time.Date(2019, time.March, 3, 0, 0, 0, 0, time.UTC))

	out := buf.String()
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 1+42 {
		t.Fatalf("expected header and 42 cells, got %d lines", len(lines))
	}
	for _, col := range []string{"INDEX", "SELECTED", "SPAN"} {
		if !strings.Contains(lines[0], col) {
			t.Fatalf("header %q missing %s", lines[0], col)
		}
	}
	// Cell 14 is Sunday March 10, the start of the selected week.
	if !strings.Contains(lines[1+14], "start") {
		t.Fatalf("expected start marker, got %q", lines[1+14])
	}
	if f := strings.Fields(lines[1+18]); len(f) < 6 || f[3] != "14" || f[5] != "true" {
		t.Fatalf("expected day 14 selected, got %q", lines[1+18])
	}
}

func TestCellsWithoutMarkers(t *testing.T) {
	plain(t)
	var buf bytes.Buffer
	pp := &PrettyPrint{Out: &buf}
	pp.Cells(march2019(t), time.Now())
	if strings.Contains(buf.String(), "SPAN") {
		t.Fatalf("span column should be hidden")
	}
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	pp := &PrettyPrint{Out: &buf}
	if err := pp.JSON(map[string]int{"day": 14}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.String() != "{\n  \"day\": 14\n}\n" {
		t.Fatalf("unexpected json %q", buf.String())
	}
}
