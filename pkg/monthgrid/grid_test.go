package monthgrid

import (
	"reflect"
	"testing"
	"time"
)

var now = time.Date(2019, time.December, 1, 0, 0, 0, 0, time.UTC)

func newTestGrid(opts ...Option) *Grid {
	return New(append([]Option{WithClock(FixedClock(now))}, opts...)...)
}

func march2019(opts ...Option) *Grid {
	return newTestGrid(append(opts, WithDisplayDate(time.Date(2019, time.March, 1, 0, 0, 0, 0, time.UTC)))...)
}

func TestDefaultDisplayMonthComesFromClock(t *testing.T) {
	g := newTestGrid()
	if !g.DisplayMonth().Equal(now) {
		t.Fatalf("expected display month %v, got %v", now, g.DisplayMonth())
	}
	if g.Name() != "" {
		t.Fatalf("expected empty name, got %q", g.Name())
	}
	if g.Value() != nil {
		t.Fatalf("expected no selection, got %v", g.Value())
	}
}

func TestGeometry(t *testing.T) {
	tests := []struct {
		name    string
		display time.Time
		offset  int
		days    int
		weeks   int
	}{
		{
			name:    "December 2019 starts on Sunday",
			display: time.Date(2019, time.December, 1, 0, 0, 0, 0, time.UTC),
			offset:  1,
			days:    31,
			weeks:   5,
		},
		{
			name:    "March 2019 starts on Friday",
			display: time.Date(2019, time.March, 1, 0, 0, 0, 0, time.UTC),
			offset:  -4,
			days:    31,
			weeks:   6,
		},
		{
			name:    "February 2015 fills four rows",
			display: time.Date(2015, time.February, 1, 0, 0, 0, 0, time.UTC),
			offset:  1,
			days:    28,
			weeks:   4,
		},
		{
			name:    "leap February",
			display: time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC),
			offset:  -3,
			days:    29,
			weeks:   5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGrid(WithDisplayDate(tt.display))
			if got := g.DayOffset(); got != tt.offset {
				t.Errorf("DayOffset() = %d, want %d", got, tt.offset)
			}
			if got := g.DaysInMonth(); got != tt.days {
				t.Errorf("DaysInMonth() = %d, want %d", got, tt.days)
			}
			if got := g.WeekCount(); got != tt.weeks {
				t.Errorf("WeekCount() = %d, want %d", got, tt.weeks)
			}
			seq := g.CellSequence()
			if len(seq) != tt.weeks*7 {
				t.Fatalf("expected %d cells, got %d", tt.weeks*7, len(seq))
			}
			for i, n := range seq {
				if n != i+tt.offset {
					t.Fatalf("cell %d holds %d, want %d", i, n, i+tt.offset)
				}
			}
		})
	}
}

func TestSetDisplayMonthTruncates(t *testing.T) {
	g := newTestGrid()
	g.SetDisplayMonth(time.Date(2019, time.March, 17, 15, 4, 5, 6, time.UTC))

	want := time.Date(2019, time.March, 1, 0, 0, 0, 0, time.UTC)
	if !g.DisplayMonth().Equal(want) {
		t.Fatalf("expected %v, got %v", want, g.DisplayMonth())
	}
	if got := g.DayOffset(); got != -4 {
		t.Fatalf("expected offset -4 after truncation, got %d", got)
	}
}

func TestSetDisplayMonthZeroTimePropagates(t *testing.T) {
	g := newTestGrid()
	g.SetDisplayMonth(time.Time{})

	if g.DisplayMonth().Year() != 1 || g.DisplayMonth().Month() != time.January {
		t.Fatalf("expected zero month to be kept, got %v", g.DisplayMonth())
	}
	if g.DaysInMonth() != 31 {
		t.Fatalf("expected 31 days for January, got %d", g.DaysInMonth())
	}
}

func TestCellSequenceIsStable(t *testing.T) {
	g := march2019()
	first := g.CellSequence()
	second := g.CellSequence()
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("sequences differ:\n%v\n%v", first, second)
	}

	first[0] = 99
	if g.CellSequence()[0] != -4 {
		t.Fatalf("caller mutation leaked into the grid")
	}
}

func TestCellSequenceFollowsDisplayMonth(t *testing.T) {
	g := march2019()
	g.SetDisplayMonth(now)
	seq := g.CellSequence()
	if len(seq) != 35 || seq[0] != 1 || seq[34] != 35 {
		t.Fatalf("unexpected December sequence: %v", seq)
	}
}

func TestIsValidDayNum(t *testing.T) {
	g := newTestGrid()
	for _, n := range []int{0, -1, 32} {
		if g.IsValidDayNum(n) {
			t.Errorf("expected %d to be invalid", n)
		}
	}
	for _, n := range []int{1, 31, 12} {
		if !g.IsValidDayNum(n) {
			t.Errorf("expected %d to be valid", n)
		}
	}
}

func TestDateForDayNum(t *testing.T) {
	g := newTestGrid()
	if got, want := g.DateForDayNum(15), time.Date(2019, time.December, 15, 0, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Fatalf("DateForDayNum(15) = %v, want %v", got, want)
	}

	m := march2019()
	if got, want := m.DateForDayNum(32), time.Date(2019, time.April, 1, 0, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Fatalf("DateForDayNum(32) = %v, want %v", got, want)
	}
	if got, want := m.DateForDayNum(0), time.Date(2019, time.February, 28, 0, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Fatalf("DateForDayNum(0) = %v, want %v", got, want)
	}
}

func TestPrevNextMonth(t *testing.T) {
	g := newTestGrid()
	if got, want := g.PrevMonth(), time.Date(2019, time.November, 1, 0, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Fatalf("PrevMonth() = %v, want %v", got, want)
	}
	if got, want := g.NextMonth(), time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Fatalf("NextMonth() = %v, want %v", got, want)
	}
}

func TestValueIsCopied(t *testing.T) {
	v := time.Date(2019, time.March, 1, 0, 0, 0, 0, time.UTC)
	g := march2019()
	g.SetValue(&v)
	v = v.AddDate(0, 0, 5)
	if got := g.Value(); got == nil || got.Day() != 1 {
		t.Fatalf("expected stored value to stay on day 1, got %v", got)
	}
	g.SetValue(nil)
	if g.Value() != nil {
		t.Fatalf("expected selection to clear")
	}
}
