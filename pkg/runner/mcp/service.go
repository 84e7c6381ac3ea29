// Package mcp provides the Model Context Protocol server integration for monthgrid.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"tableflip.dev/monthgrid/pkg/monthgrid"
	"tableflip.dev/monthgrid/pkg/store"
)

const (
	monthLayout = "2006-01"
	dateLayout  = "2006-01-02"
)

// Service builds month grids on demand. Each call works on a fresh grid.
type Service struct {
	// Persistence is optional; without it the state lookups fail.
	Persistence store.Persistence
	Clock       monthgrid.Clock
	// MatchYear is used for the saved month; Month takes it per call.
	MatchYear bool
}

// ErrNoState is returned when no calendar state has been saved yet.
var ErrNoState = errors.New("no saved calendar state")

// MonthOptions captures the parameters used to lay out a month.
type MonthOptions struct {
	// Month is YYYY-MM; empty means the current month.
	Month string
	// Selected is YYYY-MM-DD; empty means no selection.
	Selected  string
	MatchYear bool
}

// MonthDTO is a transport-friendly projection of a grid.
type MonthDTO struct {
	Name            string           `json:"name,omitempty"`
	Month           string           `json:"month"`
	Title           string           `json:"title"`
	DayOffset       int              `json:"dayOffset"`
	DaysInMonth     int              `json:"daysInMonth"`
	WeekCount       int              `json:"weekCount"`
	Selected        string           `json:"selected,omitempty"`
	SelectedWeekRow *int             `json:"selectedWeekRow,omitempty"`
	Cells           []monthgrid.Cell `json:"cells"`
}

// DayDTO describes the date a day number resolves to.
type DayDTO struct {
	Day     int    `json:"day"`
	Date    string `json:"date"`
	Weekday string `json:"weekday"`
	InMonth bool   `json:"inMonth"`
}

// NewService builds a service wrapper using the provided persistence layer.
func NewService(p store.Persistence) *Service {
	return &Service{Persistence: p, Clock: monthgrid.SystemClock{}}
}

func (s *Service) now() time.Time {
	if s.Clock == nil {
		return time.Now()
	}
	return s.Clock.Now()
}

// Month lays out a single month.
func (s *Service) Month(ctx context.Context, opts MonthOptions) (*MonthDTO, error) {
	grid, err := s.grid(opts)
	if err != nil {
		return nil, err
	}
	return s.toDTO(grid), nil
}

// DateForDay resolves a day number against a month. Numbers outside the month
// roll over into the neighbouring months.
func (s *Service) DateForDay(ctx context.Context, month string, day int) (*DayDTO, error) {
	grid, err := s.grid(MonthOptions{Month: month})
	if err != nil {
		return nil, err
	}
	date := grid.DateForDayNum(day)
	return &DayDTO{
		Day:     day,
		Date:    date.Format(dateLayout),
		Weekday: date.Weekday().String(),
		InMonth: grid.IsValidDayNum(day),
	}, nil
}

// State lays out the month saved by the interactive calendar.
func (s *Service) State(ctx context.Context) (*MonthDTO, error) {
	if s.Persistence == nil {
		return nil, errors.New("persistence is not configured")
	}
	st, ok, err := s.Persistence.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load calendar state: %w", err)
	}
	if !ok {
		return nil, ErrNoState
	}

	opts := []monthgrid.Option{
		monthgrid.WithName(st.Name),
		monthgrid.WithClock(monthgrid.ClockFunc(s.now)),
		monthgrid.WithMatchYear(s.MatchYear),
	}
	if st.Value != nil {
		opts = append(opts, monthgrid.WithValue(*st.Value))
	}
	if !st.Display.IsZero() {
		opts = append(opts, monthgrid.WithDisplayDate(st.Display))
	}
	return s.toDTO(monthgrid.New(opts...)), nil
}

func (s *Service) grid(opts MonthOptions) (*monthgrid.Grid, error) {
	gopts := []monthgrid.Option{
		monthgrid.WithClock(monthgrid.ClockFunc(s.now)),
		monthgrid.WithMatchYear(opts.MatchYear),
	}

	if m := strings.TrimSpace(opts.Month); m != "" {
		display, err := ParseMonth(m)
		if err != nil {
			return nil, err
		}
		gopts = append(gopts, monthgrid.WithDisplayDate(display))
	}

	if sel := strings.TrimSpace(opts.Selected); sel != "" {
		value, err := ParseDate(sel)
		if err != nil {
			return nil, err
		}
		gopts = append(gopts, monthgrid.WithValue(value))
		if strings.TrimSpace(opts.Month) == "" {
			gopts = append(gopts, monthgrid.WithDisplayDate(value))
		}
	}
	return monthgrid.New(gopts...), nil
}

func (s *Service) toDTO(g *monthgrid.Grid) *MonthDTO {
	dto := &MonthDTO{
		Name:        g.Name(),
		Month:       g.DisplayMonth().Format(monthLayout),
		Title:       g.DisplayMonth().Format("January 2006"),
		DayOffset:   g.DayOffset(),
		DaysInMonth: g.DaysInMonth(),
		WeekCount:   g.WeekCount(),
		Cells:       g.Cells(s.now()),
	}
	if v := g.Value(); v != nil {
		dto.Selected = v.Format(dateLayout)
		// The band is only drawn when the selection is in view.
		if row, ok := g.SelectedWeekRow(); ok && g.IsSelected(v.Day()) {
			dto.SelectedWeekRow = &row
		}
	}
	return dto
}

// ParseMonth parses a YYYY-MM month.
func ParseMonth(value string) (time.Time, error) {
	t, err := time.Parse(monthLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month %q (expected YYYY-MM)", value)
	}
	return t, nil
}

// ParseDate parses a YYYY-MM-DD date.
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", value)
	}
	return t, nil
}
