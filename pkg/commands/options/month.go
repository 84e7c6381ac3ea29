// Package options defines shared flag helpers for CLI commands.
package options

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

const (
	layoutMonth    = "2006-01"
	layoutISO      = "2006-1-2"
	layoutISOShort = "1/2"
)

// MonthOptions picks the displayed month and the selected date.
type MonthOptions struct {
	Month    string
	Selected string
}

// AddMonthArgs wires the month and selection flags on the provided command.
func AddMonthArgs(cmd *cobra.Command, o *MonthOptions) {
	cmd.Flags().StringVarP(&o.Month, "month", "m", "",
		`Month to display, example: --month="2019-03". Defaults to the selected date's month.`)
	cmd.Flags().StringVarP(&o.Selected, "selected", "s", "",
		`Selected date, example: --selected="2019-3-14" or --selected="3/14".`)
}

// GetMonth returns the first day of the requested month, or nil when unset.
func (o *MonthOptions) GetMonth() (*time.Time, error) {
	if o.Month == "" {
		return nil, nil
	}
	t, err := time.Parse(layoutMonth, o.Month)
	if err != nil {
		return nil, fmt.Errorf("invalid --month %q, expected YYYY-MM", o.Month)
	}
	return &t, nil
}

// GetSelected returns the selected date, or nil when unset.
func (o *MonthOptions) GetSelected(now time.Time) (*time.Time, error) {
	if o.Selected == "" {
		return nil, nil
	}
	t, err := time.Parse(layoutISO, o.Selected)
	if err != nil {
		// Month and day only; keep the current year.
		t, err = time.Parse(layoutISOShort, o.Selected)
		if err != nil {
			return nil, fmt.Errorf("invalid --selected %q, expected YYYY-M-D or M/D", o.Selected)
		}
		d := time.Date(now.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
		if d.Month() != t.Month() {
			return nil, fmt.Errorf("invalid --selected %q, %d has no %s %d", o.Selected, now.Year(), t.Month(), t.Day())
		}
		t = d
	}
	return &t, nil
}
