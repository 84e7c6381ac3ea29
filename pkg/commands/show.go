package commands

import (
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"tableflip.dev/monthgrid/pkg/commands/options"
	"tableflip.dev/monthgrid/pkg/monthgrid"
	"tableflip.dev/monthgrid/pkg/printers"
	"tableflip.dev/monthgrid/pkg/store"
)

func addShow(topLevel *cobra.Command) {
	mo := &options.MonthOptions{}

	cmd := &cobra.Command{
		Use:   "show",
		Short: "print a month with the selected week banded",
		Example: `
monthgrid show
monthgrid show --month 2019-03 --selected 2019-3-14
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now()
			g, err := buildGrid(mo, now)
			if err != nil {
				return err
			}
			setColor()

			pp := printers.PrettyPrint{Out: cmd.OutOrStdout()}
			pp.Month(g, now)
			return nil
		},
	}

	options.AddMonthArgs(cmd, mo)

	topLevel.AddCommand(cmd)
}

// buildGrid lays out the month picked by the flags. The selection's month is
// shown unless --month says otherwise.
func buildGrid(mo *options.MonthOptions, now time.Time) (*monthgrid.Grid, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	display, err := mo.GetMonth()
	if err != nil {
		return nil, err
	}
	value, err := mo.GetSelected(now)
	if err != nil {
		return nil, err
	}

	opts := []monthgrid.Option{
		monthgrid.WithName(cfg.Name),
		monthgrid.WithMatchYear(cfg.MatchYear),
		monthgrid.WithClock(monthgrid.FixedClock(now)),
	}
	if value != nil {
		opts = append(opts, monthgrid.WithValue(*value), monthgrid.WithDisplayDate(*value))
	}
	if display != nil {
		opts = append(opts, monthgrid.WithDisplayDate(*display))
	}
	return monthgrid.New(opts...), nil
}

func setColor() {
	if !isatty.IsTerminal(os.Stdout.Fd()) || termenv.EnvNoColor() {
		color.NoColor = true
	}
}
