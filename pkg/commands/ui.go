package commands

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/monthgrid/pkg/commands/options"
	"tableflip.dev/monthgrid/pkg/logging"
	"tableflip.dev/monthgrid/pkg/runner/ui"
	"tableflip.dev/monthgrid/pkg/store"
)

func addUI(topLevel *cobra.Command) {
	mo := &options.MonthOptions{}
	fresh := false

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the interactive calendar",
		Example: `
monthgrid ui
monthgrid ui --month 2019-03
monthgrid ui --selected 2019-3-14 --fresh
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := store.LoadConfig()
			if err != nil {
				return err
			}
			display, err := mo.GetMonth()
			if err != nil {
				return err
			}
			value, err := mo.GetSelected(time.Now())
			if err != nil {
				return err
			}

			logger := logging.NewFile(cfg.Log.File, cfg.Log.Level)
			defer func() { _ = logger.Sync() }()

			i := ui.UI{
				Config:      cfg,
				Persistence: store.Open(cfg.StatePath),
				Logger:      logger,
				Display:     display,
				Value:       value,
				Fresh:       fresh,
			}
			return i.Do(cmd.Context())
		},
	}

	options.AddMonthArgs(cmd, mo)
	cmd.Flags().BoolVar(&fresh, "fresh", false, "Ignore the saved selection and month.")

	topLevel.AddCommand(cmd)
}
