package commands

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/monthgrid/pkg/commands/options"
	"tableflip.dev/monthgrid/pkg/printers"
)

func addCells(topLevel *cobra.Command) {
	mo := &options.MonthOptions{}
	markers := false

	cmd := &cobra.Command{
		Use:   "cells",
		Short: "list every cell of a month grid",
		Example: `
monthgrid cells --month 2019-03
monthgrid cells --selected 2019-3-14 --markers
monthgrid cells --json
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now()
			g, err := buildGrid(mo, now)
			if err != nil {
				return oo.HandleError(err)
			}
			setColor()

			pp := printers.PrettyPrint{Out: cmd.OutOrStdout(), Markers: markers}
			if oo.JSON {
				return oo.HandleError(pp.JSON(g.Cells(now)))
			}
			pp.Title(g.DisplayMonth().Format("January 2006"))
			pp.Cells(g, now)
			return nil
		},
	}

	options.AddMonthArgs(cmd, mo)
	options.AddOutputArg(cmd, oo)
	cmd.Flags().BoolVar(&markers, "markers", false, "Include the span marker column.")

	topLevel.AddCommand(cmd)
}
