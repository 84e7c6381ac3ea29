package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/monthgrid/pkg/commands/options"
)

var (
	oo = &options.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "monthgrid",
		Short: options.Wrap80("A month calendar grid for the terminal: pick a day, page through months, and see the selected week banded."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addShow(topLevel)
	addCells(topLevel)
	addMCP(topLevel)
	addVersion(topLevel)
}
