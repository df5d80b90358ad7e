package cmd

import (
	"github.com/brogergvhs/questgraph/internal/config"

	"github.com/rodaine/table"
	"github.com/spf13/cobra"
)

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available configs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		list, err := config.ListConfigs()
		if err != nil {
			return err
		}

		tbl := table.New("Label", "Path", "Active").WithWriter(cmd.OutOrStdout())
		for _, c := range list {
			active := ""
			if c.Active {
				active = "yes"
			}
			tbl.AddRow(c.Label, c.Path, active)
		}
		tbl.Print()

		return nil
	},
}

func init() {
	configCmd.AddCommand(configListCmd)
}
