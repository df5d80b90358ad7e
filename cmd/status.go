package cmd

import (
	"fmt"
	"os"

	"github.com/brogergvhs/questgraph/internal/config"
	"github.com/brogergvhs/questgraph/internal/status"
	"github.com/brogergvhs/questgraph/internal/ui"

	"github.com/spf13/cobra"
)

func init() {
	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show a player's quest status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := loadConfig(config.Options{Username: flagUser})
			if err != nil {
				return err
			}
			if cfg.Username == "" {
				return fmt.Errorf("missing --user and no username in config")
			}

			logSvc := ui.NewLogger(cfg.Debug)
			client, err := newHTTPClient(cfg, logSvc)
			if err != nil {
				return err
			}

			stop := ui.StartSpinner(os.Stderr, "Fetching quest status for "+cfg.Username)
			statuses, err := status.Fetch(cmd.Context(), client, cfg.StatusURL, cfg.Username)
			stop()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			ui.PrintStatuses(out, statuses)

			counts := statuses.Counts()
			fmt.Fprintf(out, "\n%d completed, %d started, %d not started\n",
				counts[status.Completed], counts[status.Started], counts[status.NotStarted])
			return nil
		},
	}

	statusCmd.Flags().StringVar(&flagUser, "user", "", "RuneScape player name")
	rootCmd.AddCommand(statusCmd)
}
