package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/walletkeep-dev/walletkeep/internal/history"
)

func newHistoryCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Print the mutation audit trail",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, cfg, err := opts.openStore()
			if err != nil {
				return err
			}

			entries, err := history.Read(historyPath(cfg, store))
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No history yet.")
				return nil
			}

			for _, e := range entries {
				line := fmt.Sprintf("%s  %-6s  %s", e.Timestamp.Format(time.RFC3339), e.Action, e.Details)
				if e.CommitHash != "" {
					line += "  (" + e.CommitHash + ")"
				}
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}

	return cmd
}
