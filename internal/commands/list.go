package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newListCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print all records in the ledger",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, err := opts.openStore()
			if err != nil {
				return err
			}

			if store.Len() == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No records yet.")
				return nil
			}

			printNumbered(cmd.OutOrStdout(), store.Records())
			return nil
		},
	}

	return cmd
}
