package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newAddCommand(opts *options) *cobra.Command {
	flags := &recordFlags{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a record to the ledger",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := flags.record()
			if err != nil {
				return err
			}

			store, cfg, err := opts.openStore()
			if err != nil {
				return err
			}
			if err := store.Add(rec); err != nil {
				return err
			}

			opts.recordMutation(cfg, store, "add", summary(rec))
			fmt.Fprintf(cmd.OutOrStdout(), "Added record %d to %s\n", store.Len(), store.Path())
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}
