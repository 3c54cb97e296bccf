package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newEditCommand(opts *options) *cobra.Command {
	flags := &recordFlags{}

	cmd := &cobra.Command{
		Use:   "edit <number>",
		Short: "Replace the record at a position",
		Long:  "Replace the record at a position. Positions are 1-based, as printed by list.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			number, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("record number %q is not an integer", args[0])
			}

			rec, err := flags.record()
			if err != nil {
				return err
			}

			store, cfg, err := opts.openStore()
			if err != nil {
				return err
			}
			if err := store.Edit(number-1, rec); err != nil {
				return err
			}

			opts.recordMutation(cfg, store, "edit", fmt.Sprintf("record %d: %s", number, summary(rec)))
			fmt.Fprintf(cmd.OutOrStdout(), "Updated record %d\n", number)
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}
