package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newDeleteCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <number>",
		Short: "Remove the record at a position",
		Long:  "Remove the record at a position. Positions are 1-based, as printed by list.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			number, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("record number %q is not an integer", args[0])
			}

			store, cfg, err := opts.openStore()
			if err != nil {
				return err
			}
			if err := store.Delete(number - 1); err != nil {
				return err
			}

			opts.recordMutation(cfg, store, "delete", fmt.Sprintf("record %d", number))
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted record %d\n", number)
			return nil
		},
	}

	return cmd
}
