package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newBalanceCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Print total income, total expenses and the balance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, err := opts.openStore()
			if err != nil {
				return err
			}

			totals := store.Totals()
			fmt.Fprintf(cmd.OutOrStdout(), "Income:  %s\n", totals.Income.StringFixed(2))
			fmt.Fprintf(cmd.OutOrStdout(), "Expense: %s\n", totals.Expense.StringFixed(2))
			fmt.Fprintf(cmd.OutOrStdout(), "Balance: %s\n", totals.Balance.StringFixed(2))
			return nil
		},
	}

	return cmd
}
