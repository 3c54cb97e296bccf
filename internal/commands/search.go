package commands

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/walletkeep-dev/walletkeep/internal/ledger"
)

func newSearchCommand(opts *options) *cobra.Command {
	var category string
	var date string
	var amount string

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Find records matching every given filter",
		Long:  "Find records matching every given filter by exact equality. Omitted filters match everything.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := ledger.Filter{Category: category, Date: date}
			if amount != "" {
				a, err := decimal.NewFromString(amount)
				if err != nil {
					return fmt.Errorf("parsing amount %q: %w", amount, err)
				}
				filter.Amount = &a
			}

			store, _, err := opts.openStore()
			if err != nil {
				return err
			}

			results := store.Search(filter)
			if len(results) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No records found.")
				return nil
			}

			for _, rec := range results {
				printRecord(cmd.OutOrStdout(), rec)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "exact category to match")
	cmd.Flags().StringVar(&date, "date", "", "exact date to match, YYYY-MM-DD")
	cmd.Flags().StringVar(&amount, "amount", "", "exact amount to match, compared numerically")

	return cmd
}
