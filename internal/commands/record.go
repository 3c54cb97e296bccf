package commands

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/walletkeep-dev/walletkeep/internal/model"
)

// recordFlags holds the four record fields as entered on the command line.
type recordFlags struct {
	date        string
	category    string
	amount      string
	description string
}

func (f *recordFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.date, "date", "", "record date, YYYY-MM-DD")
	cmd.Flags().StringVar(&f.category, "category", "", "category (Income and Expense count toward the balance)")
	cmd.Flags().StringVar(&f.amount, "amount", "", "amount as a decimal number")
	cmd.Flags().StringVar(&f.description, "description", "", "free-form description")
	_ = cmd.MarkFlagRequired("date")
	_ = cmd.MarkFlagRequired("category")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("description")
}

func (f *recordFlags) record() (model.Record, error) {
	amount, err := decimal.NewFromString(f.amount)
	if err != nil {
		return model.Record{}, fmt.Errorf("parsing amount %q: %w", f.amount, err)
	}
	return model.Record{
		Date:        f.date,
		Category:    f.category,
		Amount:      amount,
		Description: f.description,
	}, nil
}

// printNumbered renders records in the on-disk block shape, numbered
// from 1 the way edit and delete address them.
func printNumbered(w io.Writer, records []model.Record) {
	for i, rec := range records {
		fmt.Fprintf(w, "[%d]\n", i+1)
		printRecord(w, rec)
	}
}

func printRecord(w io.Writer, rec model.Record) {
	fmt.Fprintf(w, "Date: %s\n", rec.Date)
	fmt.Fprintf(w, "Category: %s\n", rec.Category)
	fmt.Fprintf(w, "Amount: %s\n", rec.Amount.String())
	fmt.Fprintf(w, "Description: %s\n", rec.Description)
	fmt.Fprintln(w, "---")
}

func summary(rec model.Record) string {
	return fmt.Sprintf("%s %s %s %s", rec.Date, rec.Category, rec.Amount.String(), rec.Description)
}
