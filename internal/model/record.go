package model

import "github.com/shopspring/decimal"

// Category labels a Record. Any string is a valid category; the two
// reserved values below are the only ones that participate in balance
// aggregation.
type Category = string

const (
	CategoryIncome  Category = "Income"
	CategoryExpense Category = "Expense"
)

// Record is one ledger entry.
type Record struct {
	Date        string          // expected "YYYY-MM-DD"; not validated here
	Category    Category        //nolint:revive // plain field name is clearest
	Amount      decimal.Decimal // positive magnitude; direction comes from Category
	Description string          //nolint:revive
}

// Equal reports whether two records have the same field values.
// Amounts are compared numerically, not textually.
func (r Record) Equal(other Record) bool {
	return r.Date == other.Date &&
		r.Category == other.Category &&
		r.Amount.Equal(other.Amount) &&
		r.Description == other.Description
}
