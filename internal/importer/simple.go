package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"

	"github.com/walletkeep-dev/walletkeep/internal/model"
)

// SimpleParser parses generic "date,description,amount" CSV exports.
// Amounts are signed bank-style: negative rows become Expense records,
// positive rows become Income records, both stored as a positive
// magnitude with the direction carried by the category.
type SimpleParser struct{}

const (
	simpleDateFormat = "2006-01-02"
	simpleNumFields  = 3
	simpleColDate    = 0
	simpleColDesc    = 1
	simpleColAmount  = 2
)

// Format returns the parser name.
func (p *SimpleParser) Format() string { return "simple" }

// Parse reads a simple CSV and returns ledger records.
func (p *SimpleParser) Parse(r io.Reader) ([]model.Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = simpleNumFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading simple CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	// Skip header row.
	var recs []model.Record
	for i, rec := range records[1:] {
		parsed, err := parseSimpleRow(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		recs = append(recs, parsed)
	}
	return recs, nil
}

func parseSimpleRow(rec []string) (model.Record, error) {
	date, err := time.Parse(simpleDateFormat, rec[simpleColDate])
	if err != nil {
		return model.Record{}, fmt.Errorf("parsing date %q: %w", rec[simpleColDate], err)
	}

	amount, err := decimal.NewFromString(rec[simpleColAmount])
	if err != nil {
		return model.Record{}, fmt.Errorf("parsing amount %q: %w", rec[simpleColAmount], err)
	}

	category := model.CategoryIncome
	if amount.IsNegative() {
		category = model.CategoryExpense
		amount = amount.Neg()
	}

	return model.Record{
		Date:        date.Format(simpleDateFormat),
		Category:    category,
		Amount:      amount,
		Description: rec[simpleColDesc],
	}, nil
}
