package ledger

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/walletkeep-dev/walletkeep/internal/model"
)

// Field labels form the on-disk vocabulary. They are part of the file
// format, not display text, and must match exactly.
const (
	labelDate        = "Date"
	labelCategory    = "Category"
	labelAmount      = "Amount"
	labelDescription = "Description"

	// Delimiter terminates each record block.
	Delimiter = "---"

	labelSep = ": "
)

// Diagnostic describes one recoverable parse problem. Malformed input
// is skipped, never fatal.
type Diagnostic struct {
	Block   int // 1-based block number
	Line    string
	Message string
}

func (d Diagnostic) String() string {
	if d.Line != "" {
		return fmt.Sprintf("block %d: %s: %q", d.Block, d.Message, d.Line)
	}
	return fmt.Sprintf("block %d: %s", d.Block, d.Message)
}

// Parse converts block-format text into records. Lines without the
// ": " separator and blocks missing a required field or carrying a
// non-numeric amount are dropped with a diagnostic; the rest of the
// input is still parsed.
func Parse(content string) ([]model.Record, []Diagnostic) {
	var records []model.Record
	var diags []Diagnostic

	blocks := strings.Split(strings.TrimSpace(content), Delimiter+"\n")
	blockNum := 0
	for _, block := range blocks {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		blockNum++

		fields := make(map[string]string)
		for _, line := range strings.Split(block, "\n") {
			line = strings.TrimSpace(line)
			if line == "" || line == Delimiter {
				continue
			}
			key, value, ok := strings.Cut(line, labelSep)
			if !ok {
				diags = append(diags, Diagnostic{Block: blockNum, Line: line, Message: "line has no separator"})
				continue
			}
			fields[key] = strings.TrimSpace(value)
		}

		rec, diag := unmarshalBlock(blockNum, fields)
		if diag != nil {
			diags = append(diags, *diag)
			continue
		}
		records = append(records, rec)
	}
	return records, diags
}

func unmarshalBlock(blockNum int, fields map[string]string) (model.Record, *Diagnostic) {
	for _, label := range []string{labelDate, labelCategory, labelAmount, labelDescription} {
		if _, ok := fields[label]; !ok {
			return model.Record{}, &Diagnostic{Block: blockNum, Message: fmt.Sprintf("missing field %q", label)}
		}
	}

	amount, err := decimal.NewFromString(fields[labelAmount])
	if err != nil {
		return model.Record{}, &Diagnostic{Block: blockNum, Line: fields[labelAmount], Message: "amount is not numeric"}
	}

	return model.Record{
		Date:        fields[labelDate],
		Category:    fields[labelCategory],
		Amount:      amount,
		Description: fields[labelDescription],
	}, nil
}

// Serialize renders records in the block format. Parsing the output
// yields an equal sequence of records; amounts are written in decimal
// canonical form.
func Serialize(records []model.Record) string {
	var b strings.Builder
	for _, rec := range records {
		b.WriteString(labelDate + labelSep + rec.Date + "\n")
		b.WriteString(labelCategory + labelSep + rec.Category + "\n")
		b.WriteString(labelAmount + labelSep + rec.Amount.String() + "\n")
		b.WriteString(labelDescription + labelSep + rec.Description + "\n")
		b.WriteString(Delimiter + "\n")
	}
	return b.String()
}
