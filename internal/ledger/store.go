package ledger

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/walletkeep-dev/walletkeep/internal/model"
)

// ErrIndexOutOfRange signals a mutation addressed at a position outside
// the current record sequence. Edit and Delete share it.
var ErrIndexOutOfRange = errors.New("record index out of range")

// Store is the single source of truth for a ledger file. It loads the
// whole file on Open and rewrites the whole file after every mutation.
// A Store assumes exclusive ownership of its backing file; concurrent
// external writes are silently lost on the next save.
type Store struct {
	path    string
	records []model.Record
	log     zerolog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for parse diagnostics.
func WithLogger(log zerolog.Logger) Option {
	return func(s *Store) { s.log = log }
}

// Open loads the ledger at path. A missing file yields an empty store,
// not an error. Malformed blocks are skipped with a logged diagnostic;
// they never abort the load.
func Open(path string, opts ...Option) (*Store, error) {
	s := &Store{path: path, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(s)
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading ledger %s: %w", path, err)
	}

	records, diags := Parse(string(data))
	for _, d := range diags {
		s.log.Warn().Str("file", path).Msg(d.String())
	}
	s.records = records
	return s, nil
}

// Path returns the backing file path.
func (s *Store) Path() string { return s.path }

// Records returns the in-memory sequence in insertion order.
func (s *Store) Records() []model.Record { return s.records }

// Len returns the number of records.
func (s *Store) Len() int { return len(s.records) }

// Add appends a record and persists the full sequence.
func (s *Store) Add(rec model.Record) error {
	s.records = append(s.records, rec)
	return s.save()
}

// AddAll appends records and persists once. Used by bulk import.
func (s *Store) AddAll(recs []model.Record) error {
	if len(recs) == 0 {
		return nil
	}
	s.records = append(s.records, recs...)
	return s.save()
}

// Edit replaces the record at a zero-based position and persists.
// An out-of-range position returns ErrIndexOutOfRange and leaves the
// sequence and file untouched.
func (s *Store) Edit(index int, rec model.Record) error {
	if err := s.checkIndex(index); err != nil {
		return err
	}
	s.records[index] = rec
	return s.save()
}

// Delete removes the record at a zero-based position and persists.
// An out-of-range position returns ErrIndexOutOfRange and leaves the
// sequence and file untouched.
func (s *Store) Delete(index int) error {
	if err := s.checkIndex(index); err != nil {
		return err
	}
	s.records = append(s.records[:index], s.records[index+1:]...)
	return s.save()
}

func (s *Store) checkIndex(index int) error {
	if index < 0 || index >= len(s.records) {
		return fmt.Errorf("index %d with %d records: %w", index, len(s.records), ErrIndexOutOfRange)
	}
	return nil
}

// Filter selects records by exact equality. Zero-valued fields match
// everything: an empty Category or Date is absent, a nil Amount is
// absent.
type Filter struct {
	Category string
	Date     string
	Amount   *decimal.Decimal
}

// Search returns every record matching all present filter fields, in
// insertion order. No match yields an empty result, not an error.
func (s *Store) Search(f Filter) []model.Record {
	var result []model.Record
	for _, rec := range s.records {
		if f.Category != "" && rec.Category != f.Category {
			continue
		}
		if f.Date != "" && rec.Date != f.Date {
			continue
		}
		if f.Amount != nil && !rec.Amount.Equal(*f.Amount) {
			continue
		}
		result = append(result, rec)
	}
	return result
}

// Totals is the aggregate financial position of a ledger.
type Totals struct {
	Balance decimal.Decimal
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// Totals sums Income and Expense records. Any other category counts
// toward neither. No side effects.
func (s *Store) Totals() Totals {
	income := decimal.Zero
	expense := decimal.Zero
	for _, rec := range s.records {
		switch rec.Category {
		case model.CategoryIncome:
			income = income.Add(rec.Amount)
		case model.CategoryExpense:
			expense = expense.Add(rec.Amount)
		}
	}
	return Totals{
		Balance: income.Sub(expense),
		Income:  income,
		Expense: expense,
	}
}

func (s *Store) save() error {
	if err := os.WriteFile(s.path, []byte(Serialize(s.records)), 0o644); err != nil {
		return fmt.Errorf("writing ledger %s: %w", s.path, err)
	}
	return nil
}
