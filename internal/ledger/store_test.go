package ledger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/walletkeep-dev/walletkeep/internal/model"
)

func tempLedger(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "wallet.txt")
}

func openWith(t *testing.T, path string, recs []model.Record) *Store {
	t.Helper()
	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.AddAll(recs))
	return s
}

func TestOpen_MissingFile(t *testing.T) {
	s, err := Open(tempLedger(t))
	require.NoError(t, err)
	assert.Empty(t, s.Records())
}

func TestOpen_LoadsExisting(t *testing.T) {
	path := tempLedger(t)
	err := os.WriteFile(path, []byte(Serialize(sampleRecords())), 0o644)
	require.NoError(t, err)

	s, err := Open(path)
	require.NoError(t, err)
	require.Len(t, s.Records(), 3)
	assert.Equal(t, "Salary", s.Records()[0].Description)
}

func TestOpen_TolerantOfMalformedBlocks(t *testing.T) {
	path := tempLedger(t)
	content := Serialize(sampleRecords()[:1]) +
		"Date: 2024-02-01\nCategory: Expense\nDescription: missing amount\n---\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	s, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, 1, s.Len(), "malformed block reduces count, never fails the load")
}

func TestAdd_Persists(t *testing.T) {
	path := tempLedger(t)
	s := openWith(t, path, sampleRecords()[:1])

	rec := model.Record{Date: "2024-02-10", Category: model.CategoryExpense, Amount: dec("9.99"), Description: "Coffee"}
	require.NoError(t, s.Add(rec))

	reloaded, err := Open(path)
	require.NoError(t, err)
	require.Equal(t, 2, reloaded.Len())
	assert.True(t, rec.Equal(reloaded.Records()[1]), "added record is last after reload")
}

func TestAdd_NoSignValidation(t *testing.T) {
	path := tempLedger(t)
	s := openWith(t, path, nil)

	// Negative amounts are stored as-is; direction is the caller's concern.
	require.NoError(t, s.Add(model.Record{Date: "2024-03-01", Category: model.CategoryExpense, Amount: dec("-5"), Description: "Refund entered backwards"}))

	reloaded, err := Open(path)
	require.NoError(t, err)
	require.Equal(t, 1, reloaded.Len())
	assert.True(t, reloaded.Records()[0].Amount.Equal(dec("-5")))
}

func TestEdit_ReplacesInPlace(t *testing.T) {
	path := tempLedger(t)
	s := openWith(t, path, sampleRecords())

	rec := model.Record{Date: "2024-01-03", Category: model.CategoryExpense, Amount: dec("45.00"), Description: "Groceries (corrected)"}
	require.NoError(t, s.Edit(1, rec))

	reloaded, err := Open(path)
	require.NoError(t, err)
	require.Equal(t, 3, reloaded.Len())
	assert.Equal(t, "Groceries (corrected)", reloaded.Records()[1].Description)
	assert.Equal(t, "Salary", reloaded.Records()[0].Description, "neighbors untouched")
}

func TestEdit_OutOfRange(t *testing.T) {
	path := tempLedger(t)
	s := openWith(t, path, sampleRecords())
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	rec := model.Record{Date: "2024-01-01", Category: model.CategoryIncome, Amount: dec("1"), Description: "nope"}
	err = s.Edit(3, rec)
	require.ErrorIs(t, err, ErrIndexOutOfRange)
	err = s.Edit(-1, rec)
	require.ErrorIs(t, err, ErrIndexOutOfRange)

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after, "failed edit leaves file unchanged")
	assert.Equal(t, 3, s.Len())
}

func TestDelete_RemovesAndPersists(t *testing.T) {
	path := tempLedger(t)
	s := openWith(t, path, sampleRecords())

	require.NoError(t, s.Delete(0))

	reloaded, err := Open(path)
	require.NoError(t, err)
	require.Equal(t, 2, reloaded.Len())
	assert.Equal(t, "Groceries", reloaded.Records()[0].Description)
}

func TestDelete_OutOfRange(t *testing.T) {
	path := tempLedger(t)
	s := openWith(t, path, sampleRecords())
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	require.ErrorIs(t, s.Delete(-1), ErrIndexOutOfRange)
	require.ErrorIs(t, s.Delete(3), ErrIndexOutOfRange)

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after, "failed delete leaves file unchanged")
	assert.Equal(t, 3, s.Len())
}

func TestSearch_NoFiltersReturnsAllInOrder(t *testing.T) {
	s := openWith(t, tempLedger(t), sampleRecords())

	result := s.Search(Filter{})
	require.Len(t, result, 3)
	for i, rec := range s.Records() {
		assert.True(t, rec.Equal(result[i]))
	}
}

func TestSearch_Conjunction(t *testing.T) {
	recs := append(sampleRecords(),
		model.Record{Date: "2024-01-03", Category: model.CategoryExpense, Amount: dec("42.50"), Description: "Duplicate day"},
		model.Record{Date: "2024-01-03", Category: model.CategoryIncome, Amount: dec("42.50"), Description: "Same day, wrong category"},
	)
	s := openWith(t, tempLedger(t), recs)

	result := s.Search(Filter{Category: model.CategoryExpense, Date: "2024-01-03"})
	require.Len(t, result, 2)
	assert.Equal(t, "Groceries", result[0].Description)
	assert.Equal(t, "Duplicate day", result[1].Description)
}

func TestSearch_AmountComparedNumerically(t *testing.T) {
	s := openWith(t, tempLedger(t), sampleRecords())

	amount := dec("42.5") // stored as "42.50"
	result := s.Search(Filter{Amount: &amount})
	require.Len(t, result, 1)
	assert.Equal(t, "Groceries", result[0].Description)
}

func TestSearch_NoMatch(t *testing.T) {
	s := openWith(t, tempLedger(t), sampleRecords())
	assert.Empty(t, s.Search(Filter{Category: "Vacation"}))
}

func TestTotals(t *testing.T) {
	recs := []model.Record{
		{Date: "2024-01-01", Category: model.CategoryIncome, Amount: dec("100"), Description: "pay"},
		{Date: "2024-01-02", Category: model.CategoryExpense, Amount: dec("40"), Description: "food"},
		{Date: "2024-01-03", Category: "Other", Amount: dec("999"), Description: "ignored by totals"},
	}
	s := openWith(t, tempLedger(t), recs)

	totals := s.Totals()
	assert.True(t, totals.Income.Equal(dec("100")))
	assert.True(t, totals.Expense.Equal(dec("40")))
	assert.True(t, totals.Balance.Equal(dec("60")))
}

func TestTotals_Empty(t *testing.T) {
	s := openWith(t, tempLedger(t), nil)
	totals := s.Totals()
	assert.True(t, totals.Balance.IsZero())
	assert.True(t, totals.Income.IsZero())
	assert.True(t, totals.Expense.IsZero())
}
