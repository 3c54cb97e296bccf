package history

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func histPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "history.csv")
}

func TestAppend_CreatesFileWithHeader(t *testing.T) {
	path := histPath(t)
	ts := time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC)

	err := Append(path, []Entry{
		{Timestamp: ts, Action: "add", Details: "2024-01-15 Expense 42.50 Groceries"},
	})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, Header, lines[0])
	assert.Contains(t, lines[1], "add")
}

func TestAppend_NoDuplicateHeader(t *testing.T) {
	path := histPath(t)
	ts := time.Now().UTC().Truncate(time.Second)

	require.NoError(t, Append(path, []Entry{{Timestamp: ts, Action: "add", Details: "first"}}))
	require.NoError(t, Append(path, []Entry{{Timestamp: ts, Action: "delete", Details: "second"}}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(data), Header))

	entries, err := Read(path)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "add", entries[0].Action)
	assert.Equal(t, "delete", entries[1].Action)
}

func TestRead_MissingFile(t *testing.T) {
	entries, err := Read(histPath(t))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRoundTrip(t *testing.T) {
	path := histPath(t)
	ts := time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)
	in := Entry{Timestamp: ts, Action: "edit", Details: "record 3", CommitHash: "abc1234"}

	require.NoError(t, Append(path, []Entry{in}))

	entries, err := Read(path)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, in, entries[0])
}

func TestUnmarshalEntry_WrongFieldCount(t *testing.T) {
	_, err := UnmarshalEntry([]string{"only", "three", "fields"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected 4 fields")
}
