package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBills = `[
  {"id": "rent", "name": "Rent", "amount": "1500", "category": "Housing", "dueDate": "2024-06-05",
   "status": "paid", "paymentDate": "2024-06-04"},
  {"id": "water", "name": "Water Bill", "amount": "45.75", "category": "Utilities", "dueDate": "2024-06-17"},
  {"id": "phone", "name": "Phone", "amount": "75", "category": "Utilities", "dueDate": "2024-06-10"},
  {"id": "tax", "name": "Property Tax", "amount": "350", "category": "Other", "dueDate": "2024-08-01"}
]`

func TestAsOf(t *testing.T) {
	fixed := time.Date(2024, 6, 15, 9, 30, 0, 0, time.UTC)
	now := func() time.Time { return fixed }

	got, err := asOf("", now)
	require.NoError(t, err)
	assert.Equal(t, fixed, got)

	got, err = asOf("2024-01-31", now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), got)

	_, err = asOf("31/01/2024", now)
	assert.Error(t, err)
}

func TestSetupLogging(t *testing.T) {
	assert.NoError(t, setupLogging("debug", "console"))
	assert.NoError(t, setupLogging("error", "json"))
	assert.Error(t, setupLogging("verbose", "console"))
	assert.Error(t, setupLogging("info", "xml"))
}

func writeBillsFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bills.json")
	require.NoError(t, os.WriteFile(path, []byte(testBills), 0o600))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append(args, "--as-of", "2024-06-15"))
	err := rootCmd.Execute()
	return out.String(), err
}

// runCLI always passes --db so a value set by an earlier test does not leak.
func runCLI(t *testing.T, args ...string) string {
	t.Helper()
	out, err := execute(t, append(args, "--file", writeBillsFile(t), "--db", "")...)
	require.NoError(t, err)
	return out
}

func TestSummaryCommand(t *testing.T) {
	out := runCLI(t, "summary")

	assert.Contains(t, out, "Bill Summary")
	assert.Contains(t, out, "$1,970.75")
	assert.Contains(t, out, "(76%)")
	assert.Contains(t, out, "Housing")
}

func TestUpcomingCommand(t *testing.T) {
	out := runCLI(t, "upcoming", "--days", "7", "--limit", "5")

	assert.Contains(t, out, "Water Bill")
	assert.Contains(t, out, "DUE SOON")
	assert.NotContains(t, out, "Property Tax")
	assert.NotContains(t, out, "Phone", "overdue bills are not upcoming")
}

func TestMonthlyCommand(t *testing.T) {
	out := runCLI(t, "monthly", "--months", "3")

	assert.Contains(t, out, "Apr 24")
	assert.Contains(t, out, "Jun 24")
	assert.Contains(t, out, "$1,620.75")
	assert.NotContains(t, out, "Mar 24")
}

func TestImportThenReportFromDatabase(t *testing.T) {
	file := writeBillsFile(t)
	db := filepath.Join(t.TempDir(), "bills.db")

	out, err := execute(t, "import", "--file", file, "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 4 bills")

	out, err = execute(t, "import", "--file", file, "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 0 bills")
	assert.Contains(t, out, "(4 already present)")

	out, err = execute(t, "summary", "--file", filepath.Join(t.TempDir(), "missing.json"), "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "$1,970.75")
}

func TestImportRequiresDatabase(t *testing.T) {
	_, err := execute(t, "import", "--file", writeBillsFile(t), "--db", "")
	assert.ErrorContains(t, err, "--db")
}
