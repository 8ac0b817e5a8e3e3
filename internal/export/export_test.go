package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finbook/internal/core"
)

func sampleTransactions() []core.Transaction {
	created := time.Date(2026, 9, 1, 10, 30, 0, 0, time.UTC)
	return []core.Transaction{
		{
			ID:          "t1",
			Kind:        core.Income,
			Category:    "Salary",
			Amount:      core.Money{Cents: 350000},
			Description: "monthly salary",
			CreatedAt:   created,
			Owner:       "alice",
		},
		{
			ID:          "t2",
			Kind:        core.Expense,
			Category:    "Food",
			Amount:      core.Money{Cents: 4599},
			Description: "groceries, market",
			CreatedAt:   created.Add(time.Hour),
			Owner:       "alice",
		},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleTransactions()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{"kind", "category", "amount", "description", "date"}, records[0])
	assert.Equal(t, []string{"income", "Salary", "3500.00", "monthly salary", "2026-09-01T10:30:00Z"}, records[1])
	assert.Equal(t, []string{"expense", "Food", "45.99", "groceries, market", "2026-09-01T11:30:00Z"}, records[2])
}

func TestWriteCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1, "header only")
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sampleTransactions()))

	var rows []map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, "income", rows[0]["kind"])
	assert.Equal(t, "3500.00", rows[0]["amount"])
	assert.Equal(t, "45.99", rows[1]["amount"])
	assert.Equal(t, "Food", rows[1]["category"])
}

func TestToFile(t *testing.T) {
	dir := t.TempDir()

	csvPath := filepath.Join(dir, "transactions.csv")
	require.NoError(t, ToFile(csvPath, "csv", sampleTransactions()))
	data, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "kind,category,amount,description,date")

	jsonPath := filepath.Join(dir, "transactions.json")
	require.NoError(t, ToFile(jsonPath, "json", sampleTransactions()))

	assert.Error(t, ToFile(filepath.Join(dir, "x.xml"), "xml", nil))
}
