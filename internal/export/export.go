// Package export renders a wallet's transactions for external consumption.
// Formatters are read-only over the transaction list: one row or object per
// transaction with kind, category, amount (two decimals), description and
// timestamp.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"finbook/internal/core"
)

var csvHeader = []string{"kind", "category", "amount", "description", "date"}

// WriteCSV writes a header row plus one row per transaction.
func WriteCSV(w io.Writer, transactions []core.Transaction) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, t := range transactions {
		row := []string{
			string(t.Kind),
			t.Category,
			t.Amount.String(),
			t.Description,
			t.CreatedAt.Format(time.RFC3339),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// jsonRow mirrors the CSV column set so both formats expose the same fields.
type jsonRow struct {
	Kind        string `json:"kind"`
	Category    string `json:"category"`
	Amount      string `json:"amount"`
	Description string `json:"description"`
	Date        string `json:"date"`
}

// WriteJSON writes the transactions as a pretty-printed JSON array.
func WriteJSON(w io.Writer, transactions []core.Transaction) error {
	rows := make([]jsonRow, 0, len(transactions))
	for _, t := range transactions {
		rows = append(rows, jsonRow{
			Kind:        string(t.Kind),
			Category:    t.Category,
			Amount:      t.Amount.String(),
			Description: t.Description,
			Date:        t.CreatedAt.Format(time.RFC3339),
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rows); err != nil {
		return fmt.Errorf("encode transactions: %w", err)
	}
	return nil
}

// ToFile writes the transactions to path using the formatter implied by the
// format name ("csv" or "json").
// Supported export formats, also used as file extensions.
const (
	FormatCSV  = "csv"
	FormatJSON = "json"
)

func ToFile(path, format string, transactions []core.Transaction) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	defer f.Close()

	switch format {
	case FormatCSV:
		err = WriteCSV(f, transactions)
	case FormatJSON:
		err = WriteJSON(f, transactions)
	default:
		err = fmt.Errorf("unsupported export format: %s", format)
	}
	if err != nil {
		return err
	}
	return f.Close()
}
