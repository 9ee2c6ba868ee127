// Package csv writes ledger rows back out in canonical column order. It is
// an output-only escape hatch for downstream tools; nothing in the core
// reads this format back.
package csv

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/bgutter/personal-data-mining/pkg/table"
)

// FilterFunc decides whether a row is written.
type FilterFunc func(table.Row) bool

var columns = []string{
	"date", "amount", "account", "category", "description",
	"original_description", "type", "fund", "source", "shares", "share_price",
}

// Write streams rows through w in canonical column order. A nil filter
// writes every row.
func Write(w io.Writer, rows []table.Row, filter FilterFunc) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(columns); err != nil {
		return fmt.Errorf("error writing csv header: %w", err)
	}

	for _, r := range rows {
		if filter != nil && !filter(r) {
			continue
		}
		record := []string{
			r.Date.Format("2006-01-02"),
			r.Amount.String(),
			r.Account,
			r.Category,
			r.Description,
			r.OriginalDescription,
			r.Type,
			r.Fund,
			r.Source,
			optional(r.Shares),
			optional(r.SharePrice),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("error writing row %d: %w", r.Key, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// Create renders rows to an in-memory CSV document.
func Create(rows []table.Row, filter FilterFunc) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, rows, filter); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// optional keeps brokerage-only numeric columns blank on cash-flow rows.
func optional(d decimal.Decimal) string {
	if d.IsZero() {
		return ""
	}
	return d.String()
}
