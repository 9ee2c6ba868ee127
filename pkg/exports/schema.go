package exports

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// SchemaError reports an export that does not satisfy its format contract:
// a required column is missing, or a field failed to parse into its expected
// type.
type SchemaError struct {
	Format Format
	Column string
	Err    error
}

func (e *SchemaError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s export: column %q: %v", e.Format, e.Column, e.Err)
	}
	return fmt.Sprintf("%s export: missing required column %q", e.Format, e.Column)
}

func (e *SchemaError) Unwrap() error { return e.Err }

// header maps trimmed column names to their positions in the header row.
type header map[string]int

func indexHeader(row []string) header {
	h := make(header, len(row))
	for i, name := range row {
		h[strings.TrimSpace(name)] = i
	}
	return h
}

// require fails with a SchemaError naming the first missing column.
func (h header) require(f Format, names ...string) error {
	for _, name := range names {
		if _, ok := h[name]; !ok {
			return &SchemaError{Format: f, Column: name}
		}
	}
	return nil
}

// get returns the named field of row, or "" when the column is absent or the
// row is too short.
func (h header) get(row []string, name string) string {
	i, ok := h[name]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}

// currencyScrubber strips the dollar signs and thousands separators some
// exports wrap around numeric columns.
var currencyScrubber = strings.NewReplacer("$", "", ",", "")

// parseMoney parses a required numeric field after scrubbing currency
// punctuation.
func parseMoney(f Format, column, raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(currencyScrubber.Replace(raw))
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, &SchemaError{Format: f, Column: column, Err: fmt.Errorf("non-numeric value %q", raw)}
	}
	return d, nil
}

// parseOptionalMoney is parseMoney for columns some rows legitimately leave
// blank (share counts on cash movements, for example). Blank parses to zero.
func parseOptionalMoney(f Format, column, raw string) (decimal.Decimal, error) {
	if strings.TrimSpace(raw) == "" {
		return decimal.Zero, nil
	}
	return parseMoney(f, column, raw)
}

var dateLayouts = []string{
	"1/2/2006",
	"2006-01-02",
	"1/2/06",
	"2006-01-02 15:04:05",
}

// parseDate tries the date layouts the supported exports are known to use.
func parseDate(f Format, column, raw string) (time.Time, error) {
	s := strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, &SchemaError{Format: f, Column: column, Err: fmt.Errorf("unparseable date %q", raw)}
}

// emptyRow reports whether every field is blank. Exports occasionally carry
// trailing blank lines.
func emptyRow(row []string) bool {
	for _, field := range row {
		if strings.TrimSpace(field) != "" {
			return false
		}
	}
	return true
}
