package exports

import (
	"strings"
	"time"

	"github.com/bgutter/personal-data-mining/pkg/models"
	"github.com/bgutter/personal-data-mining/pkg/table"
)

// normalizeTiller handles the spreadsheet cash-flow export. Amounts arrive
// as signed $-strings; the Month, Week, and Transaction ID columns are
// derivable or meaningless downstream and are dropped.
func normalizeTiller(records [][]string) (*table.Table, error) {
	if len(records) == 0 {
		return nil, &SchemaError{Format: FormatTiller, Column: "Date"}
	}
	h := indexHeader(records[0])
	if err := h.require(FormatTiller,
		"Date", "Description", "Category", "Amount", "Account"); err != nil {
		return nil, err
	}

	txs := make([]models.Transaction, 0, len(records)-1)
	for _, row := range records[1:] {
		if emptyRow(row) {
			continue
		}

		date, err := parseDate(FormatTiller, "Date", h.get(row, "Date"))
		if err != nil {
			return nil, err
		}
		amount, err := parseMoney(FormatTiller, "Amount", h.get(row, "Amount"))
		if err != nil {
			return nil, err
		}

		var added time.Time
		if raw := strings.TrimSpace(h.get(row, "Date Added")); raw != "" {
			if added, err = parseDate(FormatTiller, "Date Added", raw); err != nil {
				return nil, err
			}
		}

		txs = append(txs, models.Transaction{
			Date:                date,
			Amount:              amount,
			Account:             h.get(row, "Account"),
			AccountNumber:       h.get(row, "Account #"),
			Institution:         h.get(row, "Institution"),
			Category:            h.get(row, "Category"),
			Description:         h.get(row, "Description"),
			OriginalDescription: h.get(row, "Full Description"),
			CheckNumber:         h.get(row, "Check Number"),
			DateAdded:           added,
		})
	}
	return table.New(txs), nil
}
