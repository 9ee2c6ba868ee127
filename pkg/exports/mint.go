package exports

import (
	"github.com/bgutter/personal-data-mining/pkg/models"
	"github.com/bgutter/personal-data-mining/pkg/table"
)

// normalizeMint handles the budgeting-service export. The amount column is
// an unsigned magnitude; the "Transaction Type" column says which way the
// money moved.
func normalizeMint(records [][]string) (*table.Table, error) {
	if len(records) == 0 {
		return nil, &SchemaError{Format: FormatMint, Column: "Date"}
	}
	h := indexHeader(records[0])
	if err := h.require(FormatMint,
		"Date", "Description", "Original Description", "Amount",
		"Transaction Type", "Category", "Account Name"); err != nil {
		return nil, err
	}

	txs := make([]models.Transaction, 0, len(records)-1)
	for _, row := range records[1:] {
		if emptyRow(row) {
			continue
		}

		date, err := parseDate(FormatMint, "Date", h.get(row, "Date"))
		if err != nil {
			return nil, err
		}
		amount, err := parseMoney(FormatMint, "Amount", h.get(row, "Amount"))
		if err != nil {
			return nil, err
		}
		if h.get(row, "Transaction Type") == "debit" {
			amount = amount.Neg()
		}

		txs = append(txs, models.Transaction{
			Date:                date,
			Amount:              amount,
			Account:             h.get(row, "Account Name"),
			Category:            h.get(row, "Category"),
			Description:         h.get(row, "Description"),
			OriginalDescription: h.get(row, "Original Description"),
			Labels:              h.get(row, "Labels"),
			Notes:               h.get(row, "Notes"),
		})
	}
	return table.New(txs), nil
}
