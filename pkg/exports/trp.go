package exports

import (
	"strings"

	"github.com/bgutter/personal-data-mining/pkg/models"
	"github.com/bgutter/personal-data-mining/pkg/table"
)

// Brokerage activity exports carry two report-header lines above the column
// header.
const trpPreambleLines = 2

// normalizeTRP handles the brokerage activity export. Outbound directions
// are reported unsigned, so Exchange Out and Fee rows get their amount and
// share count negated before the two exchange directions collapse into one
// Exchange type.
func normalizeTRP(records [][]string) (*table.Table, error) {
	if len(records) <= trpPreambleLines {
		return nil, &SchemaError{Format: FormatTRP, Column: "Date"}
	}
	records = records[trpPreambleLines:]

	h := indexHeader(records[0])
	if err := h.require(FormatTRP,
		"Date", "Activity Type", "Investment", "Source",
		"Shares", "Price", "Amount"); err != nil {
		return nil, err
	}

	txs := make([]models.Transaction, 0, len(records)-1)
	for _, row := range records[1:] {
		if emptyRow(row) {
			continue
		}

		date, err := parseDate(FormatTRP, "Date", h.get(row, "Date"))
		if err != nil {
			return nil, err
		}
		amount, err := parseMoney(FormatTRP, "Amount", h.get(row, "Amount"))
		if err != nil {
			return nil, err
		}
		price, err := parseOptionalMoney(FormatTRP, "Price", h.get(row, "Price"))
		if err != nil {
			return nil, err
		}
		shares, err := parseOptionalMoney(FormatTRP, "Shares", h.get(row, "Shares"))
		if err != nil {
			return nil, err
		}

		activity := strings.TrimSpace(h.get(row, "Activity Type"))
		if activity == "Redemption Fee" {
			activity = models.ActivityFee
		}
		if activity == "Exchange Out" || activity == models.ActivityFee {
			amount = amount.Neg()
			shares = shares.Neg()
		}
		if activity == "Exchange In" || activity == "Exchange Out" {
			activity = models.ActivityExchange
		}

		txs = append(txs, models.Transaction{
			Date:       date,
			Amount:     amount,
			Type:       activity,
			Fund:       strings.TrimSpace(h.get(row, "Investment")),
			Source:     strings.TrimSpace(h.get(row, "Source")),
			Shares:     shares,
			SharePrice: price,
		})
	}
	return table.New(txs), nil
}
