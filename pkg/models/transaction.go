package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is one row of the canonical ledger table. Every export format
// normalizes into this schema; fields a format does not carry stay zero.
type Transaction struct {
	Date                time.Time
	Amount              decimal.Decimal // signed, positive = inflow
	Account             string
	Category            string
	Description         string
	OriginalDescription string

	// Budgeting-service extras.
	Labels string
	Notes  string

	// Spreadsheet-export extras.
	Institution   string
	AccountNumber string
	CheckNumber   string
	DateAdded     time.Time

	// Brokerage-activity extras.
	Type       string
	Fund       string
	Source     string
	Shares     decimal.Decimal
	SharePrice decimal.Decimal
}

// Activity types produced by the brokerage normalizer. "Exchange In" and
// "Exchange Out" collapse into Exchange; "Redemption Fee" is recoded to Fee.
const (
	ActivityContribution = "Contribution"
	ActivityDividend     = "Dividend"
	ActivityFee          = "Fee"
	ActivityExchange     = "Exchange"
)
