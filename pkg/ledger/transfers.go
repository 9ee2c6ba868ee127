package ledger

import (
	"time"

	"github.com/bgutter/personal-data-mining/pkg/table"
)

// defaultWindow bounds how far apart in time the two sides of a transfer may
// land before they stop counting as one movement.
const defaultWindow = 7 * 24 * time.Hour

// TransferMatcher detects pairs of rows that look like the two observable
// sides of a single money movement: exactly opposite amounts, dated within
// Window of each other, optionally restricted to distinct accounts.
//
// Matching is greedy and order-dependent on purpose. Rows are considered in
// table order; the first unmatched candidate wins and both rows are consumed,
// so when more than two rows share an absolute amount inside the window the
// pairing follows table order rather than any global optimum. Two distinct
// zero-amount rows inside the window pair with each other, since -0 == 0.
type TransferMatcher struct {
	// Window is the maximum date separation, inclusive. Zero or negative
	// means the seven-day default.
	Window time.Duration
	// AllowInternal permits both sides of a pair to sit in the same
	// account. When false a pair needs two distinct accounts.
	AllowInternal bool
}

// DefaultTransferMatcher returns the stock policy: seven-day window,
// internal transfers allowed.
func DefaultTransferMatcher() TransferMatcher {
	return TransferMatcher{Window: defaultWindow, AllowInternal: true}
}

// Mark scans the table once and returns a mask over its rows, true where the
// row belongs to some transfer pair. Worst case is O(n²), which is fine for
// personal-ledger volumes.
func (m TransferMatcher) Mark(tab *table.Table) []bool {
	window := m.Window
	if window <= 0 {
		window = defaultWindow
	}

	rows := tab.Rows()
	matched := make([]bool, len(rows))

	for i := range rows {
		if matched[i] {
			continue
		}
		for j := range rows {
			if j == i || matched[j] {
				continue
			}
			if !m.pairs(rows[i], rows[j], window) {
				continue
			}
			matched[i] = true
			matched[j] = true
			break
		}
	}
	return matched
}

// pairs reports whether a and b satisfy the candidate-pair predicate.
func (m TransferMatcher) pairs(a, b table.Row, window time.Duration) bool {
	if !b.Amount.Equal(a.Amount.Neg()) {
		return false
	}
	if !m.AllowInternal && a.Account == b.Account {
		return false
	}
	gap := b.Date.Sub(a.Date)
	if gap < 0 {
		gap = -gap
	}
	return gap <= window
}

// Transfers keeps the rows the default matcher marks as transfer pairs.
// invert keeps the unmatched rows instead.
func (l *Ledger) Transfers(invert bool) *Ledger {
	return l.TransfersWith(DefaultTransferMatcher(), invert)
}

// TransfersWith is Transfers under an explicit matcher policy.
func (l *Ledger) TransfersWith(m TransferMatcher, invert bool) *Ledger {
	mask := m.Mark(l.tab)
	if invert {
		for i := range mask {
			mask[i] = !mask[i]
		}
	}
	return &Ledger{tab: l.tab.Select(mask)}
}
