// Package ledger provides an immutable-per-operation query surface over a
// canonical transaction table. Every filter returns a new Ledger backed by
// an independent copy of the matching rows; RecategorizeInPlace is the only
// operation that writes through to the backing table.
package ledger

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cast"

	"github.com/bgutter/personal-data-mining/pkg/models"
	"github.com/bgutter/personal-data-mining/pkg/table"
)

// ErrInvalidArgument marks errors caused by user-supplied values that could
// not be coerced into the expected type. Test with errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")

// Ledger wraps a transaction table. Construct with New; the zero value is
// not usable.
type Ledger struct {
	tab *table.Table
}

// New wraps a normalized table.
func New(tab *table.Table) *Ledger {
	if tab == nil {
		tab = table.New(nil)
	}
	return &Ledger{tab: tab}
}

// Table exposes the raw backing table, the escape hatch for operations the
// Ledger surface does not cover. Mutations through it are shared with every
// Ledger over the same table.
func (l *Ledger) Table() *table.Table { return l.tab }

// Len returns the row count.
func (l *Ledger) Len() int { return l.tab.Len() }

// Total sums the amount column. An empty ledger totals zero.
func (l *Ledger) Total() decimal.Decimal { return l.tab.SumAmount() }

func (l *Ledger) filter(keep func(table.Row) bool) *Ledger {
	return &Ledger{tab: l.tab.Filter(keep)}
}

// Search keeps rows whose description or original description matches the
// case-insensitive regular expression pattern; a row qualifies when either
// field matches. invert keeps the rows where neither does.
func (l *Ledger) Search(pattern string, invert bool) (*Ledger, error) {
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: bad search pattern %q: %v", ErrInvalidArgument, pattern, err)
	}
	return l.filter(func(r table.Row) bool {
		hit := re.MatchString(r.Description) || re.MatchString(r.OriginalDescription)
		return hit != invert
	}), nil
}

// AccountLike keeps rows whose account matches the case-insensitive regular
// expression pattern.
func (l *Ledger) AccountLike(pattern string, invert bool) (*Ledger, error) {
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: bad account pattern %q: %v", ErrInvalidArgument, pattern, err)
	}
	return l.filter(func(r table.Row) bool {
		return re.MatchString(r.Account) != invert
	}), nil
}

// Income keeps rows with amount > 0.
func (l *Ledger) Income() *Ledger {
	return l.filter(func(r table.Row) bool { return r.Amount.IsPositive() })
}

// Expenses keeps rows with amount <= 0. Zero-amount rows count as expenses,
// so Income and Expenses partition the ledger exactly.
func (l *Ledger) Expenses() *Ledger {
	return l.filter(func(r table.Row) bool { return !r.Amount.IsPositive() })
}

// When keeps rows whose date falls in the half-open interval [after, before).
// A zero bound leaves that side unconstrained; both bounds compose as AND
// before inversion.
func (l *Ledger) When(after, before time.Time, invert bool) *Ledger {
	return l.filter(func(r table.Row) bool {
		in := true
		if !after.IsZero() && r.Date.Before(after) {
			in = false
		}
		if !before.IsZero() && !r.Date.Before(before) {
			in = false
		}
		return in != invert
	})
}

// InYear keeps rows dated in the given calendar year. Any year-like value is
// accepted; values that cannot be coerced to an integer return
// ErrInvalidArgument.
func (l *Ledger) InYear(year any) (*Ledger, error) {
	y, err := cast.ToIntE(year)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot interpret %v as a year: %v", ErrInvalidArgument, year, err)
	}
	start := time.Date(y, time.January, 1, 0, 0, 0, 0, time.UTC)
	return l.When(start, start.AddDate(1, 0, 0), false), nil
}

// LastWeeks keeps rows from the last n weeks of data, measured back from the
// most recent date present rather than from the wall clock.
func (l *Ledger) LastWeeks(n int) *Ledger {
	var latest time.Time
	for _, r := range l.tab.Rows() {
		if r.Date.After(latest) {
			latest = r.Date
		}
	}
	if latest.IsZero() {
		return l.When(time.Time{}, time.Time{}, false)
	}
	return l.When(latest.AddDate(0, 0, -7*n), time.Time{}, false)
}

// WithAmount keeps rows whose amount falls in the half-open interval
// [above, below). A nil bound leaves that side unconstrained.
func (l *Ledger) WithAmount(above, below *decimal.Decimal, invert bool) *Ledger {
	return l.filter(func(r table.Row) bool {
		in := true
		if above != nil && r.Amount.LessThan(*above) {
			in = false
		}
		if below != nil && !r.Amount.LessThan(*below) {
			in = false
		}
		return in != invert
	})
}

// InAccounts keeps rows whose account is one of accounts; a one-element
// slice is the scalar case. invert keeps rows in none of them.
func (l *Ledger) InAccounts(accounts []string, invert bool) *Ledger {
	return l.inSet(accounts, invert, func(r table.Row) string { return r.Account })
}

// InCategories keeps rows whose category is one of categories.
func (l *Ledger) InCategories(categories []string, invert bool) *Ledger {
	return l.inSet(categories, invert, func(r table.Row) string { return r.Category })
}

// InFunds keeps rows whose fund is one of funds. Only brokerage rows carry a
// fund, so cash-flow rows never match.
func (l *Ledger) InFunds(funds []string, invert bool) *Ledger {
	return l.inSet(funds, invert, func(r table.Row) string { return r.Fund })
}

func (l *Ledger) inSet(values []string, invert bool, get func(table.Row) string) *Ledger {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return l.filter(func(r table.Row) bool {
		return set[get(r)] != invert
	})
}

// Recategorize returns a copy of the ledger where every row that also
// appears in other, matched by row key rather than value, has its category
// replaced with newCategory.
func (l *Ledger) Recategorize(other *Ledger, newCategory string) *Ledger {
	tab := l.tab.Copy()
	tab.SetCategory(other.tab.Keys(), newCategory)
	return &Ledger{tab: tab}
}

// RecategorizeInPlace rewrites categories directly in the receiver's backing
// table. Every Ledger sharing that table sees the change; treat the call as
// an exclusive write.
func (l *Ledger) RecategorizeInPlace(other *Ledger, newCategory string) {
	l.tab.SetCategory(other.tab.Keys(), newCategory)
}

// Accounts returns the distinct account names in order of first appearance.
func (l *Ledger) Accounts() []string {
	return l.tab.Distinct(func(r table.Row) string { return r.Account })
}

// Categories returns the distinct categories in order of first appearance.
func (l *Ledger) Categories() []string {
	return l.tab.Distinct(func(r table.Row) string { return r.Category })
}

// Descriptions returns the distinct descriptions in order of first
// appearance.
func (l *Ledger) Descriptions() []string {
	return l.tab.Distinct(func(r table.Row) string { return r.Description })
}

// OriginalDescriptions returns the distinct original descriptions in order
// of first appearance.
func (l *Ledger) OriginalDescriptions() []string {
	return l.tab.Distinct(func(r table.Row) string { return r.OriginalDescription })
}

// Funds returns the distinct fund names in order of first appearance,
// skipping rows that carry none.
func (l *Ledger) Funds() []string {
	var out []string
	for _, f := range l.tab.Distinct(func(r table.Row) string { return r.Fund }) {
		if f != "" {
			out = append(out, f)
		}
	}
	return out
}

// Contributions keeps brokerage rows whose activity type is Contribution.
func (l *Ledger) Contributions() *Ledger { return l.withType(models.ActivityContribution) }

// Fees keeps brokerage rows whose activity type is Fee, redemption fees
// included.
func (l *Ledger) Fees() *Ledger { return l.withType(models.ActivityFee) }

// Dividends keeps brokerage rows whose activity type is Dividend.
func (l *Ledger) Dividends() *Ledger { return l.withType(models.ActivityDividend) }

// Exchanges keeps brokerage rows whose activity type is Exchange, either
// direction.
func (l *Ledger) Exchanges() *Ledger { return l.withType(models.ActivityExchange) }

func (l *Ledger) withType(activity string) *Ledger {
	return l.filter(func(r table.Row) bool { return r.Type == activity })
}

// Portfolio sums shares by fund, rounded to two places, dropping funds whose
// position nets out to zero. Fund names come back in ascending order.
func (l *Ledger) Portfolio() ([]string, map[string]decimal.Decimal) {
	totals := make(map[string]decimal.Decimal)
	for _, r := range l.tab.Rows() {
		if r.Fund == "" {
			continue
		}
		totals[r.Fund] = totals[r.Fund].Add(r.Shares)
	}

	out := make(map[string]decimal.Decimal, len(totals))
	funds := make([]string, 0, len(totals))
	for f, shares := range totals {
		shares = shares.Round(2)
		if shares.IsZero() {
			continue
		}
		out[f] = shares
		funds = append(funds, f)
	}
	sort.Strings(funds)
	return funds, out
}
