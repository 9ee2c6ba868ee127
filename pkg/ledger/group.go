package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/bgutter/personal-data-mining/pkg/table"
)

// Group is a partition of a Ledger keyed by a column value or calendar
// bucket. Keys are held in ascending order.
type Group struct {
	keys []string
	subs map[string]*Ledger
}

func newGroup(tab *table.Table, key func(table.Row) string) *Group {
	labels, parts := tab.GroupBy(key)
	subs := make(map[string]*Ledger, len(parts))
	for k, part := range parts {
		subs[k] = &Ledger{tab: part}
	}
	return &Group{keys: labels, subs: subs}
}

// Keys returns the group labels in ascending order.
func (g *Group) Keys() []string { return g.keys }

// Len returns the number of groups.
func (g *Group) Len() int { return len(g.keys) }

// Get returns the sub-ledger for key, or nil when the key is absent.
func (g *Group) Get(key string) *Ledger { return g.subs[key] }

// Totals maps each group key to the sum of amounts within that group.
func (g *Group) Totals() map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(g.subs))
	for k, sub := range g.subs {
		out[k] = sub.Total()
	}
	return out
}

// Counts maps each group key to its row count.
func (g *Group) Counts() map[string]int {
	out := make(map[string]int, len(g.subs))
	for k, sub := range g.subs {
		out[k] = sub.Len()
	}
	return out
}

// ByCategory partitions by exact category value.
func (l *Ledger) ByCategory() *Group {
	return newGroup(l.tab, func(r table.Row) string { return r.Category })
}

// ByAccount partitions by exact account value.
func (l *Ledger) ByAccount() *Group {
	return newGroup(l.tab, func(r table.Row) string { return r.Account })
}

// ByDescription partitions by exact description value.
func (l *Ledger) ByDescription() *Group {
	return newGroup(l.tab, func(r table.Row) string { return r.Description })
}

// ByOriginalDescription partitions by exact original-description value.
func (l *Ledger) ByOriginalDescription() *Group {
	return newGroup(l.tab, func(r table.Row) string { return r.OriginalDescription })
}

// Yearly partitions by calendar year, labeled by the year.
func (l *Ledger) Yearly() *Group {
	return newGroup(l.tab, func(r table.Row) string { return r.Date.Format("2006") })
}

// Monthly partitions by calendar month. Buckets are right-labeled with the
// month-end date.
func (l *Ledger) Monthly() *Group {
	return newGroup(l.tab, func(r table.Row) string {
		return monthEnd(r.Date).Format("2006-01-02")
	})
}

// Weekly partitions by calendar week. Weeks end on Sunday; buckets are
// right-labeled with that Sunday.
func (l *Ledger) Weekly() *Group {
	return newGroup(l.tab, func(r table.Row) string {
		return weekEnd(r.Date).Format("2006-01-02")
	})
}

// Daily partitions by calendar day.
func (l *Ledger) Daily() *Group {
	return newGroup(l.tab, func(r table.Row) string { return r.Date.Format("2006-01-02") })
}

// monthEnd returns the last day of t's month.
func monthEnd(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location())
}

// weekEnd returns the Sunday on or after t.
func weekEnd(t time.Time) time.Time {
	days := (7 - int(t.Weekday())) % 7
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location()).AddDate(0, 0, days)
}
