// Package table holds the in-memory transaction table the ledger API is
// built on. Filtering operations return new tables over copied rows;
// SetCategory is the only mutation path.
package table

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/bgutter/personal-data-mining/pkg/models"
)

// Row pairs a canonical transaction with the stable key it was assigned when
// its table was built. Keys survive filtering, so a filtered row can always
// be traced back to the table it came from.
type Row struct {
	Key int
	models.Transaction
}

// Table is an ordered collection of rows.
type Table struct {
	rows []Row
}

// New builds a table from transactions, assigning row keys 0..n-1.
func New(txs []models.Transaction) *Table {
	rows := make([]Row, len(txs))
	for i, tx := range txs {
		rows[i] = Row{Key: i, Transaction: tx}
	}
	return &Table{rows: rows}
}

// FromRows builds a table from rows that already carry keys. The rows are
// copied; the keys are kept as they are.
func FromRows(rows []Row) *Table {
	out := make([]Row, len(rows))
	copy(out, rows)
	return &Table{rows: out}
}

// Concat merges tables into one, preserving row order within and across
// inputs and reassigning keys 0..n-1.
func Concat(tables ...*Table) *Table {
	var txs []models.Transaction
	for _, t := range tables {
		for _, r := range t.rows {
			txs = append(txs, r.Transaction)
		}
	}
	return New(txs)
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.rows) }

// Rows exposes the backing rows directly. Mutations through the returned
// slice are visible to everything sharing the table.
func (t *Table) Rows() []Row { return t.rows }

// Keys returns the row keys in table order.
func (t *Table) Keys() []int {
	out := make([]int, len(t.rows))
	for i, r := range t.rows {
		out[i] = r.Key
	}
	return out
}

// Copy returns an independent copy of the table.
func (t *Table) Copy() *Table {
	return FromRows(t.rows)
}

// Filter returns a new table holding copies of the rows keep accepts.
func (t *Table) Filter(keep func(Row) bool) *Table {
	out := make([]Row, 0, len(t.rows))
	for _, r := range t.rows {
		if keep(r) {
			out = append(out, r)
		}
	}
	return &Table{rows: out}
}

// Select returns a new table holding copies of the rows whose positional
// mask bit is set.
func (t *Table) Select(mask []bool) *Table {
	out := make([]Row, 0, len(t.rows))
	for i, r := range t.rows {
		if i < len(mask) && mask[i] {
			out = append(out, r)
		}
	}
	return &Table{rows: out}
}

// SumAmount adds up the amount column. An empty table sums to zero.
func (t *Table) SumAmount() decimal.Decimal {
	sum := decimal.Zero
	for _, r := range t.rows {
		sum = sum.Add(r.Amount)
	}
	return sum
}

// Distinct returns the distinct values of get over all rows, in order of
// first appearance.
func (t *Table) Distinct(get func(Row) string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, r := range t.rows {
		v := get(r)
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

// GroupBy partitions rows by the value of key. Labels come back in ascending
// order; each sub-table holds copies of its rows.
func (t *Table) GroupBy(key func(Row) string) ([]string, map[string]*Table) {
	groups := make(map[string][]Row)
	for _, r := range t.rows {
		k := key(r)
		groups[k] = append(groups[k], r)
	}

	labels := make([]string, 0, len(groups))
	tables := make(map[string]*Table, len(groups))
	for k, rows := range groups {
		labels = append(labels, k)
		tables[k] = &Table{rows: rows}
	}
	sort.Strings(labels)
	return labels, tables
}

// SetCategory rewrites the category of every row whose key is in keys. Keys
// not present in the table are ignored. This is the narrow mutation path
// behind in-place recategorization.
func (t *Table) SetCategory(keys []int, category string) {
	want := make(map[int]bool, len(keys))
	for _, k := range keys {
		want[k] = true
	}
	for i := range t.rows {
		if want[t.rows[i].Key] {
			t.rows[i].Category = category
		}
	}
}
