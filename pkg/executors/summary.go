package executors

import (
	"fmt"
	"strings"

	"github.com/bgutter/personal-data-mining/pkg/ledger"
)

// Summary prints income, expenses, and net for the ledger, then a styled
// per-category breakdown with row counts.
func (e *Executor) Summary(led *ledger.Ledger) error {
	e.logger.Debug("rendering summary", "rows", led.Len())

	fmt.Fprintf(e.out, "Income   %s\n", signed(led.Income().Total()))
	fmt.Fprintf(e.out, "Expenses %s\n", signed(led.Expenses().Total()))
	fmt.Fprintf(e.out, "Net      %s\n\n", signed(led.Total()))

	byCat := led.ByCategory()
	totals := byCat.Totals()
	counts := byCat.Counts()
	for _, cat := range byCat.Keys() {
		label := cat
		if label == "" {
			label = "(uncategorized)"
		}
		line := fmt.Sprintf("%-30s | %4d | %12s", label, counts[cat], money(totals[cat]))
		if totals[cat].IsNegative() {
			fmt.Fprintln(e.out, lossStyle.Render("- "+line))
		} else {
			fmt.Fprintln(e.out, gainStyle.Render("+ "+line))
		}
	}
	return nil
}

// Buckets prints totals grouped by calendar bucket. freq is one of yearly,
// monthly, weekly, or daily.
func (e *Executor) Buckets(led *ledger.Ledger, freq string) error {
	var g *ledger.Group
	switch strings.ToLower(freq) {
	case "yearly":
		g = led.Yearly()
	case "monthly":
		g = led.Monthly()
	case "weekly":
		g = led.Weekly()
	case "daily":
		g = led.Daily()
	default:
		return fmt.Errorf("unknown bucket frequency %q", freq)
	}

	totals := g.Totals()
	counts := g.Counts()
	for _, k := range g.Keys() {
		line := fmt.Sprintf("%-12s | %4d | %12s", k, counts[k], money(totals[k]))
		if totals[k].IsNegative() {
			fmt.Fprintln(e.out, lossStyle.Render("- "+line))
		} else {
			fmt.Fprintln(e.out, gainStyle.Render("+ "+line))
		}
	}
	return nil
}

// Portfolio prints net share positions by fund.
func (e *Executor) Portfolio(led *ledger.Ledger) error {
	funds, shares := led.Portfolio()
	if len(funds) == 0 {
		fmt.Fprintln(e.out, "No open positions")
		return nil
	}
	for _, f := range funds {
		fmt.Fprintf(e.out, "%-30s %12s\n", f, shares[f].StringFixed(2))
	}
	return nil
}
