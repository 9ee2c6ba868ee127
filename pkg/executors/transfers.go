package executors

import (
	"fmt"

	"github.com/bgutter/personal-data-mining/pkg/ledger"
)

// Transfers prints the rows the matcher pairs up as two sides of one money
// movement, then a count summary.
func (e *Executor) Transfers(led *ledger.Ledger, m ledger.TransferMatcher) error {
	matched := led.TransfersWith(m, false)
	rest := led.TransfersWith(m, true)

	e.logger.Debug("matched transfers",
		"pairs", matched.Len()/2, "rows", led.Len(), "window", m.Window)

	for _, r := range matched.Table().Rows() {
		line := fmt.Sprintf("%s | %-30s | %-20s | %12s",
			r.Date.Format("2006-01-02"), r.Description, r.Account, money(r.Amount))
		fmt.Fprintln(e.out, mutedStyle.Render("= "+line))
	}

	if matched.Len() == 0 {
		fmt.Fprintf(e.out, "\nNo transfer pairs found among %d row(s)\n", led.Len())
		return nil
	}
	fmt.Fprintf(e.out, "\n%d row(s) in %d transfer pair(s), %d row(s) left\n",
		matched.Len(), matched.Len()/2, rest.Len())
	return nil
}
