package executors

import (
	"fmt"
	"os"

	"github.com/k0kubun/pp/v3"

	"github.com/bgutter/personal-data-mining/pkg/csv"
	"github.com/bgutter/personal-data-mining/pkg/ledger"
)

// Export writes the ledger as canonical CSV to path, or to the executor's
// writer when path is empty.
func (e *Executor) Export(led *ledger.Ledger, path string) error {
	rows := led.Table().Rows()
	if path == "" {
		return csv.Write(e.out, rows, nil)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating output file: %w", err)
	}
	defer f.Close()

	if err := csv.Write(f, rows, nil); err != nil {
		return fmt.Errorf("error writing output file: %w", err)
	}
	e.logger.Info("wrote csv", "file", path, "rows", len(rows))
	return nil
}

// Recat rewrites the category of every row matching pattern, then exports the
// whole table so the result can be diffed or re-imported.
func (e *Executor) Recat(led *ledger.Ledger, pattern, category, path string) error {
	matches, err := led.Search(pattern, false)
	if err != nil {
		return err
	}
	e.logger.Info("recategorizing",
		"pattern", pattern, "category", category, "rows", matches.Len())

	return e.Export(led.Recategorize(matches, category), path)
}

// Inspect pretty-prints up to limit parsed rows. limit <= 0 means all.
func (e *Executor) Inspect(led *ledger.Ledger, limit int) error {
	rows := led.Table().Rows()
	if limit > 0 && limit < len(rows) {
		rows = rows[:limit]
	}
	for _, r := range rows {
		if _, err := pp.Fprintln(e.out, r); err != nil {
			return err
		}
	}
	fmt.Fprintf(e.out, "%d of %d row(s)\n", len(rows), led.Len())
	return nil
}
