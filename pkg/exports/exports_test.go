package exports

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/shopspring/decimal"
)

const mintCSV = `Date,Description,Original Description,Amount,Transaction Type,Category,Account Name,Labels,Notes
1/05/2023,Amazon,AMZN Mktp US*1A2B3,12.99,debit,Shopping,Rewards Card,,
1/06/2023,Paycheck,ACME PAYROLL,1850.00,credit,Income,Checking,,
`

const trpCSV2022 = `Transaction Details for Example Retirement Plan
01/01/2022 to 12/31/2022
Date,Activity Type,Investment,Source,Shares,Price,Amount
6/10/2022,Contribution,Target 2050,Employee Deferral,5.000,"$40.00","$200.00"
`

const trpCSV2023 = `Transaction Details for Example Retirement Plan
01/01/2023 to 12/31/2023
Date,Activity Type,Investment,Source,Shares,Price,Amount
1/03/2023,Contribution,Target 2050,Employee Deferral,12.504,"$39.98","$499.99"
5/01/2023,Contribution,Balanced Index,Employee Deferral,58.139,"$21.50","$1,249.99"
`

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestFromMintFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "transactions.csv")
	writeFile(t, path, mintCSV)

	led, err := New(log.Default()).FromMint(path)
	if err != nil {
		t.Fatalf("FromMint failed: %v", err)
	}
	if led.Len() != 2 {
		t.Fatalf("expected 2 rows, got %d", led.Len())
	}
	if want := decimal.RequireFromString("1837.01"); !led.Total().Equal(want) {
		t.Errorf("expected total %s, got %s", want, led.Total())
	}
}

func TestFromTRPDirectoryMerge(t *testing.T) {
	dir := t.TempDir()
	// Written out of order on purpose; loading follows lexical filename
	// order, so the 2022 statement comes first.
	writeFile(t, filepath.Join(dir, "2023-activity.csv"), trpCSV2023)
	writeFile(t, filepath.Join(dir, "2022-activity.csv"), trpCSV2022)
	writeFile(t, filepath.Join(dir, "statement-notes.txt"), "not an export")

	led, err := New(log.Default()).FromTRP(dir)
	if err != nil {
		t.Fatalf("FromTRP failed: %v", err)
	}
	if led.Len() != 3 {
		t.Fatalf("expected 3 merged rows, got %d", led.Len())
	}

	rows := led.Table().Rows()
	if !rows[0].Date.Equal(day("2022-06-10")) {
		t.Errorf("expected the 2022 statement first, got %s", rows[0].Date)
	}
	for i, r := range rows {
		if r.Key != i {
			t.Errorf("expected keys reassigned after merge, got key %d at position %d", r.Key, i)
		}
	}
}

func TestFromTRPSingleFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "activity.csv")
	writeFile(t, path, trpCSV2023)

	led, err := New(log.Default()).FromTRP(path)
	if err != nil {
		t.Fatalf("FromTRP failed: %v", err)
	}
	if led.Len() != 2 {
		t.Errorf("expected 2 rows, got %d", led.Len())
	}
}

func TestFromTRPEmptyDirectory(t *testing.T) {
	if _, err := New(log.Default()).FromTRP(t.TempDir()); err == nil {
		t.Errorf("expected an error for a directory with no csv files")
	}
}

func TestLoadUnknownFormat(t *testing.T) {
	if _, err := New(log.Default()).Load("anything.csv", Format("qif")); err == nil {
		t.Errorf("expected an error for an unknown format")
	}
}
