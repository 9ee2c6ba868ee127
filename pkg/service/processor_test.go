package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/bgutter/personal-data-mining/pkg/manifest"
)

const mintCSV = `Date,Description,Original Description,Amount,Transaction Type,Category,Account Name,Labels,Notes
1/02/2023,Paycheck,ACME PAYROLL,2000.00,credit,Income,Checking,,
1/03/2023,Coffee,COFFEE SHOP 12,4.50,debit,Restaurants,Checking,,
`

const trpCSV = `Report Title
Generated 2023-01-31

Date,Activity Type,Investment,Source,Shares,Price,Amount
1/15/2023,Contribution,Target 2050,Employee,"4.121","$48.53","$200.00"
`

func writeTree(t *testing.T) (dir string) {
	t.Helper()
	dir = t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "mint.csv"), []byte(mintCSV), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	trpDir := filepath.Join(dir, "retirement")
	if err := os.Mkdir(trpDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(trpDir, "2023.csv"), []byte(trpCSV), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return dir
}

func TestLoadCombinesSources(t *testing.T) {
	dir := writeTree(t)
	m := &manifest.Manifest{Sources: []manifest.Source{
		{Format: "mint", File: filepath.Join(dir, "mint.csv")},
		{Format: "trp", File: filepath.Join(dir, "retirement"), Account: "TRP 401k"},
	}}

	p := NewProcessor(log.Default())
	led, err := p.Load(m)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if led.Len() != 3 {
		t.Fatalf("combined ledger has %d rows, want 3", led.Len())
	}
	// Keys are reassigned across the merge, in source order.
	rows := led.Table().Rows()
	for i, r := range rows {
		if r.Key != i {
			t.Errorf("row %d has key %d", i, r.Key)
		}
	}
	if rows[2].Fund != "Target 2050" {
		t.Errorf("last row fund = %q, want the brokerage row", rows[2].Fund)
	}
}

func TestLoadSourceStampsAccount(t *testing.T) {
	dir := writeTree(t)
	p := NewProcessor(log.Default())

	led, err := p.LoadSource(manifest.Source{
		Format:  "trp",
		File:    filepath.Join(dir, "retirement"),
		Account: "TRP 401k",
	})
	if err != nil {
		t.Fatalf("LoadSource: %v", err)
	}

	for _, r := range led.Table().Rows() {
		if r.Account != "TRP 401k" {
			t.Errorf("row %d account = %q, want stamped label", r.Key, r.Account)
		}
	}
}

func TestLoadSourceKeepsExistingAccounts(t *testing.T) {
	dir := writeTree(t)
	p := NewProcessor(log.Default())

	led, err := p.LoadSource(manifest.Source{
		Format:  "mint",
		File:    filepath.Join(dir, "mint.csv"),
		Account: "Override",
	})
	if err != nil {
		t.Fatalf("LoadSource: %v", err)
	}

	for _, r := range led.Table().Rows() {
		if r.Account != "Checking" {
			t.Errorf("row %d account = %q, stamp must not clobber export accounts", r.Key, r.Account)
		}
	}
}

func TestLoadBadSource(t *testing.T) {
	p := NewProcessor(log.Default())
	m := &manifest.Manifest{Sources: []manifest.Source{
		{Format: "mint", File: filepath.Join(t.TempDir(), "absent.csv")},
	}}

	if _, err := p.Load(m); err == nil {
		t.Fatal("expected error for missing source file")
	}
}
