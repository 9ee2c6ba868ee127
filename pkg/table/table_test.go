package table

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bgutter/personal-data-mining/pkg/models"
)

func tx(date, amount, account, category string) models.Transaction {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return models.Transaction{
		Date:     d,
		Amount:   decimal.RequireFromString(amount),
		Account:  account,
		Category: category,
	}
}

func assertKeys(t *testing.T, tab *Table, want []int) {
	t.Helper()
	got := tab.Keys()
	if len(got) != len(want) {
		t.Fatalf("expected keys %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected keys %v, got %v", want, got)
		}
	}
}

func TestNewAssignsKeys(t *testing.T) {
	tab := New([]models.Transaction{
		tx("2023-01-01", "10", "checking", "Food"),
		tx("2023-01-02", "-5", "checking", "Food"),
		tx("2023-01-03", "7", "savings", "Income"),
	})
	assertKeys(t, tab, []int{0, 1, 2})
}

func TestFilterPreservesKeysAndCopies(t *testing.T) {
	tab := New([]models.Transaction{
		tx("2023-01-01", "10", "checking", "Food"),
		tx("2023-01-02", "-5", "checking", "Food"),
		tx("2023-01-03", "7", "savings", "Income"),
	})

	sub := tab.Filter(func(r Row) bool { return r.Account == "checking" })
	assertKeys(t, sub, []int{0, 1})

	// Mutating the filtered copy must not leak into the original.
	sub.Rows()[0].Category = "Changed"
	if tab.Rows()[0].Category != "Food" {
		t.Errorf("filter result shares rows with its source table")
	}
}

func TestSelectMask(t *testing.T) {
	tab := New([]models.Transaction{
		tx("2023-01-01", "10", "a", ""),
		tx("2023-01-02", "20", "b", ""),
		tx("2023-01-03", "30", "c", ""),
	})

	sub := tab.Select([]bool{true, false, true})
	assertKeys(t, sub, []int{0, 2})
}

func TestConcatReassignsKeys(t *testing.T) {
	first := New([]models.Transaction{
		tx("2023-01-01", "10", "a", ""),
		tx("2023-01-02", "20", "a", ""),
	})
	second := New([]models.Transaction{
		tx("2023-02-01", "30", "b", ""),
	})

	merged := Concat(first, second)
	assertKeys(t, merged, []int{0, 1, 2})
	if merged.Rows()[2].Account != "b" {
		t.Errorf("expected row order preserved across inputs, got %+v", merged.Rows())
	}
}

func TestGroupBySortsLabels(t *testing.T) {
	tab := New([]models.Transaction{
		tx("2023-01-01", "10", "a", "Groceries"),
		tx("2023-01-02", "20", "a", "Auto"),
		tx("2023-01-03", "30", "a", "Groceries"),
	})

	labels, groups := tab.GroupBy(func(r Row) string { return r.Category })
	if len(labels) != 2 || labels[0] != "Auto" || labels[1] != "Groceries" {
		t.Fatalf("expected sorted labels [Auto Groceries], got %v", labels)
	}
	if groups["Groceries"].Len() != 2 {
		t.Errorf("expected 2 grocery rows, got %d", groups["Groceries"].Len())
	}
	assertKeys(t, groups["Groceries"], []int{0, 2})
}

func TestSetCategoryByKey(t *testing.T) {
	tab := New([]models.Transaction{
		tx("2023-01-01", "10", "a", "Old"),
		tx("2023-01-02", "20", "a", "Old"),
		tx("2023-01-03", "30", "a", "Old"),
	})

	tab.SetCategory([]int{0, 2, 99}, "New")

	got := []string{tab.Rows()[0].Category, tab.Rows()[1].Category, tab.Rows()[2].Category}
	if got[0] != "New" || got[1] != "Old" || got[2] != "New" {
		t.Errorf("expected [New Old New], got %v", got)
	}
}

func TestDistinctFirstAppearance(t *testing.T) {
	tab := New([]models.Transaction{
		tx("2023-01-01", "1", "zeta", ""),
		tx("2023-01-02", "1", "alpha", ""),
		tx("2023-01-03", "1", "zeta", ""),
		tx("2023-01-04", "1", "mid", ""),
	})

	got := tab.Distinct(func(r Row) string { return r.Account })
	want := []string{"zeta", "alpha", "mid"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected first-appearance order %v, got %v", want, got)
		}
	}
}

func TestSumAmount(t *testing.T) {
	empty := New(nil)
	if !empty.SumAmount().IsZero() {
		t.Errorf("expected empty table to sum to zero, got %s", empty.SumAmount())
	}

	tab := New([]models.Transaction{
		tx("2023-01-01", "10.25", "a", ""),
		tx("2023-01-02", "-3.75", "a", ""),
	})
	if want := decimal.RequireFromString("6.5"); !tab.SumAmount().Equal(want) {
		t.Errorf("expected sum %s, got %s", want, tab.SumAmount())
	}
}
