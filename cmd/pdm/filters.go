package main

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cast"

	"github.com/bgutter/personal-data-mining/pkg/ledger"
)

// filters holds the shared row-selection flags, compiled onto the combined
// ledger before a subcommand runs.
type filters struct {
	after      string
	before     string
	year       string
	accounts   []string
	categories []string
	search     string
	above      string
	below      string
}

func (f *filters) apply(led *ledger.Ledger) (*ledger.Ledger, error) {
	var err error

	if f.year != "" {
		if led, err = led.InYear(f.year); err != nil {
			return nil, err
		}
	}
	if f.after != "" || f.before != "" {
		after, err := parseDateFlag("after", f.after)
		if err != nil {
			return nil, err
		}
		before, err := parseDateFlag("before", f.before)
		if err != nil {
			return nil, err
		}
		led = led.When(after, before, false)
	}
	if len(f.accounts) > 0 {
		led = led.InAccounts(f.accounts, false)
	}
	if len(f.categories) > 0 {
		led = led.InCategories(f.categories, false)
	}
	if f.search != "" {
		if led, err = led.Search(f.search, false); err != nil {
			return nil, err
		}
	}
	if f.above != "" || f.below != "" {
		above, err := parseAmountFlag("above", f.above)
		if err != nil {
			return nil, err
		}
		below, err := parseAmountFlag("below", f.below)
		if err != nil {
			return nil, err
		}
		led = led.WithAmount(above, below, false)
	}
	return led, nil
}

// parseDateFlag turns a flag value into a date bound, zero when unset.
func parseDateFlag(name, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	t, err := cast.ToTimeE(value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --%s date %q: %w", name, value, err)
	}
	return t, nil
}

// parseAmountFlag turns a flag value into an amount bound, nil when unset.
func parseAmountFlag(name, value string) (*decimal.Decimal, error) {
	if value == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return nil, fmt.Errorf("invalid --%s amount %q: %w", name, value, err)
	}
	return &d, nil
}
