package service

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/bgutter/personal-data-mining/pkg/exports"
	"github.com/bgutter/personal-data-mining/pkg/ledger"
	"github.com/bgutter/personal-data-mining/pkg/manifest"
	"github.com/bgutter/personal-data-mining/pkg/table"
)

// Processor turns a sources manifest into one combined ledger.
type Processor struct {
	reader *exports.Reader
	logger *log.Logger
}

func NewProcessor(logger *log.Logger) *Processor {
	return &Processor{
		reader: exports.New(logger),
		logger: logger,
	}
}

// Load reads every manifest source in order and concatenates the results.
// Row keys are reassigned across the merge.
func (p *Processor) Load(m *manifest.Manifest) (*ledger.Ledger, error) {
	var tables []*table.Table
	for i, src := range m.Sources {
		led, err := p.LoadSource(src)
		if err != nil {
			return nil, fmt.Errorf("error loading source %d (%s): %w", i, src.File, err)
		}
		tables = append(tables, led.Table())
	}

	combined := ledger.New(table.Concat(tables...))
	p.logger.Info("loaded manifest", "sources", len(m.Sources), "rows", combined.Len())
	return combined, nil
}

// LoadSource reads a single export source. When the manifest names an
// account, rows that carry no account of their own are stamped with it.
func (p *Processor) LoadSource(src manifest.Source) (*ledger.Ledger, error) {
	path, err := src.Path()
	if err != nil {
		return nil, err
	}
	format, err := exports.ParseFormat(src.Format)
	if err != nil {
		return nil, err
	}

	led, err := p.reader.Load(path, format)
	if err != nil {
		return nil, err
	}
	if src.Account != "" {
		led = fillAccount(led, src.Account)
	}
	return led, nil
}

func fillAccount(led *ledger.Ledger, account string) *ledger.Ledger {
	tab := led.Table().Copy()
	rows := tab.Rows()
	for i := range rows {
		if rows[i].Account == "" {
			rows[i].Account = account
		}
	}
	return ledger.New(tab)
}
