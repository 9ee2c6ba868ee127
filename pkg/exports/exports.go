// Package exports reads budgeting and brokerage export files into the
// canonical transaction table. Each supported source format owns a Normalize
// implementation; the Reader front-end handles files, directories, and the
// legacy workbook variant of the cash-flow exports.
package exports

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/extrame/xls"

	"github.com/bgutter/personal-data-mining/pkg/ledger"
	"github.com/bgutter/personal-data-mining/pkg/table"
)

// Format identifies a supported export layout.
type Format string

const (
	// FormatMint is the budgeting-service cash-flow export: unsigned
	// amounts plus a debit/credit flag column.
	FormatMint Format = "mint"
	// FormatTiller is the spreadsheet cash-flow export: signed $-string
	// amounts.
	FormatTiller Format = "tiller"
	// FormatTRP is the brokerage activity export: $-string amounts and
	// prices, fractional share counts, two preamble lines above the header.
	FormatTRP Format = "trp"
)

// ParseFormat validates a format name coming from a manifest or a flag.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatMint, FormatTiller, FormatTRP:
		return f, nil
	default:
		return "", fmt.Errorf("unknown source format %q", s)
	}
}

// Normalize converts raw export rows (header line included) into the
// canonical transaction table.
func (f Format) Normalize(records [][]string) (*table.Table, error) {
	switch f {
	case FormatMint:
		return normalizeMint(records)
	case FormatTiller:
		return normalizeTiller(records)
	case FormatTRP:
		return normalizeTRP(records)
	default:
		return nil, fmt.Errorf("unknown source format %q", f)
	}
}

const maxWorkbookRows = 10000

// Reader loads export files from disk and hands back ready-to-query ledgers.
type Reader struct {
	logger *log.Logger
}

func New(logger *log.Logger) *Reader {
	return &Reader{logger: logger}
}

// Load reads path with the given format. For FormatTRP, path may be a
// directory of CSV files.
func (r *Reader) Load(path string, format Format) (*ledger.Ledger, error) {
	switch format {
	case FormatMint:
		return r.FromMint(path)
	case FormatTiller:
		return r.FromTiller(path)
	case FormatTRP:
		return r.FromTRP(path)
	default:
		return nil, fmt.Errorf("unknown source format %q", format)
	}
}

// FromMint loads a budgeting-service cash-flow export.
func (r *Reader) FromMint(path string) (*ledger.Ledger, error) {
	return r.loadFile(path, FormatMint)
}

// FromTiller loads a spreadsheet cash-flow export.
func (r *Reader) FromTiller(path string) (*ledger.Ledger, error) {
	return r.loadFile(path, FormatTiller)
}

// FromTRP loads brokerage activity from one CSV, or from every CSV in a
// directory, concatenated without deduplication in lexical filename order.
// Row keys are reassigned after the merge.
func (r *Reader) FromTRP(path string) (*ledger.Ledger, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if !info.IsDir() {
		return r.loadFile(path, FormatTRP)
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("read directory %s: %w", path, err)
	}

	var tables []*table.Table
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(strings.ToLower(entry.Name()), ".csv") {
			continue
		}
		tab, err := r.normalizeFile(filepath.Join(path, entry.Name()), FormatTRP)
		if err != nil {
			return nil, err
		}
		tables = append(tables, tab)
	}
	if len(tables) == 0 {
		return nil, fmt.Errorf("no csv files in %s", path)
	}
	return ledger.New(table.Concat(tables...)), nil
}

func (r *Reader) loadFile(path string, format Format) (*ledger.Ledger, error) {
	tab, err := r.normalizeFile(path, format)
	if err != nil {
		return nil, err
	}
	return ledger.New(tab), nil
}

func (r *Reader) normalizeFile(path string, format Format) (*table.Table, error) {
	records, err := readRecords(path)
	if err != nil {
		return nil, err
	}
	tab, err := format.Normalize(records)
	if err != nil {
		return nil, err
	}
	r.logger.Debug("normalized export", "format", format, "file", path, "rows", tab.Len())
	return tab, nil
}

// readRecords extracts raw string rows from a CSV file, or from a legacy XLS
// workbook when the extension says so. Both paths feed the same Normalize
// pipeline.
func readRecords(path string) ([][]string, error) {
	if strings.HasSuffix(strings.ToLower(path), ".xls") {
		return readWorkbook(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	// Preamble lines make row widths uneven in some exports.
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return records, nil
}

func readWorkbook(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	workbook, err := xls.OpenReader(f, "cp1252")
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}

	rows := workbook.ReadAllCells(maxWorkbookRows)
	if len(rows) == 0 {
		return nil, fmt.Errorf("no data found in workbook %s", path)
	}
	return rows, nil
}
