// Package executors renders ledger reports for the command-line tool.
package executors

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/shopspring/decimal"

	"github.com/bgutter/personal-data-mining/pkg/config"
)

var (
	gainStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10")) // green
	lossStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))  // red
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))  // gray
)

type Executor struct {
	logger *log.Logger
	config *config.Config
	out    io.Writer
}

func New(logger *log.Logger, config *config.Config, out io.Writer) *Executor {
	return &Executor{
		logger: logger,
		config: config,
		out:    out,
	}
}

// List prints values one per line, rendering blanks visibly.
func (e *Executor) List(values []string) {
	for _, v := range values {
		if v == "" {
			fmt.Fprintln(e.out, mutedStyle.Render("(blank)"))
			continue
		}
		fmt.Fprintln(e.out, v)
	}
}

func money(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

// signed styles a money string green or red by sign.
func signed(d decimal.Decimal) string {
	if d.IsNegative() {
		return lossStyle.Render(money(d))
	}
	return gainStyle.Render(money(d))
}
