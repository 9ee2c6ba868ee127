package main

import (
	"github.com/spf13/cobra"

	"github.com/bgutter/personal-data-mining/pkg/ledger"
)

var inspectLimit int

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Income, expenses, net, and per-category totals",
	RunE: func(cmd *cobra.Command, _ []string) error {
		env, err := buildEnv(cmd)
		if err != nil {
			return err
		}
		return env.exec.Summary(env.led)
	},
}

var transfersCmd = &cobra.Command{
	Use:   "transfers",
	Short: "Rows matched as the two sides of one money movement",
	RunE: func(cmd *cobra.Command, _ []string) error {
		env, err := buildEnv(cmd)
		if err != nil {
			return err
		}
		m := ledger.TransferMatcher{
			Window:        env.cfg.Window(),
			AllowInternal: env.cfg.AllowInternal,
		}
		return env.exec.Transfers(env.led, m)
	},
}

var bucketsCmd = &cobra.Command{
	Use:   "buckets <yearly|monthly|weekly|daily>",
	Short: "Totals per calendar bucket",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := buildEnv(cmd)
		if err != nil {
			return err
		}
		return env.exec.Buckets(env.led, args[0])
	},
}

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Distinct categories, in order of first appearance",
	RunE: func(cmd *cobra.Command, _ []string) error {
		env, err := buildEnv(cmd)
		if err != nil {
			return err
		}
		env.exec.List(env.led.Categories())
		return nil
	},
}

var accountsCmd = &cobra.Command{
	Use:   "accounts",
	Short: "Distinct accounts, in order of first appearance",
	RunE: func(cmd *cobra.Command, _ []string) error {
		env, err := buildEnv(cmd)
		if err != nil {
			return err
		}
		env.exec.List(env.led.Accounts())
		return nil
	},
}

var fundsCmd = &cobra.Command{
	Use:   "funds",
	Short: "Distinct funds held in brokerage rows",
	RunE: func(cmd *cobra.Command, _ []string) error {
		env, err := buildEnv(cmd)
		if err != nil {
			return err
		}
		env.exec.List(env.led.Funds())
		return nil
	},
}

var portfolioCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Net share positions by fund",
	RunE: func(cmd *cobra.Command, _ []string) error {
		env, err := buildEnv(cmd)
		if err != nil {
			return err
		}
		return env.exec.Portfolio(env.led)
	},
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the filtered ledger as canonical CSV",
	RunE: func(cmd *cobra.Command, _ []string) error {
		env, err := buildEnv(cmd)
		if err != nil {
			return err
		}
		return env.exec.Export(env.led, env.cfg.Output)
	},
}

var recatCmd = &cobra.Command{
	Use:   "recat <pattern> <category>",
	Short: "Recategorize rows matching a description pattern, then export",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := buildEnv(cmd)
		if err != nil {
			return err
		}
		return env.exec.Recat(env.led, args[0], args[1], env.cfg.Output)
	},
}

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Pretty-print parsed rows for debugging",
	RunE: func(cmd *cobra.Command, _ []string) error {
		env, err := buildEnv(cmd)
		if err != nil {
			return err
		}
		return env.exec.Inspect(env.led, inspectLimit)
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Config file (default is pdm.yaml)")
	rootCmd.PersistentFlags().String("manifest", "", "Sources manifest path")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")

	// Filter flags (global)
	rootCmd.PersistentFlags().StringVar(&cliFilters.after, "after", "", "Keep rows dated on or after this date")
	rootCmd.PersistentFlags().StringVar(&cliFilters.before, "before", "", "Keep rows dated before this date")
	rootCmd.PersistentFlags().StringVar(&cliFilters.year, "year", "", "Keep rows in this calendar year")
	rootCmd.PersistentFlags().StringSliceVar(&cliFilters.accounts, "accounts", nil, "Keep rows in these accounts")
	rootCmd.PersistentFlags().StringSliceVar(&cliFilters.categories, "categories", nil, "Keep rows in these categories")
	rootCmd.PersistentFlags().StringVar(&cliFilters.search, "search", "", "Keep rows whose description matches this pattern")
	rootCmd.PersistentFlags().StringVar(&cliFilters.above, "above", "", "Keep rows with amount at or above this value")
	rootCmd.PersistentFlags().StringVar(&cliFilters.below, "below", "", "Keep rows with amount below this value")

	// Flags specific to subcommands
	transfersCmd.Flags().Int("window-days", 7, "Maximum days between the two sides of a transfer")
	transfersCmd.Flags().Bool("allow-internal", true, "Allow both sides of a pair in the same account")
	exportCmd.Flags().String("out", "", "Output file (default stdout)")
	recatCmd.Flags().String("out", "", "Output file (default stdout)")
	inspectCmd.Flags().IntVar(&inspectLimit, "limit", 20, "Rows to print")

	rootCmd.AddCommand(summaryCmd, transfersCmd, bucketsCmd, categoriesCmd,
		accountsCmd, fundsCmd, portfolioCmd, exportCmd, recatCmd, inspectCmd)
}
