package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/subosito/gotenv"

	"github.com/bgutter/personal-data-mining/pkg/config"
	"github.com/bgutter/personal-data-mining/pkg/executors"
	"github.com/bgutter/personal-data-mining/pkg/ledger"
	"github.com/bgutter/personal-data-mining/pkg/manifest"
	"github.com/bgutter/personal-data-mining/pkg/service"
)

var (
	cliFilters filters
	cfgFile    string
)

var rootCmd = &cobra.Command{
	Use:   "pdm",
	Short: "Query and report on personal finance exports",
	RunE: func(cmd *cobra.Command, _ []string) error {
		// Show help when no subcommand is provided
		return cmd.Help()
	},
}

// env bundles what a subcommand needs once configuration, logging, and the
// combined ledger are in place.
type env struct {
	cfg    *config.Config
	logger *log.Logger
	led    *ledger.Ledger
	exec   *executors.Executor
}

// buildEnv resolves configuration, sets up logging, loads every manifest
// source into one ledger, and applies the shared filter flags.
func buildEnv(cmd *cobra.Command) (*env, error) {
	cfg, err := config.Build(cfgFile, cmd.Flags())
	if err != nil {
		return nil, err
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "pdm",
		Level:           level,
	})

	m, err := manifest.Load(cfg.Manifest)
	if err != nil {
		return nil, err
	}

	led, err := service.NewProcessor(logger).Load(m)
	if err != nil {
		return nil, err
	}
	if led, err = cliFilters.apply(led); err != nil {
		return nil, err
	}

	return &env{
		cfg:    cfg,
		logger: logger,
		led:    led,
		exec:   executors.New(logger, cfg, os.Stdout),
	}, nil
}

func main() {
	_ = gotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
