package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pdm.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestBuildDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Build("", nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if cfg.Manifest != "sources.yaml" {
		t.Errorf("Manifest = %q, want sources.yaml", cfg.Manifest)
	}
	if cfg.TransferWindowDays != 7 {
		t.Errorf("TransferWindowDays = %d, want 7", cfg.TransferWindowDays)
	}
	if !cfg.AllowInternal {
		t.Error("AllowInternal should default to true")
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
}

func TestBuildConfigFile(t *testing.T) {
	path := writeConfig(t, `
manifest: ledger/sources.yaml
transfer_window_days: 3
allow_internal: false
`)

	cfg, err := Build(path, nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if cfg.Manifest != "ledger/sources.yaml" {
		t.Errorf("Manifest = %q", cfg.Manifest)
	}
	if cfg.TransferWindowDays != 3 {
		t.Errorf("TransferWindowDays = %d, want 3", cfg.TransferWindowDays)
	}
	if cfg.AllowInternal {
		t.Error("AllowInternal should be false from config file")
	}
}

func TestBuildFlagOverride(t *testing.T) {
	path := writeConfig(t, `
transfer_window_days: 3
allow_internal: false
`)

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Int("window-days", 7, "")
	flags.Bool("allow-internal", true, "")
	if err := flags.Set("window-days", "10"); err != nil {
		t.Fatalf("set flag: %v", err)
	}

	cfg, err := Build(path, flags)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if cfg.TransferWindowDays != 10 {
		t.Errorf("TransferWindowDays = %d, want flag value 10", cfg.TransferWindowDays)
	}
	// allow-internal was never set on the command line, so the config file wins.
	if cfg.AllowInternal {
		t.Error("unset flag default should not shadow config file value")
	}
}

func TestBuildEnvOverride(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PDM_LOG_LEVEL", "debug")

	cfg, err := Build("", nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug from environment", cfg.LogLevel)
	}
}

func TestBuildMissingExplicitFile(t *testing.T) {
	if _, err := Build(filepath.Join(t.TempDir(), "absent.yaml"), nil); err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}

func TestWindow(t *testing.T) {
	cfg := Config{TransferWindowDays: 3}
	if got := cfg.Window(); got != 72*time.Hour {
		t.Errorf("Window() = %v, want 72h", got)
	}
}
