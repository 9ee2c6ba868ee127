// Package config resolves tool settings from a YAML config file, PDM_*
// environment variables, and command-line flags, in increasing order of
// precedence. The library packages never read configuration themselves.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds the resolved settings for the command-line tool.
type Config struct {
	Manifest           string `mapstructure:"manifest"`
	TransferWindowDays int    `mapstructure:"transfer_window_days"`
	AllowInternal      bool   `mapstructure:"allow_internal"`
	LogLevel           string `mapstructure:"log_level"`
	Output             string `mapstructure:"output"`
}

// Window converts the configured transfer window to a duration.
func (c *Config) Window() time.Duration {
	return time.Duration(c.TransferWindowDays) * 24 * time.Hour
}

// flagKeys maps config keys to the flags that may override them.
var flagKeys = map[string]string{
	"manifest":             "manifest",
	"transfer_window_days": "window-days",
	"allow_internal":       "allow-internal",
	"log_level":            "log-level",
	"output":               "out",
}

// Build resolves configuration. Only flags the user actually set are bound,
// so flag defaults never shadow config-file values.
func Build(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	v.SetDefault("manifest", "sources.yaml")
	v.SetDefault("transfer_window_days", 7)
	v.SetDefault("allow_internal", true)
	v.SetDefault("log_level", "info")
	v.SetDefault("output", "")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("pdm")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("PDM")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// A missing default config file is fine; an explicit one is not.
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound || cfgFile != "" {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	if flags != nil {
		for key, name := range flagKeys {
			if f := flags.Lookup(name); f != nil && f.Changed {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}
