// Package manifest describes the YAML file enumerating the export sources
// that make up a combined ledger.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/bgutter/personal-data-mining/pkg/exports"
)

// Manifest is the parsed sources file.
type Manifest struct {
	Sources []Source `yaml:"sources"`
}

// Source is a single export to load. Account optionally labels rows whose
// format carries no account column of its own.
type Source struct {
	Format  string `yaml:"format"`
	File    string `yaml:"file"`
	Account string `yaml:"account"`
}

// Path returns the source file path, expanding a leading ~.
func (s *Source) Path() (string, error) {
	if strings.HasPrefix(s.File, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, s.File[2:]), nil
	}
	return s.File, nil
}

// Load reads and validates a manifest from a YAML file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", path, err)
	}

	if len(m.Sources) == 0 {
		return nil, fmt.Errorf("manifest %s lists no sources", path)
	}
	for i, src := range m.Sources {
		if src.File == "" {
			return nil, fmt.Errorf("manifest source %d has no file", i)
		}
		if _, err := exports.ParseFormat(src.Format); err != nil {
			return nil, fmt.Errorf("manifest source %d: %w", i, err)
		}
	}

	return &m, nil
}
