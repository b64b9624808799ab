// Package config loads the page layout configuration file used by the CLI.
package config

import (
	"fmt"
	"os"

	"github.com/ukaji3/sheetpages-go/pkg/sheetpages"
	"gopkg.in/yaml.v3"
)

// File represents the layout configuration read from a YAML file.
// All fields are optional; zero values keep the defaults.
type File struct {
	Sheet      string `yaml:"sheet,omitempty"`
	PageSize   int    `yaml:"page_size,omitempty"`
	ColumnSize int    `yaml:"column_size,omitempty"`
	Locale     string `yaml:"locale,omitempty"`
}

// Flags holds command-line values and whether each was set explicitly.
type Flags struct {
	Sheet      string
	PageSize   int
	ColumnSize int
	Locale     string

	SheetSet      bool
	PageSizeSet   bool
	ColumnSizeSet bool
	LocaleSet     bool
}

// Load reads a YAML layout file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg File
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}
	return &cfg, nil
}

// Resolve merges defaults, the optional file, and explicitly set flags, in
// that order of increasing precedence, and validates the result.
func Resolve(cfg *File, flags Flags) (sheetpages.Options, error) {
	opts := sheetpages.DefaultOptions()

	if cfg != nil {
		if cfg.Sheet != "" {
			opts.Sheet = cfg.Sheet
		}
		if cfg.PageSize != 0 {
			opts.PageSize = cfg.PageSize
		}
		if cfg.ColumnSize != 0 {
			opts.ColumnSize = cfg.ColumnSize
		}
		if cfg.Locale != "" {
			opts.Locale = cfg.Locale
		}
	}

	if flags.SheetSet {
		opts.Sheet = flags.Sheet
	}
	if flags.PageSizeSet {
		opts.PageSize = flags.PageSize
	}
	if flags.ColumnSizeSet {
		opts.ColumnSize = flags.ColumnSize
	}
	if flags.LocaleSet {
		opts.Locale = flags.Locale
	}

	if err := opts.Validate(); err != nil {
		return sheetpages.Options{}, err
	}
	return opts, nil
}
