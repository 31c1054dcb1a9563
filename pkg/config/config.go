// Package config loads the report settings: built-in defaults, optionally
// overridden by lifegdp.yaml in the working directory.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/afero"
)

// FileName is the optional config file looked up in the working directory.
const FileName = "lifegdp.yaml"

// Defaults.
const (
	DefaultInput       = "all_data.csv"
	DefaultOutputDir   = "."
	DefaultPreviewRows = 5
	DefaultDPI         = 96
	DefaultLogLevel    = "info"
)

// Config holds the report settings.
type Config struct {
	Input       string `koanf:"input"`
	OutputDir   string `koanf:"output_dir"`
	PreviewRows int    `koanf:"preview_rows"`
	DPI         int    `koanf:"dpi"`
	LogLevel    string `koanf:"log_level"`

	// file is the config file that was read, empty if none.
	file string
}

// File returns the path of the config file that was read, if any.
func (c *Config) File() string { return c.file }

// Load reads defaults and then dir/lifegdp.yaml on fsys when it exists.
func Load(fsys afero.Fs, dir string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(map[string]interface{}{
		"input":        DefaultInput,
		"output_dir":   DefaultOutputDir,
		"preview_rows": DefaultPreviewRows,
		"dpi":          DefaultDPI,
		"log_level":    DefaultLogLevel,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	path := filepath.Join(dir, FileName)
	var used string
	raw, err := afero.ReadFile(fsys, path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	default:
		if err := k.Load(rawbytes.Provider(raw), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", path, err)
		}
		used = path
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.file = used
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the values that would otherwise fail late.
func (c *Config) Validate() error {
	switch {
	case c.Input == "":
		return fmt.Errorf("config: input is required")
	case c.PreviewRows < 0:
		return fmt.Errorf("config: preview_rows must not be negative, got %d", c.PreviewRows)
	case c.DPI <= 0:
		return fmt.Errorf("config: dpi must be positive, got %d", c.DPI)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unknown log_level %q", c.LogLevel)
	}
	return nil
}
