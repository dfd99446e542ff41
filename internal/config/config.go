// Package config loads the CLI's default DiffOptions from an optional
// YAML file, to be merged under whatever flags the user passes
// explicitly.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dknieriem/editordiff"
)

// Config is the on-disk shape of a difftool config file.
type Config struct {
	IgnoreTrimWhitespace bool   `yaml:"ignore_trim_whitespace"`
	MaxComputationTimeMs uint32 `yaml:"max_computation_time_ms"`
	ExtendToSubwords     bool   `yaml:"extend_to_subwords"`
}

// Default returns the built-in defaults: no whitespace-insensitivity, no
// deadline, no subword extension.
func Default() Config {
	return Config{}
}

// Load reads a YAML config file. A missing file is not an error: Load
// returns the defaults so the caller can proceed with flag values alone.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Options converts the config into editordiff.DiffOptions.
func (c Config) Options() editordiff.DiffOptions {
	return editordiff.DiffOptions{
		IgnoreTrimWhitespace: c.IgnoreTrimWhitespace,
		MaxComputationTimeMs: c.MaxComputationTimeMs,
		ExtendToSubwords:     c.ExtendToSubwords,
	}
}
