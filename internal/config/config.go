// Package config loads the optional aoc.yaml settings file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where the CLI looks for a settings file when none is given.
const DefaultPath = "aoc.yaml"

// Config holds every setting the commands read from disk.
type Config struct {
	// InputsDir holds the puzzle inputs named NN.txt.
	InputsDir string `yaml:"inputs_dir"`

	Log LogConfig `yaml:"log"`

	// Puzzles maps a solver name to its string parameters.
	Puzzles map[string]map[string]string `yaml:"puzzles"`
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json or console
}

// Default returns the settings used when no file is present.
func Default() *Config {
	return &Config{
		InputsDir: "inputs",
		Log:       LogConfig{Level: "info", Format: "console"},
		Puzzles:   map[string]map[string]string{},
	}
}

// Load reads path over the defaults. A missing file at DefaultPath is not an
// error; a missing file anywhere else is.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultPath
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && path == DefaultPath {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Puzzles == nil {
		cfg.Puzzles = map[string]map[string]string{}
	}
	return cfg, nil
}

// Params returns the parameters for the named solver with overrides applied
// on top of the file's values.
func (c *Config) Params(name string, overrides map[string]string) map[string]string {
	out := make(map[string]string)
	maps.Copy(out, c.Puzzles[name])
	maps.Copy(out, overrides)
	return out
}

// Save writes the configuration to path as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
