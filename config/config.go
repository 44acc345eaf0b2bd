// Package config loads the tool's run-time settings.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

// DefaultFile is the per-user configuration file, looked up in the home
// directory when no explicit path is given.
const DefaultFile = ".entail.yaml"

// Config holds the settings shared by all commands.
type Config struct {
	// MaxSteps bounds the number of resolution steps per question.
	// Zero means unbounded.
	MaxSteps int `yaml:"max_steps"`
	// Trace enables the debug-level resolution trace.
	Trace bool `yaml:"trace"`
	// Color enables colored verdicts when writing to a terminal.
	Color bool `yaml:"color"`
}

// Default returns the settings used when no configuration file exists.
func Default() Config {
	return Config{Color: true}
}

// Load reads settings from the YAML file at path, starting from the
// defaults for any key the file omits.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("could not parse config %q: %w", path, err)
	}
	return cfg, nil
}

// LoadDefault loads the per-user configuration file if it exists, and the
// defaults otherwise. A missing file is not an error; an unreadable or
// malformed one is.
func LoadDefault() (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Default(), nil
	}
	cfg, err := Load(filepath.Join(home, DefaultFile))
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}
