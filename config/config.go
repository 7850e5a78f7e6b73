// This file is part of Gamepads.
//
// Gamepads is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gamepads is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gamepads.  If not, see <https://www.gnu.org/licenses/>.

// Package config loads the settings for the gamepads command from a YAML
// file. Settings missing from the file keep their default value.
package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/jetsetilly/gamepads/curated"
	"github.com/jetsetilly/gamepads/logger"
	"gopkg.in/yaml.v3"
)

// Sentinal error patterns returned by the config package.
const (
	LoadError    = "config: %v"
	InvalidValue = "config: %s: %v"
)

// Default values.
const (
	DefaultRefreshRate = 60
	DefaultDeadZone    = 0.05

	DefaultStatsviewAddress = "localhost:12600"
)

// Config is the top-level configuration.
type Config struct {
	// frames per second for the reconciliation loop
	RefreshRate int `yaml:"refresh_rate"`

	// axis values with a smaller magnitude are reported as zero
	DeadZone float64 `yaml:"dead_zone"`

	// echo log entries to stderr as they are made
	EchoLog bool `yaml:"echo_log"`

	// launch the runtime statistics server. ignored if the program was not
	// built with the statsview tag
	Statsview bool `yaml:"statsview"`

	// address the statistics server listens on
	StatsviewAddress string `yaml:"statsview_address"`

	View ViewConfig `yaml:"view"`
}

// ViewConfig are the settings for the terminal view.
type ViewConfig struct {
	// show axis values as bars rather than numbers
	AxisBars bool `yaml:"axis_bars"`

	// number of log lines shown underneath the controllers
	LogLines int `yaml:"log_lines"`
}

// DefaultConfig returns the configuration used when there is no file.
func DefaultConfig() *Config {
	return &Config{
		RefreshRate: DefaultRefreshRate,
		DeadZone:    DefaultDeadZone,

		StatsviewAddress: DefaultStatsviewAddress,

		View: ViewConfig{
			AxisBars: true,
			LogLines: 4,
		},
	}
}

// Load the configuration file. A missing file is not an error and results in
// the default configuration.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Logf(logger.Allow, "config", "%s not found. using defaults", path)
			return cfg, nil
		}
		return nil, curated.Errorf(LoadError, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, curated.Errorf(LoadError, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Logf(logger.Allow, "config", "loaded %s", path)

	return cfg, nil
}

// Validate checks that every value is usable.
func (cfg *Config) Validate() error {
	if cfg.RefreshRate <= 0 {
		return curated.Errorf(InvalidValue, "refresh_rate", cfg.RefreshRate)
	}
	if cfg.DeadZone < 0.0 || cfg.DeadZone >= 1.0 {
		return curated.Errorf(InvalidValue, "dead_zone", cfg.DeadZone)
	}
	if cfg.Statsview && cfg.StatsviewAddress == "" {
		return curated.Errorf(InvalidValue, "statsview_address", "address required")
	}
	if cfg.View.LogLines < 0 {
		return curated.Errorf(InvalidValue, "view.log_lines", cfg.View.LogLines)
	}
	return nil
}

// Save the configuration to the file.
func (cfg *Config) Save(path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return curated.Errorf(LoadError, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return curated.Errorf(LoadError, err)
	}
	return nil
}
