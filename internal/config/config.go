// SPDX-License-Identifier: MIT

// Package config holds the rgex command-line settings file.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig indicates a malformed settings file.
var ErrInvalidConfig = errors.New("config: invalid settings")

// Config is the rgex settings file.
type Config struct {
	Output  Output  `yaml:"output"`
	Logging Logging `yaml:"logging"`

	// Banner replaces the first line of the generated module when set.
	Banner string `yaml:"banner"`
}

// Output locates the generated module.
type Output struct {
	Dir  string `yaml:"dir" validate:"required"`
	File string `yaml:"file" validate:"required,excludesall=/\\"`
}

// Logging selects the zap configuration.
type Logging struct {
	Level       string `yaml:"level" validate:"oneof=debug info warn error"`
	Development bool   `yaml:"development"`
}

// Default returns the settings used without a file.
func Default() Config {
	return Config{
		Output:  Output{Dir: ".", File: "running.py"},
		Logging: Logging{Level: "info"},
	}
}

var validate = validator.New()

// Load reads path over the defaults. An empty path yields Default().
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: Load(%q): %w", path, err)
	}
	if err = yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
	}
	if err = cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks field constraints.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("%w: field %s fails %q", ErrInvalidConfig, verrs[0].Namespace(), verrs[0].Tag())
		}
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return nil
}

// ZapConfig builds the logger configuration. verbose forces debug level.
func (c Config) ZapConfig(verbose bool) (zap.Config, error) {
	zc := zap.NewProductionConfig()
	if c.Logging.Development {
		zc = zap.NewDevelopmentConfig()
	}

	level, err := zapcore.ParseLevel(c.Logging.Level)
	if err != nil {
		return zap.Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if verbose {
		level = zapcore.DebugLevel
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	return zc, nil
}
