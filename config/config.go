// SPDX-License-Identifier: MIT

// Package config loads the YAML configuration of the sparse command.
//
// A missing file is not an error: Load returns the defaults. Environment
// variables SPARSE_LOG_LEVEL and SPARSE_LOG_ENCODING override the logging
// block after the file is applied.
//
// Example file:
//
//	report:
//	  scalar: 2.5
//	  sections: [A, B, "A*B"]
//	logging:
//	  level: debug
//	  encoding: console
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/sparsemat/report"
)

// Environment overrides.
const (
	EnvLogLevel    = "SPARSE_LOG_LEVEL"
	EnvLogEncoding = "SPARSE_LOG_ENCODING"
)

// Log encodings accepted by Validate.
const (
	EncodingJSON    = "json"
	EncodingConsole = "console"
)

// ErrInvalid reports a configuration value that cannot be used.
var ErrInvalid = errors.New("config: invalid value")

// Config is the root configuration.
type Config struct {
	Report  ReportConfig  `yaml:"report"`
	Logging LoggingConfig `yaml:"logging"`
}

// ReportConfig controls report rendering.
type ReportConfig struct {
	// Scalar is the factor of the scalar section.
	Scalar float64 `yaml:"scalar" validate:"finite"`
	// Sections lists report sections in output order.
	Sections []string `yaml:"sections"`
}

// LoggingConfig controls the command logger.
type LoggingConfig struct {
	Level    string `yaml:"level" validate:"zaplevel"`              // debug, info, warn, error
	Encoding string `yaml:"encoding" validate:"oneof=json console"` // json or console
}

// Default returns the built-in configuration: the full report with scalar
// 1.5, info-level console logging.
func Default() *Config {
	sections := make([]string, 0, len(report.AllSections()))
	for _, s := range report.AllSections() {
		sections = append(sections, string(s))
	}

	return &Config{
		Report: ReportConfig{
			Scalar:   report.DefaultScalar,
			Sections: sections,
		},
		Logging: LoggingConfig{
			Level:    "info",
			Encoding: EncodingConsole,
		},
	}
}

// Load reads the configuration at path over the defaults. An empty path or
// a missing file yields the defaults. Environment overrides are applied and
// the result is validated.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		case !errors.Is(err, os.ErrNotExist):
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg.applyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the configuration to path as YAML, creating parent
// directories as needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

func (c *Config) applyEnvOverrides() {
	if lvl := os.Getenv(EnvLogLevel); lvl != "" {
		c.Logging.Level = lvl
	}
	if enc := os.Getenv(EnvLogEncoding); enc != "" {
		c.Logging.Encoding = enc
	}
}

// configValidate checks the struct tags of Config.
var configValidate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("finite", func(fl validator.FieldLevel) bool {
		f := fl.Field().Float()
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	})
	_ = v.RegisterValidation("zaplevel", func(fl validator.FieldLevel) bool {
		_, err := zapcore.ParseLevel(fl.Field().String())
		return err == nil
	})

	return v
}

// Validate checks every field. Errors wrap ErrInvalid, or
// report.ErrUnknownSection for a bad section name.
func (c *Config) Validate() error {
	if err := configValidate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if _, err := c.sections(); err != nil {
		return fmt.Errorf("report.sections: %w", err)
	}

	return nil
}

// LogLevel parses Logging.Level.
func (c *Config) LogLevel() (zapcore.Level, error) {
	lvl, err := zapcore.ParseLevel(c.Logging.Level)
	if err != nil {
		return lvl, fmt.Errorf("%w: logging.level: %v", ErrInvalid, err)
	}

	return lvl, nil
}

// ReportOptions converts the report block into report options.
// Errors: the same as Validate.
func (c *Config) ReportOptions() ([]report.Option, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	secs, _ := c.sections() // checked by Validate

	return []report.Option{
		report.WithScalar(c.Report.Scalar),
		report.WithSections(secs...),
	}, nil
}

func (c *Config) sections() ([]report.Section, error) {
	out := make([]report.Section, 0, len(c.Report.Sections))
	for _, name := range c.Report.Sections {
		s, err := report.ParseSection(name)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}

	return out, nil
}
