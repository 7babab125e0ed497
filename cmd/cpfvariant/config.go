package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/cpfvariant/variant"
)

// ErrInvalidConfig wraps every config file or flag validation failure.
var ErrInvalidConfig = errors.New("config: invalid")

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config is the CLI configuration. File values are overridden by flags the
// user set explicitly.
type Config struct {
	MaxLevel int    `yaml:"max_level" validate:"min=1,max=3"`
	Output   string `yaml:"output" validate:"oneof=text json yaml"`
	Color    string `yaml:"color" validate:"oneof=auto always never"`
	LogLevel string `yaml:"log_level" validate:"oneof=debug info warn error"`
	Trace    bool   `yaml:"trace"`
	Metrics  bool   `yaml:"metrics"`
}

var validate = validator.New()

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		MaxLevel: variant.MaxLevel,
		Output:   "text",
		Color:    ColorAuto,
		LogLevel: "warn",
	}
}

// Validate checks the field constraints.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// LoadConfig reads a YAML file over DefaultConfig. An empty path returns
// the defaults. Unknown keys are rejected.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("config: open: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, path, err)
	}

	return cfg, cfg.Validate()
}
