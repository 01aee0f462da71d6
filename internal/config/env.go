// Package config loads housecalc settings from the environment and site
// lists from YAML.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
)

// Config holds defaults that command-line flags override.
type Config struct {
	// System is the default house system tag.
	System string `env:"HOUSECALC_SYSTEM" envDefault:"placidus"`
	// Obliquity overrides the obliquity of the ecliptic; zero means derive
	// it from the date, or use the J2000 value when no date is given.
	Obliquity float64 `env:"HOUSECALC_OBLIQUITY" validate:"gte=0,lt=90"`
	// Altitude is the observer height in metres for topocentric charts.
	Altitude float64 `env:"HOUSECALC_ALTITUDE"`
	// Workers bounds sweep parallelism.
	Workers  int    `env:"HOUSECALC_WORKERS" envDefault:"4" validate:"min=1,max=256"`
	LogLevel string `env:"HOUSECALC_LOG_LEVEL" envDefault:"warn" validate:"oneof=debug info warn error"`
	Format   string `env:"HOUSECALC_FORMAT" envDefault:"table" validate:"oneof=table json"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load parses and validates Config from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.Format = strings.ToLower(cfg.Format)
	if err := validate.Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", describe(err))
	}
	return cfg, nil
}

// Level returns the slog level named by LogLevel.
func (c Config) Level() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelWarn
	}
	return lvl
}

// describe turns the first validator failure into a readable error.
func describe(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	fe := verrs[0]
	if fe.Param() != "" {
		return fmt.Errorf("%s: %v fails %s=%s", fe.Namespace(), fe.Value(), fe.Tag(), fe.Param())
	}
	return fmt.Errorf("%s: %v fails %s", fe.Namespace(), fe.Value(), fe.Tag())
}
