// Package config loads fqlint settings. Sources are layered, later ones
// winning: built-in defaults, an optional TOML file, then FQLINT_*
// environment variables (a .env file in the working directory is honoured).
// Command-line flags are applied on top by the caller.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"fqlint/core/validate"
	"fqlint/internal/logger"
)

// EnvPrefix prefixes every environment variable, e.g. FQLINT_LINT_LEVEL.
const EnvPrefix = "FQLINT_"

type Config struct {
	Lint       Lint       `toml:"lint" envPrefix:"LINT_"`
	Duplicates Duplicates `toml:"duplicates" envPrefix:"DUPLICATES_"`
	Output     Output     `toml:"output" envPrefix:"OUTPUT_"`
	Log        Log        `toml:"log" envPrefix:"LOG_"`
}

type Lint struct {
	Alphabet string            `toml:"alphabet" env:"ALPHABET"`
	Level    validate.Severity `toml:"level" env:"LEVEL"`
	Disable  []string          `toml:"disable" env:"DISABLE" envSeparator:","`
	Threads  int               `toml:"threads" env:"THREADS"`
	FailFast bool              `toml:"fail_fast" env:"FAIL_FAST"`
}

type Duplicates struct {
	FalsePositiveRate float64 `toml:"false_positive_rate" env:"FALSE_POSITIVE_RATE"`
	Capacity          uint    `toml:"capacity" env:"CAPACITY"`
}

type Output struct {
	Format string `toml:"format" env:"FORMAT"`
	Color  string `toml:"color" env:"COLOR"`
	Sort   bool   `toml:"sort" env:"SORT"`
}

type Log struct {
	Level  string `toml:"level" env:"LEVEL"`
	Format string `toml:"format" env:"FORMAT"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Lint: Lint{
			Alphabet: validate.DefaultAlphabet,
			Level:    validate.Low,
		},
		Duplicates: Duplicates{
			FalsePositiveRate: validate.DefaultFalsePositiveRate,
			Capacity:          validate.DefaultCapacity,
		},
		Output: Output{Format: "text", Color: "auto"},
		Log:    Log{Level: "warn", Format: "text"},
	}
}

// Load layers defaults, the TOML file at path (skipped when path is empty)
// and the environment, then validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}
	// a missing .env is fine
	_ = godotenv.Load()
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return Config{}, errors.Join(ErrParsingEnv, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return fmt.Errorf("%s: %w: %w", path, ErrParsingFile, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("%s: %w: %s", path, ErrUnknownKey, strings.Join(keys, ", "))
	}
	return nil
}

// Validate checks cross-field invariants. Output.Format is checked by the
// caller against the registered report writers.
func (c Config) Validate() error {
	var errs []error
	if c.Lint.Alphabet == "" {
		errs = append(errs, fmt.Errorf("lint.alphabet: %w", validate.ErrEmptyAlphabet))
	}
	if c.Lint.Level > validate.High {
		errs = append(errs, fmt.Errorf("lint.level: %w", validate.ErrUnknownSeverity))
	}
	if c.Lint.Threads < 0 {
		errs = append(errs, errors.New("lint.threads must be ≥ 0"))
	}
	if r := c.Duplicates.FalsePositiveRate; !(r > 0 && r < 1) {
		errs = append(errs, fmt.Errorf("duplicates.false_positive_rate must be in (0, 1), got %v", r))
	}
	if c.Duplicates.Capacity == 0 {
		errs = append(errs, errors.New("duplicates.capacity must be > 0"))
	}
	switch c.Output.Color {
	case "auto", "on", "off":
	default:
		errs = append(errs, fmt.Errorf("output.color must be auto, on or off, got %q", c.Output.Color))
	}
	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	if _, err := logger.ParseFormat(c.Log.Format); err != nil {
		errs = append(errs, fmt.Errorf("log.format: %w", err))
	}
	if len(errs) == 0 {
		return nil
	}
	return errors.Join(append([]error{ErrInvalid}, errs...)...)
}
