// Package config holds the solver settings.
//
// Settings are layered, later layers win:
//
//  1. Default()
//  2. a YAML file
//  3. WORDLE_* environment variables (a .env file is loaded by the command)
//  4. command line flags, applied by the command
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"
	"time"

	"github.com/powellquiring/wordlebot/wordle"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

var ErrInvalid = errors.New("invalid config")

var strategies = []string{"random", "dictionary", "entropy"}

type Config struct {
	Dictionary    string        `yaml:"dictionary"` // word list file, empty for the built in list
	Strategy      string        `yaml:"strategy"`
	MaxTrial      int           `yaml:"max_trial"`
	Opening       string        `yaml:"opening"`
	Workers       int           `yaml:"workers"` // 0 is one per CPU
	Seed          *uint64       `yaml:"seed"`    // nil picks a seed from the clock
	SearchTimeout time.Duration `yaml:"search_timeout"`
	Fallback      bool          `yaml:"fallback_random"`
	Progress      bool          `yaml:"progress"`
	LogLevel      string        `yaml:"log_level"`
}

func Default() Config {
	return Config{
		Strategy: "entropy",
		MaxTrial: 100,
		Opening:  "raise",
		LogLevel: "warn",
	}
}

// Load applies the file, when path is not empty, and the environment on top of the defaults
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return cfg, err
		}
	}
	if err := loadEnv(&cfg); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func loadEnv(cfg *Config) error {
	if v := os.Getenv("WORDLE_DICTIONARY"); v != "" {
		cfg.Dictionary = v
	}
	if v := os.Getenv("WORDLE_STRATEGY"); v != "" {
		cfg.Strategy = v
	}
	if v := os.Getenv("WORDLE_OPENING"); v != "" {
		cfg.Opening = v
	}
	if v := os.Getenv("WORDLE_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("WORDLE_MAX_TRIAL"); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("WORDLE_MAX_TRIAL=%q: %w", v, ErrInvalid)
		}
		cfg.MaxTrial = i
	}
	if v := os.Getenv("WORDLE_WORKERS"); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("WORDLE_WORKERS=%q: %w", v, ErrInvalid)
		}
		cfg.Workers = i
	}
	if v := os.Getenv("WORDLE_SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("WORDLE_SEED=%q: %w", v, ErrInvalid)
		}
		cfg.Seed = &seed
	}
	if v := os.Getenv("WORDLE_SEARCH_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("WORDLE_SEARCH_TIMEOUT=%q: %w", v, ErrInvalid)
		}
		cfg.SearchTimeout = d
	}
	if v := os.Getenv("WORDLE_FALLBACK_RANDOM"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("WORDLE_FALLBACK_RANDOM=%q: %w", v, ErrInvalid)
		}
		cfg.Fallback = b
	}
	return nil
}

func (c Config) Validate() error {
	if !slices.Contains(strategies, c.Strategy) {
		return fmt.Errorf("strategy %q, want one of %v: %w", c.Strategy, strategies, ErrInvalid)
	}
	if c.MaxTrial < 1 {
		return fmt.Errorf("max_trial %d must be at least 1: %w", c.MaxTrial, ErrInvalid)
	}
	if _, err := wordle.ParseWord(c.Opening); err != nil {
		return fmt.Errorf("opening: %w: %w", err, ErrInvalid)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers %d: %w", c.Workers, ErrInvalid)
	}
	if c.SearchTimeout < 0 {
		return fmt.Errorf("search_timeout %v: %w", c.SearchTimeout, ErrInvalid)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w: %w", err, ErrInvalid)
	}
	return nil
}

// OpeningWord is the validated opening
func (c Config) OpeningWord() wordle.Word {
	return wordle.MustParseWord(c.Opening)
}

// SeedOrClock returns the configured seed or one taken from the clock
func (c Config) SeedOrClock() uint64 {
	if c.Seed != nil {
		return *c.Seed
	}
	return uint64(time.Now().UnixNano())
}
