// Package config loads the simulator configuration.
//
// Values are layered: built-in defaults, then an optional YAML file, then a
// .env file, then WOLFSIM_* environment variables. Command-line flags are
// applied on top by the caller, which validates the result once more.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/jason-s-yu/werewolf/engine"
	"github.com/jason-s-yu/werewolf/engine/role"
)

// EnvPrefix prefixes every environment variable the simulator reads.
const EnvPrefix = "WOLFSIM_"

// ErrInvalidConfig is returned when a loaded configuration fails validation.
var ErrInvalidConfig = errors.New("invalid config")

// Config is the complete simulator configuration.
type Config struct {
	// Population maps role names to counts, e.g. {"werewolf": 4, "seer": 1}.
	Population       map[string]int `yaml:"population" env:"POPULATION" validate:"required,dive,gte=0"`
	LeaderElection   bool           `yaml:"leader_election" env:"LEADER_ELECTION"`
	WinRule          string         `yaml:"win_rule" env:"WIN_RULE" validate:"oneof=dominance slaughter"`
	LeaderVoteWeight float64        `yaml:"leader_vote_weight" env:"LEADER_VOTE_WEIGHT" validate:"gte=0"`
	MaxDays          int            `yaml:"max_days" env:"MAX_DAYS" validate:"gte=0"`

	// Seed is the base seed; 0 picks one at random per invocation.
	Seed    uint64 `yaml:"seed" env:"SEED"`
	Runs    int    `yaml:"runs" env:"RUNS" validate:"gte=1"`
	Workers int    `yaml:"workers" env:"WORKERS" validate:"gte=0"` // 0 = GOMAXPROCS

	LogLevel    string `yaml:"log_level" env:"LOG_LEVEL" validate:"oneof=trace debug info warn warning error"`
	LogFormat   string `yaml:"log_format" env:"LOG_FORMAT" validate:"oneof=text json"`
	MetricsFile string `yaml:"metrics_file" env:"METRICS_FILE"`
}

// Default returns the twelve-agent game with leader election and a batch
// size of 100.
func Default() Config {
	rules := engine.DefaultRules()
	return Config{
		Population:       rules.Population.Counts(),
		LeaderElection:   rules.LeaderElection,
		WinRule:          rules.WinRule.String(),
		LeaderVoteWeight: rules.LeaderVoteWeight,
		MaxDays:          rules.MaxDays,
		Runs:             100,
		LogLevel:         "info",
		LogFormat:        "text",
	}
}

// Load builds a Config from defaults, the YAML file at path (skipped when
// path is empty), a .env file in the working directory if present, and the
// environment. The result is validated.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := cfg.LoadFile(path); err != nil {
			return cfg, err
		}
	}
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("load .env: %w", err)
	}
	if err := cfg.ParseEnv(); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// LoadFile overlays the YAML file at path. A population given in the file
// replaces the current one instead of merging into it.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	next := *c
	next.Population = nil
	if err := yaml.Unmarshal(data, &next); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	if next.Population == nil {
		next.Population = c.Population
	}
	*c = next
	return nil
}

// ParseEnv overlays WOLFSIM_* environment variables. WOLFSIM_POPULATION uses
// the form "werewolf:4,villager:4,seer:1".
func (c *Config) ParseEnv() error {
	if err := env.ParseWithOptions(c, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

var validate = validator.New()

// Validate checks field constraints and that the population can start a game.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if _, err := c.Rules(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// Rules converts the configuration to engine rules.
func (c Config) Rules() (engine.Rules, error) {
	pop, err := role.FromCounts(c.Population)
	if err != nil {
		return engine.Rules{}, err
	}
	win, err := engine.ParseWinRule(c.WinRule)
	if err != nil {
		return engine.Rules{}, err
	}
	rules := engine.Rules{
		Population:       pop,
		LeaderElection:   c.LeaderElection,
		WinRule:          win,
		LeaderVoteWeight: c.LeaderVoteWeight,
		MaxDays:          c.MaxDays,
	}
	if err := rules.Validate(); err != nil {
		return engine.Rules{}, err
	}
	return rules, nil
}
