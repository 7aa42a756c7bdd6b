package main

import (
	"errors"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"
	"golang.org/x/text/language"
)

const (
	formatText = "text"
	formatYAML = "yaml"
)

// Config holds the driver settings. Environment variables provide the
// defaults, command line flags override them.
type Config struct {
	Players []string `env:"BOWLING_PLAYERS" envSeparator:"," envDefault:"John,Paul,Georges,Ringo"`
	Games   int      `env:"BOWLING_GAMES" envDefault:"10"`
	Seed    int64    `env:"BOWLING_SEED" envDefault:"1"`
	Locale  string   `env:"BOWLING_LOCALE" envDefault:"en"`
	Format  string   `env:"BOWLING_FORMAT" envDefault:"text"`
	Script  string   `env:"BOWLING_SCRIPT"`
}

func LoadConfig(args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs := flag.NewFlagSet("bowling", flag.ContinueOnError)
	players := fs.String("players", strings.Join(cfg.Players, ","), "Comma separated player names, in turn order")
	fs.IntVar(&cfg.Games, "n", cfg.Games, "Number of games to simulate")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "Seed of the simulated bowlers")
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "Language of the status messages")
	fs.StringVar(&cfg.Format, "format", cfg.Format, "Output format: text or yaml")
	fs.StringVar(&cfg.Script, "script", cfg.Script, "Comma separated pin counts to replay instead of simulating")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	cfg.Players = splitList(*players)

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (cfg Config) validate() error {
	if len(cfg.Players) == 0 {
		return errors.New("no players")
	}
	if cfg.Games < 1 {
		return fmt.Errorf("number of games must be positive, got %d", cfg.Games)
	}
	if cfg.Format != formatText && cfg.Format != formatYAML {
		return fmt.Errorf("unknown format %q", cfg.Format)
	}
	if _, err := cfg.Tag(); err != nil {
		return err
	}
	if _, err := cfg.Rolls(); err != nil {
		return err
	}
	return nil
}

// Tag returns the language of the status messages
func (cfg Config) Tag() (language.Tag, error) {
	tag, err := language.Parse(cfg.Locale)
	if err != nil {
		return language.Und, fmt.Errorf("locale %q: %w", cfg.Locale, err)
	}
	return tag, nil
}

// Rolls returns the scripted pin counts, nil when nothing is scripted
func (cfg Config) Rolls() ([]int, error) {
	var rolls []int
	for _, field := range splitList(cfg.Script) {
		pins, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("script: %w", err)
		}
		rolls = append(rolls, pins)
	}
	return rolls, nil
}

func splitList(s string) []string {
	var items []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
