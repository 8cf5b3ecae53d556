package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/lox/blackjack/internal/bot"
	"github.com/lox/blackjack/internal/config"
	"github.com/lox/blackjack/internal/display"
	"github.com/lox/blackjack/internal/simulator"
)

// GameFlags are shared by every subcommand. Unset flags fall back to the
// config file, then to the built-in defaults.
type GameFlags struct {
	Config       string   `short:"c" type:"path" help:"Path to HCL configuration file"`
	Rounds       *int     `short:"n" help:"Number of rounds to play"`
	Decks        *int     `help:"Number of decks in the shoe"`
	DealerSoft17 bool     `name:"dealer-soft-17" help:"Dealer hits on soft 17"`
	Player       []string `short:"p" sep:"none" help:"Player as name:strategy[:bankroll][:bet], repeatable. Strategies: ${strategies}"`
	Seed         *int64   `help:"RNG seed (0 for random)"`
	LogLevel     string   `short:"l" help:"Log level (debug|info|warn|error)"`
	Report       string   `type:"path" help:"Write a JSON report to this file"`
	Color        string   `default:"auto" enum:"auto,always,never" help:"Colour output (auto|always|never)"`
}

func (f *GameFlags) colorMode() display.ColorMode {
	return display.ColorMode(f.Color)
}

func (f *GameFlags) load() (*config.Config, error) {
	cfg := config.DefaultConfig()
	if f.Config != "" {
		var err error
		if cfg, err = config.Load(f.Config); err != nil {
			return nil, err
		}
	}

	if f.Rounds != nil {
		cfg.Game.Rounds = *f.Rounds
	}
	if f.Decks != nil {
		cfg.Game.Decks = *f.Decks
	}
	if f.DealerSoft17 {
		cfg.Game.DealerHitsSoft17 = true
	}
	if f.Seed != nil {
		cfg.Game.Seed = *f.Seed
	}
	if f.LogLevel != "" {
		cfg.Game.LogLevel = f.LogLevel
	}
	if len(f.Player) > 0 {
		cfg.Players = cfg.Players[:0]
		for _, def := range f.Player {
			p, err := config.ParsePlayer(def)
			if err != nil {
				return nil, err
			}
			cfg.Players = append(cfg.Players, p)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           cfg.Level(),
		ReportTimestamp: true,
	})
}

func simulatorConfig(cfg *config.Config, logger *log.Logger) simulator.Config {
	return simulator.Config{
		Rounds:    cfg.Game.Rounds,
		Sessions:  cfg.Game.Sessions,
		Seed:      cfg.Game.Seed,
		Decks:     cfg.Game.Decks,
		HitSoft17: cfg.Game.DealerHitsSoft17,
		Players:   cfg.Players,
		Logger:    logger,
		In:        os.Stdin,
		Out:       os.Stdout,
	}
}

// signalContext is cancelled on SIGINT or SIGTERM
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func strategyList() string {
	return strings.Join(bot.Names(), ", ")
}
