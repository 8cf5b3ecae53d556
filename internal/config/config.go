// Package config loads game settings and the player line-up from an HCL
// file and from name:strategy[:bankroll][:bet] command line definitions.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/lox/blackjack/internal/bot"
	"github.com/lox/blackjack/internal/game"
)

const (
	DefaultRounds   = 10
	DefaultBankroll = 100.0
	DefaultBet      = 10.0
	DefaultLogLevel = "warn"
)

// Config is the complete configuration file
type Config struct {
	Game    *GameSettings  `hcl:"game,block"`
	Players []PlayerConfig `hcl:"player,block"`
}

// GameSettings holds table rules and run parameters
type GameSettings struct {
	Decks            int    `hcl:"decks,optional"`
	DealerHitsSoft17 bool   `hcl:"dealer_hits_soft_17,optional"`
	Rounds           int    `hcl:"rounds,optional"`
	Seed             int64  `hcl:"seed,optional"`
	Sessions         int    `hcl:"sessions,optional"`
	LogLevel         string `hcl:"log_level,optional"`
}

// PlayerConfig defines one seat at the table
type PlayerConfig struct {
	Name     string  `hcl:"name,label"`
	Strategy string  `hcl:"strategy"`
	Bankroll float64 `hcl:"bankroll,optional"`
	Bet      float64 `hcl:"bet,optional"`
}

// DefaultConfig returns the configuration used when no file is given
func DefaultConfig() *Config {
	return &Config{
		Game: defaultGame(),
		Players: []PlayerConfig{
			{Name: "Simple", Strategy: "simple", Bankroll: DefaultBankroll, Bet: DefaultBet},
			{Name: "Dealer", Strategy: "dealer", Bankroll: DefaultBankroll, Bet: DefaultBet},
		},
	}
}

func defaultGame() *GameSettings {
	return &GameSettings{
		Decks:    game.DefaultDecks,
		Rounds:   DefaultRounds,
		Sessions: 1,
		LogLevel: DefaultLogLevel,
	}
}

// Load reads configuration from an HCL file. A missing file yields the
// defaults.
func Load(filename string) (*Config, error) {
	src, err := os.ReadFile(filename)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(src, filename)
}

// Parse decodes HCL source and fills in defaults for omitted values
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	defaults := defaultGame()
	if c.Game == nil {
		c.Game = defaults
	}
	if c.Game.Decks == 0 {
		c.Game.Decks = defaults.Decks
	}
	if c.Game.Rounds == 0 {
		c.Game.Rounds = defaults.Rounds
	}
	if c.Game.Sessions == 0 {
		c.Game.Sessions = defaults.Sessions
	}
	if c.Game.LogLevel == "" {
		c.Game.LogLevel = defaults.LogLevel
	}

	if len(c.Players) == 0 {
		c.Players = DefaultConfig().Players
	}
	for i := range c.Players {
		c.Players[i].applyDefaults()
	}
}

func (p *PlayerConfig) applyDefaults() {
	if p.Bankroll == 0 {
		p.Bankroll = DefaultBankroll
	}
	if p.Bet == 0 {
		p.Bet = DefaultBet
	}
}

// Validate checks the configuration is playable
func (c *Config) Validate() error {
	if c.Game == nil {
		return fmt.Errorf("game settings are required")
	}
	if c.Game.Decks < 1 {
		return fmt.Errorf("decks must be at least 1, got %d", c.Game.Decks)
	}
	if c.Game.Rounds < 0 {
		return fmt.Errorf("rounds must not be negative, got %d", c.Game.Rounds)
	}
	if c.Game.Sessions < 1 {
		return fmt.Errorf("sessions must be at least 1, got %d", c.Game.Sessions)
	}
	if _, err := log.ParseLevel(c.Game.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q", c.Game.LogLevel)
	}

	if len(c.Players) == 0 {
		return game.ErrNoPlayers
	}
	seen := make(map[string]bool, len(c.Players))
	for _, p := range c.Players {
		if err := p.Validate(); err != nil {
			return err
		}
		if seen[p.Name] {
			return fmt.Errorf("%w: %s", game.ErrDuplicatePlayer, p.Name)
		}
		seen[p.Name] = true
	}
	return nil
}

// Validate checks a single player definition
func (p PlayerConfig) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: name is required", game.ErrInvalidPlayer)
	}
	if !knownStrategy(p.Strategy) {
		return fmt.Errorf("%w: %s has unknown strategy %q (available: %s)",
			game.ErrInvalidPlayer, p.Name, p.Strategy, strings.Join(bot.Names(), ", "))
	}
	if !game.ValidAmount(p.Bankroll) {
		return fmt.Errorf("%w: %s bankroll must be a positive number", game.ErrInvalidPlayer, p.Name)
	}
	if !game.ValidAmount(p.Bet) {
		return fmt.Errorf("%w: %s bet amount must be a positive number", game.ErrInvalidPlayer, p.Name)
	}
	return nil
}

// Interactive reports whether any player reads from the terminal
func (c *Config) Interactive() bool {
	for _, p := range c.Players {
		if bot.IsInteractive(p.Strategy) {
			return true
		}
	}
	return false
}

// Level returns the parsed log level
func (c *Config) Level() log.Level {
	level, err := log.ParseLevel(c.Game.LogLevel)
	if err != nil {
		return log.WarnLevel
	}
	return level
}

func knownStrategy(name string) bool {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, n := range bot.Names() {
		if n == name {
			return true
		}
	}
	return false
}

// ParsePlayer parses "name:strategy[:bankroll][:bet]". Empty or missing
// bankroll and bet take the defaults.
func ParsePlayer(def string) (PlayerConfig, error) {
	parts := strings.Split(def, ":")
	if len(parts) < 2 || len(parts) > 4 {
		return PlayerConfig{}, fmt.Errorf("%w: expected name:strategy[:bankroll][:bet], got %q", game.ErrInvalidPlayer, def)
	}

	p := PlayerConfig{
		Name:     strings.TrimSpace(parts[0]),
		Strategy: strings.ToLower(strings.TrimSpace(parts[1])),
		Bankroll: DefaultBankroll,
		Bet:      DefaultBet,
	}

	var err error
	if len(parts) > 2 && strings.TrimSpace(parts[2]) != "" {
		if p.Bankroll, err = parseAmount(parts[2]); err != nil {
			return PlayerConfig{}, fmt.Errorf("%w: %s bankroll: %v", game.ErrInvalidPlayer, p.Name, err)
		}
	}
	if len(parts) > 3 && strings.TrimSpace(parts[3]) != "" {
		if p.Bet, err = parseAmount(parts[3]); err != nil {
			return PlayerConfig{}, fmt.Errorf("%w: %s bet: %v", game.ErrInvalidPlayer, p.Name, err)
		}
	}

	if err := p.Validate(); err != nil {
		return PlayerConfig{}, err
	}
	return p, nil
}

func parseAmount(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	return v, nil
}

// BuildPlayers constructs game players, creating each strategy through the
// bot registry
func BuildPlayers(defs []PlayerConfig, opts bot.Options) ([]*game.Player, error) {
	players := make([]*game.Player, 0, len(defs))
	for _, def := range defs {
		strategy, err := bot.New(def.Strategy, opts)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", game.ErrInvalidPlayer, def.Name, err)
		}
		p, err := game.NewPlayer(def.Name, strategy, def.Bankroll, def.Bet)
		if err != nil {
			return nil, err
		}
		players = append(players, p)
	}
	return players, nil
}
