package game

import (
	"fmt"
	"math"
	"strings"
)

// Player is a seat at the table: a name, a fixed bet, a bankroll that
// carries across rounds and the strategy that plays the hand. The bankroll
// only changes through Ledger.Settle.
type Player struct {
	name      string
	strategy  Strategy
	bankroll  float64
	betAmount float64
}

// NewPlayer validates and creates a player. Bankroll and bet must be finite
// and positive.
func NewPlayer(name string, strategy Strategy, bankroll, betAmount float64) (*Player, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidPlayer)
	}
	if strategy == nil {
		return nil, fmt.Errorf("%w: %s has no strategy", ErrInvalidPlayer, name)
	}
	if !ValidAmount(betAmount) {
		return nil, fmt.Errorf("%w: %s bet amount must be a positive number, got %v", ErrInvalidPlayer, name, betAmount)
	}
	if !ValidAmount(bankroll) {
		return nil, fmt.Errorf("%w: %s bankroll must be a positive number, got %v", ErrInvalidPlayer, name, bankroll)
	}
	return &Player{
		name:      name,
		strategy:  strategy,
		bankroll:  bankroll,
		betAmount: betAmount,
	}, nil
}

// ValidAmount reports whether v is usable as a bankroll or bet: finite and
// greater than zero.
func ValidAmount(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}

// Name returns the player's unique name
func (p *Player) Name() string { return p.name }

// Strategy returns the strategy bound to the player
func (p *Player) Strategy() Strategy { return p.strategy }

// Bankroll returns the player's current funds
func (p *Player) Bankroll() float64 { return p.bankroll }

// BetAmount returns the fixed wager placed every round
func (p *Player) BetAmount() float64 { return p.betAmount }

// CanPlaceBet reports whether the bankroll covers the bet
func (p *Player) CanPlaceBet() bool {
	return p.bankroll >= p.betAmount
}
