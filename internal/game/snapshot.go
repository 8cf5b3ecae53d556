package game

import (
	"slices"

	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/evaluator"
)

// RoundSnapshot is the read-only view a strategy receives at each decision
// point. A fresh snapshot is built every time; strategies may keep it but
// changes to the engine never show through it.
type RoundSnapshot struct {
	RoundNumber    int
	Hand           evaluator.Hand
	DealerUpcard   deck.Card
	AllowedActions []Action
	CardsRemaining int
	Bankroll       float64
	Bet            float64
}

func newSnapshot(round int, hand evaluator.Hand, upcard deck.Card, allowed []Action, remaining int, bankroll, bet float64) RoundSnapshot {
	return RoundSnapshot{
		RoundNumber:    round,
		Hand:           hand.Clone(),
		DealerUpcard:   upcard,
		AllowedActions: slices.Clone(allowed),
		CardsRemaining: remaining,
		Bankroll:       bankroll,
		Bet:            bet,
	}
}

// Allows reports whether action is legal in this snapshot
func (s RoundSnapshot) Allows(action Action) bool {
	return containsAction(s.AllowedActions, action)
}
