package bot

import (
	"github.com/charmbracelet/log"
	"github.com/lox/blackjack/internal/evaluator"
	"github.com/lox/blackjack/internal/game"
)

// BasicBot plays a compact hit/stand/double chart keyed on the player's
// total, whether it is soft, and the dealer's upcard.
type BasicBot struct {
	logger *log.Logger
}

// NewBasicBot creates a new BasicBot instance
func NewBasicBot(logger *log.Logger) *BasicBot {
	return &BasicBot{logger: orDiscard(logger)}
}

func (b *BasicBot) Name() string { return "Basic Strategy" }

func (b *BasicBot) Decide(snapshot game.RoundSnapshot) game.Action {
	total := snapshot.Hand.Best()
	up := upcardValue(snapshot.DealerUpcard)

	soft := acesHigh(snapshot.Hand)

	var action game.Action
	var reason string
	if soft {
		action, reason = b.soft(snapshot, total, up)
	} else {
		action, reason = b.hard(snapshot, total, up)
	}
	b.logger.Debug("basic-bot decision", "total", total, "soft", soft, "upcard", up, "action", action, "reason", reason)
	return action
}

func (b *BasicBot) soft(snapshot game.RoundSnapshot, total, up int) (game.Action, string) {
	switch {
	case total >= 19:
		return game.Stand, "soft 19+"
	case total == 18 && up >= 3 && up <= 6:
		return prefer(snapshot, game.Double, game.Stand), "soft 18 vs weak upcard"
	case total == 18 && up <= 8:
		return game.Stand, "soft 18 vs 2,7,8"
	case total == 18:
		return game.Hit, "soft 18 vs strong upcard"
	case up >= 4 && up <= 6:
		return prefer(snapshot, game.Double, game.Hit), "soft total vs weak upcard"
	default:
		return game.Hit, "soft total"
	}
}

func (b *BasicBot) hard(snapshot game.RoundSnapshot, total, up int) (game.Action, string) {
	switch {
	case total >= 17:
		return game.Stand, "hard 17+"
	case total >= 13 && up <= 6:
		return game.Stand, "stiff vs weak upcard"
	case total >= 13:
		return game.Hit, "stiff vs strong upcard"
	case total == 12 && up >= 4 && up <= 6:
		return game.Stand, "12 vs 4-6"
	case total == 12:
		return game.Hit, "12"
	case total == 11:
		return prefer(snapshot, game.Double, game.Hit), "11"
	case total == 10 && up <= 9:
		return prefer(snapshot, game.Double, game.Hit), "10 vs 2-9"
	case total == 9 && up >= 3 && up <= 6:
		return prefer(snapshot, game.Double, game.Hit), "9 vs 3-6"
	default:
		return game.Hit, "low total"
	}
}

// acesHigh reports whether the best total counts an Ace as 11. This is
// stricter than Hand.IsSoft, which also holds for A-6-10 (17 or 27).
func acesHigh(h evaluator.Hand) bool {
	return h.Best() != h.Totals()[0]
}
