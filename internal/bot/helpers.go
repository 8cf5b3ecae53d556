package bot

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/game"
)

func orDiscard(logger *log.Logger) *log.Logger {
	if logger != nil {
		return logger
	}
	return log.NewWithOptions(io.Discard, log.Options{Level: log.WarnLevel})
}

// hitBelow hits while the best total is under threshold and logs the decision
// under msg.
func hitBelow(logger *log.Logger, msg string, snapshot game.RoundSnapshot, threshold int) game.Action {
	total := snapshot.Hand.Best()
	action := game.Stand
	if total < threshold {
		action = game.Hit
	}
	logger.Debug(msg, "total", total, "threshold", threshold, "action", action)
	return action
}

// upcardValue returns the dealer upcard's value with Aces counted as 11
func upcardValue(c deck.Card) int {
	values := c.Values()
	return values[len(values)-1]
}

// prefer returns want when it is legal, otherwise fallback
func prefer(snapshot game.RoundSnapshot, want, fallback game.Action) game.Action {
	if snapshot.Allows(want) {
		return want
	}
	return fallback
}
