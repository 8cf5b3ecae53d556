package bot

import (
	"math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/lox/blackjack/internal/game"
)

// RandBot picks a uniformly random legal action
type RandBot struct {
	rng    *rand.Rand
	logger *log.Logger
}

// NewRandBot creates a new RandBot instance
func NewRandBot(rng *rand.Rand, logger *log.Logger) *RandBot {
	return &RandBot{rng: rng, logger: orDiscard(logger)}
}

func (r *RandBot) Name() string { return "Random" }

func (r *RandBot) Decide(snapshot game.RoundSnapshot) game.Action {
	action := snapshot.AllowedActions[r.rng.IntN(len(snapshot.AllowedActions))]
	r.logger.Debug("rand-bot random action", "hand", snapshot.Hand, "action", action)
	return action
}
