package bot

import (
	"github.com/charmbracelet/log"
	"github.com/lox/blackjack/internal/game"
)

// simpleThreshold is the total SimpleBot stands on
const simpleThreshold = 16

// SimpleBot is a learner-friendly rule: hit under 16, stand otherwise
type SimpleBot struct {
	logger *log.Logger
}

// NewSimpleBot creates a new SimpleBot instance
func NewSimpleBot(logger *log.Logger) *SimpleBot {
	return &SimpleBot{logger: orDiscard(logger)}
}

func (s *SimpleBot) Name() string { return "Simple Hit 16" }

func (s *SimpleBot) Decide(snapshot game.RoundSnapshot) game.Action {
	return hitBelow(s.logger, "simple-bot decision", snapshot, simpleThreshold)
}
