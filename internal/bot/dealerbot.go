package bot

import (
	"github.com/charmbracelet/log"
	"github.com/lox/blackjack/internal/game"
)

// DealerBot plays the house rule: hit below 17, stand otherwise
type DealerBot struct {
	logger *log.Logger
}

// NewDealerBot creates a new DealerBot instance
func NewDealerBot(logger *log.Logger) *DealerBot {
	return &DealerBot{logger: orDiscard(logger)}
}

func (d *DealerBot) Name() string { return "Dealer Rules" }

func (d *DealerBot) Decide(snapshot game.RoundSnapshot) game.Action {
	return hitBelow(d.logger, "dealer-bot decision", snapshot, game.DealerStandTotal)
}
