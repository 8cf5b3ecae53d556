package game

import (
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/randutil"
)

// DefaultDecks is the shoe size used when WithDecks is not given
const DefaultDecks = 6

// Option configures an Engine during creation.
type Option func(*engineConfig)

// engineConfig holds all configuration for creating an engine.
type engineConfig struct {
	decks       int
	hitSoft17   bool
	seed        int64
	seeded      bool
	shuffler    deck.Shuffler // overrides seed for shuffling
	shoe        *deck.Shoe    // overrides decks and shuffler
	logger      *log.Logger
	clock       quartz.Clock
	subscribers []EventSubscriber
}

// WithDecks sets the number of decks in the shoe. Default is 6.
func WithDecks(n int) Option {
	return func(c *engineConfig) {
		c.decks = n
	}
}

// WithDealerHitsSoft17 makes the dealer draw on a soft 17
func WithDealerHitsSoft17(hit bool) Option {
	return func(c *engineConfig) {
		c.hitSoft17 = hit
	}
}

// WithSeed makes the shoe and session ID reproducible
func WithSeed(seed int64) Option {
	return func(c *engineConfig) {
		c.seed = seed
		c.seeded = true
	}
}

// WithShuffler sets the random source used to shuffle the shoe
func WithShuffler(s deck.Shuffler) Option {
	return func(c *engineConfig) {
		c.shuffler = s
	}
}

// WithShoe supplies a ready-made shoe. It takes precedence over WithDecks
// and WithShuffler; the engine becomes its sole owner.
func WithShoe(shoe *deck.Shoe) Option {
	return func(c *engineConfig) {
		c.shoe = shoe
	}
}

// WithLogger sets the logger used for engine diagnostics
func WithLogger(logger *log.Logger) Option {
	return func(c *engineConfig) {
		c.logger = logger
	}
}

// WithClock sets the clock used to timestamp events
func WithClock(clock quartz.Clock) Option {
	return func(c *engineConfig) {
		c.clock = clock
	}
}

// WithSubscriber attaches an observer before the first round
func WithSubscriber(sub EventSubscriber) Option {
	return func(c *engineConfig) {
		c.subscribers = append(c.subscribers, sub)
	}
}

func (c *engineConfig) resolveSeed() int64 {
	if c.seeded {
		return c.seed
	}
	return randutil.SeedOrNow(0)
}
