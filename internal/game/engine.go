package game

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/evaluator"
	"github.com/lox/blackjack/internal/gameid"
	"github.com/lox/blackjack/internal/randutil"
)

// Phase is the engine's position in the round state machine
type Phase int

const (
	PhaseSetup Phase = iota
	PhaseDeal
	PhasePlayerTurns
	PhaseDealerTurn
	PhaseResolve
	PhaseDone
)

func (p Phase) String() string {
	switch p {
	case PhaseSetup:
		return "setup"
	case PhaseDeal:
		return "deal"
	case PhasePlayerTurns:
		return "player_turns"
	case PhaseDealerTurn:
		return "dealer_turn"
	case PhaseResolve:
		return "resolve"
	case PhaseDone:
		return "done"
	default:
		return "unknown"
	}
}

// Engine runs blackjack rounds for one game session. It owns the shoe and
// the ledger; rounds are played strictly one after another.
type Engine struct {
	id        string
	ledger    *Ledger
	shoe      *deck.Shoe
	hitSoft17 bool
	round     int
	phase     Phase
	logger    *log.Logger
	clock     quartz.Clock
	eventBus  *SimpleEventBus
}

// seatState is one active player's progress through the current round
type seatState struct {
	index   int
	player  *Player
	hand    evaluator.Hand
	bet     float64
	doubled bool
}

// NewEngine creates a game session for the given players.
func NewEngine(players []*Player, opts ...Option) (*Engine, error) {
	cfg := &engineConfig{decks: DefaultDecks}
	for _, opt := range opts {
		opt(cfg)
	}

	ledger, err := NewLedger(players)
	if err != nil {
		return nil, err
	}

	seed := cfg.resolveSeed()
	shoe := cfg.shoe
	if shoe == nil {
		shuffler := cfg.shuffler
		if shuffler == nil {
			shuffler = randutil.New(seed)
		}
		shoe, err = deck.NewShoe(cfg.decks, shuffler)
		if err != nil {
			return nil, err
		}
	}

	id, err := gameid.New(randutil.NewReader(seed))
	if err != nil {
		return nil, fmt.Errorf("failed to generate session id: %w", err)
	}

	logger := cfg.logger
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{Level: log.WarnLevel})
	}
	clock := cfg.clock
	if clock == nil {
		clock = quartz.NewReal()
	}

	e := &Engine{
		id:        id,
		ledger:    ledger,
		shoe:      shoe,
		hitSoft17: cfg.hitSoft17,
		logger:    logger.With("session", id),
		clock:     clock,
		eventBus:  NewEventBus(),
	}
	for _, sub := range cfg.subscribers {
		e.eventBus.Subscribe(sub)
	}
	return e, nil
}

// ID returns the session identifier
func (e *Engine) ID() string { return e.id }

// Round returns the number of rounds played so far
func (e *Engine) Round() int { return e.round }

// Phase returns the state the engine last entered
func (e *Engine) Phase() Phase { return e.phase }

// CardsRemaining returns the cards left in the shoe before the next refill
func (e *Engine) CardsRemaining() int { return e.shoe.CardsRemaining() }

// Players returns the seated players in configured order
func (e *Engine) Players() []*Player { return e.ledger.Players() }

// Bankrolls returns every player's current bankroll
func (e *Engine) Bankrolls() map[string]float64 { return e.ledger.Bankrolls() }

// EventBus returns the bus observers subscribe to
func (e *Engine) EventBus() EventBus { return e.eventBus }

// Subscribe attaches an observer
func (e *Engine) Subscribe(sub EventSubscriber) { e.eventBus.Subscribe(sub) }

func (e *Engine) enter(phase Phase) {
	e.phase = phase
	e.logger.Debug("Entering phase", "round", e.round, "phase", phase)
}

// PlayRound plays one complete round and returns a result for every seated
// player in configured order. Bankrolls are settled before it returns. A
// strategy returning an illegal action aborts the round with a
// *ProtocolError, no bankroll is changed and no result or round end event is
// published for that round.
func (e *Engine) PlayRound() ([]GameResult, error) {
	e.round++
	e.enter(PhaseSetup)

	players := e.ledger.Players()
	results := make([]GameResult, len(players))
	var active []*seatState
	var activeNames, skipped []string
	for i, p := range players {
		if p.CanPlaceBet() {
			active = append(active, &seatState{index: i, player: p, bet: p.BetAmount()})
			activeNames = append(activeNames, p.Name())
			continue
		}
		results[i] = skipResult(p.Name())
		skipped = append(skipped, p.Name())
	}

	e.eventBus.Publish(RoundStartEvent{
		SessionID:        e.id,
		Round:            e.round,
		Active:           activeNames,
		Skipped:          skipped,
		DealerHitsSoft17: e.hitSoft17,
		timestamp:        e.clock.Now(),
	})

	if len(active) == 0 {
		e.finish(results)
		return results, nil
	}

	e.enter(PhaseDeal)
	var dealer evaluator.Hand
	for range 2 {
		for _, s := range active {
			s.hand.Add(e.shoe.Draw())
		}
		dealer.Add(e.shoe.Draw())
	}
	upcard := dealer.Cards()[0]

	e.enter(PhasePlayerTurns)
	for _, s := range active {
		if err := e.playTurn(s, upcard); err != nil {
			return nil, err
		}
	}

	e.enter(PhaseDealerTurn)
	e.eventBus.Publish(DealerRevealEvent{Hand: dealer.Clone(), timestamp: e.clock.Now()})
	for DealerShouldHit(dealer, e.hitSoft17) {
		card := e.shoe.Draw()
		dealer.Add(card)
		e.logger.Debug("Dealer draws", "round", e.round, "card", card, "total", dealer.Best())
		e.eventBus.Publish(DealerDrawEvent{Card: card, Total: dealer.Best(), timestamp: e.clock.Now()})
	}

	e.enter(PhaseResolve)
	for _, s := range active {
		results[s.index] = e.settle(s, dealer, upcard)
	}

	e.finish(results)
	return results, nil
}

// finish publishes the skip results and closes the round. Skips are only
// reported for rounds that complete.
func (e *Engine) finish(results []GameResult) {
	e.enter(PhaseDone)
	for i, p := range e.ledger.Players() {
		if results[i].Outcome == OutcomeSkip {
			e.logger.Debug("Player sits out", "round", e.round, "player", p.Name(), "bankroll", p.Bankroll())
			e.eventBus.Publish(PlayerResultEvent{Result: results[i], Bankroll: p.Bankroll(), timestamp: e.clock.Now()})
		}
	}
	e.eventBus.Publish(RoundEndEvent{Round: e.round, Results: append([]GameResult(nil), results...), timestamp: e.clock.Now()})
}

func (e *Engine) snapshot(s *seatState, upcard deck.Card, allowed []Action) RoundSnapshot {
	return newSnapshot(e.round, s.hand, upcard, allowed, e.shoe.CardsRemaining(), s.player.Bankroll(), s.bet)
}

// playTurn queries the player's strategy until the turn ends. Naturals end
// the turn without a query.
func (e *Engine) playTurn(s *seatState, upcard deck.Card) error {
	p := s.player
	strategy := p.Strategy()
	natural := s.hand.IsBlackjack()

	if starter, ok := strategy.(RoundStarter); ok {
		var allowed []Action
		if !natural {
			allowed = legalActions(s.hand.Len(), p.Bankroll(), s.bet)
		}
		starter.OnRoundStart(e.snapshot(s, upcard, allowed))
	}

	e.eventBus.Publish(HandDealtEvent{Player: p.Name(), Hand: s.hand.Clone(), Natural: natural, timestamp: e.clock.Now()})
	if natural {
		e.logger.Debug("Natural blackjack", "round", e.round, "player", p.Name(), "hand", s.hand)
		return nil
	}

	for {
		allowed := legalActions(s.hand.Len(), p.Bankroll(), s.bet)
		decision := strategy.Decide(e.snapshot(s, upcard, allowed))
		if !containsAction(allowed, decision) {
			err := &ProtocolError{
				Player:   p.Name(),
				Strategy: strategy.Name(),
				Round:    e.round,
				Action:   decision,
				Allowed:  allowed,
			}
			e.logger.Error("Strategy returned illegal action", "round", e.round, "player", p.Name(), "action", decision, "allowed", joinActions(allowed))
			return err
		}

		event := PlayerActionEvent{Player: p.Name(), Action: decision, Bet: s.bet}
		done := false
		switch decision {
		case Hit:
			card := e.shoe.Draw()
			s.hand.Add(card)
			event.Card = &card
			done = s.hand.IsBust() || s.hand.Best() == evaluator.BlackjackTotal
		case Double:
			s.bet *= 2
			s.doubled = true
			card := e.shoe.Draw()
			s.hand.Add(card)
			event.Card = &card
			event.Bet = s.bet
			done = true
		case Stand:
			done = true
		}
		event.Total = s.hand.Best()
		event.timestamp = e.clock.Now()

		e.logger.Debug("Player action", "round", e.round, "player", p.Name(), "action", decision, "total", event.Total, "bet", s.bet)
		e.eventBus.Publish(event)

		if done {
			return nil
		}
	}
}

// settle resolves one seat against the dealer, applies the payout and
// notifies the strategy.
func (e *Engine) settle(s *seatState, dealer evaluator.Hand, upcard deck.Card) GameResult {
	p := s.player
	outcome, payout := Resolve(s.hand, dealer, s.bet)
	bankroll := e.ledger.Settle(p, payout)

	result := GameResult{
		PlayerName:  p.Name(),
		Outcome:     outcome,
		Payout:      payout,
		Bet:         s.bet,
		Doubled:     s.doubled,
		PlayerTotal: s.hand.Best(),
		DealerTotal: dealer.Best(),
		IsBlackjack: s.hand.IsBlackjack(),
	}

	e.logger.Debug("Player result", "round", e.round, "player", p.Name(), "outcome", outcome, "payout", payout, "bankroll", bankroll)
	e.eventBus.Publish(PlayerResultEvent{Result: result, Bankroll: bankroll, timestamp: e.clock.Now()})

	if ender, ok := p.Strategy().(RoundEnder); ok {
		ender.OnRoundEnd(e.snapshot(s, upcard, nil), outcome, payout)
	}
	return result
}
