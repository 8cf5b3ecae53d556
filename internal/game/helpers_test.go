package game

import (
	"math/rand/v2"
	"testing"

	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/evaluator"
	"github.com/lox/blackjack/internal/randutil"
	"github.com/stretchr/testify/require"
)

// thresholdStrategy hits below a total and stands otherwise
type thresholdStrategy struct {
	below int
}

func (s thresholdStrategy) Name() string { return "threshold" }

func (s thresholdStrategy) Decide(snapshot RoundSnapshot) Action {
	if snapshot.Hand.Best() < s.below {
		return Hit
	}
	return Stand
}

// scriptedStrategy returns queued actions in order and records every call
type scriptedStrategy struct {
	t         *testing.T
	actions   []Action
	decisions []RoundSnapshot
	starts    []RoundSnapshot
	ends      []RoundSnapshot
	outcomes  []Outcome
	payouts   []float64
}

func newScripted(t *testing.T, actions ...Action) *scriptedStrategy {
	return &scriptedStrategy{t: t, actions: actions}
}

func (s *scriptedStrategy) Name() string { return "scripted" }

func (s *scriptedStrategy) Decide(snapshot RoundSnapshot) Action {
	s.decisions = append(s.decisions, snapshot)
	if len(s.actions) == 0 {
		s.t.Fatalf("unexpected decision request with hand %s", snapshot.Hand)
	}
	a := s.actions[0]
	s.actions = s.actions[1:]
	return a
}

func (s *scriptedStrategy) OnRoundStart(snapshot RoundSnapshot) {
	s.starts = append(s.starts, snapshot)
}

func (s *scriptedStrategy) OnRoundEnd(snapshot RoundSnapshot, outcome Outcome, payout float64) {
	s.ends = append(s.ends, snapshot)
	s.outcomes = append(s.outcomes, outcome)
	s.payouts = append(s.payouts, payout)
}

// randomStrategy picks uniformly among the legal actions
type randomStrategy struct {
	rng *rand.Rand
}

func (s randomStrategy) Name() string { return "random" }

func (s randomStrategy) Decide(snapshot RoundSnapshot) Action {
	return snapshot.AllowedActions[s.rng.IntN(len(snapshot.AllowedActions))]
}

// recorder captures published events
type recorder struct {
	events []GameEvent
}

func (r *recorder) OnEvent(event GameEvent) {
	r.events = append(r.events, event)
}

func (r *recorder) types() []EventType {
	out := make([]EventType, len(r.events))
	for i, e := range r.events {
		out[i] = e.EventType()
	}
	return out
}

func mustPlayer(t *testing.T, name string, strategy Strategy, bankroll, bet float64) *Player {
	t.Helper()
	p, err := NewPlayer(name, strategy, bankroll, bet)
	require.NoError(t, err)
	return p
}

// stackedShoe returns a one deck shoe whose first cards are the given ones.
// Cards are dealt round-robin: each player in seat order, then the dealer.
func stackedShoe(t *testing.T, cards string) *deck.Shoe {
	t.Helper()
	shoe, err := deck.NewShoe(1, randutil.New(1), deck.WithStack(deck.MustParseCards(cards)...))
	require.NoError(t, err)
	return shoe
}

func newStackedEngine(t *testing.T, cards string, players []*Player, opts ...Option) *Engine {
	t.Helper()
	opts = append([]Option{WithShoe(stackedShoe(t, cards)), WithSeed(1)}, opts...)
	e, err := NewEngine(players, opts...)
	require.NoError(t, err)
	return e
}

func hand(s string) evaluator.Hand {
	return evaluator.NewHand(deck.MustParseCards(s)...)
}
