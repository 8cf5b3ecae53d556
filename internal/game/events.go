package game

import (
	"fmt"
	"time"

	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/evaluator"
)

// EventType represents a game event type with type safety
type EventType string

const (
	EventTypeRoundStart   EventType = "round_start"
	EventTypeHandDealt    EventType = "hand_dealt"
	EventTypePlayerAction EventType = "player_action"
	EventTypeDealerReveal EventType = "dealer_reveal"
	EventTypeDealerDraw   EventType = "dealer_draw"
	EventTypePlayerResult EventType = "player_result"
	EventTypeRoundEnd     EventType = "round_end"
)

// String returns the string representation of the event type
func (et EventType) String() string {
	return string(et)
}

// GameEvent is anything the engine reports to observers. String renders a
// one line narration of the event.
type GameEvent interface {
	EventType() EventType
	Timestamp() time.Time
	String() string
}

// RoundStartEvent is published once the active players are known
type RoundStartEvent struct {
	SessionID        string
	Round            int
	Active           []string
	Skipped          []string
	DealerHitsSoft17 bool
	timestamp        time.Time
}

func (e RoundStartEvent) EventType() EventType { return EventTypeRoundStart }
func (e RoundStartEvent) Timestamp() time.Time { return e.timestamp }
func (e RoundStartEvent) String() string {
	s := fmt.Sprintf("Round %d: %d player(s) in", e.Round, len(e.Active))
	if len(e.Skipped) > 0 {
		s += fmt.Sprintf(", %d sitting out", len(e.Skipped))
	}
	return s
}

// HandDealtEvent is published for each player's two card starting hand
type HandDealtEvent struct {
	Player    string
	Hand      evaluator.Hand
	Natural   bool
	timestamp time.Time
}

func (e HandDealtEvent) EventType() EventType { return EventTypeHandDealt }
func (e HandDealtEvent) Timestamp() time.Time { return e.timestamp }
func (e HandDealtEvent) String() string {
	if e.Natural {
		return fmt.Sprintf("%s starting hand: %s - natural blackjack!", e.Player, e.Hand)
	}
	return fmt.Sprintf("%s starting hand: %s (total %d)", e.Player, e.Hand, e.Hand.Best())
}

// PlayerActionEvent is published after an action has been applied
type PlayerActionEvent struct {
	Player    string
	Action    Action
	Card      *deck.Card // drawn card for hit and double
	Total     int
	Bet       float64
	timestamp time.Time
}

func (e PlayerActionEvent) EventType() EventType { return EventTypePlayerAction }
func (e PlayerActionEvent) Timestamp() time.Time { return e.timestamp }
func (e PlayerActionEvent) String() string {
	switch e.Action {
	case Hit:
		return fmt.Sprintf("%s hits and receives %s. Total: %d", e.Player, e.Card, e.Total)
	case Double:
		return fmt.Sprintf("%s doubles to %.2f and receives %s. Total: %d", e.Player, e.Bet, e.Card, e.Total)
	default:
		return fmt.Sprintf("%s stands on %d", e.Player, e.Total)
	}
}

// DealerRevealEvent is published when the dealer turns over the hole card
type DealerRevealEvent struct {
	Hand      evaluator.Hand
	timestamp time.Time
}

func (e DealerRevealEvent) EventType() EventType { return EventTypeDealerReveal }
func (e DealerRevealEvent) Timestamp() time.Time { return e.timestamp }
func (e DealerRevealEvent) String() string {
	return fmt.Sprintf("Dealer shows %s (total %d)", e.Hand, e.Hand.Best())
}

// DealerDrawEvent is published for each card the dealer draws
type DealerDrawEvent struct {
	Card      deck.Card
	Total     int
	timestamp time.Time
}

func (e DealerDrawEvent) EventType() EventType { return EventTypeDealerDraw }
func (e DealerDrawEvent) Timestamp() time.Time { return e.timestamp }
func (e DealerDrawEvent) String() string {
	return fmt.Sprintf("Dealer draws %s. Total: %d", e.Card, e.Total)
}

// PlayerResultEvent is published once a player's bet has been settled
type PlayerResultEvent struct {
	Result    GameResult
	Bankroll  float64
	timestamp time.Time
}

func (e PlayerResultEvent) EventType() EventType { return EventTypePlayerResult }
func (e PlayerResultEvent) Timestamp() time.Time { return e.timestamp }
func (e PlayerResultEvent) String() string {
	r := e.Result
	if r.Outcome == OutcomeSkip {
		return fmt.Sprintf("%s sits out (bankroll %.2f)", r.PlayerName, e.Bankroll)
	}
	return fmt.Sprintf("%s %s! Player total: %d, Dealer total: %d. Payout %+.2f, bankroll now %.2f",
		r.PlayerName, r.Outcome, r.PlayerTotal, r.DealerTotal, r.Payout, e.Bankroll)
}

// RoundEndEvent is published after every result has been collected
type RoundEndEvent struct {
	Round     int
	Results   []GameResult
	timestamp time.Time
}

func (e RoundEndEvent) EventType() EventType { return EventTypeRoundEnd }
func (e RoundEndEvent) Timestamp() time.Time { return e.timestamp }
func (e RoundEndEvent) String() string {
	return fmt.Sprintf("Round %d complete", e.Round)
}

// EventSubscriber receives game events
type EventSubscriber interface {
	OnEvent(event GameEvent)
}

// EventBus manages event publishing and subscription
type EventBus interface {
	Subscribe(subscriber EventSubscriber)
	Unsubscribe(subscriber EventSubscriber)
	Publish(event GameEvent)
}

// SimpleEventBus is a synchronous in-memory event bus. Publishing with no
// subscribers is a no-op, so the engine behaves the same with or without
// observers.
type SimpleEventBus struct {
	subscribers []EventSubscriber
}

// NewEventBus creates a new event bus
func NewEventBus() *SimpleEventBus {
	return &SimpleEventBus{}
}

// Subscribe adds a subscriber to receive events
func (bus *SimpleEventBus) Subscribe(subscriber EventSubscriber) {
	bus.subscribers = append(bus.subscribers, subscriber)
}

// Unsubscribe removes a subscriber from receiving events
func (bus *SimpleEventBus) Unsubscribe(subscriber EventSubscriber) {
	for i, sub := range bus.subscribers {
		if sub == subscriber {
			bus.subscribers = append(bus.subscribers[:i], bus.subscribers[i+1:]...)
			break
		}
	}
}

// Publish delivers an event to all subscribers in subscription order
func (bus *SimpleEventBus) Publish(event GameEvent) {
	for _, subscriber := range bus.subscribers {
		subscriber.OnEvent(event)
	}
}
