package display

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/evaluator"
	"github.com/lox/blackjack/internal/game"
	"github.com/stretchr/testify/assert"
)

func TestPrinterNarratesEvents(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, ColorNever)

	five := deck.MustParseCards("5♦")[0]
	p.OnEvent(game.RoundStartEvent{Round: 3, Active: []string{"Alice"}, Skipped: []string{"Bob"}})
	p.OnEvent(game.HandDealtEvent{Player: "Alice", Hand: evaluator.NewHand(deck.MustParseCards("10♠ 3♥")...)})
	p.OnEvent(game.HandDealtEvent{Player: "Carol", Hand: evaluator.NewHand(deck.MustParseCards("A♠ K♥")...), Natural: true})
	p.OnEvent(game.PlayerActionEvent{Player: "Alice", Action: game.Hit, Card: &five, Total: 18})
	p.OnEvent(game.PlayerActionEvent{Player: "Alice", Action: game.Stand, Total: 18})
	p.OnEvent(game.DealerRevealEvent{Hand: evaluator.NewHand(deck.MustParseCards("7♦ 9♣")...)})
	p.OnEvent(game.DealerDrawEvent{Card: deck.MustParseCards("Q♣")[0], Total: 26})
	p.OnEvent(game.PlayerResultEvent{
		Result:   game.GameResult{PlayerName: "Alice", Outcome: game.OutcomeWin, Payout: 10, PlayerTotal: 18, DealerTotal: 26},
		Bankroll: 110,
	})
	p.OnEvent(game.PlayerResultEvent{Result: game.GameResult{PlayerName: "Bob", Outcome: game.OutcomeSkip}})
	p.OnEvent(game.RoundEndEvent{Round: 3})

	out := buf.String()
	assert.Contains(t, out, "*** ROUND 3 ***")
	assert.Contains(t, out, "Bob cannot cover the bet and sits out")
	assert.Contains(t, out, "Alice starting hand: [10♠ 3♥] (total 13)")
	assert.Contains(t, out, "Carol starting hand: [A♠ K♥] Blackjack!")
	assert.Contains(t, out, "Alice hits and receives 5♦. Total: 18")
	assert.Contains(t, out, "Alice stands on 18")
	assert.Contains(t, out, "Dealer shows [7♦ 9♣] (total 16)")
	assert.Contains(t, out, "Dealer draws Q♣. Total: 26")
	assert.Contains(t, out, "Alice WIN! Player total: 18, Dealer total: 26. Payout +10.00, bankroll 110.00")
	assert.NotContains(t, out, "Bob SKIP")
	assert.Contains(t, out, "Round 3 complete")
	assert.NotContains(t, out, "Dealer hits soft 17")
}

func TestPrinterAnnouncesSoft17RuleOnce(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, ColorNever)

	p.OnEvent(game.RoundStartEvent{Round: 1, Active: []string{"Alice"}, DealerHitsSoft17: true})
	p.OnEvent(game.RoundStartEvent{Round: 2, Active: []string{"Alice"}, DealerHitsSoft17: true})

	assert.Equal(t, 1, strings.Count(buf.String(), "Dealer hits soft 17"))
}

func TestPrinterDouble(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, ColorNever)

	card := deck.MustParseCards("9♥")[0]
	p.OnEvent(game.PlayerActionEvent{Player: "Dan", Action: game.Double, Card: &card, Total: 20, Bet: 20})
	assert.Contains(t, buf.String(), "Dan doubles to 20.00 and receives 9♥. Total: 20")
}

func TestPrintBankrolls(t *testing.T) {
	var buf bytes.Buffer
	PrintBankrolls(&buf, ColorNever, map[string]float64{"Zed": 90, "Amy": 125.5})

	out := buf.String()
	assert.Contains(t, out, "FINAL BANKROLLS")
	assert.Contains(t, out, "Amy: 125.50\nZed: 90.00\n")
}

func TestStylesPlainWhenNotTerminal(t *testing.T) {
	s := NewStyles(&bytes.Buffer{}, ColorAuto)
	assert.Equal(t, "A♥", s.Card(deck.MustParseCards("A♥")[0]))
	assert.Equal(t, "[A♥ K♠]", s.Hand(evaluator.NewHand(deck.MustParseCards("A♥ K♠")...)))
	assert.Equal(t, "PUSH", s.Outcome(game.OutcomePush))
	assert.Equal(t, "BLACKJACK", s.Outcome(game.OutcomeBlackjack))
}

func TestStylesColorModes(t *testing.T) {
	ace := deck.MustParseCards("A♥")[0]

	always := NewStyles(&bytes.Buffer{}, ColorAlways)
	assert.Contains(t, always.Card(ace), "\x1b[")
	assert.Contains(t, always.Card(ace), "A♥")

	never := NewStyles(&bytes.Buffer{}, ColorNever)
	assert.Equal(t, "A♥", never.Card(ace))
}
