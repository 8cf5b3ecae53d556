package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		player  string
		dealer  string
		bet     float64
		outcome Outcome
		payout  float64
	}{
		{"player bust loses even if dealer busts", "10♠ 6♥ K♦", "10♣ 6♦ 9♠", 10, OutcomeLose, -10},
		{"natural pays 1.5x", "A♠ K♥", "10♣ 8♦", 10, OutcomeBlackjack, 15},
		{"natural beats dealer 21", "A♠ K♥", "7♣ 7♦ 7♥", 10, OutcomeBlackjack, 15},
		{"natural vs natural pushes", "A♠ K♥", "A♣ Q♦", 10, OutcomePush, 0},
		{"dealer bust pays even money", "10♠ 2♥", "10♣ 6♦ 9♠", 10, OutcomeWin, 10},
		{"dealer natural beats three card 21", "7♠ 7♥ 7♦", "A♣ Q♦", 10, OutcomeLose, -10},
		{"higher total wins", "10♠ 9♥", "10♣ 7♦", 10, OutcomeWin, 10},
		{"lower total loses", "10♠ 7♥", "10♣ 9♦", 10, OutcomeLose, -10},
		{"equal totals push", "10♠ 8♥", "9♣ 9♦", 10, OutcomePush, 0},
		{"doubled bet wins double", "5♠ 6♥ 10♦", "10♣ 7♦", 20, OutcomeWin, 20},
		{"doubled bet loses double", "5♠ 6♥ 2♦", "10♣ 7♦", 20, OutcomeLose, -20},
		{"soft totals compare best", "A♠ 7♥", "10♣ 7♦", 10, OutcomeWin, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome, payout := Resolve(hand(tt.player), hand(tt.dealer), tt.bet)
			assert.Equal(t, tt.outcome, outcome)
			assert.Equal(t, tt.payout, payout)
		})
	}
}

func TestDealerShouldHit(t *testing.T) {
	t.Parallel()
	tests := []struct {
		cards     string
		hitSoft17 bool
		want      bool
	}{
		{"10♣ 6♦", false, true},
		{"10♣ 7♦", false, false},
		{"10♣ 7♦", true, false},
		{"A♣ 6♦", false, false},
		{"A♣ 6♦", true, true},
		{"A♣ 7♦", true, false},
		{"A♣ 5♦ A♥", true, true},
		{"A♣ 6♦ 10♥", true, true}, // a second total (27) keeps the hand soft
		{"A♣ 6♦ 10♥", false, false},
		{"10♣ 8♦", true, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DealerShouldHit(hand(tt.cards), tt.hitSoft17), "%s soft17=%v", tt.cards, tt.hitSoft17)
	}
}
