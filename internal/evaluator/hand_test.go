package evaluator

import (
	"testing"

	"github.com/lox/blackjack/internal/deck"
	"github.com/stretchr/testify/assert"
)

func hand(s string) Hand {
	return NewHand(deck.MustParseCards(s)...)
}

func TestEmptyHand(t *testing.T) {
	t.Parallel()
	h := Hand{}
	assert.Equal(t, []int{0}, h.Totals())
	assert.Equal(t, 0, h.Best())
	assert.False(t, h.IsBlackjack())
	assert.False(t, h.IsBust())
	assert.False(t, h.IsSoft())
	assert.Equal(t, "[]", h.String())
}

func TestTotals(t *testing.T) {
	t.Parallel()
	tests := []struct {
		cards  string
		totals []int
		best   int
		soft   bool
		bust   bool
	}{
		{cards: "A♠", totals: []int{1, 11}, best: 11, soft: true},
		{cards: "10♠ 9♥", totals: []int{19}, best: 19},
		{cards: "K♣ Q♦", totals: []int{20}, best: 20},
		{cards: "A♠ 6♥", totals: []int{7, 17}, best: 17, soft: true},
		{cards: "A♠ A♥", totals: []int{2, 12, 22}, best: 12, soft: true},
		{cards: "A♠ A♥ A♦", totals: []int{3, 13, 23, 33}, best: 13, soft: true},
		{cards: "A♠ 6♥ 10♦", totals: []int{17, 27}, best: 17, soft: true},
		{cards: "A♠ 6♥ 10♦ 5♣", totals: []int{22, 32}, best: 22, bust: true},
		{cards: "10♠ 6♥ 9♦", totals: []int{25}, best: 25, bust: true},
		{cards: "K♠ Q♥ A♦ A♣", totals: []int{22, 32, 42}, best: 22, bust: true},
		{cards: "7♠ 7♥ 7♦", totals: []int{21}, best: 21},
	}

	for _, tt := range tests {
		t.Run(tt.cards, func(t *testing.T) {
			h := hand(tt.cards)
			assert.Equal(t, tt.totals, h.Totals())
			assert.Equal(t, tt.best, h.Best())
			assert.Equal(t, tt.soft, h.IsSoft())
			assert.Equal(t, tt.bust, h.IsBust())
		})
	}
}

func TestNoAceHasSingleTotal(t *testing.T) {
	t.Parallel()
	for _, rank := range deck.Ranks {
		if rank == deck.Ace {
			continue
		}
		for _, other := range deck.Ranks {
			if other == deck.Ace {
				continue
			}
			a := deck.NewCard(rank, deck.Spades)
			b := deck.NewCard(other, deck.Hearts)
			h := NewHand(a, b)
			want := a.Values()[0] + b.Values()[0]
			assert.Equal(t, []int{want}, h.Totals(), "%s", h)
		}
	}
}

func TestBustReportsSmallestTotal(t *testing.T) {
	t.Parallel()
	h := hand("A♠ A♥ K♦ Q♣")
	totals := h.Totals()
	assert.True(t, h.IsBust())
	assert.Equal(t, totals[0], h.Best())
	for _, total := range totals {
		assert.LessOrEqual(t, h.Best(), total)
	}
}

func TestBlackjack(t *testing.T) {
	t.Parallel()
	assert.True(t, hand("A♠ K♥").IsBlackjack())
	assert.True(t, hand("10♣ A♦").IsBlackjack())
	assert.False(t, hand("7♠ 7♥ 7♦").IsBlackjack(), "three card 21 is not a natural")
	assert.False(t, hand("K♠ Q♥").IsBlackjack())
	assert.False(t, hand("A♠").IsBlackjack())
}

func TestCloneIsIndependent(t *testing.T) {
	t.Parallel()
	h := hand("5♠ 6♥")
	c := h.Clone()
	h.Add(deck.NewCard(deck.King, deck.Clubs))
	assert.Equal(t, 2, c.Len())
	assert.Equal(t, 3, h.Len())

	cards := h.Cards()
	cards[0] = deck.NewCard(deck.Ace, deck.Clubs)
	assert.Equal(t, deck.Five, h.Cards()[0].Rank)
}

func TestString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "[A♠ 10♥]", hand("A♠ 10♥").String())
}
