// Package evaluator values blackjack hands. Every Ace may count as 1 or 11,
// so a hand has a set of achievable totals rather than a single number.
package evaluator

import (
	"slices"
	"strings"

	"github.com/lox/blackjack/internal/deck"
)

// BlackjackTotal is the winning total
const BlackjackTotal = 21

// Hand is an ordered sequence of cards held by one participant for one round.
type Hand struct {
	cards []deck.Card
}

// NewHand creates a hand holding the given cards
func NewHand(cards ...deck.Card) Hand {
	h := Hand{}
	for _, c := range cards {
		h.Add(c)
	}
	return h
}

// Add appends a card to the hand
func (h *Hand) Add(card deck.Card) {
	h.cards = append(h.cards, card)
}

// Cards returns a copy of the cards in dealing order
func (h Hand) Cards() []deck.Card {
	return slices.Clone(h.cards)
}

// Len returns the number of cards in the hand
func (h Hand) Len() int {
	return len(h.cards)
}

// Clone returns an independent copy of the hand
func (h Hand) Clone() Hand {
	return Hand{cards: slices.Clone(h.cards)}
}

// Totals returns every distinct achievable total in ascending order.
// Each card's values are combined with every running total; duplicates are
// collapsed after each card, which yields the same set as the full expansion.
// An empty hand has the single total 0.
func (h Hand) Totals() []int {
	totals := []int{0}
	for _, card := range h.cards {
		values := card.Values()
		next := make([]int, 0, len(totals)*len(values))
		for _, total := range totals {
			for _, v := range values {
				next = append(next, total+v)
			}
		}
		slices.Sort(next)
		totals = slices.Compact(next)
	}
	return totals
}

// Best returns the highest total not exceeding 21. When every total busts it
// returns the smallest total, which is only meaningful for reporting.
func (h Hand) Best() int {
	totals := h.Totals()
	for i := len(totals) - 1; i >= 0; i-- {
		if totals[i] <= BlackjackTotal {
			return totals[i]
		}
	}
	return totals[0]
}

// IsBlackjack reports a two card natural 21
func (h Hand) IsBlackjack() bool {
	return len(h.cards) == 2 && h.Best() == BlackjackTotal
}

// IsBust reports whether every total exceeds 21
func (h Hand) IsBust() bool {
	return h.Best() > BlackjackTotal
}

// IsSoft reports whether an Ace can still be counted either way: more than one
// distinct total exists and at least one of them is 21 or less.
func (h Hand) IsSoft() bool {
	totals := h.Totals()
	return len(totals) > 1 && totals[0] <= BlackjackTotal
}

// String renders the hand as "[A♠ K♥]"
func (h Hand) String() string {
	parts := make([]string, len(h.cards))
	for i, c := range h.cards {
		parts[i] = c.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}
