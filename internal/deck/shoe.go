package deck

import "fmt"

// DeckSize is the number of cards in one standard deck
const DeckSize = 52

// Shuffler permutes a sequence in place. *rand.Rand from both math/rand and
// math/rand/v2 satisfy it, so a seeded source gives reproducible shoes.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// Shoe is a multi-deck card source. Drawing from an empty shoe rebuilds and
// reshuffles all of its decks, so Draw never fails.
type Shoe struct {
	decks      int
	cards      []Card
	next       int
	shuffler   Shuffler
	reshuffles int
}

// ShoeOption configures a Shoe during creation.
type ShoeOption func(*Shoe)

// WithStack places cards on top of the shoe so they are drawn first, in the
// order given. Once they are exhausted the shoe refills normally.
func WithStack(cards ...Card) ShoeOption {
	return func(s *Shoe) {
		stacked := make([]Card, len(cards))
		copy(stacked, cards)
		s.cards = stacked
		s.next = 0
	}
}

// NewShoe creates a shuffled shoe of the given number of decks.
func NewShoe(decks int, shuffler Shuffler, opts ...ShoeOption) (*Shoe, error) {
	if decks < 1 {
		return nil, fmt.Errorf("a shoe must contain at least one deck, got %d", decks)
	}
	if shuffler == nil {
		return nil, fmt.Errorf("shuffler is required")
	}

	s := &Shoe{
		decks:    decks,
		shuffler: shuffler,
	}
	s.refill()
	s.reshuffles = 0

	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// refill rebuilds every deck and shuffles the result
func (s *Shoe) refill() {
	if cap(s.cards) < s.decks*DeckSize {
		s.cards = make([]Card, 0, s.decks*DeckSize)
	}
	s.cards = s.cards[:0]
	for range s.decks {
		for _, suit := range Suits {
			for _, rank := range Ranks {
				s.cards = append(s.cards, NewCard(rank, suit))
			}
		}
	}
	s.shuffler.Shuffle(len(s.cards), func(i, j int) {
		s.cards[i], s.cards[j] = s.cards[j], s.cards[i]
	})
	s.next = 0
	s.reshuffles++
}

// Draw deals the next card, refilling the shoe first if it is empty.
func (s *Shoe) Draw() Card {
	if s.next >= len(s.cards) {
		s.refill()
	}
	card := s.cards[s.next]
	s.next++
	return card
}

// CardsRemaining returns the number of cards left before the next refill
func (s *Shoe) CardsRemaining() int {
	return len(s.cards) - s.next
}

// Decks returns the number of decks the shoe is built from
func (s *Shoe) Decks() int {
	return s.decks
}

// Reshuffles returns how many times the shoe has refilled since creation
func (s *Shoe) Reshuffles() int {
	return s.reshuffles
}
