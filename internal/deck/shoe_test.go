package deck

import (
	"testing"

	"github.com/lox/blackjack/internal/randutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewShoeRejectsZeroDecks(t *testing.T) {
	t.Parallel()
	_, err := NewShoe(0, randutil.New(1))
	require.Error(t, err)
}

func TestNewShoeRequiresShuffler(t *testing.T) {
	t.Parallel()
	_, err := NewShoe(1, nil)
	require.Error(t, err)
}

func TestShoeComposition(t *testing.T) {
	t.Parallel()
	shoe, err := NewShoe(6, randutil.New(3))
	require.NoError(t, err)
	require.Equal(t, 6*DeckSize, shoe.CardsRemaining())
	assert.Equal(t, 6, shoe.Decks())
	assert.Equal(t, 0, shoe.Reshuffles())

	counts := map[Card]int{}
	for range 6 * DeckSize {
		counts[shoe.Draw()]++
	}
	assert.Len(t, counts, DeckSize)
	for card, n := range counts {
		assert.Equal(t, 6, n, "card %s", card)
	}
	assert.Equal(t, 0, shoe.CardsRemaining())
}

func TestShoeDrawReducesRemaining(t *testing.T) {
	t.Parallel()
	shoe, err := NewShoe(2, randutil.New(9))
	require.NoError(t, err)

	start := shoe.CardsRemaining()
	for range 17 {
		shoe.Draw()
	}
	assert.Equal(t, start-17, shoe.CardsRemaining())
	assert.Equal(t, 0, shoe.Reshuffles())
}

func TestShoeRefillsWhenEmpty(t *testing.T) {
	t.Parallel()
	shoe, err := NewShoe(1, randutil.New(5))
	require.NoError(t, err)

	for range DeckSize {
		shoe.Draw()
	}
	require.Equal(t, 0, shoe.CardsRemaining())

	shoe.Draw()
	assert.Equal(t, DeckSize-1, shoe.CardsRemaining())
	assert.Equal(t, 1, shoe.Reshuffles())
}

func TestShoeIsReproducible(t *testing.T) {
	t.Parallel()
	a, err := NewShoe(4, randutil.New(1234))
	require.NoError(t, err)
	b, err := NewShoe(4, randutil.New(1234))
	require.NoError(t, err)

	for range 300 {
		assert.Equal(t, a.Draw(), b.Draw())
	}
}

func TestShoeWithStack(t *testing.T) {
	t.Parallel()
	stack := MustParseCards("A♠ K♥ 9♦")
	shoe, err := NewShoe(1, randutil.New(1), WithStack(stack...))
	require.NoError(t, err)

	assert.Equal(t, 3, shoe.CardsRemaining())
	for _, want := range stack {
		assert.Equal(t, want, shoe.Draw())
	}
	assert.Equal(t, 0, shoe.CardsRemaining())

	shoe.Draw()
	assert.Equal(t, DeckSize-1, shoe.CardsRemaining(), "stacked shoe refills with full decks")
}
