// Package display renders game narration and summaries for the terminal.
package display

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/evaluator"
	"github.com/lox/blackjack/internal/game"
	"github.com/muesli/termenv"
)

// Styles contains styling for game display
type Styles struct {
	Header    lipgloss.Style
	SubHeader lipgloss.Style
	Action    lipgloss.Style
	Winner    lipgloss.Style
	Loser     lipgloss.Style
	Push      lipgloss.Style
	CardRed   lipgloss.Style
	CardBlack lipgloss.Style
	Money     lipgloss.Style
	Muted     lipgloss.Style
}

// ColorMode controls whether output is coloured
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// NewStyles creates styles bound to w. In ColorAuto mode colour is only
// emitted when w is a terminal and NO_COLOR is unset.
func NewStyles(w io.Writer, mode ColorMode) *Styles {
	r := lipgloss.NewRenderer(w)
	switch mode {
	case ColorAlways:
		r.SetColorProfile(termenv.TrueColor)
	case ColorNever:
		r.SetColorProfile(termenv.Ascii)
	}
	return &Styles{
		Header: r.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 2).
			Bold(true),
		SubHeader: r.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true),
		Action: r.NewStyle().
			Foreground(lipgloss.Color("#74B9FF")),
		Winner: r.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
		Loser: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")),
		Push: r.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7")),
		CardRed: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		CardBlack: r.NewStyle().
			Foreground(lipgloss.Color("#000000")).
			Bold(true),
		Money: r.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true),
		Muted: r.NewStyle().
			Foreground(lipgloss.Color("#626262")),
	}
}

// Card renders a single card in its suit colour
func (s *Styles) Card(c deck.Card) string {
	if c.IsRed() {
		return s.CardRed.Render(c.String())
	}
	return s.CardBlack.Render(c.String())
}

// Hand renders a hand as "[A♠ K♥]" with coloured cards
func (s *Styles) Hand(h evaluator.Hand) string {
	cards := h.Cards()
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = s.Card(c)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// Outcome renders an outcome in the colour of its result
func (s *Styles) Outcome(o game.Outcome) string {
	switch o {
	case game.OutcomeWin, game.OutcomeBlackjack:
		return s.Winner.Render(strings.ToUpper(o.String()))
	case game.OutcomeLose:
		return s.Loser.Render(strings.ToUpper(o.String()))
	case game.OutcomePush:
		return s.Push.Render(strings.ToUpper(o.String()))
	default:
		return s.Muted.Render(strings.ToUpper(o.String()))
	}
}
