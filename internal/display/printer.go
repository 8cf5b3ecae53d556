package display

import (
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/lox/blackjack/internal/game"
)

// Printer narrates engine events to a writer. It implements
// game.EventSubscriber.
type Printer struct {
	out    io.Writer
	styles *Styles
}

// NewPrinter creates a printer writing to out
func NewPrinter(out io.Writer, mode ColorMode) *Printer {
	return &Printer{out: out, styles: NewStyles(out, mode)}
}

// OnEvent implements game.EventSubscriber
func (p *Printer) OnEvent(event game.GameEvent) {
	s := p.styles
	switch e := event.(type) {
	case game.RoundStartEvent:
		fmt.Fprintln(p.out)
		fmt.Fprintln(p.out, s.Header.Render(fmt.Sprintf("*** ROUND %d ***", e.Round)))
		if e.DealerHitsSoft17 && e.Round == 1 {
			fmt.Fprintln(p.out, s.Muted.Render("Dealer hits soft 17"))
		}
		for _, name := range e.Skipped {
			fmt.Fprintf(p.out, "%s\n", s.Muted.Render(name+" cannot cover the bet and sits out"))
		}
	case game.HandDealtEvent:
		if e.Natural {
			fmt.Fprintf(p.out, "%s starting hand: %s %s\n", e.Player, s.Hand(e.Hand), s.Winner.Render("Blackjack!"))
			return
		}
		fmt.Fprintf(p.out, "%s starting hand: %s (total %d)\n", e.Player, s.Hand(e.Hand), e.Hand.Best())
	case game.PlayerActionEvent:
		switch e.Action {
		case game.Hit:
			fmt.Fprintf(p.out, "%s %s and receives %s. Total: %d\n", e.Player, s.Action.Render("hits"), s.Card(*e.Card), e.Total)
		case game.Double:
			fmt.Fprintf(p.out, "%s %s to %s and receives %s. Total: %d\n", e.Player, s.Action.Render("doubles"), s.Money.Render(fmt.Sprintf("%.2f", e.Bet)), s.Card(*e.Card), e.Total)
		default:
			fmt.Fprintf(p.out, "%s %s on %d\n", e.Player, s.Action.Render("stands"), e.Total)
		}
	case game.DealerRevealEvent:
		fmt.Fprintf(p.out, "%s Dealer shows %s (total %d)\n", s.SubHeader.Render("***"), s.Hand(e.Hand), e.Hand.Best())
	case game.DealerDrawEvent:
		fmt.Fprintf(p.out, "Dealer draws %s. Total: %d\n", s.Card(e.Card), e.Total)
	case game.PlayerResultEvent:
		r := e.Result
		if r.Outcome == game.OutcomeSkip {
			return
		}
		fmt.Fprintf(p.out, "%s %s! Player total: %d, Dealer total: %d. Payout %s, bankroll %s\n",
			r.PlayerName, s.Outcome(r.Outcome), r.PlayerTotal, r.DealerTotal,
			fmt.Sprintf("%+.2f", r.Payout), s.Money.Render(fmt.Sprintf("%.2f", e.Bankroll)))
	case game.RoundEndEvent:
		fmt.Fprintln(p.out, s.Muted.Render(fmt.Sprintf("Round %d complete", e.Round)))
	default:
		fmt.Fprintln(p.out, event.String())
	}
}

// PrintBankrolls writes the final bankroll of every player, sorted by name
func PrintBankrolls(out io.Writer, mode ColorMode, bankrolls map[string]float64) {
	s := NewStyles(out, mode)
	fmt.Fprintln(out)
	fmt.Fprintln(out, s.Header.Render("FINAL BANKROLLS"))
	for _, name := range slices.Sorted(maps.Keys(bankrolls)) {
		fmt.Fprintf(out, "%s: %s\n", name, s.Money.Render(fmt.Sprintf("%.2f", bankrolls[name])))
	}
}
