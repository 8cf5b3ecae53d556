package simulator

import (
	"fmt"
	"io"

	"github.com/lox/blackjack/internal/display"
)

// PrintSummary prints the results of a simulation run
func PrintSummary(w io.Writer, mode display.ColorMode, report *Report) {
	s := display.NewStyles(w, mode)

	fmt.Fprintln(w)
	fmt.Fprintln(w, s.Header.Render("FINAL RESULTS"))
	fmt.Fprintf(w, "Sessions: %d, rounds per session: %d, decks: %d, dealer hits soft 17: %t\n",
		len(report.Sessions), report.Rounds, report.Decks, report.HitSoft17)
	fmt.Fprintf(w, "Seed: %d, elapsed: %s\n", report.Seed, report.Duration)

	for _, p := range report.Players {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "%s (%s)\n", s.SubHeader.Render(p.Name), p.Strategy)
		fmt.Fprintf(w, "Bankroll: %.2f -> %s\n", p.StartingBankroll, s.Money.Render(fmt.Sprintf("%.2f", p.FinalBankroll)))
		fmt.Fprintf(w, "Rounds played: %d (sat out %d)\n", p.Rounds, p.Skipped)
		if p.Rounds == 0 {
			continue
		}
		fmt.Fprintf(w, "Wins: %d, blackjacks: %d, pushes: %d, losses: %d, busts: %d, doubles: %d\n",
			p.Wins, p.Blackjacks, p.Pushes, p.Losses, p.Busts, p.Doubles)
		fmt.Fprintf(w, "Net: %+.2f, mean: %+.4f per round, std dev: %.4f\n", p.Net, p.Mean, p.StdDev)
		fmt.Fprintf(w, "95%% CI: [%.4f, %.4f] per round, house edge: %.2f%%\n", p.CILow, p.CIHigh, p.HouseEdge*100)
	}
}
