package game

// Outcome classifies how a round ended for one player
type Outcome string

const (
	OutcomeWin       Outcome = "win"
	OutcomeLose      Outcome = "lose"
	OutcomePush      Outcome = "push"
	OutcomeBlackjack Outcome = "blackjack"
	OutcomeSkip      Outcome = "skip"
)

// String returns the outcome name
func (o Outcome) String() string {
	return string(o)
}

// GameResult is the outcome of one round for one player
type GameResult struct {
	PlayerName  string
	Outcome     Outcome
	Payout      float64 // signed, already applied to the bankroll
	Bet         float64 // final wager, doubled if the player doubled
	Doubled     bool
	PlayerTotal int
	DealerTotal int
	IsBlackjack bool
}

func skipResult(name string) GameResult {
	return GameResult{PlayerName: name, Outcome: OutcomeSkip}
}
