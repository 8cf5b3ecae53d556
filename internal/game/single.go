package game

// BankName is the key PlaySingleGame uses for the dealer's total
const BankName = "Bank"

// NamedStrategy pairs a player name with the strategy that plays for it
type NamedStrategy struct {
	Name     string
	Strategy Strategy
}

// PlaySingleGame plays one round between two players and the dealer and
// returns each participant's final total keyed by name, with the dealer
// under BankName. Players that sat out report 0.
func PlaySingleGame(one, two NamedStrategy, bankroll, bet float64, opts ...Option) (map[string]int, error) {
	p1, err := NewPlayer(one.Name, one.Strategy, bankroll, bet)
	if err != nil {
		return nil, err
	}
	p2, err := NewPlayer(two.Name, two.Strategy, bankroll, bet)
	if err != nil {
		return nil, err
	}

	engine, err := NewEngine([]*Player{p1, p2}, opts...)
	if err != nil {
		return nil, err
	}
	results, err := engine.PlayRound()
	if err != nil {
		return nil, err
	}

	totals := map[string]int{one.Name: 0, two.Name: 0, BankName: 0}
	for _, r := range results {
		if r.Outcome == OutcomeSkip {
			continue
		}
		totals[r.PlayerName] = r.PlayerTotal
		totals[BankName] = r.DealerTotal
	}
	return totals, nil
}
