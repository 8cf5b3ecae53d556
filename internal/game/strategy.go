package game

// Strategy decides actions for a player. Decide must return one of
// snapshot.AllowedActions; anything else aborts the round with a
// *ProtocolError.
type Strategy interface {
	Name() string
	Decide(snapshot RoundSnapshot) Action
}

// RoundStarter is implemented by strategies that want to reset state when a
// round begins. It is called once per active player after the deal.
type RoundStarter interface {
	OnRoundStart(snapshot RoundSnapshot)
}

// RoundEnder is implemented by strategies that want to observe the outcome
// of a round. It is called after the bankroll has been settled.
type RoundEnder interface {
	OnRoundEnd(snapshot RoundSnapshot, outcome Outcome, payout float64)
}

// StrategyFunc adapts a plain function to the Strategy interface
type StrategyFunc func(snapshot RoundSnapshot) Action

// Name implements Strategy
func (f StrategyFunc) Name() string { return "func" }

// Decide implements Strategy
func (f StrategyFunc) Decide(snapshot RoundSnapshot) Action { return f(snapshot) }
