// Package game implements the blackjack round engine.
//
// An Engine owns a shoe and a ledger of seated players. Each call to
// PlayRound walks the round state machine:
//
//	Setup -> Deal -> PlayerTurns -> DealerTurn -> Resolve -> Done
//
// Players whose bankroll cannot cover their bet sit the round out with a
// skip result. Everyone else is dealt two cards round-robin, then each
// player's Strategy is asked for actions until the turn ends. The dealer
// draws to 17 (optionally hitting soft 17) and every bet is settled through
// the Ledger before the strategy's OnRoundEnd hook runs.
//
// # Basic Usage
//
//	p, _ := game.NewPlayer("Alice", bot.NewSimpleBot(nil), 100, 10)
//	e, _ := game.NewEngine([]*game.Player{p}, game.WithSeed(42))
//	results, err := e.PlayRound()
//
// # Deterministic Testing
//
// WithSeed makes the shuffle and the session ID reproducible. For complete
// control over the cards, stack a shoe and hand it to the engine:
//
//	shoe, _ := deck.NewShoe(1, randutil.New(1), deck.WithStack(cards...))
//	e, _ := game.NewEngine(players, game.WithShoe(shoe))
//
// # Observers
//
// Events are published synchronously on an EventBus. The engine behaves the
// same whether or not anything is subscribed.
package game
