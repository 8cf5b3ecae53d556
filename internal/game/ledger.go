package game

import "fmt"

// Ledger owns the seated players in their configured order and is the only
// place bankrolls are mutated.
type Ledger struct {
	players []*Player
	byName  map[string]*Player
}

// NewLedger seats players in order. Names must be unique.
func NewLedger(players []*Player) (*Ledger, error) {
	if len(players) == 0 {
		return nil, ErrNoPlayers
	}
	l := &Ledger{
		players: make([]*Player, 0, len(players)),
		byName:  make(map[string]*Player, len(players)),
	}
	for i, p := range players {
		if p == nil {
			return nil, fmt.Errorf("%w: seat %d is empty", ErrInvalidPlayer, i)
		}
		if _, exists := l.byName[p.name]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicatePlayer, p.name)
		}
		l.byName[p.name] = p
		l.players = append(l.players, p)
	}
	return l, nil
}

// Players returns the seated players in configured order
func (l *Ledger) Players() []*Player {
	out := make([]*Player, len(l.players))
	copy(out, l.players)
	return out
}

// Player looks up a seated player by name
func (l *Ledger) Player(name string) (*Player, bool) {
	p, ok := l.byName[name]
	return p, ok
}

// Settle applies a signed payout to a player's bankroll and returns the new balance
func (l *Ledger) Settle(p *Player, payout float64) float64 {
	p.bankroll += payout
	return p.bankroll
}

// Bankrolls returns a name to bankroll snapshot
func (l *Ledger) Bankrolls() map[string]float64 {
	out := make(map[string]float64, len(l.players))
	for _, p := range l.players {
		out[p.name] = p.bankroll
	}
	return out
}
