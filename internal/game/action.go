package game

import (
	"fmt"
	"slices"
	"strings"
)

// Action is a player decision during their turn
type Action int

const (
	Hit Action = iota
	Stand
	Double
)

// String returns the lowercase action name used in logs and prompts
func (a Action) String() string {
	switch a {
	case Hit:
		return "hit"
	case Stand:
		return "stand"
	case Double:
		return "double"
	default:
		return fmt.Sprintf("action(%d)", int(a))
	}
}

// ParseAction converts "hit", "stand" or "double" (any case) to an Action
func ParseAction(s string) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "hit", "h":
		return Hit, nil
	case "stand", "s":
		return Stand, nil
	case "double", "d":
		return Double, nil
	default:
		return 0, fmt.Errorf("unknown action %q", s)
	}
}

// legalActions returns the actions available for a hand of handSize cards.
// Double is only offered on the first two cards when the bankroll covers
// twice the bet.
func legalActions(handSize int, bankroll, bet float64) []Action {
	actions := []Action{Hit, Stand}
	if handSize == 2 && bankroll >= 2*bet {
		actions = append(actions, Double)
	}
	return actions
}

func containsAction(actions []Action, a Action) bool {
	return slices.Contains(actions, a)
}

func joinActions(actions []Action) string {
	names := make([]string, len(actions))
	for i, a := range actions {
		names[i] = a.String()
	}
	return strings.Join(names, ", ")
}
