package game

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPlayer is returned for a player definition the engine cannot seat
	ErrInvalidPlayer = errors.New("invalid player")

	// ErrDuplicatePlayer is returned when two players share a name
	ErrDuplicatePlayer = errors.New("duplicate player name")

	// ErrNoPlayers is returned when a game is created without players
	ErrNoPlayers = errors.New("at least one player is required")

	// ErrProtocolViolation is matched by every *ProtocolError
	ErrProtocolViolation = errors.New("strategy protocol violation")
)

// ProtocolError reports a strategy that returned an action outside the legal set
type ProtocolError struct {
	Player   string
	Strategy string
	Round    int
	Action   Action
	Allowed  []Action
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("round %d: strategy %q for player %s returned invalid action %q (allowed: %s)",
		e.Round, e.Strategy, e.Player, e.Action, joinActions(e.Allowed))
}

// Is lets errors.Is(err, ErrProtocolViolation) match
func (e *ProtocolError) Is(target error) bool {
	return target == ErrProtocolViolation
}
