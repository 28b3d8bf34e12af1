package blackjack

import (
	"fmt"
	"strings"
)

// Action is a decision the player can make during their turn
type Action int

// Action constants
const (
	ActionHit Action = iota
	ActionStand
)

func (a Action) String() string {
	switch a {
	case ActionHit:
		return "Hit"
	case ActionStand:
		return "Stand"
	}

	panic(fmt.Sprintf("invalid action: %d", a))
}

// ActionFromString returns an action from a console token.
// Hit accepts h/hit/y and stand accepts s/stand/n, case-insensitive.
func ActionFromString(s string) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "h", "hit", "y":
		return ActionHit, nil
	case "s", "stand", "n":
		return ActionStand, nil
	}

	return -1, fmt.Errorf("invalid action: %s", s)
}
