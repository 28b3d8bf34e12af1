package blackjack

import (
	"encoding/json"
	"fmt"
)

// Outcome is the result of a settled round
type Outcome int

// Outcome constants
const (
	OutcomePending Outcome = iota
	OutcomePlayerBlackjack
	OutcomePlayerWin
	OutcomeDealerWin
	OutcomePush
	OutcomePlayerBust
	OutcomeDealerBust
)

func (o Outcome) String() string {
	switch o {
	case OutcomePending:
		return "pending"
	case OutcomePlayerBlackjack:
		return "player blackjack"
	case OutcomePlayerWin:
		return "player win"
	case OutcomeDealerWin:
		return "dealer win"
	case OutcomePush:
		return "push"
	case OutcomePlayerBust:
		return "player bust"
	case OutcomeDealerBust:
		return "dealer bust"
	}

	panic(fmt.Sprintf("invalid outcome: %d", o))
}

// MarshalJSON encodes the JSON
func (o Outcome) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}{
		ID:   int(o),
		Name: o.String(),
	})
}

// IsPlayerWin returns true if the outcome pays the player
func (o Outcome) IsPlayerWin() bool {
	switch o {
	case OutcomePlayerBlackjack, OutcomePlayerWin, OutcomeDealerBust:
		return true
	}

	return false
}

// Payout returns the amount credited back to the player for the given bet.
// A natural pays 3:2 (rounded down on odd bets), a win pays even money,
// and a push refunds the bet. The bet was already deducted when it was placed.
func (o Outcome) Payout(bet int) int {
	switch o {
	case OutcomePlayerBlackjack:
		return bet + bet*3/2
	case OutcomePlayerWin, OutcomeDealerBust:
		return bet * 2
	case OutcomePush:
		return bet
	case OutcomeDealerWin, OutcomePlayerBust:
		return 0
	}

	panic(fmt.Sprintf("no payout for outcome: %s", o))
}
