package blackjack

import "errors"

// ErrInsufficientFunds is an error when a bet exceeds the player's balance
var ErrInsufficientFunds = errors.New("bet exceeds balance")

// ErrInvalidBet is an error when a bet is zero, negative, or below the table minimum
var ErrInvalidBet = errors.New("invalid bet")

// ErrRoundInProgress is an error when a new round is started before the current one settles
var ErrRoundInProgress = errors.New("round is in progress")

// ErrNoActiveRound is an error when a settlement is attempted with no round in play
var ErrNoActiveRound = errors.New("no active round")

// ErrRoundAlreadySettled is an error when a round's payout is collected twice
var ErrRoundAlreadySettled = errors.New("round has already been settled")
