package blackjack

import (
	"encoding/json"
	"errors"
	"fmt"

	"blackjack-console/pkg/deck"

	"github.com/sirupsen/logrus"
)

// reshuffleBelow is the card count at which the deck is rebuilt before a new round
const reshuffleBelow = 10

// Options configures a Session
type Options struct {
	// StartingBalance is the player's bankroll at session start
	StartingBalance int

	// MinBet is the smallest accepted wager. Zero means a ${1} minimum.
	MinBet int

	// Seed makes the shuffle deterministic when non-zero
	Seed int64
}

// Session is a run of consecutive blackjack rounds played against a single bankroll.
// The balance lives in memory only and is reset only by creating a new session.
type Session struct {
	balance int
	minBet  int
	deck    *deck.Deck
	rounds  []*Round
	logChan chan []*LogMessage
	logger  logrus.FieldLogger

	handsPlayed int
	wins        int
	losses      int
	pushes      int
}

// Stats are the session tallies reported when the player walks away
type Stats struct {
	HandsPlayed int
	Wins        int
	Losses      int
	Pushes      int
	Balance     int
}

// NewSession returns a new session with a freshly shuffled deck
func NewSession(logger logrus.FieldLogger, opts Options) (*Session, error) {
	if opts.StartingBalance <= 0 {
		return nil, errors.New("starting balance must be > 0")
	}

	if opts.MinBet < 0 {
		return nil, errors.New("minimum bet cannot be negative")
	}

	if opts.MinBet == 0 {
		opts.MinBet = 1
	}

	if logger == nil {
		logger = logrus.StandardLogger()
	}

	d := deck.New()
	if opts.Seed != 0 {
		d.SetSeed(opts.Seed)
	}
	d.Shuffle()

	return &Session{
		balance: opts.StartingBalance,
		minBet:  opts.MinBet,
		deck:    d,
		logChan: make(chan []*LogMessage, 256),
		logger:  logger,
	}, nil
}

// Balance returns the player's current balance
func (s *Session) Balance() int {
	return s.balance
}

// MinBet returns the table minimum
func (s *Session) MinBet() int {
	return s.minBet
}

// PlaceBet validates the wager, deducts it from the balance, and deals a new round.
// On failure the balance is unchanged.
func (s *Session) PlaceBet(amount int) (*Round, error) {
	if r := s.currentRound(); r != nil && r.State != RoundStateSettled {
		return nil, ErrRoundInProgress
	}

	if amount <= 0 || amount < s.minBet {
		return nil, ErrInvalidBet
	}

	if amount > s.balance {
		return nil, ErrInsufficientFunds
	}

	s.balance -= amount
	s.logger.WithFields(logrus.Fields{
		"bet":     amount,
		"balance": s.balance,
	}).Debug("bet placed")

	return s.deal(amount)
}

// Deal begins a round without a wager (practice play)
func (s *Session) Deal() (*Round, error) {
	if r := s.currentRound(); r != nil && r.State != RoundStateSettled {
		return nil, ErrRoundInProgress
	}

	return s.deal(0)
}

// deal assumes the bet was already validated and deducted
func (s *Session) deal(bet int) (*Round, error) {
	if s.deck.CardsLeft() < reshuffleBelow {
		s.deck.Shuffle()
		s.logger.Debug("deck reshuffled")
	}

	round := NewRound(s.deck, bet)
	round.logChan = s.logChan
	s.rounds = append(s.rounds, round)

	if err := round.Deal(); err != nil {
		return nil, err
	}

	return round, nil
}

// Settle credits the payout for the settled round and updates the session tallies.
// It returns the round's outcome and the amount credited.
func (s *Session) Settle() (Outcome, int, error) {
	round := s.currentRound()
	if round == nil {
		return OutcomePending, 0, ErrNoActiveRound
	}

	if round.State != RoundStateSettled {
		return OutcomePending, 0, fmt.Errorf("cannot settle from state: %s", round.State)
	}

	if round.credited {
		return OutcomePending, 0, ErrRoundAlreadySettled
	}

	payout := round.Outcome.Payout(round.Bet)
	s.balance += payout
	round.credited = true

	s.handsPlayed++
	switch {
	case round.Outcome.IsPlayerWin():
		s.wins++
	case round.Outcome == OutcomePush:
		s.pushes++
	default:
		s.losses++
	}

	serialized, _ := json.Marshal(round)
	s.logger.WithFields(logrus.Fields{
		"round":   string(serialized),
		"outcome": round.Outcome.String(),
		"payout":  payout,
		"balance": s.balance,
	}).Debug("round settled")

	return round.Outcome, payout, nil
}

// GameOver returns true once the player can no longer cover the table minimum.
// A balance above zero but below the minimum would otherwise reject every
// possible bet and leave the session stuck.
func (s *Session) GameOver() bool {
	if r := s.currentRound(); r != nil && r.State != RoundStateSettled {
		return false
	}

	return s.balance < s.minBet
}

// Stats returns the session tallies
func (s *Session) Stats() Stats {
	return Stats{
		HandsPlayed: s.handsPlayed,
		Wins:        s.wins,
		Losses:      s.losses,
		Pushes:      s.pushes,
		Balance:     s.balance,
	}
}

// LogChan returns the channel the session's rounds send game events to
func (s *Session) LogChan() <-chan []*LogMessage {
	return s.logChan
}

func (s *Session) currentRound() *Round {
	if len(s.rounds) == 0 {
		return nil
	}

	return s.rounds[len(s.rounds)-1]
}
