package blackjack

import (
	"encoding/json"
	"fmt"

	"blackjack-console/pkg/deck"

	"github.com/google/uuid"
)

// RoundState is the state of the current round
type RoundState string

// RoundState constants
const (
	// RoundStateDealing is before the opening cards have been dealt
	RoundStateDealing RoundState = "dealing"

	// RoundStatePlayerTurn means the player is choosing to hit or stand
	RoundStatePlayerTurn RoundState = "player-turn"

	// RoundStateDealerTurn means the dealer is drawing up to the stand threshold
	RoundStateDealerTurn RoundState = "dealer-turn"

	// RoundStateSettled means the outcome has been decided
	RoundStateSettled RoundState = "settled"
)

// Round is a single hand of blackjack from the deal through settlement
type Round struct {
	UUID       string
	State      RoundState
	PlayerHand *Hand
	DealerHand *Hand
	Bet        int
	Outcome    Outcome

	deck     *deck.Deck
	logChan  chan []*LogMessage
	credited bool
}

// NewRound returns a new round that draws from d.
// The bet has already been validated and deducted by the session; a zero bet is practice play.
func NewRound(d *deck.Deck, bet int) *Round {
	return &Round{
		UUID:       uuid.New().String(),
		State:      RoundStateDealing,
		PlayerHand: &Hand{},
		DealerHand: &Hand{},
		Bet:        bet,
		Outcome:    OutcomePending,
		deck:       d,
	}
}

// MarshalJSON provides custom JSON marshalling for round
func (r *Round) MarshalJSON() ([]byte, error) {
	return json.Marshal(roundJSON{
		UUID:           r.UUID,
		State:          r.State,
		PlayerCards:    r.PlayerHand.Cards(),
		DealerCards:    r.DealerHand.Cards(),
		Bet:            r.Bet,
		Outcome:        r.Outcome,
		CardsRemaining: r.deck.CardsLeft(),
	})
}

type roundJSON struct {
	UUID           string     `json:"uuid"`
	State          RoundState `json:"state"`
	PlayerCards    deck.Hand  `json:"playerCards"`
	DealerCards    deck.Hand  `json:"dealerCards"`
	Bet            int        `json:"bet"`
	Outcome        Outcome    `json:"outcome"`
	CardsRemaining int        `json:"cardsRemaining"`
}

// Deal gives two cards each to the player and the dealer, alternating,
// and settles immediately if either opening hand is a natural.
func (r *Round) Deal() error {
	if r.State != RoundStateDealing {
		return fmt.Errorf("cannot deal from state: %s", r.State)
	}

	for i := 0; i < 2; i++ {
		r.PlayerHand.AddCard(r.drawCard())
		r.DealerHand.AddCard(r.drawCard())
	}

	// clone so later hits don't show up in the logged deal
	r.sendLogMessage(r.PlayerHand.Cards().Clone(), "opening cards dealt")

	switch {
	case r.PlayerHand.IsBlackjack() && r.DealerHand.IsBlackjack():
		r.settle(OutcomePush)
	case r.DealerHand.IsBlackjack():
		r.settle(OutcomeDealerWin)
	case r.PlayerHand.IsBlackjack():
		r.settle(OutcomePlayerBlackjack)
	default:
		r.State = RoundStatePlayerTurn
	}

	return nil
}

// Hit draws one card into the player's hand.
// A bust settles the round immediately; the dealer does not play.
func (r *Round) Hit() (*deck.Card, error) {
	if r.State != RoundStatePlayerTurn {
		return nil, fmt.Errorf("cannot hit from state: %s", r.State)
	}

	card := r.drawCard()
	r.PlayerHand.AddCard(card)
	r.sendLogMessage(deck.Hand{card}, "player hits on %d", r.PlayerHand.Score())

	if r.PlayerHand.IsBust() {
		r.settle(OutcomePlayerBust)
	}

	return card, nil
}

// Stand ends the player's turn and plays out the dealer's hand
func (r *Round) Stand() error {
	if r.State != RoundStatePlayerTurn {
		return fmt.Errorf("cannot stand from state: %s", r.State)
	}

	r.sendLogMessage(nil, "player stands on %d", r.PlayerHand.Score())
	r.State = RoundStateDealerTurn
	r.playDealer()

	return nil
}

// playDealer must only be called from Stand()
func (r *Round) playDealer() {
	for dealerMustHit(r.DealerHand) {
		card := r.drawCard()
		r.DealerHand.AddCard(card)
		r.sendLogMessage(deck.Hand{card}, "dealer hits on %d", r.DealerHand.Score())
	}

	if r.DealerHand.IsBust() {
		r.settle(OutcomeDealerBust)
		return
	}

	playerScore, dealerScore := r.PlayerHand.Score(), r.DealerHand.Score()
	switch {
	case playerScore > dealerScore:
		r.settle(OutcomePlayerWin)
	case playerScore < dealerScore:
		r.settle(OutcomeDealerWin)
	default:
		r.settle(OutcomePush)
	}
}

// drawCard will draw a card and it should always succeed.
// If the deck is somehow exhausted mid-round, it is rebuilt as a fresh shuffled deck first.
func (r *Round) drawCard() *deck.Card {
	if !r.deck.CanDraw(1) {
		r.deck.Shuffle()
	}

	card, err := r.deck.Draw()
	if err != nil {
		panic(fmt.Sprintf("draw failed after reshuffle: %v", err))
	}

	return card
}

func (r *Round) settle(outcome Outcome) {
	r.Outcome = outcome
	r.State = RoundStateSettled
	r.sendLogMessage(nil, "round settled: %s", outcome)
}

// DealerUpCard returns the dealer's face-up card
func (r *Round) DealerUpCard() *deck.Card {
	return r.DealerHand.Cards().FirstCard()
}

// DealerHoleCardRevealed returns true once the dealer's face-down card may be shown.
// The hole card stays hidden until the dealer's turn begins or the round settles.
func (r *Round) DealerHoleCardRevealed() bool {
	switch r.State {
	case RoundStateDealerTurn, RoundStateSettled:
		return true
	}

	return false
}

func (r *Round) sendLogMessage(cards deck.Hand, format string, a ...interface{}) {
	if r.logChan == nil {
		return
	}

	r.logChan <- []*LogMessage{newLogMessage(cards, format, a...)}
}
