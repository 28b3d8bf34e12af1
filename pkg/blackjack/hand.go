package blackjack

import (
	"blackjack-console/pkg/deck"
)

// target is the score a hand must not exceed
const target = 21

// Hand is the set of cards held by one participant during a single round
type Hand struct {
	cards deck.Hand
}

// AddCard appends a card to the hand
func (h *Hand) AddCard(card *deck.Card) {
	h.cards.AddCard(card)
}

// Cards returns the cards in the order they were dealt
func (h *Hand) Cards() deck.Hand {
	return h.cards
}

// baseValue returns the card's value before any ace adjustment.
// Face cards are 10 and the ace starts at 11.
func baseValue(card *deck.Card) int {
	switch {
	case card.Rank == deck.Ace:
		return 11
	case card.Rank >= deck.Jack:
		return 10
	}

	return card.Rank
}

// value returns the hand's best score along with the number of aces still counted as 11
func (h *Hand) value() (score, softAces int) {
	for _, card := range h.cards {
		score += baseValue(card)
		if card.Rank == deck.Ace {
			softAces++
		}
	}

	for score > target && softAces > 0 {
		score -= 10
		softAces--
	}

	return score, softAces
}

// Score returns the best blackjack score for the hand.
// Aces count as 11 until the total exceeds 21; each is then recounted as 1, one at a time.
func (h *Hand) Score() int {
	score, _ := h.value()
	return score
}

// IsSoft returns true if the hand contains an ace still counted as 11
func (h *Hand) IsSoft() bool {
	_, softAces := h.value()
	return softAces > 0
}

// IsBust returns true if the hand's score exceeds 21
func (h *Hand) IsBust() bool {
	return h.Score() > target
}

// IsBlackjack returns true for a natural: exactly two cards scoring 21
func (h *Hand) IsBlackjack() bool {
	return len(h.cards) == 2 && h.Score() == target
}

func (h *Hand) String() string {
	return h.cards.String()
}
