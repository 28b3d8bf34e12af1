package blackjack

// dealerStand is the score at which the dealer stops drawing
const dealerStand = 17

// dealerMustHit returns true while the dealer is required to draw another card.
// The dealer hits 16 and below and stands on 17 and above; soft 17 is not treated specially.
func dealerMustHit(hand *Hand) bool {
	return hand.Score() < dealerStand
}
