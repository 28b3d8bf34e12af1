package console

import (
	"testing"

	"blackjack-console/pkg/blackjack"
	"blackjack-console/pkg/deck"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func handFromString(s string) *blackjack.Hand {
	h := &blackjack.Hand{}
	for _, card := range deck.CardsFromString(s) {
		h.AddCard(card)
	}

	return h
}

func TestFormatHand(t *testing.T) {
	a := assert.New(t)

	a.Equal("A♠ K♡ (21)", formatHand(handFromString("14s,13h")))
	a.Equal("A♠ 6♡ (soft 17)", formatHand(handFromString("14s,6h")))
	a.Equal("10♣ 5♢ 9♠ (24)", formatHand(handFromString("10c,5d,9s")))
}

func TestFormatDealerHand(t *testing.T) {
	a := assert.New(t)

	d := deck.New()
	d.Cards = deck.CardsFromString("10c,7h,8s,10d")
	round := blackjack.NewRound(d, 0)
	require.NoError(t, round.Deal())

	a.Equal("7♡ ?? (?)", formatDealerHand(round))

	require.NoError(t, round.Stand())
	a.Equal("7♡ 10♢ (17)", formatDealerHand(round))
}

func TestOutcomeBanner(t *testing.T) {
	a := assert.New(t)

	a.Equal("🎉 Blackjack! You win!", outcomeBanner(blackjack.OutcomePlayerBlackjack))
	a.Equal("💥 Bust! You lose.", outcomeBanner(blackjack.OutcomePlayerBust))
	a.Equal("It's a push! Your bet is returned.", outcomeBanner(blackjack.OutcomePush))

	a.Panics(func() {
		_ = outcomeBanner(blackjack.OutcomePending)
	})
}
