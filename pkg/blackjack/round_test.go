package blackjack

import (
	"testing"

	"blackjack-console/pkg/deck"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestRound returns a round drawing from a stacked deck.
// Cards are dealt player, dealer, player, dealer.
func newTestRound(t *testing.T, cards string, bet int) *Round {
	t.Helper()

	d := deck.New()
	d.Cards = deck.CardsFromString(cards)

	return NewRound(d, bet)
}

func TestRound_Deal_playerBlackjack(t *testing.T) {
	a := assert.New(t)

	r := newTestRound(t, "14c,7h,13s,9d", 100)
	a.Equal(RoundStateDealing, r.State)
	a.False(r.DealerHoleCardRevealed())

	require.NoError(t, r.Deal())

	a.Equal(RoundStateSettled, r.State)
	a.Equal(OutcomePlayerBlackjack, r.Outcome)
	a.Equal(21, r.PlayerHand.Score())
	a.Equal(16, r.DealerHand.Score())
	// the dealer never plays against a natural
	a.Len(r.DealerHand.Cards(), 2)
	a.True(r.DealerHoleCardRevealed())
}

func TestRound_Deal_bothNaturalsPush(t *testing.T) {
	a := assert.New(t)

	r := newTestRound(t, "14c,13h,13s,14d", 100)
	require.NoError(t, r.Deal())

	a.Equal(OutcomePush, r.Outcome)
	a.Equal(RoundStateSettled, r.State)
}

func TestRound_Deal_dealerNatural(t *testing.T) {
	a := assert.New(t)

	r := newTestRound(t, "10c,14h,9s,13d", 100)
	require.NoError(t, r.Deal())

	a.Equal(OutcomeDealerWin, r.Outcome)
	a.Equal(19, r.PlayerHand.Score())
	a.Equal(21, r.DealerHand.Score())
}

func TestRound_Hit_bust(t *testing.T) {
	a := assert.New(t)

	r := newTestRound(t, "10c,2h,6s,3h,10d", 100)
	require.NoError(t, r.Deal())
	a.Equal(RoundStatePlayerTurn, r.State)
	a.False(r.DealerHoleCardRevealed())

	card, err := r.Hit()
	a.NoError(err)
	a.Equal(10, card.Rank)

	a.Equal(OutcomePlayerBust, r.Outcome)
	a.Equal(RoundStateSettled, r.State)
	a.True(r.DealerHoleCardRevealed())
	// the dealer does not play after a player bust
	a.Len(r.DealerHand.Cards(), 2)
}

func TestRound_Stand_dealerBusts(t *testing.T) {
	a := assert.New(t)

	r := newTestRound(t, "13c,7h,9s,9d,6h", 100)
	require.NoError(t, r.Deal())

	require.NoError(t, r.Stand())

	a.Equal(OutcomeDealerBust, r.Outcome)
	a.Equal(22, r.DealerHand.Score())
	a.Len(r.DealerHand.Cards(), 3)
}

func TestRound_Stand_scoreComparison(t *testing.T) {
	a := assert.New(t)

	// dealer 19 beats player 18
	r := newTestRound(t, "10c,10h,8s,9d", 100)
	require.NoError(t, r.Deal())
	require.NoError(t, r.Stand())
	a.Equal(OutcomeDealerWin, r.Outcome)

	// player 20 beats dealer 17
	r = newTestRound(t, "10c,10h,13s,7d", 100)
	require.NoError(t, r.Deal())
	require.NoError(t, r.Stand())
	a.Equal(OutcomePlayerWin, r.Outcome)

	// equal scores push
	r = newTestRound(t, "10c,10h,9s,9d", 100)
	require.NoError(t, r.Deal())
	require.NoError(t, r.Stand())
	a.Equal(OutcomePush, r.Outcome)
}

func TestRound_dealerDrawsToStand(t *testing.T) {
	a := assert.New(t)

	// dealer starts on 5 and draws 2c,3c,4c,5c to reach 19
	r := newTestRound(t, "10c,2h,13s,3d,2c,3c,4c,5c", 100)
	require.NoError(t, r.Deal())
	require.NoError(t, r.Stand())

	a.Equal(19, r.DealerHand.Score())
	a.Equal(OutcomePlayerWin, r.Outcome)
	a.Len(r.DealerHand.Cards(), 6)
}

func TestRound_invalidTransitions(t *testing.T) {
	a := assert.New(t)

	r := newTestRound(t, "10c,10h,8s,9d", 100)

	_, err := r.Hit()
	a.EqualError(err, "cannot hit from state: dealing")
	a.EqualError(r.Stand(), "cannot stand from state: dealing")

	require.NoError(t, r.Deal())
	a.EqualError(r.Deal(), "cannot deal from state: player-turn")

	require.NoError(t, r.Stand())
	_, err = r.Hit()
	a.EqualError(err, "cannot hit from state: settled")
	a.EqualError(r.Stand(), "cannot stand from state: settled")
	a.EqualError(r.Deal(), "cannot deal from state: settled")
}

func TestRound_drawCardReshufflesExhaustedDeck(t *testing.T) {
	a := assert.New(t)

	d := deck.New()
	d.SetSeed(42)
	d.Cards = deck.CardsFromString("2c,3c,4c")

	r := NewRound(d, 100)
	require.NoError(t, r.Deal())

	a.Len(r.PlayerHand.Cards(), 2)
	a.Len(r.DealerHand.Cards(), 2)
	// three stacked cards were dealt, then a fresh deck supplied the fourth
	a.Equal(51, d.CardsLeft())
}

func TestRound_logMessages(t *testing.T) {
	a := assert.New(t)

	r := newTestRound(t, "10c,10h,8s,9d", 100)
	r.logChan = make(chan []*LogMessage, 256)

	require.NoError(t, r.Deal())
	require.NoError(t, r.Stand())

	var messages []*LogMessage
drain:
	for {
		select {
		case batch := <-r.logChan:
			messages = append(messages, batch...)
		default:
			break drain
		}
	}

	require.NotEmpty(t, messages)
	for _, m := range messages {
		a.NotEmpty(m.UUID)
		a.NotEmpty(m.Message)
		a.False(m.Time.IsZero())
	}

	a.Equal("player stands on 18", messages[1].Message)
	a.Equal("round settled: dealer win", messages[2].Message)
}

func TestRound_MarshalJSON(t *testing.T) {
	r := newTestRound(t, "14c,7h,13s,9d", 100)
	require.NoError(t, r.Deal())

	data, err := r.MarshalJSON()
	require.NoError(t, err)
	assert.Contains(t, string(data), `"state":"settled"`)
	assert.Contains(t, string(data), `"name":"player blackjack"`)
}
