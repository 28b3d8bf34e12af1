package console

import (
	"fmt"
	"strings"

	"blackjack-console/pkg/blackjack"
)

// hiddenCard is the placeholder for the dealer's hole card
const hiddenCard = "??"

func formatCards(hand *blackjack.Hand) string {
	cards := hand.Cards()
	parts := make([]string, len(cards))
	for i, card := range cards {
		parts[i] = card.String()
	}

	return strings.Join(parts, " ")
}

// formatHand renders the cards with the score, marking soft hands
func formatHand(hand *blackjack.Hand) string {
	if hand.IsSoft() {
		return fmt.Sprintf("%s (soft %d)", formatCards(hand), hand.Score())
	}

	return fmt.Sprintf("%s (%d)", formatCards(hand), hand.Score())
}

// formatDealerHand hides the hole card until the dealer's turn or the round's end
func formatDealerHand(round *blackjack.Round) string {
	if round.DealerHoleCardRevealed() {
		return formatHand(round.DealerHand)
	}

	return fmt.Sprintf("%s %s (?)", round.DealerUpCard(), hiddenCard)
}

func outcomeBanner(outcome blackjack.Outcome) string {
	switch outcome {
	case blackjack.OutcomePlayerBlackjack:
		return "🎉 Blackjack! You win!"
	case blackjack.OutcomePlayerWin:
		return "🎉 You win!"
	case blackjack.OutcomeDealerBust:
		return "🎉 Dealer busts! You win!"
	case blackjack.OutcomeDealerWin:
		return "Dealer wins. You lose."
	case blackjack.OutcomePlayerBust:
		return "💥 Bust! You lose."
	case blackjack.OutcomePush:
		return "It's a push! Your bet is returned."
	}

	panic(fmt.Sprintf("no banner for outcome: %s", outcome))
}
