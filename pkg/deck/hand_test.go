package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHand_AddCard(t *testing.T) {
	a := assert.New(t)

	hand := Hand{}
	a.Nil(hand.FirstCard())

	hand.AddCard(CardFromString("14s"))
	hand.AddCard(CardFromString("13h"))
	hand.AddCard(CardFromString("2c"))

	a.Equal(3, len(hand))
	a.True(hand.FirstCard().Equal(CardFromString("14s")))
	a.Equal("14s,13h,2c", hand.String())
}

func TestHand_Clone(t *testing.T) {
	a := assert.New(t)

	hand := Hand(CardsFromString("14s,13h"))
	clone := hand.Clone()
	a.Equal(hand.String(), clone.String())

	clone.AddCard(CardFromString("2c"))
	a.Equal(2, len(hand))
	a.Equal(3, len(clone))
}
