package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_constants(t *testing.T) {
	assert.Equal(t, 11, Jack)
	assert.Equal(t, 12, Queen)
	assert.Equal(t, 13, King)
	assert.Equal(t, 14, Ace)
	assert.Equal(t, 1, LowAce)
}

func TestCard_String(t *testing.T) {
	card := Card{
		Rank: 2,
		Suit: Hearts,
	}

	assert.Equal(t, "2♥", card.String())

	card = Card{
		Rank: 11,
		Suit: Clubs,
	}

	assert.Equal(t, "J♣", card.String())

	card = Card{
		Rank: 12,
		Suit: Diamonds,
	}

	assert.Equal(t, "Q♦", card.String())

	card = Card{
		Rank: 13,
		Suit: Spades,
	}

	assert.Equal(t, "K♠", card.String())

	card = Card{
		Rank: 14,
		Suit: Spades,
	}

	assert.Equal(t, "A♠", card.String())
}

func TestCard_Equal(t *testing.T) {
	assert.True(t, CardFromString("3c").Equal(CardFromString("3c")))
	assert.False(t, CardFromString("3c").Equal(CardFromString("3s")))
	assert.False(t, CardFromString("3c").Equal(CardFromString("4c")))
}

func TestCard_AceLowRank(t *testing.T) {
	assert.Equal(t, 1, CardFromString("14s").AceLowRank())
	assert.Equal(t, 13, CardFromString("13s").AceLowRank())
	assert.Equal(t, 2, CardFromString("2s").AceLowRank())
}

func TestCardFromString(t *testing.T) {
	a := assert.New(t)

	a.Equal(Card{Rank: 2, Suit: Clubs}, *CardFromString("2c"))
	a.Equal(Card{Rank: 14, Suit: Spades}, *CardFromString("14s"))
	a.Equal(Card{Rank: 10, Suit: Hearts}, *CardFromString("10h"))
	a.Nil(CardFromString(""))

	a.Panics(func() {
		CardFromString("15h")
	})

	a.Panics(func() {
		CardFromString("2x")
	})
}

func TestCardsToString(t *testing.T) {
	cards := CardsFromString("2c,3h,14s")
	assert.Equal(t, "2c,3h,14s", CardsToString(cards))
	assert.Equal(t, "", CardsToString(nil))
}
