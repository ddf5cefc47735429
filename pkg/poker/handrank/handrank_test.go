package handrank

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"consoleholdem/pkg/deck"
)

func mustEvaluate(t *testing.T, cards string) Evaluation {
	t.Helper()

	ev, err := Evaluate(deck.CardsFromString(cards))
	assert.NoError(t, err)
	return ev
}

func TestEvaluate_categories(t *testing.T) {
	assertCategory := func(t *testing.T, expected Category, cards string) {
		t.Helper()
		assert.Equal(t, expected, mustEvaluate(t, cards).Category, cards)
	}

	assertCategory(t, HighCard, "2c,4d,6h,8s,10c")
	assertCategory(t, OnePair, "2c,2d,6h,8s,10c")
	assertCategory(t, TwoPair, "2c,2d,8h,8s,10c")
	assertCategory(t, ThreeOfAKind, "2c,2d,2h,8s,10c")
	assertCategory(t, Straight, "4c,5d,6h,7s,8c")
	assertCategory(t, Flush, "2c,5c,9c,11c,13c")
	assertCategory(t, FullHouse, "2c,2d,2h,10s,10c")
	assertCategory(t, FourOfAKind, "2c,2d,2h,2s,10c")
	assertCategory(t, StraightFlush, "4c,5c,6c,7c,8c")

	// seven-card sets
	assertCategory(t, TwoPair, "2c,2d,5h,5s,9c,9d,13h")
	assertCategory(t, ThreeOfAKind, "3c,3d,3h,5c,6d,9s,11d")
	assertCategory(t, Flush, "2h,5h,9h,11h,13h,3c,4d")
	assertCategory(t, Straight, "4c,5d,6h,7s,8c,8d,13h")
}

func TestEvaluate_wheelStraight(t *testing.T) {
	a := assert.New(t)

	ev := mustEvaluate(t, "14h,2s,3d,4c,5h")
	a.Equal(Straight, ev.Category)

	high := mustEvaluate(t, "14h,13s,9d,4c,5h")
	a.Positive(Compare(ev, high), "wheel straight beats high card")

	flush := mustEvaluate(t, "2c,5c,9c,11c,13c")
	a.Negative(Compare(ev, flush), "any flush beats the wheel")
}

func TestEvaluate_quadsBeatFullHouse(t *testing.T) {
	quads := mustEvaluate(t, "13h,13d,13s,13c,2h")
	boat := mustEvaluate(t, "13h,13d,13s,7c,7h")

	assert.Equal(t, FourOfAKind, quads.Category)
	assert.Equal(t, FullHouse, boat.Category)
	assert.Positive(t, Compare(quads, boat))
}

func TestEvaluate_fullHouseFromMultiplicities(t *testing.T) {
	a := assert.New(t)

	// six distinct ranks in seven cards: trips plus a separate pair
	a.Equal(FullHouse, mustEvaluate(t, "3c,3d,3h,5c,5d,9s,11d").Category)

	// two sets of trips count as a full house
	a.Equal(FullHouse, mustEvaluate(t, "3c,3d,3h,4c,4d,4h,5c").Category)

	// trips with all-distinct kickers are not a full house
	a.Equal(ThreeOfAKind, mustEvaluate(t, "3c,3d,3h,4c,6d,9s,11d").Category)
}

func TestEvaluate_tieBreakKey(t *testing.T) {
	ev := mustEvaluate(t, "13h,13s,11c,11d,14h")
	assert.Equal(t, TwoPair, ev.Category)
	assert.Equal(t, []int{13, 13, 11, 11, 14}, ev.TieBreak)

	// pairs before higher-ranked singles, then singles by rank
	ev = mustEvaluate(t, "2c,2d,5h,5s,9c,9d,13h")
	assert.Equal(t, []int{9, 9, 5, 5, 2, 2, 13}, ev.TieBreak)
}

func TestEvaluate_orderIndependent(t *testing.T) {
	a := assert.New(t)

	cards := deck.CardsFromString("13h,13s,11c,11d,14h,2s,7d")
	expected, err := Evaluate(cards)
	a.NoError(err)

	r := rand.New(rand.NewSource(1))
	for i := 0; i < 25; i++ {
		shuffled := make([]*deck.Card, len(cards))
		copy(shuffled, cards)
		r.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})

		ev, err := Evaluate(shuffled)
		a.NoError(err)
		a.Equal(expected, ev)
	}
}

func TestEvaluate_idempotent(t *testing.T) {
	cards := deck.CardsFromString("4c,5d,6h,7s,8c,8d,13h")

	first, err := Evaluate(cards)
	assert.NoError(t, err)

	second, err := Evaluate(cards)
	assert.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestEvaluate_tooFewCards(t *testing.T) {
	_, err := Evaluate(deck.CardsFromString("2c,3c,4c,5c"))
	assert.Equal(t, ErrTooFewCards, err)

	_, err = Evaluate(nil)
	assert.Equal(t, ErrTooFewCards, err)
}

func TestCompare(t *testing.T) {
	a := assert.New(t)

	// category dominates kickers
	pairAces := mustEvaluate(t, "14h,14s,2c,3d,4h")
	kingHigh := mustEvaluate(t, "13h,12s,10c,8d,4h")
	a.Positive(Compare(pairAces, kingHigh))
	a.Negative(Compare(kingHigh, pairAces))

	// same category decided by the key, most significant rank first
	pairKings := mustEvaluate(t, "13h,13s,14c,3d,4h")
	a.Positive(Compare(pairAces, pairKings))

	// same pair decided by kickers
	betterKicker := mustEvaluate(t, "13c,13d,14c,3s,5h")
	a.Positive(Compare(betterKicker, pairKings))

	// identical ranks tie exactly
	tied := mustEvaluate(t, "13c,13d,14d,3c,4s")
	a.Zero(Compare(tied, pairKings))
}

func TestCategory_String(t *testing.T) {
	assert.Equal(t, "High card", HighCard.String())
	assert.Equal(t, "Straight flush", StraightFlush.String())
	assert.Equal(t, "Full house", FullHouse.String())

	assert.Panics(t, func() {
		_ = Category(99).String()
	})
}
