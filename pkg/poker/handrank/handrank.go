// Package handrank classifies sets of five or more cards into poker hand
// categories and produces a comparable tie-break key, so any two evaluated
// hands can be totally ordered.
package handrank

import (
	"errors"
	"sort"

	"consoleholdem/pkg/deck"
)

// ErrTooFewCards is an error when fewer than five cards are evaluated
var ErrTooFewCards = errors.New("hand evaluation requires at least five cards")

// Evaluation is the result of evaluating a set of cards.
// Two evaluations are compared by category first; if the categories are
// equal, the tie-break keys are compared element-wise from the front.
type Evaluation struct {
	Category Category `json:"category"`
	// TieBreak holds every card's rank, ordered by multiplicity
	// (descending) and then by rank (descending). Two kings, two jacks
	// and an ace flatten to [13,13,11,11,14].
	TieBreak []int `json:"tieBreak"`
}

// Evaluate classifies the given cards. At least five cards are required;
// fewer is a caller error.
// The result depends only on the set of cards, not their order.
func Evaluate(cards []*deck.Card) (Evaluation, error) {
	if len(cards) < 5 {
		return Evaluation{}, ErrTooFewCards
	}

	counts := rankCounts(cards)

	return Evaluation{
		Category: classify(cards, counts),
		TieBreak: tieBreakKey(cards, counts),
	}, nil
}

// Compare returns a negative number if a is the weaker hand, a positive
// number if a is the stronger hand, and zero if the hands tie exactly.
func Compare(a, b Evaluation) int {
	if a.Category != b.Category {
		return int(a.Category) - int(b.Category)
	}

	n := len(a.TieBreak)
	if len(b.TieBreak) < n {
		n = len(b.TieBreak)
	}

	for i := 0; i < n; i++ {
		if a.TieBreak[i] != b.TieBreak[i] {
			return a.TieBreak[i] - b.TieBreak[i]
		}
	}

	return len(a.TieBreak) - len(b.TieBreak)
}

func (e Evaluation) String() string {
	return e.Category.String()
}

func rankCounts(cards []*deck.Card) map[int]int {
	counts := make(map[int]int)
	for _, card := range cards {
		counts[card.Rank]++
	}

	return counts
}

// tieBreakKey flattens every card's rank, ordered by multiplicity
// descending, then rank descending
func tieBreakKey(cards []*deck.Card, counts map[int]int) []int {
	key := make([]int, len(cards))
	for i, card := range cards {
		key[i] = card.Rank
	}

	sort.Slice(key, func(i, j int) bool {
		if counts[key[i]] != counts[key[j]] {
			return counts[key[i]] > counts[key[j]]
		}

		return key[i] > key[j]
	})

	return key
}

// hasStraight scans the distinct ranks for five consecutive values.
// The wheel (A-2-3-4-5) counts, with the ace low for this purpose only.
func hasStraight(counts map[int]int) bool {
	ranks := make([]int, 0, len(counts))
	for rank := range counts {
		ranks = append(ranks, rank)
	}

	if _, ok := counts[deck.Ace]; ok {
		ranks = append(ranks, deck.LowAce)
	}

	sort.Ints(ranks)

	run := 1
	for i := 1; i < len(ranks); i++ {
		if ranks[i] == ranks[i-1]+1 {
			run++
			if run >= 5 {
				return true
			}
		} else {
			run = 1
		}
	}

	return false
}

// hasFlush returns true if any suit appears five or more times
func hasFlush(cards []*deck.Card) bool {
	suitCounts := make(map[deck.Suit]int)
	for _, card := range cards {
		suitCounts[card.Suit]++
		if suitCounts[card.Suit] >= 5 {
			return true
		}
	}

	return false
}

// classify checks the categories from strongest to weakest and returns the
// first match. On seven-card sets several categories can be true at once
// (trips plus a pair also reads as a full house), so the order here matters.
func classify(cards []*deck.Card, counts map[int]int) Category {
	straight := hasStraight(counts)
	flush := hasFlush(cards)

	pairs, trips, quads := 0, 0, 0
	for _, count := range counts {
		switch count {
		case 4:
			quads++
		case 3:
			trips++
		case 2:
			pairs++
		}
	}

	switch {
	case straight && flush:
		return StraightFlush
	case quads > 0:
		return FourOfAKind
	// a second set of trips can serve as the pair of a full house
	case trips > 0 && (pairs > 0 || trips > 1):
		return FullHouse
	case flush:
		return Flush
	case straight:
		return Straight
	case trips > 0:
		return ThreeOfAKind
	case pairs >= 2:
		return TwoPair
	case pairs == 1:
		return OnePair
	default:
		return HighCard
	}
}
