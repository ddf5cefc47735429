package holdem

import (
	"fmt"

	"consoleholdem/pkg/deck"
)

// Seat represents a single player at the table. The stack persists across
// hands; everything else is reset when a new hand starts.
type Seat struct {
	Name  string
	Stack int

	holeCards  deck.Hand
	bet        int // chips committed on the current street
	inHand     bool
	folded     bool
	smallBlind bool
	bigBlind   bool
}

func newSeat(name string, stack int) *Seat {
	return &Seat{
		Name:  name,
		Stack: stack,
	}
}

// HoleCards returns the seat's hole cards
func (s *Seat) HoleCards() deck.Hand {
	return s.holeCards.Clone()
}

// Folded returns true if the seat folded this hand
func (s *Seat) Folded() bool {
	return s.folded
}

// InHand returns true if the seat was dealt into the current hand
func (s *Seat) InHand() bool {
	return s.inHand
}

// active reports whether the seat may still act this hand
func (s *Seat) active() bool {
	return s.inHand && !s.folded
}

// placeBet moves amount from the stack to the seat's street bet. The sum
// of stack and bet is conserved; chips are never created or destroyed here.
func (s *Seat) placeBet(amount int) error {
	if amount < 0 {
		return fmt.Errorf("bet must not be negative: %d", amount)
	}

	if amount > s.Stack {
		return ErrInsufficientChips
	}

	s.Stack -= amount
	s.bet += amount
	return nil
}

// resetForHand prepares the seat for a new hand. inHand indicates whether
// the seat is dealt in (it may be sitting out with a short stack).
func (s *Seat) resetForHand(inHand bool) {
	s.holeCards = nil
	s.bet = 0
	s.inHand = inHand
	s.folded = false
	s.smallBlind = false
	s.bigBlind = false
}

// resetForStreet clears the per-street bet
func (s *Seat) resetForStreet() {
	s.bet = 0
}
