// Package holdem implements a single-table, turn-based game of no-limit
// Texas Hold'em: blinds, hole cards, four betting streets, showdown and
// pot settlement. Player decisions come from an ActionProvider; the
// engine emits Events that observers may render. All state is in-memory
// and owned by the Table for the duration of a hand.
package holdem

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"consoleholdem/pkg/deck"
)

// Table is a single hold'em table. Tables are independent of each other;
// any number can exist in one process.
type Table struct {
	id        uuid.UUID
	options   Options
	seats     []*Seat
	deck      *deck.Deck
	community deck.Hand
	pot       int
	button    int
	handNum   int

	logger    logrus.FieldLogger
	provider  ActionProvider
	observers []Observer

	// newDeck builds the deck for each hand; replaced in tests for
	// deterministic deals
	newDeck func() *deck.Deck
}

// NewTable creates a table seating the named players, each with the
// starting stack from opts.
func NewTable(logger logrus.FieldLogger, provider ActionProvider, opts Options, names []string) (*Table, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}

	if len(names) < MinSeats || len(names) > MaxSeats {
		return nil, fmt.Errorf("table requires between %d and %d players, got %d", MinSeats, MaxSeats, len(names))
	}

	if provider == nil {
		return nil, errors.New("an action provider is required")
	}

	seats := make([]*Seat, len(names))
	for i, name := range names {
		seats[i] = newSeat(name, opts.StartingStack)
	}

	id := uuid.New()

	return &Table{
		id:       id,
		options:  opts,
		seats:    seats,
		logger:   logger.WithField("table", id.String()),
		provider: provider,
		newDeck: func() *deck.Deck {
			d := deck.New()
			d.Shuffle()
			return d
		},
	}, nil
}

// ID returns the table's unique identifier
func (t *Table) ID() uuid.UUID {
	return t.id
}

// Seats returns the seats in table order
func (t *Table) Seats() []*Seat {
	seats := make([]*Seat, len(t.seats))
	copy(seats, t.seats)
	return seats
}

// Pot returns the chips in the pot
func (t *Table) Pot() int {
	return t.pot
}

// Community returns the revealed community cards
func (t *Table) Community() deck.Hand {
	return t.community.Clone()
}

// HandNum returns the number of the most recent hand, starting at 1
func (t *Table) HandNum() int {
	return t.handNum
}

// AddObserver registers an observer for table events
func (t *Table) AddObserver(o Observer) {
	t.observers = append(t.observers, o)
}

func (t *Table) emit(event Event) {
	for _, o := range t.observers {
		o.Notify(event)
	}
}

// PlayersWithChips returns how many seats can still post a big blind
func (t *Table) PlayersWithChips() int {
	n := 0
	for _, s := range t.seats {
		if s.Stack >= t.options.BigBlind {
			n++
		}
	}

	return n
}

// PlayHand plays one complete hand: blinds, hole cards, the four betting
// streets, showdown and settlement. Stacks carry over and the button
// rotates afterwards. Seats that cannot post a big blind sit the hand out.
func (t *Table) PlayHand() (*HandResult, error) {
	playing := 0
	for _, s := range t.seats {
		in := s.Stack >= t.options.BigBlind
		s.resetForHand(in)
		if in {
			playing++
		}
	}

	if playing < 2 {
		return nil, ErrNotEnoughPlayers
	}

	t.handNum++
	t.community = make(deck.Hand, 0, 5)
	t.pot = 0
	t.deck = t.newDeck()

	// the button must rest on a seat that is dealt in
	if !t.seats[t.button].inHand {
		t.button = t.nextActiveSeat(t.button)
	}

	names := make([]string, 0, playing)
	for _, s := range t.seats {
		if s.inHand {
			names = append(names, s.Name)
		}
	}

	t.logger.WithFields(logrus.Fields{
		"hand":    t.handNum,
		"button":  t.seats[t.button].Name,
		"playing": playing,
	}).Info("hand started")

	t.emit(HandStarted{
		TableID: t.id.String(),
		HandNum: t.handNum,
		Button:  t.seats[t.button].Name,
		Players: names,
	})

	sb, bb, err := t.postBlinds()
	if err != nil {
		return nil, err
	}

	if err := t.dealHoleCards(sb); err != nil {
		return nil, err
	}

	// pre-flop action opens after the big blind, against the big blind
	round := newBettingRound(t, PreFlop, t.nextActiveSeat(bb), t.options.BigBlind)
	if err := round.run(); err != nil {
		return nil, err
	}

	for _, street := range []Street{Flop, Turn, River} {
		if t.activeSeatCount() <= 1 {
			break
		}

		if err := t.dealStreet(street); err != nil {
			return nil, err
		}

		for _, s := range t.seats {
			s.resetForStreet()
		}

		round = newBettingRound(t, street, t.nextActiveSeat(t.button), 0)
		if err := round.run(); err != nil {
			return nil, err
		}
	}

	result, err := t.settle()
	if err != nil {
		return nil, err
	}

	stacks := make(map[string]int, len(t.seats))
	for _, s := range t.seats {
		stacks[s.Name] = s.Stack
	}

	t.emit(HandFinished{
		HandNum: t.handNum,
		Stacks:  stacks,
	})

	t.button = (t.button + 1) % len(t.seats)

	return result, nil
}

// postBlinds places the small and big blinds and returns both seat indices.
// Heads-up, the button posts the small blind.
func (t *Table) postBlinds() (int, int, error) {
	var sb int
	if t.activeSeatCount() == 2 {
		sb = t.button
	} else {
		sb = t.nextActiveSeat(t.button)
	}
	bb := t.nextActiveSeat(sb)

	small, big := t.seats[sb], t.seats[bb]

	if err := small.placeBet(t.options.SmallBlind); err != nil {
		return 0, 0, fmt.Errorf("post small blind: %w", err)
	}
	small.smallBlind = true
	t.pot += t.options.SmallBlind

	t.emit(BlindPosted{Seat: small.Name, Amount: t.options.SmallBlind})

	if err := big.placeBet(t.options.BigBlind); err != nil {
		return 0, 0, fmt.Errorf("post big blind: %w", err)
	}
	big.bigBlind = true
	t.pot += t.options.BigBlind

	t.emit(BlindPosted{Seat: big.Name, Amount: t.options.BigBlind, Big: true})

	return sb, bb, nil
}

// dealHoleCards deals two cards to each seat in the hand, one at a time,
// starting with the small blind
func (t *Table) dealHoleCards(sb int) error {
	order := t.activeSeatsFrom(sb)

	for i := 0; i < 2; i++ {
		for _, idx := range order {
			card, err := t.deck.Draw()
			if err != nil {
				return fmt.Errorf("deal hole card: %w", err)
			}

			t.seats[idx].holeCards.AddCard(card)
		}
	}

	for _, idx := range order {
		seat := t.seats[idx]
		t.emit(HoleCardsDealt{
			Seat:  seat.Name,
			Cards: seat.HoleCards(),
		})
	}

	return nil
}

// dealStreet burns a card and reveals the flop, turn, or river
func (t *Table) dealStreet(street Street) error {
	if _, err := t.deck.Draw(); err != nil {
		return fmt.Errorf("burn before %s: %w", street, err)
	}

	n := 1
	if street == Flop {
		n = 3
	}

	for i := 0; i < n; i++ {
		card, err := t.deck.Draw()
		if err != nil {
			return fmt.Errorf("deal %s: %w", street, err)
		}

		t.community.AddCard(card)
	}

	t.logger.WithFields(logrus.Fields{
		"hand":      t.handNum,
		"street":    street.String(),
		"community": t.community.String(),
	}).Info("street dealt")

	t.emit(StreetDealt{
		Street:    street,
		Community: t.community.Clone(),
	})

	return nil
}

func (t *Table) activeSeatCount() int {
	n := 0
	for _, s := range t.seats {
		if s.active() {
			n++
		}
	}

	return n
}

// nextActiveSeat returns the next in-hand, non-folded seat after from,
// wrapping circularly. Having no active seat at all is an engine bug.
func (t *Table) nextActiveSeat(from int) int {
	n := len(t.seats)
	for i := 1; i <= n; i++ {
		idx := (from + i) % n
		if t.seats[idx].active() {
			return idx
		}
	}

	panic("no active seats")
}

// activeSeatsFrom returns the active seat indices in table order, starting
// at start (inclusive, if active)
func (t *Table) activeSeatsFrom(start int) []int {
	n := len(t.seats)
	order := make([]int, 0, n)
	for i := 0; i < n; i++ {
		idx := (start + i) % n
		if t.seats[idx].active() {
			order = append(order, idx)
		}
	}

	return order
}
