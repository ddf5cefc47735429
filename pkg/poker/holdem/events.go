package holdem

import (
	"consoleholdem/pkg/deck"
	"consoleholdem/pkg/poker/action"
)

// Event is a one-way notification emitted by the engine. Observers render;
// they never influence the game.
type Event interface {
	EventName() string
}

// Observer receives every event emitted by a table
type Observer interface {
	Notify(event Event)
}

// HandStarted represents the event when a new hand begins.
type HandStarted struct {
	TableID string
	HandNum int
	Button  string
	Players []string
}

func (e HandStarted) EventName() string { return "hand-started" }

// BlindPosted represents the event when a seat posts a blind.
type BlindPosted struct {
	Seat   string
	Amount int
	Big    bool
}

func (e BlindPosted) EventName() string { return "blind-posted" }

// HoleCardsDealt represents the event when a seat receives its hole cards.
type HoleCardsDealt struct {
	Seat  string
	Cards deck.Hand
}

func (e HoleCardsDealt) EventName() string { return "hole-cards-dealt" }

// StreetDealt represents the event when community cards are revealed.
type StreetDealt struct {
	Street    Street
	Community deck.Hand
}

func (e StreetDealt) EventName() string { return "street-dealt" }

// ActionRequested represents the event when a seat is put on the clock.
type ActionRequested struct {
	Seat   string
	Street Street
	ToCall int
}

func (e ActionRequested) EventName() string { return "action-requested" }

// ActionTaken represents the event when a seat completes a legal action.
// Amount is the total chips the action moved into the pot.
type ActionTaken struct {
	Seat   string
	Street Street
	Action action.Action
	Amount int
	Pot    int
}

func (e ActionTaken) EventName() string { return "action-taken" }

// SeatForcedFold represents the event when the engine folds a seat because
// its proposed action could not be covered by its stack.
type SeatForcedFold struct {
	Seat   string
	Reason string
}

func (e SeatForcedFold) EventName() string { return "seat-forced-fold" }

// ShowdownResult represents a single seat's holding at showdown.
type ShowdownResult struct {
	Seat  string
	Cards deck.Hand
	Hand  string
	Won   bool
}

func (e ShowdownResult) EventName() string { return "showdown-result" }

// PotAwarded represents the event when a winner receives its share of the pot.
type PotAwarded struct {
	Seat   string
	Amount int
}

func (e PotAwarded) EventName() string { return "pot-awarded" }

// HandFinished represents the event when a hand completes and stacks are final.
type HandFinished struct {
	HandNum int
	Stacks  map[string]int
}

func (e HandFinished) EventName() string { return "hand-finished" }
