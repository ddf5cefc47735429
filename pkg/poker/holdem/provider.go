package holdem

import (
	"consoleholdem/pkg/deck"
	"consoleholdem/pkg/poker/action"
)

// ActionRequest describes the decision a seat is facing. Legal lists the
// actions the seat may take; a Raise must carry an increment between
// MinRaise and MaxRaise inclusive.
type ActionRequest struct {
	Seat      string
	Street    Street
	HoleCards deck.Hand
	Community deck.Hand
	Pot       int
	Stack     int
	ToCall    int
	MinRaise  int
	MaxRaise  int
	Legal     []action.Action
}

// ActionProvider supplies player decisions. RequestAction blocks until a
// decision is available; the engine re-validates whatever comes back and
// asks again on an illegal proposal.
type ActionProvider interface {
	RequestAction(req ActionRequest) (action.Proposed, error)
}
