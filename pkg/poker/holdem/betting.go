package holdem

import (
	"errors"
	"fmt"

	"consoleholdem/pkg/poker/action"
)

type roundState int

const (
	roundActing roundState = iota
	roundClosed
)

// bettingRound drives one street of action until it closes. It is a small
// state machine over seat indices: the cursor walks the active seats in
// table order, a raise re-opens action for everyone else, and the round
// closes once every active seat has acted since the last raise and all
// street bets match the current bet.
type bettingRound struct {
	table      *Table
	street     Street
	currentBet int // the highest total bet any seat has reached this street
	firstToAct int
	cursor     int
	// lastAggressor is the seat that last raised, or -1
	lastAggressor int
	// pending tracks the active seats yet to respond to the current bet
	pending map[int]bool
	state   roundState
}

func newBettingRound(t *Table, street Street, firstToAct, openingBet int) *bettingRound {
	r := &bettingRound{
		table:         t,
		street:        street,
		currentBet:    openingBet,
		firstToAct:    firstToAct,
		cursor:        firstToAct,
		lastAggressor: -1,
		pending:       make(map[int]bool),
		state:         roundActing,
	}

	for i, seat := range t.seats {
		if seat.active() {
			r.pending[i] = true
		}
	}

	return r
}

// run plays the round to completion. A round with one or zero active seats
// is vacuously closed.
func (r *bettingRound) run() error {
	if r.table.activeSeatCount() <= 1 {
		r.state = roundClosed
		return nil
	}

	for r.state == roundActing {
		if err := r.actOnce(); err != nil {
			return err
		}

		if r.table.activeSeatCount() <= 1 || len(r.pending) == 0 {
			r.state = roundClosed
			return nil
		}

		r.cursor = r.table.nextActiveSeat(r.cursor)
	}

	return nil
}

// actOnce puts the cursor seat on the clock and applies its decision.
// Illegal proposals are rejected and the seat is asked again.
func (r *bettingRound) actOnce() error {
	seat := r.table.seats[r.cursor]
	toCall := r.currentBet - seat.bet

	req := ActionRequest{
		Seat:      seat.Name,
		Street:    r.street,
		HoleCards: seat.HoleCards(),
		Community: r.table.community.Clone(),
		Pot:       r.table.pot,
		Stack:     seat.Stack,
		ToCall:    toCall,
		MinRaise:  r.minRaise(toCall),
		MaxRaise:  seat.Stack - toCall,
		Legal:     r.legalActions(seat, toCall),
	}

	r.table.emit(ActionRequested{
		Seat:   seat.Name,
		Street: r.street,
		ToCall: toCall,
	})

	for {
		proposed, err := r.table.provider.RequestAction(req)
		if err != nil {
			return fmt.Errorf("request action for %s: %w", seat.Name, err)
		}

		taken, moved, err := r.apply(seat, proposed, toCall)

		var illegal IllegalActionError
		if errors.As(err, &illegal) {
			r.table.logger.WithError(err).WithField("seat", seat.Name).Warn("rejected illegal action")
			continue
		}

		if err != nil {
			return err
		}

		r.table.logger.WithFields(map[string]interface{}{
			"seat":   seat.Name,
			"street": r.street.String(),
			"pot":    r.table.pot,
		}).Debugf("%s %s", seat.Name, taken.LogMessage(moved))

		r.table.emit(ActionTaken{
			Seat:   seat.Name,
			Street: r.street,
			Action: taken,
			Amount: moved,
			Pot:    r.table.pot,
		})

		return nil
	}
}

// apply validates and executes a proposed action. It returns the action that
// actually happened (a short-stacked call or raise degrades to a fold) and
// the chips moved into the pot.
func (r *bettingRound) apply(seat *Seat, proposed action.Proposed, toCall int) (action.Action, int, error) {
	switch proposed.Action {
	case action.Fold:
		r.fold(seat)
		return action.Fold, 0, nil

	case action.Check:
		if toCall != 0 {
			return "", 0, newIllegalActionError("you cannot check facing a bet of %d", toCall)
		}

		delete(r.pending, r.cursor)
		return action.Check, 0, nil

	case action.Call:
		if toCall <= 0 {
			return "", 0, newIllegalActionError("you cannot call without an active bet")
		}

		if seat.Stack < toCall {
			r.forceFold(seat, fmt.Sprintf("cannot cover the call of %d with a stack of %d", toCall, seat.Stack))
			return action.Fold, 0, nil
		}

		if err := seat.placeBet(toCall); err != nil {
			return "", 0, err
		}

		r.table.pot += toCall
		delete(r.pending, r.cursor)
		return action.Call, toCall, nil

	case action.Raise:
		if min := r.minRaise(toCall); proposed.Amount < min {
			return "", 0, newIllegalActionError("raise must be at least %d, got %d", min, proposed.Amount)
		}

		total := toCall + proposed.Amount
		if total > seat.Stack {
			r.forceFold(seat, fmt.Sprintf("cannot cover a raise of %d with a stack of %d", total, seat.Stack))
			return action.Fold, 0, nil
		}

		if err := seat.placeBet(total); err != nil {
			return "", 0, err
		}

		r.table.pot += total
		r.currentBet = seat.bet
		r.lastAggressor = r.cursor

		// a raise re-opens action for every other active seat
		for i, s := range r.table.seats {
			if i != r.cursor && s.active() {
				r.pending[i] = true
			}
		}
		delete(r.pending, r.cursor)

		return action.Raise, total, nil
	}

	return "", 0, newIllegalActionError("%s is not a valid action", proposed.Action)
}

func (r *bettingRound) fold(seat *Seat) {
	seat.folded = true
	delete(r.pending, r.cursor)
}

func (r *bettingRound) forceFold(seat *Seat, reason string) {
	r.table.logger.WithFields(map[string]interface{}{
		"seat":   seat.Name,
		"reason": reason,
	}).Info("forced fold")

	r.table.emit(SeatForcedFold{
		Seat:   seat.Name,
		Reason: reason,
	})

	r.fold(seat)
}

// minRaise is the minimum raise increment: at least one full big blind over
// the call amount
func (r *bettingRound) minRaise(toCall int) int {
	if toCall > r.table.options.BigBlind {
		return toCall
	}

	return r.table.options.BigBlind
}

func (r *bettingRound) legalActions(seat *Seat, toCall int) []action.Action {
	actions := make([]action.Action, 0, 3)

	if toCall == 0 {
		actions = append(actions, action.Check)
	} else {
		actions = append(actions, action.Call)
	}

	if seat.Stack-toCall >= r.minRaise(toCall) {
		actions = append(actions, action.Raise)
	}

	return append(actions, action.Fold)
}
