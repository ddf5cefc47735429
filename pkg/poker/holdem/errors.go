package holdem

import (
	"errors"
	"fmt"
)

// ErrNotEnoughPlayers is an error when fewer than two seats can post the blinds
var ErrNotEnoughPlayers = errors.New("not enough players to start a hand")

// ErrInsufficientChips is an error when a bet exceeds the available stack.
// The engine recovers from it by forcing a fold; it is never fatal.
var ErrInsufficientChips = errors.New("insufficient chips")

// IllegalActionError is an error caused by a player proposing an action
// outside the legal menu. The proposal is rejected and the player is asked
// again; it is never silently coerced into something legal.
type IllegalActionError string

func (e IllegalActionError) Error() string {
	return string(e)
}

func newIllegalActionError(format string, a ...interface{}) IllegalActionError {
	return IllegalActionError(fmt.Sprintf(format, a...))
}
