// Package console provides the terminal front-end for a hold'em table: an
// interactive prompter that supplies player decisions and a renderer that
// prints table events. Both are thin; all game rules live in the engine,
// which re-validates everything the prompter returns.
package console

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"

	"consoleholdem/pkg/poker/action"
	"consoleholdem/pkg/poker/holdem"
)

// Prompter asks the player at the keyboard for a decision. It is a hot-seat
// provider: every seat is played from the same terminal.
type Prompter struct{}

// NewPrompter returns a Prompter
func NewPrompter() *Prompter {
	return &Prompter{}
}

// RequestAction shows the seat its situation and asks for an action. Raise
// amounts are validated against the request before being returned; an
// out-of-range amount re-prompts rather than bothering the engine.
func (p *Prompter) RequestAction(req holdem.ActionRequest) (action.Proposed, error) {
	p.showSituation(req)

	for {
		selected, err := pterm.DefaultInteractiveSelect.
			WithDefaultText(pterm.Sprintf("%s, select your action", req.Seat)).
			WithOptions(actionOptions(req.Legal)).
			Show()
		if err != nil {
			return action.Proposed{}, err
		}

		act, err := action.FromString(selected)
		if err != nil {
			return action.Proposed{}, err
		}

		if act != action.Raise {
			return action.Proposed{Action: act}, nil
		}

		raw, err := pterm.DefaultInteractiveTextInput.
			WithDefaultText(pterm.Sprintf("Raise amount (%d-%d)", req.MinRaise, req.MaxRaise)).
			WithDefaultValue(strconv.Itoa(req.MinRaise)).
			Show()
		if err != nil {
			return action.Proposed{}, err
		}

		amount, perr := parseRaise(raw, req.MinRaise, req.MaxRaise)
		if perr != nil {
			pterm.Error.Printfln("Invalid raise: %s", perr)
			continue
		}

		return action.Proposed{Action: action.Raise, Amount: amount}, nil
	}
}

func (p *Prompter) showSituation(req holdem.ActionRequest) {
	board := "(none)"
	if len(req.Community) > 0 {
		board = req.Community.Display()
	}

	info := pterm.Sprintf(
		"Hand: %s\nBoard: %s\nPot: %d  To call: %d  Stack: %d",
		pterm.LightCyan(req.HoleCards.Display()),
		board,
		req.Pot, req.ToCall, req.Stack,
	)

	pterm.DefaultBox.
		WithTitle(pterm.LightYellow(req.Seat)).
		WithTitleTopCenter().
		WithLeftPadding(2).
		WithRightPadding(2).
		Println(info)
}

// actionOptions flattens the legal menu into the identifiers the select
// widget shows and FromString parses back
func actionOptions(legal []action.Action) []string {
	options := make([]string, len(legal))
	for i, a := range legal {
		options[i] = string(a)
	}

	return options
}

// parseRaise parses and bounds-checks a raise increment typed by the player
func parseRaise(raw string, min, max int) (int, error) {
	amount, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}

	if amount < min || amount > max {
		return 0, fmt.Errorf("%d is outside %d-%d", amount, min, max)
	}

	return amount, nil
}
