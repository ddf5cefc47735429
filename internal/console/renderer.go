package console

import (
	"sort"

	"github.com/pterm/pterm"

	"consoleholdem/pkg/poker/holdem"
)

// Renderer prints table events to the terminal. It only renders; it never
// feeds anything back into the engine.
type Renderer struct{}

// NewRenderer returns a Renderer
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Notify renders a single table event
func (r *Renderer) Notify(event holdem.Event) {
	switch e := event.(type) {
	case holdem.HandStarted:
		pterm.DefaultSection.Printfln("Hand %d", e.HandNum)
		pterm.Info.Printfln("Button is on %s", pterm.LightCyan(e.Button))

	case holdem.BlindPosted:
		blind := "small blind"
		if e.Big {
			blind = "big blind"
		}
		pterm.Info.Printfln("%s posts the %s of %d", pterm.LightCyan(e.Seat), blind, e.Amount)

	case holdem.HoleCardsDealt:
		pterm.Info.Printfln("%s is dealt %s", pterm.LightCyan(e.Seat), e.Cards.Display())

	case holdem.StreetDealt:
		board := pterm.BgGreen.Sprintf(" %s ", e.Community.Display())
		pterm.Info.Printfln("%s: %s", e.Street, board)

	case holdem.ActionTaken:
		pterm.Info.Printfln("%s %s", pterm.LightCyan(e.Seat), e.Action.LogMessage(e.Amount))

	case holdem.SeatForcedFold:
		pterm.Warning.Printfln("%s is folded: %s", pterm.LightCyan(e.Seat), e.Reason)

	case holdem.ShowdownResult:
		verdict := pterm.LightRed("loses")
		if e.Won {
			verdict = pterm.LightGreen("wins")
		}
		pterm.Info.Printfln("%s shows %s (%s) and %s", pterm.LightCyan(e.Seat), e.Cards.Display(), e.Hand, verdict)

	case holdem.PotAwarded:
		pterm.Success.Printfln("%s wins %d", pterm.LightCyan(e.Seat), e.Amount)

	case holdem.HandFinished:
		pterm.Info.Println(stacksSummary(e.Stacks))
	}
}

// stacksSummary formats the end-of-hand stacks in a stable order
func stacksSummary(stacks map[string]int) string {
	names := make([]string, 0, len(stacks))
	for name := range stacks {
		names = append(names, name)
	}
	sort.Strings(names)

	summary := "Stacks:"
	for _, name := range names {
		summary += pterm.Sprintf(" %s=%d", name, stacks[name])
	}

	return summary
}
