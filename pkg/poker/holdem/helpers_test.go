package holdem

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"consoleholdem/pkg/deck"
	"consoleholdem/pkg/poker/action"
)

// scriptedProvider replays a fixed list of proposals in order
type scriptedProvider struct {
	proposals []action.Proposed
	i         int
}

func (p *scriptedProvider) RequestAction(_ ActionRequest) (action.Proposed, error) {
	if p.i >= len(p.proposals) {
		return action.Proposed{}, fmt.Errorf("no scripted action left (asked %d times)", p.i+1)
	}

	proposed := p.proposals[p.i]
	p.i++
	return proposed, nil
}

// callingStation calls any bet and otherwise checks
type callingStation struct{}

func (callingStation) RequestAction(req ActionRequest) (action.Proposed, error) {
	if req.ToCall > 0 {
		return action.Proposed{Action: action.Call}, nil
	}

	return action.Proposed{Action: action.Check}, nil
}

// eventRecorder collects every emitted event
type eventRecorder struct {
	events []Event
}

func (r *eventRecorder) Notify(event Event) {
	r.events = append(r.events, event)
}

func (r *eventRecorder) names() []string {
	names := make([]string, len(r.events))
	for i, e := range r.events {
		names[i] = e.EventName()
	}

	return names
}

func (r *eventRecorder) ofType(name string) []Event {
	var matched []Event
	for _, e := range r.events {
		if e.EventName() == name {
			matched = append(matched, e)
		}
	}

	return matched
}

func fold() action.Proposed {
	return action.Proposed{Action: action.Fold}
}

func check() action.Proposed {
	return action.Proposed{Action: action.Check}
}

func call() action.Proposed {
	return action.Proposed{Action: action.Call}
}

func raise(amount int) action.Proposed {
	return action.Proposed{Action: action.Raise, Amount: amount}
}

// newTestTable builds a table with a quiet logger. The deck for each hand
// is stacked with the given cards in draw order; an empty string keeps the
// default shuffled deck.
func newTestTable(provider ActionProvider, names []string, cards string) (*Table, error) {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	table, err := NewTable(logger, provider, DefaultOptions(), names)
	if err != nil {
		return nil, err
	}

	if cards != "" {
		table.newDeck = func() *deck.Deck {
			d := deck.New()
			d.Cards = deck.CardsFromString(cards)
			return d
		}
	}

	return table, nil
}

// totalChips sums the pot and every stack. A seat's street bet is already
// counted inside the pot.
func totalChips(t *Table) int {
	total := t.pot
	for _, s := range t.seats {
		total += s.Stack
	}

	return total
}
