package holdem

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"consoleholdem/pkg/poker/handrank"
)

// HandResult summarizes a finished hand
type HandResult struct {
	HandNum  int            `json:"handNum"`
	Pot      int            `json:"pot"`
	Winners  []string       `json:"winners"`
	Payouts  map[string]int `json:"payouts"`
	Showdown bool           `json:"showdown"`
}

// settle resolves the hand. A sole surviving seat takes the pot without a
// showdown; otherwise every remaining seat's seven-card hand is evaluated
// and the pot is split among the seats tied at the maximum. The split
// remainder goes entirely to the first winner in evaluation order.
func (t *Table) settle() (*HandResult, error) {
	contenders := t.activeSeatsFrom(t.nextActiveSeat(t.button))

	if len(contenders) == 0 {
		return nil, fmt.Errorf("no seats remain in hand %d", t.handNum)
	}

	pot := t.pot

	if len(contenders) == 1 {
		winner := t.seats[contenders[0]]
		winner.Stack += pot

		t.logger.WithFields(logrus.Fields{
			"hand": t.handNum,
			"seat": winner.Name,
			"pot":  pot,
		}).Info("pot awarded uncontested")

		t.emit(PotAwarded{Seat: winner.Name, Amount: pot})

		t.pot = 0
		return &HandResult{
			HandNum: t.handNum,
			Pot:     pot,
			Winners: []string{winner.Name},
			Payouts: map[string]int{winner.Name: pot},
		}, nil
	}

	evals := make([]handrank.Evaluation, len(contenders))
	for i, idx := range contenders {
		seat := t.seats[idx]

		ev, err := handrank.Evaluate(append(seat.HoleCards(), t.community...))
		if err != nil {
			return nil, fmt.Errorf("evaluate %s: %w", seat.Name, err)
		}

		evals[i] = ev
	}

	best := evals[0]
	for _, ev := range evals[1:] {
		if handrank.Compare(ev, best) > 0 {
			best = ev
		}
	}

	winners := make([]int, 0, len(contenders))
	for i, ev := range evals {
		won := handrank.Compare(ev, best) == 0
		if won {
			winners = append(winners, contenders[i])
		}

		seat := t.seats[contenders[i]]
		t.emit(ShowdownResult{
			Seat:  seat.Name,
			Cards: seat.HoleCards(),
			Hand:  ev.String(),
			Won:   won,
		})
	}

	share := pot / len(winners)
	remainder := pot % len(winners)

	payouts := make(map[string]int, len(winners))
	names := make([]string, len(winners))
	for i, idx := range winners {
		amount := share
		if i == 0 {
			amount += remainder
		}

		seat := t.seats[idx]
		seat.Stack += amount
		payouts[seat.Name] = amount
		names[i] = seat.Name

		t.logger.WithFields(logrus.Fields{
			"hand":   t.handNum,
			"seat":   seat.Name,
			"amount": amount,
		}).Info("pot awarded")

		t.emit(PotAwarded{Seat: seat.Name, Amount: amount})
	}

	t.pot = 0
	return &HandResult{
		HandNum:  t.handNum,
		Pot:      pot,
		Winners:  names,
		Payouts:  payouts,
		Showdown: true,
	}, nil
}
