package console

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"consoleholdem/pkg/poker/action"
)

func TestActionOptions(t *testing.T) {
	options := actionOptions([]action.Action{action.Check, action.Raise, action.Fold})
	assert.Equal(t, []string{"check", "raise", "fold"}, options)

	// every option must survive the trip back through the parser
	for _, opt := range options {
		_, err := action.FromString(opt)
		assert.NoError(t, err)
	}
}

func TestParseRaise(t *testing.T) {
	a := assert.New(t)

	amount, err := parseRaise("250", 100, 1000)
	a.NoError(err)
	a.Equal(250, amount)

	amount, err = parseRaise("100", 100, 1000)
	a.NoError(err)
	a.Equal(100, amount)

	_, err = parseRaise("99", 100, 1000)
	a.EqualError(err, "99 is outside 100-1000")

	_, err = parseRaise("1001", 100, 1000)
	a.EqualError(err, "1001 is outside 100-1000")

	_, err = parseRaise("all of it", 100, 1000)
	a.Error(err)
}

func TestStacksSummary(t *testing.T) {
	summary := stacksSummary(map[string]int{"Cid": 300, "Alice": 100, "Bob": 200})
	assert.Equal(t, "Stacks: Alice=100 Bob=200 Cid=300", summary)
}
