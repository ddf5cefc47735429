package action

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromString(t *testing.T) {
	a := assert.New(t)

	act, err := FromString("fold")
	a.NoError(err)
	a.Equal(Fold, act)

	act, err = FromString("raise")
	a.NoError(err)
	a.Equal(Raise, act)

	act, err = FromString("bet")
	a.EqualError(err, "unknown action for identifier: bet")
	a.Equal(Action(""), act)
}

func TestAction_String(t *testing.T) {
	assert.Equal(t, "Fold", Fold.String())
	assert.Equal(t, "Check", Check.String())
	assert.Equal(t, "Call", Call.String())
	assert.Equal(t, "Raise", Raise.String())

	assert.Panics(t, func() {
		_ = Action("nope").String()
	})
}

func TestAction_IsValid(t *testing.T) {
	assert.True(t, Fold.IsValid())
	assert.False(t, Action("discard").IsValid())
}

func TestAction_LogMessage(t *testing.T) {
	assert.Equal(t, "folded", Fold.LogMessage(0))
	assert.Equal(t, "checked", Check.LogMessage(0))
	assert.Equal(t, "called 100", Call.LogMessage(100))
	assert.Equal(t, "raised to 300", Raise.LogMessage(300))
}
