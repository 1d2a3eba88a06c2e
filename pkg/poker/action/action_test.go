package action

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromString(t *testing.T) {
	a := assert.New(t)

	for _, id := range []string{"fold", "check", "call", "bet", "raise", "all_in"} {
		parsed, err := FromString(id)
		a.NoError(err)
		a.Equal(Action(id), parsed)
		a.True(parsed.IsValid())
	}

	_, err := FromString("limp")
	a.EqualError(err, "unknown action for identifier: limp")
	a.False(Action("limp").IsValid())
}

func TestAction_String(t *testing.T) {
	a := assert.New(t)

	a.Equal("Fold", Fold.String())
	a.Equal("All-in", AllIn.String())
	a.Panics(func() { _ = Action("limp").String() })
}

func TestAction_JSON(t *testing.T) {
	a := assert.New(t)

	b, err := json.Marshal(Raise)
	a.NoError(err)
	a.JSONEq(`{"id":"raise","name":"Raise"}`, string(b))

	var parsed Action
	a.NoError(json.Unmarshal(b, &parsed))
	a.Equal(Raise, parsed)

	a.NoError(json.Unmarshal([]byte(`"all_in"`), &parsed))
	a.Equal(AllIn, parsed)

	a.Error(json.Unmarshal([]byte(`{"id":"limp"}`), &parsed))
	a.Error(json.Unmarshal([]byte(`5`), &parsed))
}

func TestAction_LogMessage(t *testing.T) {
	a := assert.New(t)

	a.Equal("folds", Fold.LogMessage(0))
	a.Equal("checks", Check.LogMessage(0))
	a.Equal("calls", Call.LogMessage(0))
	a.Equal("bets 120 chips", Bet.LogMessage(120))
	a.Equal("raises to 240 chips", Raise.LogMessage(240))
	a.Equal("goes all-in for 500 chips", AllIn.LogMessage(500))
}
