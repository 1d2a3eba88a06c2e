package holdem

import (
	"testing"

	"github.com/QuangAnhPhan/poker-app/pkg/poker/action"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func setupStacks(stacks ...int) map[int]int {
	m := make(map[int]int, len(stacks))
	for i, stack := range stacks {
		m[i+1] = stack
	}

	return m
}

func setupNewGame(stacks ...int) *Game {
	if len(stacks) == 0 {
		stacks = []int{1000, 1000, 1000, 1000, 1000, 1000}
	}

	game, err := NewGame(logrus.StandardLogger(), setupStacks(stacks...), Options{Seed: 1})
	if err != nil {
		panic(err)
	}

	return game
}

func assertAction(t *testing.T, game *Game, playerID int, a action.Action, msgAndArgs ...interface{}) {
	t.Helper()
	assert.NoError(t, game.ExecuteAction(playerID, a, 0), msgAndArgs...)
}

func assertActionAndAmount(t *testing.T, game *Game, playerID int, a action.Action, amount int, msgAndArgs ...interface{}) {
	t.Helper()
	assert.NoError(t, game.ExecuteAction(playerID, a, amount), msgAndArgs...)
}

func assertActionFailed(t *testing.T, game *Game, playerID int, a action.Action, amount int, expectedErr string, msgAndArgs ...interface{}) {
	t.Helper()
	assert.EqualError(t, game.ExecuteAction(playerID, a, amount), expectedErr, msgAndArgs...)
}

// totalChips is the conserved quantity: every stack plus everything committed
func totalChips(game *Game) int {
	total := game.potManager.Total()
	for _, p := range game.participants {
		total += p.balance
	}

	return total
}

func assertChipConservation(t *testing.T, game *Game, expected int, msgAndArgs ...interface{}) {
	t.Helper()
	assert.Equal(t, expected, totalChips(game), msgAndArgs...)
}

// callAroundPreflop has every player call the big blind and the big blind check
func callAroundPreflop(t *testing.T, game *Game) {
	t.Helper()
	for _, id := range []int{3, 4, 5, 6, 1} {
		assertAction(t, game, id, action.Call)
	}
	assertAction(t, game, 2, action.Check)
}

// checkAround has every live player check in seat order
func checkAround(t *testing.T, game *Game) {
	t.Helper()
	for _, id := range []int{1, 2, 3, 4, 5, 6} {
		if game.participants[id].folded || game.participants[id].IsAllIn() {
			continue
		}
		assertAction(t, game, id, action.Check)
	}
}
