package mux

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/QuangAnhPhan/poker-app/pkg/poker/action"

	"github.com/stretchr/testify/assert"
)

func defaultStacks() map[int]int {
	stacks := make(map[int]int)
	for id := 1; id <= 6; id++ {
		stacks[id] = 1000
	}

	return stacks
}

func startGame(t *testing.T, ts *httptest.Server) *gameResponse {
	t.Helper()

	var resp gameResponse
	assertPost(t, ts, "/api/poker/start", map[string]interface{}{
		"player_stacks": defaultStacks(),
	}, &resp, http.StatusCreated)

	return &resp
}

func postAction(t *testing.T, ts *httptest.Server, gameID string, playerID int, playerAction string, amount int, statusCode int) *gameResponse {
	t.Helper()

	var resp gameResponse
	assertPost(t, ts, fmt.Sprintf("/api/poker/game/%s/action", gameID), map[string]interface{}{
		"player_id": playerID,
		"action":    playerAction,
		"amount":    amount,
	}, &resp, statusCode)

	return &resp
}

func TestPostStart(t *testing.T) {
	ts, _ := setupTestServer(t)
	a := assert.New(t)

	resp := startGame(t, ts)
	a.NotEmpty(resp.State.ID)
	a.Equal(60, resp.State.Pot)
	a.Equal(40, resp.State.CurrentBet)
	a.Equal(3, resp.State.CurrentPlayer)
	a.Equal(6, resp.State.DealerPosition)
	a.False(resp.State.IsFinished)
	a.Equal([]action.Action{action.Fold, action.Call, action.Raise, action.AllIn}, resp.ValidActions)
	a.NotEmpty(resp.HandLog)

	// the snapshot is for the first actor
	a.Equal(2, len(resp.State.Players[2].HoleCards))
	a.Equal(0, len(resp.State.Players[0].HoleCards))
}

func TestPostStart_validation(t *testing.T) {
	ts, _ := setupTestServer(t)

	stacks := defaultStacks()
	delete(stacks, 6)
	assertPost(t, ts, "/api/poker/start", map[string]interface{}{"player_stacks": stacks}, nil, http.StatusBadRequest)

	stacks = defaultStacks()
	stacks[4] = 0
	assertPost(t, ts, "/api/poker/start", map[string]interface{}{"player_stacks": stacks}, nil, http.StatusBadRequest)

	assertPost(t, ts, "/api/poker/start", `{"player_stacks"`, nil, http.StatusBadRequest)
}

func TestGetGame(t *testing.T) {
	ts, _ := setupTestServer(t)
	a := assert.New(t)

	gameID := startGame(t, ts).State.ID

	var resp gameResponse
	assertGet(t, ts, "/api/poker/game/"+gameID, &resp, http.StatusOK)
	a.Equal(gameID, resp.State.ID)
	for _, p := range resp.State.Players {
		a.Equal(0, len(p.HoleCards))
	}

	assertGet(t, ts, "/api/poker/game/"+gameID+"?player_id=4", &resp, http.StatusOK)
	a.Equal(2, len(resp.State.Players[3].HoleCards))
	a.Equal(0, len(resp.State.Players[0].HoleCards))

	assertGet(t, ts, "/api/poker/game/00000000-0000-0000-0000-000000000000", nil, http.StatusNotFound)
}

func TestPostGameAction(t *testing.T) {
	ts, fh := setupTestServer(t)
	a := assert.New(t)

	gameID := startGame(t, ts).State.ID

	// out of turn
	postAction(t, ts, gameID, 4, "fold", 0, http.StatusBadRequest)

	// unknown action identifier
	postAction(t, ts, gameID, 3, "limp", 0, http.StatusBadRequest)

	resp := postAction(t, ts, gameID, 3, "fold", 0, http.StatusOK)
	a.Equal(4, resp.State.CurrentPlayer)
	a.True(resp.State.Players[2].IsFolded)

	for _, playerID := range []int{4, 5, 6} {
		postAction(t, ts, gameID, playerID, "fold", 0, http.StatusOK)
	}

	resp = postAction(t, ts, gameID, 1, "fold", 0, http.StatusOK)
	a.True(resp.State.IsFinished)
	if a.NotNil(resp.State.WinnerID) {
		a.Equal(2, *resp.State.WinnerID)
	}
	a.Equal([]action.Action{}, resp.ValidActions)

	// finished hand is persisted and the session evicted
	a.Equal(1, len(fh.saved))
	a.NotNil(fh.saved[gameID])
	assertGet(t, ts, "/api/poker/game/"+gameID, nil, http.StatusNotFound)

	assertGet(t, ts, "/api/poker/game/"+gameID+"/valid-actions/1", nil, http.StatusNotFound)
	postAction(t, ts, gameID, 2, "check", 0, http.StatusNotFound)
}

func TestPostGameAction_saveFailure(t *testing.T) {
	ts, fh := setupTestServer(t)
	a := assert.New(t)

	fh.saveErr = errors.New("database is down")

	gameID := startGame(t, ts).State.ID
	for _, playerID := range []int{3, 4, 5, 6} {
		postAction(t, ts, gameID, playerID, "fold", 0, http.StatusOK)
	}

	resp := postAction(t, ts, gameID, 1, "fold", 0, http.StatusOK)
	a.True(resp.State.IsFinished)
	a.Equal(0, len(fh.saved))

	// session is retained so the hand is not lost
	assertGet(t, ts, "/api/poker/game/"+gameID, &resp, http.StatusOK)
	a.True(resp.State.IsFinished)
}

func TestGetGameValidActions(t *testing.T) {
	ts, _ := setupTestServer(t)
	a := assert.New(t)

	gameID := startGame(t, ts).State.ID

	type validActionsResponse struct {
		PlayerID     int             `json:"player_id"`
		ValidActions []action.Action `json:"valid_actions"`
	}

	var resp validActionsResponse
	assertGet(t, ts, "/api/poker/game/"+gameID+"/valid-actions/3", &resp, http.StatusOK)
	a.Equal(3, resp.PlayerID)
	a.Equal([]action.Action{action.Fold, action.Call, action.Raise, action.AllIn}, resp.ValidActions)

	assertGet(t, ts, "/api/poker/game/"+gameID+"/valid-actions/4", &resp, http.StatusOK)
	a.Equal([]action.Action{}, resp.ValidActions)

	assertGet(t, ts, "/api/poker/game/00000000-0000-0000-0000-000000000000/valid-actions/3", nil, http.StatusNotFound)
}

func TestDeleteGame(t *testing.T) {
	ts, _ := setupTestServer(t)

	gameID := startGame(t, ts).State.ID

	assertRequest(t, ts, http.MethodDelete, "/api/poker/game/"+gameID, nil, nil, http.StatusOK)
	assertRequest(t, ts, http.MethodDelete, "/api/poker/game/"+gameID, nil, nil, http.StatusNotFound)
	assertGet(t, ts, "/api/poker/game/"+gameID, nil, http.StatusNotFound)
}

func TestGetActiveGames(t *testing.T) {
	ts, _ := setupTestServer(t)
	a := assert.New(t)

	type activeGamesResponse struct {
		Games []string `json:"games"`
		Count int      `json:"count"`
	}

	var resp activeGamesResponse
	assertGet(t, ts, "/api/poker/active-games", &resp, http.StatusOK)
	a.Equal(0, resp.Count)

	first := startGame(t, ts).State.ID
	second := startGame(t, ts).State.ID

	assertGet(t, ts, "/api/poker/active-games", &resp, http.StatusOK)
	a.Equal(2, resp.Count)
	a.Contains(resp.Games, first)
	a.Contains(resp.Games, second)
}
