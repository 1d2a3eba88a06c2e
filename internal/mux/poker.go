package mux

import (
	"net/http"
	"strconv"

	"github.com/QuangAnhPhan/poker-app/pkg/history"
	"github.com/QuangAnhPhan/poker-app/pkg/poker/action"
	"github.com/QuangAnhPhan/poker-app/pkg/poker/holdem"

	gmux "github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type gameResponse struct {
	State        *holdem.State   `json:"state"`
	ValidActions []action.Action `json:"valid_actions"`
	HandLog      []string        `json:"hand_log"`
}

// gameResponseFor builds the client payload. The state is redacted for
// viewerID; valid actions describe what the in-turn player may do next.
func gameResponseFor(game *holdem.Game, viewerID int) *gameResponse {
	state := game.StateFor(viewerID)

	validActions := game.ValidActions(state.CurrentPlayer)
	if validActions == nil {
		validActions = []action.Action{}
	}

	return &gameResponse{
		State:        state,
		ValidActions: validActions,
		HandLog:      game.Log(),
	}
}

func (m *Mux) postStart() http.HandlerFunc {
	type startPayload struct {
		PlayerStacks map[int]int `json:"player_stacks"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		var payload startPayload
		if !decodeRequest(w, r, &payload) {
			return
		}

		game, err := holdem.NewGame(logrus.StandardLogger(), payload.PlayerStacks, holdem.DefaultOptions())
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		m.store.Create(game)

		actor := game.State().CurrentPlayer
		writeJSON(w, http.StatusCreated, gameResponseFor(game, actor))
	}
}

func (m *Mux) getGame() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sn, ok := m.store.Get(gmux.Vars(r)["id"])
		if !ok {
			writeJSONError(w, http.StatusNotFound, nil)
			return
		}

		viewerID := 0
		if playerID := r.FormValue("player_id"); playerID != "" {
			val, err := strconv.Atoi(playerID)
			if err != nil {
				writeJSONError(w, http.StatusBadRequest, err)
				return
			}

			viewerID = val
		}

		var resp *gameResponse
		_ = sn.Do(func(game *holdem.Game) error {
			resp = gameResponseFor(game, viewerID)
			return nil
		})

		writeJSON(w, http.StatusOK, resp)
	}
}

func (m *Mux) postGameAction() http.HandlerFunc {
	type actionPayload struct {
		PlayerID int    `json:"player_id"`
		Action   string `json:"action"`
		Amount   int    `json:"amount"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		id := gmux.Vars(r)["id"]

		sn, ok := m.store.Get(id)
		if !ok {
			writeJSONError(w, http.StatusNotFound, nil)
			return
		}

		var payload actionPayload
		if !decodeRequest(w, r, &payload) {
			return
		}

		playerAction, err := action.FromString(payload.Action)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		var resp *gameResponse
		doErr := sn.Do(func(game *holdem.Game) error {
			if err := game.ExecuteAction(payload.PlayerID, playerAction, payload.Amount); err != nil {
				return err
			}

			if game.Finished() {
				// a failed save keeps the session so the hand can be retried
				if err := m.history.Save(r.Context(), history.FromState(game.State())); err != nil {
					logrus.WithError(err).WithField("game", game.ID()).Error("could not save hand history")
				} else {
					m.store.Evict(id)
				}
			}

			resp = gameResponseFor(game, payload.PlayerID)
			return nil
		})

		if doErr != nil {
			writeJSONError(w, http.StatusBadRequest, doErr)
			return
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

func (m *Mux) getGameValidActions() http.HandlerFunc {
	type validActionsResponse struct {
		PlayerID     int             `json:"player_id"`
		ValidActions []action.Action `json:"valid_actions"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		vars := gmux.Vars(r)

		sn, ok := m.store.Get(vars["id"])
		if !ok {
			writeJSONError(w, http.StatusNotFound, nil)
			return
		}

		playerID, err := strconv.Atoi(vars["playerID"])
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		var resp validActionsResponse
		_ = sn.Do(func(game *holdem.Game) error {
			validActions := game.ValidActions(playerID)
			if validActions == nil {
				validActions = []action.Action{}
			}

			resp = validActionsResponse{
				PlayerID:     playerID,
				ValidActions: validActions,
			}
			return nil
		})

		writeJSON(w, http.StatusOK, resp)
	}
}

func (m *Mux) deleteGame() http.HandlerFunc {
	type deleteResponse struct {
		Status string `json:"status"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		if !m.store.Evict(gmux.Vars(r)["id"]) {
			writeJSONError(w, http.StatusNotFound, nil)
			return
		}

		writeJSON(w, http.StatusOK, deleteResponse{Status: "OK"})
	}
}

func (m *Mux) getActiveGames() http.HandlerFunc {
	type activeGamesResponse struct {
		Games []string `json:"games"`
		Count int      `json:"count"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ids := m.store.IDs()
		writeJSON(w, http.StatusOK, activeGamesResponse{
			Games: ids,
			Count: len(ids),
		})
	}
}
