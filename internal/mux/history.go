package mux

import (
	"net/http"

	gmux "github.com/gorilla/mux"
)

func (m *Mux) getHistory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, err := parseLimit(r)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		hands, err := m.history.Recent(r.Context(), limit)
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		writeJSON(w, http.StatusOK, hands)
	}
}

func (m *Mux) getHistoryID() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		hand, err := m.history.ByID(r.Context(), gmux.Vars(r)["id"])
		if err != nil {
			writeMaybeNotFoundError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, hand)
	}
}
