package mux

import (
	"context"
	"net/http"

	"github.com/QuangAnhPhan/poker-app/pkg/history"
	"github.com/QuangAnhPhan/poker-app/pkg/session"

	gmux "github.com/gorilla/mux"
)

const uuidPattern = `(?i)[a-f0-9]{8}(?:-[a-f0-9]{4}){3}-[a-f0-9]{12}`

// historyStore persists finished hands
type historyStore interface {
	Save(ctx context.Context, hand *history.Hand) error
	ByID(ctx context.Context, id string) (*history.Hand, error)
	Recent(ctx context.Context, limit int) ([]*history.Hand, error)
}

// pgHistory is the Postgres-backed historyStore
type pgHistory struct{}

func (pgHistory) Save(ctx context.Context, hand *history.Hand) error {
	return hand.Save(ctx)
}

func (pgHistory) ByID(ctx context.Context, id string) (*history.Hand, error) {
	return history.ByID(ctx, id)
}

func (pgHistory) Recent(ctx context.Context, limit int) ([]*history.Hand, error) {
	return history.Recent(ctx, limit)
}

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version string
	store   *session.Store
	history historyStore
}

// NewMux returns a new HTTP mux
func NewMux(version string) *Mux {
	this := &Mux{
		Router:  gmux.NewRouter(),
		version: version,
		store:   session.NewStore(),
		history: pgHistory{},
	}

	r := this.Router
	r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())

	api := r.PathPrefix("/api/poker").Subrouter()
	api.Methods(http.MethodPost).Path("/start").Handler(this.postStart())
	api.Methods(http.MethodGet).Path("/active-games").Handler(this.getActiveGames())
	api.Methods(http.MethodGet).Path("/history").Handler(this.getHistory())
	api.Methods(http.MethodGet).Path("/history/{id:" + uuidPattern + "}").Handler(this.getHistoryID())

	gr := api.PathPrefix("/game/{id:" + uuidPattern + "}").Subrouter()
	gr.Methods(http.MethodGet).Path("").Handler(this.getGame())
	gr.Methods(http.MethodPost).Path("/action").Handler(this.postGameAction())
	gr.Methods(http.MethodGet).Path("/valid-actions/{playerID:[0-9]+}").Handler(this.getGameValidActions())
	gr.Methods(http.MethodDelete).Path("").Handler(this.deleteGame())

	return this
}
