package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/QuangAnhPhan/poker-app/pkg/db"
	"github.com/QuangAnhPhan/poker-app/pkg/poker/holdem"
)

// Player is a player snapshot within a finished hand record
type Player struct {
	ID            int      `json:"id"`
	Name          string   `json:"name"`
	StartingStack int      `json:"starting_stack"`
	Stack         int      `json:"stack"`
	HoleCards     []string `json:"hole_cards"`
	IsFolded      bool     `json:"is_folded"`
	IsAllIn       bool     `json:"is_all_in"`
	IsDealer      bool     `json:"is_dealer"`
	IsSmallBlind  bool     `json:"is_small_blind"`
	IsBigBlind    bool     `json:"is_big_blind"`
}

// Action is an action snapshot within a finished hand record
type Action struct {
	PlayerID  int       `json:"player_id"`
	Action    string    `json:"action"`
	Amount    int       `json:"amount"`
	Timestamp time.Time `json:"timestamp"`
}

// Hand is a record in the `hand_history` table
type Hand struct {
	ID             string    `json:"id"`
	Players        []Player  `json:"players"`
	CommunityCards []string  `json:"community_cards"`
	Actions        []Action  `json:"actions"`
	PotSize        int       `json:"pot_size"`
	WinnerID       int       `json:"winner_id"`
	Stage          string    `json:"stage"`
	DealerPosition int       `json:"dealer_position"`
	SmallBlind     int       `json:"small_blind"`
	BigBlind       int       `json:"big_blind"`
	CreatedAt      time.Time `json:"created_at"`
	FinishedAt     time.Time `json:"finished_at"`
}

const handColumns = `id, players_data, community_cards, actions, pot_size, winner_id, stage, dealer_position, small_blind, big_blind, created_at, finished_at`

// FromState builds a hand record from a full engine snapshot
func FromState(state *holdem.State) *Hand {
	players := make([]Player, len(state.Players))
	for i, p := range state.Players {
		cards := make([]string, len(p.HoleCards))
		for j, card := range p.HoleCards {
			cards[j] = card.String()
		}

		players[i] = Player{
			ID:            p.ID,
			Name:          p.Name,
			StartingStack: p.StartingStack,
			Stack:         p.Stack,
			HoleCards:     cards,
			IsFolded:      p.IsFolded,
			IsAllIn:       p.IsAllIn,
			IsDealer:      p.IsDealer,
			IsSmallBlind:  p.IsSmallBlind,
			IsBigBlind:    p.IsBigBlind,
		}
	}

	community := make([]string, len(state.CommunityCards))
	for i, card := range state.CommunityCards {
		community[i] = card.String()
	}

	actions := make([]Action, len(state.Actions))
	for i, a := range state.Actions {
		actions[i] = Action{
			PlayerID:  a.PlayerID,
			Action:    string(a.Action),
			Amount:    a.Amount,
			Timestamp: a.Time,
		}
	}

	winnerID := 0
	if state.WinnerID != nil {
		winnerID = *state.WinnerID
	}

	finishedAt := state.CreatedAt
	if state.FinishedAt != nil {
		finishedAt = *state.FinishedAt
	}

	return &Hand{
		ID:             state.ID,
		Players:        players,
		CommunityCards: community,
		Actions:        actions,
		PotSize:        state.Pot,
		WinnerID:       winnerID,
		Stage:          state.Stage.String(),
		DealerPosition: state.DealerPosition,
		SmallBlind:     state.SmallBlind,
		BigBlind:       state.BigBlind,
		CreatedAt:      state.CreatedAt,
		FinishedAt:     finishedAt,
	}
}

// Save persists the finished hand
func (h *Hand) Save(ctx context.Context) error {
	const query = `
INSERT INTO hand_history (` + handColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	players, err := json.Marshal(h.Players)
	if err != nil {
		return err
	}

	community, err := json.Marshal(h.CommunityCards)
	if err != nil {
		return err
	}

	actions, err := json.Marshal(h.Actions)
	if err != nil {
		return err
	}

	_, err = db.Instance().ExecContext(ctx, query,
		h.ID, players, community, actions, h.PotSize, h.WinnerID, h.Stage,
		h.DealerPosition, h.SmallBlind, h.BigBlind, h.CreatedAt, h.FinishedAt)
	return err
}

// ByID returns a hand record by its id
func ByID(ctx context.Context, id string) (*Hand, error) {
	const query = `
SELECT ` + handColumns + `
FROM hand_history
WHERE id = $1`

	row := db.Instance().QueryRowContext(ctx, query, id)
	return handByRow(row)
}

// Recent returns the most recently finished hands
func Recent(ctx context.Context, limit int) ([]*Hand, error) {
	const query = `
SELECT ` + handColumns + `
FROM hand_history
ORDER BY finished_at DESC
LIMIT $1`

	rows, err := db.Instance().QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	hands := make([]*Hand, 0, limit)
	for rows.Next() {
		hand, err := handByRow(rows)
		if err != nil {
			return nil, err
		}

		hands = append(hands, hand)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return hands, nil
}

// Delete removes a hand record. Deleting an unknown id is not an error.
func Delete(ctx context.Context, id string) error {
	const query = `
DELETE
FROM hand_history
WHERE id = $1`

	_, err := db.Instance().ExecContext(ctx, query, id)
	return err
}

func handByRow(row db.Scanner) (*Hand, error) {
	var h Hand
	var players, community, actions []byte
	var winnerID sql.NullInt64

	if err := row.Scan(&h.ID, &players, &community, &actions, &h.PotSize, &winnerID,
		&h.Stage, &h.DealerPosition, &h.SmallBlind, &h.BigBlind, &h.CreatedAt, &h.FinishedAt); err != nil {
		return nil, err
	}

	h.WinnerID = int(winnerID.Int64)

	if err := json.Unmarshal(players, &h.Players); err != nil {
		return nil, err
	}

	if err := json.Unmarshal(community, &h.CommunityCards); err != nil {
		return nil, err
	}

	if err := json.Unmarshal(actions, &h.Actions); err != nil {
		return nil, err
	}

	return &h, nil
}
