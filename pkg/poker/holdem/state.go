package holdem

import (
	"time"

	"github.com/QuangAnhPhan/poker-app/pkg/deck"
)

// PlayerState is a player's projection in a state snapshot
type PlayerState struct {
	ID            int       `json:"id"`
	Name          string    `json:"name"`
	Stack         int       `json:"stack"`
	StartingStack int       `json:"starting_stack"`
	HoleCards     deck.Hand `json:"hole_cards"`
	CurrentBet    int       `json:"current_bet"`
	IsFolded      bool      `json:"is_folded"`
	IsAllIn       bool      `json:"is_all_in"`
	IsDealer      bool      `json:"is_dealer"`
	IsSmallBlind  bool      `json:"is_small_blind"`
	IsBigBlind    bool      `json:"is_big_blind"`
}

// State is a read-only snapshot of the hand. Snapshots are value copies:
// mutating one never affects the engine.
type State struct {
	ID             string         `json:"id"`
	Players        []*PlayerState `json:"players"`
	CommunityCards deck.Hand      `json:"community_cards"`
	Pot            int            `json:"pot"`
	CurrentBet     int            `json:"current_bet"`
	Stage          Stage          `json:"stage"`
	DealerPosition int            `json:"dealer_position"`
	CurrentPlayer  int            `json:"current_player"`
	Actions        []PlayerAction `json:"actions"`
	SmallBlind     int            `json:"small_blind"`
	BigBlind       int            `json:"big_blind"`
	IsFinished     bool           `json:"is_finished"`
	WinnerID       *int           `json:"winner_id"`
	WinnerReason   string         `json:"winner_reason"`
	CreatedAt      time.Time      `json:"created_at"`
	FinishedAt     *time.Time     `json:"finished_at,omitempty"`
}

// State returns the full snapshot with every hole card visible. Intended for
// persistence and audit; use StateFor to build a player-facing view.
func (g *Game) State() *State {
	return g.snapshot(func(*Participant) bool { return true })
}

// StateFor returns the snapshot as seen by viewerID. Other players' hole
// cards are hidden while the hand is live; once finished, only players who
// reached the end unfolded are revealed. A folded player's cards are never
// shown to anyone else.
func (g *Game) StateFor(viewerID int) *State {
	return g.snapshot(func(p *Participant) bool {
		if p.PlayerID == viewerID {
			return true
		}

		return g.finished && !p.folded
	})
}

func (g *Game) snapshot(reveal func(*Participant) bool) *State {
	players := make([]*PlayerState, 0, numPlayers)
	for _, id := range g.seatOrder {
		p := g.participants[id]

		holeCards := deck.Hand{}
		if reveal(p) {
			holeCards = p.cards.Clone()
		}

		players = append(players, &PlayerState{
			ID:            p.PlayerID,
			Name:          p.name,
			Stack:         p.balance,
			StartingStack: p.startingStack,
			HoleCards:     holeCards,
			CurrentBet:    p.bet,
			IsFolded:      p.folded,
			IsAllIn:       p.IsAllIn(),
			IsDealer:      p.PlayerID == DealerPosition,
			IsSmallBlind:  p.PlayerID == smallBlindPosition,
			IsBigBlind:    p.PlayerID == bigBlindPosition,
		})
	}

	currentPlayer := 0
	if turn := g.potManager.GetInTurnParticipant(); turn != nil && !g.finished {
		currentPlayer = turn.ID()
	}

	pot := g.potManager.Total()
	if g.finished {
		pot = g.finalPot
	}

	actions := make([]PlayerAction, len(g.actions))
	copy(actions, g.actions)

	var winnerID *int
	if g.finished {
		id := g.winnerID
		winnerID = &id
	}

	var finishedAt *time.Time
	if g.finished {
		t := g.finishedAt
		finishedAt = &t
	}

	return &State{
		ID:             g.id,
		Players:        players,
		CommunityCards: g.community.Clone(),
		Pot:            pot,
		CurrentBet:     g.potManager.GetBet(),
		Stage:          g.stage,
		DealerPosition: DealerPosition,
		CurrentPlayer:  currentPlayer,
		Actions:        actions,
		SmallBlind:     SmallBlind,
		BigBlind:       BigBlind,
		IsFinished:     g.finished,
		WinnerID:       winnerID,
		WinnerReason:   g.winnerReason,
		CreatedAt:      g.createdAt,
		FinishedAt:     finishedAt,
	}
}
