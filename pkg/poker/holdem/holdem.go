package holdem

import (
	"fmt"
	"time"

	"github.com/QuangAnhPhan/poker-app/pkg/deck"
	"github.com/QuangAnhPhan/poker-app/pkg/poker/action"
	"github.com/QuangAnhPhan/poker-app/pkg/poker/potmanager"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// fixed table configuration for a six-handed hand
const (
	numPlayers = 6

	// SmallBlind is the forced bet posted by seat 1
	SmallBlind = 20
	// BigBlind is the forced bet posted by seat 2
	BigBlind = 40
	// DealerPosition is the seat holding the dealer button
	DealerPosition = 6

	smallBlindPosition = 1
	bigBlindPosition   = 2
)

// Game is a single hand of six-handed no-limit Texas Hold'em.
// The hand is a synchronous state machine: ExecuteAction runs any automatic
// progression to completion before it returns. The game performs no internal
// locking; callers must serialize access per hand.
type Game struct {
	id     string
	logger logrus.FieldLogger

	deck         *deck.Deck
	participants map[int]*Participant
	// seatOrder is betting order: small blind first, dealer last
	seatOrder  []int
	potManager *potmanager.PotManager

	community deck.Hand
	stage     Stage

	actions []PlayerAction
	handLog []string

	finished     bool
	winnerID     int
	winnerReason string
	// finalPot is the pot as it stood when the hand ended; the live pots are
	// emptied by the payout
	finalPot int

	createdAt  time.Time
	finishedAt time.Time
}

// PlayerAction is a single accepted action in the hand's action log
type PlayerAction struct {
	PlayerID int           `json:"player_id"`
	Action   action.Action `json:"action"`
	Amount   int           `json:"amount"`
	Time     time.Time     `json:"timestamp"`
}

// Options configures a new hand
type Options struct {
	// Seed seeds the deck shuffle. Zero draws a crypto-random seed.
	Seed int64
}

// DefaultOptions returns the options for a standard hand
func DefaultOptions() Options {
	return Options{}
}

// NewGame starts a new hand. The stacks map must contain exactly the player
// ids 1 through 6 with positive stacks. Blinds are posted and two hole cards
// are dealt to each player before the method returns.
func NewGame(logger logrus.FieldLogger, stacks map[int]int, opts Options) (*Game, error) {
	if len(stacks) != numPlayers {
		return nil, ErrInvalidPlayerCount
	}

	for id := 1; id <= numPlayers; id++ {
		stack, ok := stacks[id]
		if !ok {
			return nil, ErrInvalidPlayerCount
		}

		if stack <= 0 {
			return nil, fmt.Errorf("%w: player %d has stack %d", ErrInvalidStack, id, stack)
		}
	}

	d := deck.New()
	d.Shuffle(opts.Seed)

	pm := potmanager.New(SmallBlind, BigBlind)

	participants := make(map[int]*Participant, numPlayers)
	seatOrder := make([]int, 0, numPlayers)
	for id := 1; id <= numPlayers; id++ {
		p := newParticipant(id, stacks[id])
		participants[id] = p
		seatOrder = append(seatOrder, id)

		if err := pm.SeatParticipant(p); err != nil {
			return nil, err
		}
	}

	if err := pm.FinishSeating(); err != nil {
		return nil, err
	}

	g := &Game{
		id:           uuid.New().String(),
		logger:       logger,
		deck:         d,
		participants: participants,
		seatOrder:    seatOrder,
		potManager:   pm,
		community:    make(deck.Hand, 0, 5),
		stage:        StagePreflop,
		actions:      make([]PlayerAction, 0),
		handLog:      make([]string, 0),
		createdAt:    time.Now(),
	}

	if err := g.dealTwoCardsToEachParticipant(); err != nil {
		return nil, err
	}

	g.initializeHandLog()

	g.logger.WithFields(logrus.Fields{
		"game": g.id,
		"pot":  pm.Total(),
	}).Info("hand started")

	return g, nil
}

// ID returns the hand's unique identifier
func (g *Game) ID() string {
	return g.id
}

// Finished returns true once a winner has been determined
func (g *Game) Finished() bool {
	return g.finished
}

func (g *Game) dealTwoCardsToEachParticipant() error {
	for i := 0; i < 2; i++ {
		for _, id := range g.seatOrder {
			card, err := g.deck.Draw()
			if err != nil {
				return err
			}

			g.participants[id].cards.AddCard(card)
		}
	}

	return nil
}

func (g *Game) initializeHandLog() {
	g.logf("Game started with %d players", numPlayers)

	for _, id := range g.seatOrder {
		p := g.participants[id]
		g.logf("%s is dealt %s", p.name, concatCards(p.cards))
	}

	g.logf("---")
	g.logf("%s is the dealer", g.participants[DealerPosition].name)
	g.logf("%s posts small blind - %d chips", g.participants[smallBlindPosition].name, SmallBlind)
	g.logf("%s posts big blind - %d chips", g.participants[bigBlindPosition].name, BigBlind)
}

func (g *Game) logf(format string, a ...interface{}) {
	g.handLog = append(g.handLog, fmt.Sprintf(format, a...))
}

// Log returns a copy of the human-readable hand log
func (g *Game) Log() []string {
	log := make([]string, len(g.handLog))
	copy(log, g.handLog)
	return log
}

func (g *Game) nonFoldedParticipants() []*Participant {
	remaining := make([]*Participant, 0, numPlayers)
	for _, id := range g.seatOrder {
		if p := g.participants[id]; !p.folded {
			remaining = append(remaining, p)
		}
	}

	return remaining
}

// concatCards renders cards without separators, i.e., "AhTd"
func concatCards(cards deck.Hand) string {
	s := ""
	for _, card := range cards {
		s += card.String()
	}

	return s
}
