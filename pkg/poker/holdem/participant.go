package holdem

import (
	"fmt"

	"github.com/QuangAnhPhan/poker-app/pkg/deck"
)

// Participant represents an individual player in the hand
type Participant struct {
	PlayerID int

	name          string
	startingStack int
	balance       int
	cards         deck.Hand

	folded bool
	// bet mirrors the chips committed in the current betting round
	bet int
}

func newParticipant(id, startingStack int) *Participant {
	return &Participant{
		PlayerID:      id,
		name:          fmt.Sprintf("Player %d", id),
		startingStack: startingStack,
		balance:       startingStack,
		cards:         make(deck.Hand, 0, 2),
	}
}

// Name returns the player's display name
func (p *Participant) Name() string {
	return p.name
}

// IsAllIn returns true if the participant committed their entire stack and did not fold
func (p *Participant) IsAllIn() bool {
	return p.balance == 0 && !p.folded
}

// potmanager.Participant interface

// ID returns the player id
func (p *Participant) ID() int {
	return p.PlayerID
}

// Balance returns the player's remaining stack
func (p *Participant) Balance() int {
	return p.balance
}

// AdjustBalance adds the amount, which may be negative, to the player's stack
func (p *Participant) AdjustBalance(amount int) {
	p.balance += amount
}

// SetAmountInPlay records the chips the player has committed this betting round
func (p *Participant) SetAmountInPlay(amount int) {
	p.bet = amount
}
