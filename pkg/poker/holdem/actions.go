package holdem

import (
	"fmt"
	"time"

	"github.com/QuangAnhPhan/poker-app/pkg/poker/action"
	"github.com/QuangAnhPhan/poker-app/pkg/poker/potmanager"
	"github.com/sirupsen/logrus"
)

// ValidActions returns the actions the player may take right now. The result
// is empty unless it is the player's turn.
func (g *Game) ValidActions(playerID int) []action.Action {
	if g.finished {
		return nil
	}

	turn := g.potManager.GetInTurnParticipant()
	if turn == nil || turn.ID() != playerID {
		return nil
	}

	p := g.participants[playerID]
	currentBet := g.potManager.GetBet()

	actions := []action.Action{action.Fold}

	if p.bet == currentBet {
		actions = append(actions, action.Check)
	} else if currentBet-p.bet <= p.balance {
		actions = append(actions, action.Call)
	}

	if currentBet == 0 {
		if p.balance > 0 {
			actions = append(actions, action.Bet)
		}
	} else if g.potManager.GetParticipantAllInAmount(p) >= currentBet+BigBlind {
		actions = append(actions, action.Raise)
	}

	if p.balance > 0 {
		actions = append(actions, action.AllIn)
	}

	return actions
}

// ExecuteAction validates and applies a player action, then drives the hand
// forward: sweeping completed betting rounds, dealing streets, and running
// the showdown when the hand resolves. Rejected actions leave the state
// unchanged.
func (g *Game) ExecuteAction(playerID int, anAction action.Action, amount int) error {
	if g.finished {
		return ErrHandFinished
	}

	p, ok := g.participants[playerID]
	if !ok {
		return ErrPlayerNotFound
	}

	if turn := g.potManager.GetInTurnParticipant(); turn == nil || turn.ID() != playerID {
		return potmanager.ErrParticipantCannotAct
	}

	if !g.isValidAction(playerID, anAction) {
		return fmt.Errorf("you cannot perform %s", anAction)
	}

	logAmount := amount

	switch anAction {
	case action.Fold:
		if err := g.potManager.ParticipantFolds(p); err != nil {
			return err
		}
		p.folded = true
	case action.Check:
		if err := g.potManager.ParticipantChecks(p); err != nil {
			return err
		}
	case action.Call:
		if err := g.potManager.ParticipantCalls(p); err != nil {
			return err
		}
		logAmount = 0
	case action.Bet, action.Raise:
		if err := g.validateBetOrRaise(p, anAction, amount); err != nil {
			return err
		}

		if err := g.potManager.ParticipantBetsOrRaises(p, amount); err != nil {
			return err
		}
	case action.AllIn:
		total := g.potManager.GetParticipantAllInAmount(p)
		if total > g.potManager.GetBet() {
			if err := g.potManager.ParticipantBetsOrRaises(p, total); err != nil {
				return err
			}
		} else {
			// short all-in stays a capped call and does not reopen betting
			if err := g.potManager.ParticipantCalls(p); err != nil {
				return err
			}
		}
		logAmount = total
	default:
		return fmt.Errorf("you cannot perform %s", anAction)
	}

	g.actions = append(g.actions, PlayerAction{
		PlayerID: playerID,
		Action:   anAction,
		Amount:   logAmount,
		Time:     time.Now(),
	})
	g.logf("%s %s", p.name, anAction.LogMessage(logAmount))

	g.logger.WithFields(logrus.Fields{
		"game":   g.id,
		"player": playerID,
		"action": string(anAction),
		"amount": logAmount,
	}).Debug("action accepted")

	return g.advanceGame()
}

func (g *Game) isValidAction(playerID int, anAction action.Action) bool {
	for _, a := range g.ValidActions(playerID) {
		if a == anAction {
			return true
		}
	}

	return false
}

func (g *Game) validateBetOrRaise(p *Participant, anAction action.Action, amount int) error {
	allIn := g.potManager.GetParticipantAllInAmount(p)
	if amount > allIn {
		return fmt.Errorf("bet of %d chips exceeds your stack", amount)
	}

	minimum := BigBlind
	if anAction == action.Raise {
		minimum = g.potManager.GetBet() + BigBlind
	}

	// betting the entire stack is always a legal completion
	if amount < minimum && amount != allIn {
		if anAction == action.Raise {
			return fmt.Errorf("raise must be to at least %d chips", minimum)
		}

		return fmt.Errorf("bet must be at least %d chips", minimum)
	}

	return nil
}
