package holdem

import (
	"fmt"
	"time"

	"github.com/QuangAnhPhan/poker-app/pkg/poker/handanalyzer"
	"github.com/QuangAnhPhan/poker-app/pkg/poker/potmanager"
	"github.com/sirupsen/logrus"
)

// advanceGame drives the hand forward after an accepted action. It runs to
// completion: a single call may sweep the betting round, deal streets, and
// resolve the showdown.
func (g *Game) advanceGame() error {
	if remaining := g.nonFoldedParticipants(); len(remaining) == 1 {
		return g.finishByFold(remaining[0])
	}

	if !g.potManager.IsRoundOver() {
		return nil
	}

	if g.stage == StageRiver {
		return g.showdown()
	}

	if g.potManager.GetCanActParticipantCount() < 2 {
		return g.fastForward()
	}

	if err := g.potManager.NextRound(); err != nil {
		return err
	}

	return g.dealNextStreet()
}

// dealNextStreet advances the stage one step and deals its community cards,
// burning one card first
func (g *Game) dealNextStreet() error {
	if _, err := g.deck.Draw(); err != nil {
		return err
	}

	g.stage++

	var count int
	switch g.stage {
	case StageFlop:
		count = 3
	case StageTurn, StageRiver:
		count = 1
	default:
		return fmt.Errorf("cannot deal community cards at stage %s", g.stage)
	}

	dealt := make([]string, 0, count)
	for i := 0; i < count; i++ {
		card, err := g.deck.Draw()
		if err != nil {
			return err
		}

		g.community.AddCard(card)
		dealt = append(dealt, card.String())
	}

	switch g.stage {
	case StageFlop:
		g.logf("Flop cards dealt: %s", concatCards(g.community))
	case StageTurn:
		g.logf("Turn card dealt: %s", dealt[0])
	case StageRiver:
		g.logf("River card dealt: %s", dealt[0])
	}

	return nil
}

// fastForward deals all remaining community cards without further betting
// and goes straight to showdown. Called when too few players can still act.
func (g *Game) fastForward() error {
	for g.stage < StageRiver {
		if err := g.dealNextStreet(); err != nil {
			return err
		}
	}

	return g.showdown()
}

// showdown evaluates every remaining player's best five-card hand and pays
// the pots by descending strength tier
func (g *Game) showdown() error {
	contenders := g.nonFoldedParticipants()

	if len(g.community) != 5 {
		return &EvaluationError{Reason: fmt.Sprintf("expected 5 community cards, have %d", len(g.community))}
	}

	for _, p := range contenders {
		if len(p.cards) != 2 {
			return &EvaluationError{Reason: fmt.Sprintf("%s has %d hole cards", p.name, len(p.cards))}
		}
	}

	wm := potmanager.NewWinManager()
	hands := make(map[int]handanalyzer.Hand, len(contenders))
	for _, p := range contenders {
		cards := append(p.cards.Clone(), g.community...)
		ha := handanalyzer.New(5, cards)
		wm.AddParticipant(p, ha.GetStrength())
		hands[p.PlayerID] = ha.GetHand()
	}

	g.potManager.EndGame()

	pot := g.potManager.Total()
	tiers := wm.GetSortedTiers()
	payouts, err := g.potManager.PayWinners(tiers)
	if err != nil {
		return err
	}

	for _, p := range contenders {
		if payouts[p] > 0 {
			g.logf("%s wins %d chips with a %s", p.name, payouts[p], hands[p.PlayerID])
		}
	}

	// the best hand's earliest seat; tiers preserve seat order
	winner := tiers[0][0].(*Participant)

	g.finish(winner.PlayerID, fmt.Sprintf("%s wins the hand with a %s", winner.name, hands[winner.PlayerID]), pot)
	return nil
}

// finishByFold awards the entire pot to the last player standing
func (g *Game) finishByFold(winner *Participant) error {
	g.potManager.EndGame()

	pot := g.potManager.Total()
	payouts, err := g.potManager.PayWinners([][]potmanager.Participant{{winner}})
	if err != nil {
		return err
	}

	g.logf("%s wins %d chips", winner.name, payouts[winner])
	g.finish(winner.PlayerID, fmt.Sprintf("%s wins (all others folded)", winner.name), pot)
	return nil
}

func (g *Game) finish(winnerID int, reason string, pot int) {
	g.stage = StageFinished
	g.finished = true
	g.winnerID = winnerID
	g.winnerReason = reason
	g.finalPot = pot
	g.finishedAt = time.Now()

	g.logf("Final pot was %d", pot)

	g.logger.WithFields(logrus.Fields{
		"game":   g.id,
		"winner": winnerID,
		"pot":    pot,
	}).Info("hand finished")
}
