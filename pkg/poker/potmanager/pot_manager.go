package potmanager

import (
	"errors"
	"fmt"
	"sort"
)

// ParticipantError is an error that happened because of a participant error
type ParticipantError string

func (p ParticipantError) Error() string {
	return string(p)
}

func newParticipantError(format string, a ...interface{}) ParticipantError {
	return ParticipantError(fmt.Sprintf(format, a...))
}

// ErrGameOver is an error when an action is attempted after the game ended
var ErrGameOver = errors.New("game is over")

// ErrRoundOver is an error when the betting round is over
var ErrRoundOver = errors.New("round is over")

// ErrParticipantCannotAct is an error when the participant cannot act
var ErrParticipantCannotAct = ParticipantError("it is not your turn")

type participantInPotMap map[*participantInPot]bool

type pot struct {
	amount            int
	allInParticipants participantInPotMap
}

// PotManager provides capabilities for keeping track of bets and pots.
// The first seated participant posts the small blind, the second posts
// the big blind, and the third is first to act.
type PotManager struct {
	participants map[int]*participantInPot
	tableOrder   []*participantInPot
	smallBlind   int
	bigBlind     int
	pots         []*pot
	// actionStartIndex is where the action started, or changed (i.e., a raise)
	actionStartIndex int
	// actionAtIndex is who is currently making a decision
	actionAtIndex int
	actionAmount  int
	// amountInPlay is how much has been bet or called, but not yet added to the pot
	amountInPlay int

	// needsPotCalculation should be set to true if we need to recalculate the pot
	needsPotCalculation bool

	// isGameOver will prevent any further action from happening
	isGameOver bool
}

// New instantiates a new PotManager
func New(smallBlind, bigBlind int) *PotManager {
	return &PotManager{
		participants: make(map[int]*participantInPot),
		tableOrder:   make([]*participantInPot, 0),
		smallBlind:   smallBlind,
		bigBlind:     bigBlind,
		pots:         []*pot{{}},
	}
}

// SeatParticipant adds a participant to the table in the order called
// This method must be called in order of the players
func (p *PotManager) SeatParticipant(pt Participant) error {
	if pt.Balance() <= 0 {
		return errors.New("cannot seat participant without a balance")
	}

	pip := &participantInPot{
		Participant: pt,
		tableIndex:  len(p.tableOrder),
	}
	p.participants[pt.ID()] = pip
	p.tableOrder = append(p.tableOrder, pip)

	return nil
}

// FinishSeating must be called after all participants have been seated.
// It posts the blinds as live bets and puts the action on the player
// left of the big blind.
func (p *PotManager) FinishSeating() error {
	if len(p.tableOrder) < 3 {
		return errors.New("blinds require at least three participants")
	}

	p.adjustParticipant(p.tableOrder[0], p.smallBlind)
	p.adjustParticipant(p.tableOrder[1], p.bigBlind)
	p.actionAmount = p.bigBlind

	p.actionStartIndex = 2
	p.actionAtIndex = 0

	// blinds may have put a short stack all-in
	for p.actionAtIndex < len(p.tableOrder) && !p.tableOrder[p.normalizedActionAtIndex()].canAct() {
		p.actionAtIndex++
	}

	if p.IsRoundOver() {
		p.needsPotCalculation = true
	}

	return nil
}

// ParticipantFolds handles a fold
func (p *PotManager) ParticipantFolds(pt Participant) error {
	pip, err := p.getActiveParticipantInPot(pt)
	if err != nil {
		return err
	}

	pip.isFolded = true
	p.completeTurn()
	return nil
}

// ParticipantChecks handles a check
func (p *PotManager) ParticipantChecks(pt Participant) error {
	pip, err := p.getActiveParticipantInPot(pt)
	if err != nil {
		return err
	}

	if pip.amountInPlay != p.actionAmount {
		return newParticipantError("you cannot check with an active bet")
	}

	p.completeTurn()
	return nil
}

// ParticipantCalls handles a call. A participant who cannot cover the
// current bet calls for their remaining balance and is all-in.
func (p *PotManager) ParticipantCalls(pt Participant) error {
	pip, err := p.getActiveParticipantInPot(pt)
	if err != nil {
		return err
	}

	if p.actionAmount <= pip.amountInPlay {
		return newParticipantError("you cannot call without an active bet")
	}

	p.adjustParticipant(pip, p.actionAmount)
	p.completeTurn()
	return nil
}

// ParticipantBetsOrRaises will place a bet or a raise for a participant
// This method only enforces that the bet or raise is above the previous bet or raise. Any additional logic
// must be handled by the game.
func (p *PotManager) ParticipantBetsOrRaises(pt Participant, newBetOrRaise int) error {
	pip, err := p.getActiveParticipantInPot(pt)
	if err != nil {
		return err
	}

	if newBetOrRaise <= p.actionAmount {
		return newParticipantError("your bet of %d chips must be greater than the current bet of %d chips", newBetOrRaise, p.actionAmount)
	}

	if newBetOrRaise <= pip.amountInPlay {
		return fmt.Errorf("participant has more in play than the new bet or raise")
	}

	if newBetOrRaise > pip.amountInPlay+pip.Balance() {
		return newParticipantError("bet of %d chips exceeds your stack", newBetOrRaise)
	}

	p.actionStartIndex = pip.tableIndex
	p.actionAtIndex = 0

	p.actionAmount = newBetOrRaise
	p.adjustParticipant(pip, newBetOrRaise)

	p.completeTurn()
	return nil
}

// GetCanActParticipantCount returns the number of participants in the hand who didn't fold or go all-in
func (p *PotManager) GetCanActParticipantCount() int {
	count := 0
	for _, pt := range p.tableOrder {
		if pt.canAct() {
			count++
		}
	}

	return count
}

// GetFoldedCount returns the number of participants who folded
func (p *PotManager) GetFoldedCount() int {
	count := 0
	for _, pt := range p.tableOrder {
		if pt.isFolded {
			count++
		}
	}

	return count
}

func (p *PotManager) adjustParticipant(pip *participantInPot, adjustment int) {
	adjustment -= pip.amountInPlay
	if adjustment >= pip.Balance() {
		adjustment = pip.Balance()
		pip.isAllIn = true
	}

	p.amountInPlay += adjustment
	pip.adjustAmountInPlay(adjustment)
	pip.Participant.AdjustBalance(-1 * adjustment)
}

// GetBet returns the current bet
func (p *PotManager) GetBet() int {
	return p.actionAmount
}

// GetParticipantAllInAmount returns the total a participant can put in play
// this round, including what they already bet
func (p *PotManager) GetParticipantAllInAmount(pt Participant) int {
	pip, ok := p.participants[pt.ID()]
	if !ok {
		return 0
	}

	return pip.amountInPlay + pip.Balance()
}

// IsRoundOver returns true if all eligible participants have acted
func (p *PotManager) IsRoundOver() bool {
	return p.actionAtIndex >= len(p.tableOrder)
}

// GetInTurnParticipant returns the participant who is to act next
// Returns nil if the round is over
func (p *PotManager) GetInTurnParticipant() Participant {
	if p.IsRoundOver() {
		return nil
	}

	return p.tableOrder[p.normalizedActionAtIndex()].Participant
}

// Pots returns a list of pots
func (p *PotManager) Pots() Pots {
	pots := make([]*Pot, len(p.pots))
	for i, pot := range p.pots {
		a := make([]Participant, 0, len(pot.allInParticipants))
		for pip := range pot.allInParticipants {
			a = append(a, pip.Participant)
		}

		pots[i] = &Pot{
			Amount:            pot.amount,
			AllInParticipants: a,
		}
	}

	return pots
}

// Total returns all chips committed to the hand, including live bets not
// yet swept into a pot
func (p *PotManager) Total() int {
	return p.Pots().Total() + p.amountInPlay
}

// PayWinners will adjust balance for the winners and return the final payouts.
// Winners must be provided as tiers, best hand first. A pot that cannot be
// split evenly pays the odd chips to the earliest seats in the tier.
// Each pot is emptied as it is paid, so Total() reports zero afterwards.
func (p *PotManager) PayWinners(winners [][]Participant) (map[Participant]int, error) {
	if !p.isGameOver {
		return nil, errors.New("game is not over")
	}

	p.calculatePot()

	pots := p.pots
	payouts := make(map[Participant]int)

MainLoop:
	for _, winnerGroup := range winners {
		// convert to list of participantInPot objects. Sort by the table order
		// to ensure we pay left of the dealer any uneven amounts
		pipWinnerGroup := make([]*participantInPot, len(winnerGroup))
		for i, winner := range winnerGroup {
			pipWinnerGroup[i] = p.participants[winner.ID()]
		}
		sort.Sort(sortByTableIndex(pipWinnerGroup))

		for potIndex, pot := range pots {
			if pot.amount == 0 {
				continue
			}

			// remove any users who went all-in
			tmp := make([]*participantInPot, 0, len(pipWinnerGroup))
			for i, winner := range pipWinnerGroup {
				winnings := pot.amount / len(pipWinnerGroup)
				if i < pot.amount%len(pipWinnerGroup) {
					winnings++
				}

				winner.AdjustBalance(winnings)
				payout := payouts[winner.Participant]
				payouts[winner.Participant] = payout + winnings

				if _, ok := pot.allInParticipants[winner]; ok {
					continue
				}

				tmp = append(tmp, winner)
			}
			pipWinnerGroup = tmp
			pot.amount = 0

			if potIndex+1 == len(pots) {
				break MainLoop
			} else if len(pipWinnerGroup) == 0 {
				break
			}
		}
	}

	return payouts, nil
}

// completeTurn must be called after a participant bets, raises, checks, calls, or folds
func (p *PotManager) completeTurn() {
	// stay in for loop until we find a player who can act
	for p.actionAtIndex++; p.actionAtIndex < len(p.tableOrder); p.actionAtIndex++ {
		pip := p.tableOrder[p.normalizedActionAtIndex()]
		// player can act
		if pip.canAct() {
			return
		}
	}

	// if we reached this point, all players have acted
	p.needsPotCalculation = true
}

func (p *PotManager) calculatePot() {
	if !p.needsPotCalculation {
		return
	}

	p.needsPotCalculation = false

	if p.actionAmount == 0 {
		return
	}

	allInAmounts := make(map[int]map[*participantInPot]bool)
	totalAction := 0
	for _, pip := range p.tableOrder {
		totalAction += pip.amountInPlay

		// participant went all-in this round
		if !pip.isFolded && pip.isAllIn && pip.amountInPlay > 0 {
			pips, ok := allInAmounts[pip.amountInPlay]
			if !ok {
				pips = make(map[*participantInPot]bool)
				allInAmounts[pip.amountInPlay] = pips
			}

			pips[pip] = true
		}
	}

	currentPot := p.pots[len(p.pots)-1]
	// if it's not nil, then there is someone all-in on this pot. create a side pot
	if currentPot.allInParticipants != nil {
		currentPot = &pot{}
		p.pots = append(p.pots, currentPot)
	}

	// no all-in
	if len(allInAmounts) == 0 {
		currentPot.amount += totalAction
		p.amountInPlay = 0
		return
	}

	// add the bet as the final entry to allInAmounts, even if it isn't actually an all-in
	// just don't do it if we already have a value there
	if _, ok := allInAmounts[p.actionAmount]; !ok {
		allInAmounts[p.actionAmount] = nil
	}

	amounts := make([]int, 0, len(allInAmounts))
	for amount := range allInAmounts {
		amounts = append(amounts, amount)
	}
	sort.Ints(amounts)

	prevAmount := 0
	for i, allInAmount := range amounts {
		potAmount := 0
		for _, pip := range p.tableOrder {
			amount := pip.amountInPlay
			if amount > allInAmount {
				amount = allInAmount
			}

			diffAmount := amount - prevAmount
			if diffAmount < 0 {
				diffAmount = 0
			}

			potAmount += diffAmount
		}

		currentPot.amount += potAmount
		currentPot.allInParticipants = allInAmounts[allInAmount]

		if i+1 != len(amounts) {
			currentPot = &pot{}
			p.pots = append(p.pots, currentPot)
		}

		prevAmount = allInAmount
	}

	p.amountInPlay = 0
}

// NextRound advances to the next betting round
func (p *PotManager) NextRound() error {
	if !p.IsRoundOver() {
		return errors.New("round is not over")
	}

	p.calculatePot()
	p.reset()
	return nil
}

func (p *PotManager) reset() {
	for _, pip := range p.tableOrder {
		pip.reset()
	}

	p.actionAmount = 0
	p.amountInPlay = 0
	p.actionAtIndex = 0

	// reset actionStartIndex to first non-folded, non-all-in player
	for p.actionStartIndex = 0; p.actionStartIndex < len(p.tableOrder) && !p.tableOrder[p.actionStartIndex].canAct(); p.actionStartIndex++ {
		// no-op
	}
}

func (p *PotManager) normalizedActionAtIndex() int {
	return (p.actionStartIndex + p.actionAtIndex) % len(p.tableOrder)
}

// getActiveParticipantInPot returns the participantInPot if the participant is on the clock, otherwise
// an error if the participant cannot act
func (p *PotManager) getActiveParticipantInPot(pt Participant) (*participantInPot, error) {
	if p.isGameOver {
		return nil, ErrGameOver
	}

	pit := p.GetInTurnParticipant()
	if pit == nil {
		return nil, ErrRoundOver
	}

	if pit.ID() != pt.ID() {
		return nil, ErrParticipantCannotAct
	}

	pip, ok := p.participants[pt.ID()]
	if !ok {
		panic("participant not found")
	}

	return pip, nil
}

// EndGame will prevent further action from happening. Any live bets are
// swept into the pot on the next PayWinners call.
func (p *PotManager) EndGame() {
	p.isGameOver = true
	if p.amountInPlay > 0 {
		p.needsPotCalculation = true
	}
}
