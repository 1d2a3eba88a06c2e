package handanalyzer

import (
	"github.com/QuangAnhPhan/poker-app/pkg/deck"
)

// used to keep track of the straight progress
type straightTracker struct {
	streak deck.Hand
}

func (s *straightTracker) resetWithCard(card deck.Card) {
	s.streak = deck.Hand{card}
}

// checkStraight will check for a straight
// Cards must be fed in descending rank order. If a straight has been found,
// the highest rank in the straight is assigned to "val".
func (h *HandAnalyzer) checkStraight(card deck.Card, st *straightTracker, aceValue int, val *int) {
	cardRank := card.Rank
	if cardRank == deck.Ace && aceValue == deck.LowAce {
		cardRank = deck.LowAce
	}

	// currently no streak, so we start from scratch
	if len(st.streak) == 0 {
		st.resetWithCard(card)
		return
	}

	lastCard, _ := st.streak.LastCard()
	lastRank := lastCard.Rank

	switch lastRank - cardRank {
	case 0:
		// same rank
		return
	case 1:
		// found the next card in a straight
		st.streak.AddCard(card)
	default:
		st.resetWithCard(card)
	}

	if len(st.streak) >= h.size {
		firstCard, _ := st.streak.FirstCard()
		*val = firstCard.Rank
	}
}
