package potmanager

import "sort"

// WinManager groups showdown participants into tiers by hand strength.
// Participants within a tier keep the order they were added in, which callers
// rely on to preserve seat order.
type WinManager struct {
	tiers map[int][]Participant
}

// NewWinManager instantiates a new WinManager
func NewWinManager() *WinManager {
	return &WinManager{
		tiers: make(map[int][]Participant),
	}
}

// AddParticipant records a participant's hand strength
func (w *WinManager) AddParticipant(p Participant, handStrength int) {
	w.tiers[handStrength] = append(w.tiers[handStrength], p)
}

// GetSortedTiers returns the participants grouped by strength, best hand first
func (w *WinManager) GetSortedTiers() [][]Participant {
	strengths := make([]int, 0, len(w.tiers))
	for strength := range w.tiers {
		strengths = append(strengths, strength)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(strengths)))

	tiers := make([][]Participant, len(strengths))
	for i, strength := range strengths {
		tiers[i] = w.tiers[strength]
	}

	return tiers
}
