package potmanager

import "encoding/json"

// Pot is a single main or side pot
type Pot struct {
	Amount            int
	AllInParticipants []Participant
}

type potJSON struct {
	Amount            int   `json:"amount"`
	AllInParticipants []int `json:"allInParticipants"`
}

// MarshalJSON provides custom marshalling
func (p Pot) MarshalJSON() ([]byte, error) {
	ids := make([]int, len(p.AllInParticipants))
	for i, p := range p.AllInParticipants {
		ids[i] = p.ID()
	}

	return json.Marshal(potJSON{
		Amount:            p.Amount,
		AllInParticipants: ids,
	})
}

// Pots is an ordered collection of pots, main pot first
type Pots []*Pot

// Total returns the combined total of all pots
func (p Pots) Total() int {
	total := 0
	for _, pot := range p {
		total += pot.Amount
	}

	return total
}
