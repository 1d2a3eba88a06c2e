package holdem

import (
	"encoding/json"
	"fmt"
)

// Stage is the phase of the hand, tied to how many community cards are revealed
type Stage int

// stages advance strictly forward
const (
	StagePreflop Stage = iota
	StageFlop
	StageTurn
	StageRiver
	StageFinished
)

// String returns the string representation of a stage
func (s Stage) String() string {
	switch s {
	case StagePreflop:
		return "preflop"
	case StageFlop:
		return "flop"
	case StageTurn:
		return "turn"
	case StageRiver:
		return "river"
	case StageFinished:
		return "finished"
	default:
		panic(fmt.Sprintf("unknown stage: %d", int(s)))
	}
}

// MarshalJSON encodes the stage as its string form
func (s Stage) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON decodes the stage from its string form
func (s *Stage) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}

	stage, err := StageFromString(str)
	if err != nil {
		return err
	}

	*s = stage
	return nil
}

// StageFromString parses a stage from its string form
func StageFromString(s string) (Stage, error) {
	for stage := StagePreflop; stage <= StageFinished; stage++ {
		if stage.String() == s {
			return stage, nil
		}
	}

	return 0, fmt.Errorf("unknown stage: %s", s)
}
