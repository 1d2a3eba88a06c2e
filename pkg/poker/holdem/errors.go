package holdem

import "errors"

// ErrInvalidPlayerCount is an error when a hand is not started with exactly six players
var ErrInvalidPlayerCount = errors.New("hand requires exactly six players with ids 1 through 6")

// ErrInvalidStack is an error when a starting stack is zero or negative
var ErrInvalidStack = errors.New("starting stacks must be greater than zero")

// ErrHandFinished is an error when an action is attempted on a finished hand
var ErrHandFinished = errors.New("hand is finished")

// ErrPlayerNotFound is an error when the player id is not seated in the hand
var ErrPlayerNotFound = errors.New("player not found")

// EvaluationError is returned when a showdown cannot be evaluated cleanly.
// Chip state is left untouched so the hand can be inspected.
type EvaluationError struct {
	Reason string
}

func (e *EvaluationError) Error() string {
	return "cannot evaluate showdown: " + e.Reason
}
