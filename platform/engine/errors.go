package engine

import "errors"

var (
	// ErrInvalidTransition marks an operation invoked in the wrong phase.
	// Callers treat it as a rejected no-op, never as a fatal condition.
	ErrInvalidTransition = errors.New("operation not valid in current game phase")
	ErrInsufficientFunds = errors.New("insufficient spendable balance")
	ErrInvalidReference  = errors.New("unknown player, space or request")
	ErrNotYourTurn       = errors.New("not this player's turn")
)
