package engine

import "errors"

// Rejections returned when a call does not fit the table state. None of them
// change the phase.
var (
	ErrWrongPhase        = errors.New("engine: action not allowed in this phase")
	ErrInvalidBet        = errors.New("engine: bet must be positive")
	ErrInsufficientFunds = errors.New("engine: insufficient funds")
	ErrNotActiveHand     = errors.New("engine: hand is not the active hand")
	ErrIllegalAction     = errors.New("engine: action not allowed on this hand")
)
