package wallet

import (
	"errors"
	"fmt"
)

// ErrInsufficientBalance is returned when a withdrawal request exceeds the
// guide's current balance.
var ErrInsufficientBalance = errors.New("insufficient wallet balance")

// ErrInvalidTransition is returned when a withdrawal status change does not
// follow the allowed lifecycle edges.
var ErrInvalidTransition = errors.New("invalid withdrawal status transition")

// TransitionError wraps ErrInvalidTransition with the offending edge.
type TransitionError struct {
	From string
	To   string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot move withdrawal from %q to %q", e.From, e.To)
}

func (e *TransitionError) Unwrap() error { return ErrInvalidTransition }
