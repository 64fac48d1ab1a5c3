package booking

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is returned when a booking status change does not
// follow the allowed lifecycle edges.
var ErrInvalidTransition = errors.New("invalid booking status transition")

// ErrConcurrentUpdate is returned when the booking's stored status changed
// between the read and the conditional write.
var ErrConcurrentUpdate = errors.New("booking was modified concurrently, retry")

// TransitionError wraps ErrInvalidTransition with the offending edge.
type TransitionError struct {
	From string
	To   string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot move booking from %q to %q", e.From, e.To)
}

func (e *TransitionError) Unwrap() error { return ErrInvalidTransition }
