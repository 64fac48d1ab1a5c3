package booking

import "tundavala/models"

// allowedTransitions enumerates every legal booking status edge. A pending
// booking is confirmed or cancelled; a confirmed one finishes or is
// cancelled. Finished and cancelled are terminal, and no edge runs backwards.
var allowedTransitions = map[string][]string{
	models.BookingPending:   {models.BookingConfirmed, models.BookingCancelled},
	models.BookingConfirmed: {models.BookingFinished, models.BookingCancelled},
	models.BookingFinished:  {},
	models.BookingCancelled: {},
}

// CanTransition reports whether a booking may move from one status to another.
func CanTransition(from, to string) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// ValidateTransition returns a TransitionError for any edge CanTransition
// rejects, including unknown statuses and self-transitions.
func ValidateTransition(from, to string) error {
	if !CanTransition(from, to) {
		return &TransitionError{From: from, To: to}
	}
	return nil
}

// IsTerminal reports whether a status admits no further transitions.
func IsTerminal(status string) bool {
	next, known := allowedTransitions[status]
	return known && len(next) == 0
}
