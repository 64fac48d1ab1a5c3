package booking

import (
	"errors"
	"testing"

	"tundavala/models"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		name    string
		from    string
		to      string
		allowed bool
	}{
		{"pending to confirmed", models.BookingPending, models.BookingConfirmed, true},
		{"pending to cancelled", models.BookingPending, models.BookingCancelled, true},
		{"confirmed to finished", models.BookingConfirmed, models.BookingFinished, true},
		{"confirmed to cancelled", models.BookingConfirmed, models.BookingCancelled, true},
		{"pending to finished skips confirmation", models.BookingPending, models.BookingFinished, false},
		{"finished is terminal", models.BookingFinished, models.BookingPending, false},
		{"cancelled is terminal", models.BookingCancelled, models.BookingConfirmed, false},
		{"no backward edge", models.BookingConfirmed, models.BookingPending, false},
		{"self transition rejected", models.BookingPending, models.BookingPending, false},
		{"unknown source rejected", "Desconhecido", models.BookingConfirmed, false},
		{"unknown target rejected", models.BookingPending, "Desconhecido", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.allowed, CanTransition(tc.from, tc.to))
		})
	}
}

func TestValidateTransitionError(t *testing.T) {
	err := ValidateTransition(models.BookingFinished, models.BookingPending)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidTransition))

	var te *TransitionError
	assert.True(t, errors.As(err, &te))
	assert.Equal(t, models.BookingFinished, te.From)
	assert.Equal(t, models.BookingPending, te.To)

	assert.NoError(t, ValidateTransition(models.BookingPending, models.BookingConfirmed))
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, IsTerminal(models.BookingFinished))
	assert.True(t, IsTerminal(models.BookingCancelled))
	assert.False(t, IsTerminal(models.BookingPending))
	assert.False(t, IsTerminal(models.BookingConfirmed))
	assert.False(t, IsTerminal("Desconhecido"))
}

func TestComputePrice(t *testing.T) {
	pkg := &models.TourPackage{Price: 5000}
	guide := &models.Guide{PricePerHour: 2000}

	assert.Equal(t, 15000.0, ComputePrice(pkg, guide, 4, 3), "package bookings are priced per person")
	assert.Equal(t, 8000.0, ComputePrice(nil, guide, 4, 3), "direct bookings are hourly for the whole group")
	assert.Equal(t, 2000.0, ComputePrice(nil, guide, 0, 1), "zero duration falls back to one hour")
}
