package bookingRepo

import (
	"time"

	"tundavala/models"
)

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	// GetByID retrieves a booking by its ID.
	GetByID(id string) (*models.Booking, error)
	// GetByTourist retrieves all bookings made by a tourist, newest first.
	GetByTourist(touristID string) ([]models.Booking, error)
	// GetByGuide retrieves all bookings for a guide, newest first.
	GetByGuide(guideID string) ([]models.Booking, error)
	// GetAll retrieves all bookings, newest first.
	GetAll() ([]models.Booking, error)
	// Create inserts a new booking.
	Create(booking *models.Booking) error
	// UpdateStatus sets the booking status only if the stored status still
	// equals expectedStatus. Returns false when the guard did not match.
	UpdateStatus(id, expectedStatus, newStatus string) (bool, error)
	// GetStalePending retrieves bookings still pending that were created
	// before the cutoff.
	GetStalePending(cutoff time.Time) ([]models.Booking, error)
	// Count counts all bookings.
	Count() (int64, error)
}
