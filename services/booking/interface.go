package booking

import (
	bookingRepo "tundavala/database/repository/booking"
	guideRepo "tundavala/database/repository/guide"
	tourRepo "tundavala/database/repository/tour"
	userRepo "tundavala/database/repository/user"
	"tundavala/models"
	"tundavala/services/payment"

	"github.com/hibiken/asynq"
)

// BookingService covers the reservation lifecycle.
type BookingService interface {
	// Create opens a new pending booking for a tourist.
	Create(touristID string, input models.BookingInput) (*models.Booking, error)
	GetByID(id string) (*models.Booking, error)
	ListByTourist(touristID string) ([]models.Booking, error)
	ListByGuide(guideID string) ([]models.Booking, error)
	ListAll() ([]models.Booking, error)
	// Transition moves a booking along the lifecycle. Confirming creates the
	// pending payment record; every other edge is a bare status change.
	Transition(id, newStatus string) (*models.Booking, error)
	// EnsurePayment opens the payment record for a confirmed booking that is
	// missing one. Repair path for a confirmation whose payment write failed.
	EnsurePayment(id string) (*models.Payment, error)
	// ExpireStalePending cancels bookings still pending after the configured
	// window. Invoked by the background worker.
	ExpireStalePending() (int, error)
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Repo       bookingRepo.BookingRepository
	Tours      tourRepo.TourRepository
	Guides     guideRepo.GuideRepository
	Users      userRepo.UserRepository
	PaymentSvc payment.PaymentService
	// Queue enqueues expiry/reminder tasks; nil disables scheduling.
	Queue *asynq.Client
	// PendingTTLHours is how long a booking may stay pending.
	PendingTTLHours int
}
