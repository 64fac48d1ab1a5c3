package booking

import (
	"encoding/json"
	"fmt"
	"time"

	"tundavala/models"
	"tundavala/utils"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// Asynq task types for the scheduled booking jobs.
const (
	TypeBookingExpire   = "booking:expire"
	TypeBookingReminder = "booking:reminder"
)

// BookingTaskPayload is the payload for the scheduled booking tasks.
type BookingTaskPayload struct {
	BookingID string `json:"booking_id"`
}

// ComputePrice derives the total price of a booking. A package booking is
// priced per person off the package; a direct guide booking is the hourly
// rate times the duration, for the whole group.
func ComputePrice(pkg *models.TourPackage, guide *models.Guide, duration, groupSize int) float64 {
	if pkg != nil {
		return pkg.Price * float64(groupSize)
	}
	if duration <= 0 {
		duration = 1
	}
	return guide.PricePerHour * float64(duration)
}

// Create opens a new pending booking for a tourist.
func (s *DefaultBookingService) Create(touristID string, input models.BookingInput) (*models.Booking, error) {
	guide, err := s.Guides.GetByID(input.GuideID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch guide: %w", err)
	}
	if guide == nil {
		return nil, fmt.Errorf("guide %s not found", input.GuideID)
	}
	if !guide.IsActive {
		return nil, fmt.Errorf("guide %s is not accepting bookings", input.GuideID)
	}

	tourist, err := s.Users.GetByID(touristID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tourist: %w", err)
	}

	var pkg *models.TourPackage
	if input.PackageID != "" {
		pkg, err = s.Tours.GetByID(input.PackageID)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch package: %w", err)
		}
		if pkg.GuideID != input.GuideID {
			return nil, fmt.Errorf("package %s does not belong to guide %s", input.PackageID, input.GuideID)
		}
		if !pkg.IsActive {
			return nil, fmt.Errorf("package %s is not bookable", input.PackageID)
		}
		if pkg.MaxGroupSize > 0 && input.GroupSize > pkg.MaxGroupSize {
			return nil, fmt.Errorf("group size %d exceeds package limit %d", input.GroupSize, pkg.MaxGroupSize)
		}
	}

	duration := input.Duration
	if pkg != nil {
		duration = pkg.Duration
	}

	booking := &models.Booking{
		ID:          uuid.New().String(),
		GuideID:     guide.ID,
		GuideName:   guide.Name,
		TouristID:   tourist.ID,
		TouristName: tourist.Name,
		Date:        input.Date,
		Time:        input.Time,
		Duration:    duration,
		GroupSize:   input.GroupSize,
		TotalPrice:  ComputePrice(pkg, guide, duration, input.GroupSize),
		Status:      models.BookingPending,
		Notes:       input.Notes,
	}
	if pkg != nil {
		booking.PackageID = pkg.ID
		booking.PackageTitle = pkg.Title
	}

	if err := s.Repo.Create(booking); err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	s.scheduleTasks(booking)
	return booking, nil
}

// scheduleTasks enqueues the expiry sweep and the day-before reminder for a
// new booking. Scheduling failures are logged, never fatal.
func (s *DefaultBookingService) scheduleTasks(booking *models.Booking) {
	if s.Queue == nil {
		return
	}
	logger := utils.GetLogger()

	payload, err := json.Marshal(BookingTaskPayload{BookingID: booking.ID})
	if err != nil {
		logger.Error("failed to marshal booking task payload", zap.Error(err))
		return
	}

	expireIn := time.Duration(s.PendingTTLHours) * time.Hour
	if _, err := s.Queue.Enqueue(asynq.NewTask(TypeBookingExpire, payload), asynq.ProcessIn(expireIn)); err != nil {
		logger.Error("failed to enqueue booking expiry task",
			zap.String("bookingID", booking.ID), zap.Error(err))
	}

	if start, err := time.Parse("2006-01-02 15:04", booking.Date+" "+booking.Time); err == nil {
		remindAt := start.Add(-24 * time.Hour)
		if remindAt.After(time.Now()) {
			if _, err := s.Queue.Enqueue(asynq.NewTask(TypeBookingReminder, payload), asynq.ProcessAt(remindAt)); err != nil {
				logger.Error("failed to enqueue booking reminder task",
					zap.String("bookingID", booking.ID), zap.Error(err))
			}
		}
	}
}

// GetByID retrieves a booking.
func (s *DefaultBookingService) GetByID(id string) (*models.Booking, error) {
	return s.Repo.GetByID(id)
}

// ListByTourist lists a tourist's bookings.
func (s *DefaultBookingService) ListByTourist(touristID string) ([]models.Booking, error) {
	return s.Repo.GetByTourist(touristID)
}

// ListByGuide lists a guide's bookings.
func (s *DefaultBookingService) ListByGuide(guideID string) ([]models.Booking, error) {
	return s.Repo.GetByGuide(guideID)
}

// ListAll lists every booking for the admin back office.
func (s *DefaultBookingService) ListAll() ([]models.Booking, error) {
	return s.Repo.GetAll()
}

// Transition moves a booking along the lifecycle. The status write is
// conditioned on the status read, so two racing updates cannot both land.
func (s *DefaultBookingService) Transition(id, newStatus string) (*models.Booking, error) {
	booking, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking: %w", err)
	}

	if err := ValidateTransition(booking.Status, newStatus); err != nil {
		return nil, err
	}

	matched, err := s.Repo.UpdateStatus(id, booking.Status, newStatus)
	if err != nil {
		return nil, fmt.Errorf("failed to update booking status: %w", err)
	}
	if !matched {
		return nil, ErrConcurrentUpdate
	}

	if newStatus == models.BookingConfirmed && s.PaymentSvc != nil {
		if _, err := s.PaymentSvc.CreateForBooking(booking); err != nil {
			// The confirmation already landed; the payment record is what
			// must not be lost. Surface the failure so it is not silently
			// skipped: EnsurePayment re-opens it for the confirmed booking.
			utils.GetLogger().Error("failed to create payment for confirmed booking",
				zap.String("bookingID", id), zap.Error(err))
			return nil, fmt.Errorf("booking confirmed but payment record creation failed: %w", err)
		}
	}

	booking.Status = newStatus
	return booking, nil
}

// EnsurePayment opens the payment record for a confirmed booking that is
// missing one. CreateForBooking is idempotent, so calling this on a booking
// that already has its payment returns the existing record.
func (s *DefaultBookingService) EnsurePayment(id string) (*models.Payment, error) {
	booking, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking: %w", err)
	}
	if booking.Status != models.BookingConfirmed && booking.Status != models.BookingFinished {
		return nil, fmt.Errorf("booking %s is %s, only confirmed bookings carry a payment", id, booking.Status)
	}
	return s.PaymentSvc.CreateForBooking(booking)
}

// ExpireStalePending cancels bookings still pending past the configured
// window and returns how many were cancelled.
func (s *DefaultBookingService) ExpireStalePending() (int, error) {
	cutoff := time.Now().Add(-time.Duration(s.PendingTTLHours) * time.Hour)
	stale, err := s.Repo.GetStalePending(cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to list stale bookings: %w", err)
	}

	expired := 0
	for _, b := range stale {
		matched, err := s.Repo.UpdateStatus(b.ID, models.BookingPending, models.BookingCancelled)
		if err != nil {
			utils.GetLogger().Error("failed to expire booking",
				zap.String("bookingID", b.ID), zap.Error(err))
			continue
		}
		if matched {
			expired++
		}
	}
	return expired, nil
}
