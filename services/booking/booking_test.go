package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"tundavala/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBookingRepo struct {
	bookings  map[string]*models.Booking
	interfere string // status written behind the caller's back before UpdateStatus
}

func newFakeBookingRepo(bookings ...*models.Booking) *fakeBookingRepo {
	repo := &fakeBookingRepo{bookings: map[string]*models.Booking{}}
	for _, b := range bookings {
		repo.bookings[b.ID] = b
	}
	return repo
}

func (r *fakeBookingRepo) GetByID(id string) (*models.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, errors.New("booking not found")
	}
	snapshot := *b
	return &snapshot, nil
}

func (r *fakeBookingRepo) GetByTourist(touristID string) ([]models.Booking, error) { return nil, nil }
func (r *fakeBookingRepo) GetByGuide(guideID string) ([]models.Booking, error)     { return nil, nil }
func (r *fakeBookingRepo) GetAll() ([]models.Booking, error)                       { return nil, nil }

func (r *fakeBookingRepo) Create(b *models.Booking) error {
	r.bookings[b.ID] = b
	return nil
}

func (r *fakeBookingRepo) UpdateStatus(id, expectedStatus, newStatus string) (bool, error) {
	b, ok := r.bookings[id]
	if !ok {
		return false, errors.New("booking not found")
	}
	if r.interfere != "" {
		b.Status = r.interfere
		r.interfere = ""
	}
	if b.Status != expectedStatus {
		return false, nil
	}
	b.Status = newStatus
	return true, nil
}

func (r *fakeBookingRepo) GetStalePending(cutoff time.Time) ([]models.Booking, error) {
	var stale []models.Booking
	for _, b := range r.bookings {
		if b.Status == models.BookingPending && b.CreatedAt.Before(cutoff) {
			stale = append(stale, *b)
		}
	}
	return stale, nil
}

func (r *fakeBookingRepo) Count() (int64, error) { return int64(len(r.bookings)), nil }

type fakePaymentService struct {
	created []string
	fail    bool
}

func (s *fakePaymentService) CreateForBooking(b *models.Booking) (*models.Payment, error) {
	if s.fail {
		return nil, errors.New("payment store down")
	}
	s.created = append(s.created, b.ID)
	return &models.Payment{BookingID: b.ID}, nil
}

func (s *fakePaymentService) GetByID(id string) (*models.Payment, error)      { return nil, nil }
func (s *fakePaymentService) GetByBooking(id string) (*models.Payment, error) { return nil, nil }
func (s *fakePaymentService) ListAll() ([]models.Payment, error)              { return nil, nil }
func (s *fakePaymentService) ListByGuide(id string) ([]models.Payment, error) { return nil, nil }
func (s *fakePaymentService) SetStatus(ctx context.Context, id, st string) (*models.Payment, error) {
	return nil, nil
}
func (s *fakePaymentService) CreatePaymentIntent(id string) (string, error) { return "", nil }
func (s *fakePaymentService) Revenue() (*models.RevenueSummary, error)      { return nil, nil }

func TestTransitionConfirmCreatesPayment(t *testing.T) {
	repo := newFakeBookingRepo(&models.Booking{ID: "b1", Status: models.BookingPending})
	payments := &fakePaymentService{}
	svc := &DefaultBookingService{Repo: repo, PaymentSvc: payments}

	updated, err := svc.Transition("b1", models.BookingConfirmed)
	require.NoError(t, err)
	assert.Equal(t, models.BookingConfirmed, updated.Status)
	assert.Equal(t, []string{"b1"}, payments.created)
}

func TestTransitionPlainEdgeSkipsPayment(t *testing.T) {
	repo := newFakeBookingRepo(&models.Booking{ID: "b1", Status: models.BookingConfirmed})
	payments := &fakePaymentService{}
	svc := &DefaultBookingService{Repo: repo, PaymentSvc: payments}

	updated, err := svc.Transition("b1", models.BookingFinished)
	require.NoError(t, err)
	assert.Equal(t, models.BookingFinished, updated.Status)
	assert.Empty(t, payments.created)
}

func TestTransitionSurfacesPaymentFailure(t *testing.T) {
	repo := newFakeBookingRepo(&models.Booking{ID: "b1", Status: models.BookingPending})
	payments := &fakePaymentService{fail: true}
	svc := &DefaultBookingService{Repo: repo, PaymentSvc: payments}

	// The confirmation lands but the payment record does not; the caller
	// must see the failure instead of a silently incomplete booking.
	_, err := svc.Transition("b1", models.BookingConfirmed)
	require.Error(t, err)
	assert.Equal(t, models.BookingConfirmed, repo.bookings["b1"].Status)
	assert.Empty(t, payments.created)

	// The repair path opens the missing record for the confirmed booking.
	payments.fail = false
	pay, err := svc.EnsurePayment("b1")
	require.NoError(t, err)
	assert.Equal(t, "b1", pay.BookingID)
	assert.Equal(t, []string{"b1"}, payments.created)
}

func TestEnsurePaymentRejectsUnconfirmedBooking(t *testing.T) {
	repo := newFakeBookingRepo(
		&models.Booking{ID: "b1", Status: models.BookingPending},
		&models.Booking{ID: "b2", Status: models.BookingCancelled},
	)
	payments := &fakePaymentService{}
	svc := &DefaultBookingService{Repo: repo, PaymentSvc: payments}

	_, err := svc.EnsurePayment("b1")
	assert.Error(t, err)
	_, err = svc.EnsurePayment("b2")
	assert.Error(t, err)
	assert.Empty(t, payments.created)
}

func TestTransitionRejectsInvalidEdge(t *testing.T) {
	repo := newFakeBookingRepo(&models.Booking{ID: "b1", Status: models.BookingFinished})
	svc := &DefaultBookingService{Repo: repo}

	_, err := svc.Transition("b1", models.BookingPending)
	assert.True(t, errors.Is(err, ErrInvalidTransition))
	assert.Equal(t, models.BookingFinished, repo.bookings["b1"].Status)
}

func TestTransitionDetectsConcurrentUpdate(t *testing.T) {
	repo := newFakeBookingRepo(&models.Booking{ID: "b1", Status: models.BookingPending})
	// Another actor cancels between the read and the conditional write.
	repo.interfere = models.BookingCancelled
	svc := &DefaultBookingService{Repo: repo}

	_, err := svc.Transition("b1", models.BookingConfirmed)
	assert.True(t, errors.Is(err, ErrConcurrentUpdate))
	assert.Equal(t, models.BookingCancelled, repo.bookings["b1"].Status)
}

func TestExpireStalePending(t *testing.T) {
	old := time.Now().Add(-72 * time.Hour)
	repo := newFakeBookingRepo(
		&models.Booking{ID: "stale", Status: models.BookingPending, CreatedAt: old},
		&models.Booking{ID: "fresh", Status: models.BookingPending, CreatedAt: time.Now()},
		&models.Booking{ID: "confirmed", Status: models.BookingConfirmed, CreatedAt: old},
	)
	svc := &DefaultBookingService{Repo: repo, PendingTTLHours: 48}

	expired, err := svc.ExpireStalePending()
	require.NoError(t, err)
	assert.Equal(t, 1, expired)
	assert.Equal(t, models.BookingCancelled, repo.bookings["stale"].Status)
	assert.Equal(t, models.BookingPending, repo.bookings["fresh"].Status)
	assert.Equal(t, models.BookingConfirmed, repo.bookings["confirmed"].Status)
}
