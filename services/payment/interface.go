package payment

import (
	"context"

	paymentRepo "tundavala/database/repository/payment"
	walletRepo "tundavala/database/repository/wallet"
	"tundavala/models"
)

// PaymentService covers payment records, the checkout rail and revenue
// aggregation.
type PaymentService interface {
	// CreateForBooking opens the pending payment record for a confirmed
	// booking, fixing the fee split at creation time.
	CreateForBooking(booking *models.Booking) (*models.Payment, error)
	GetByID(id string) (*models.Payment, error)
	GetByBooking(bookingID string) (*models.Payment, error)
	ListAll() ([]models.Payment, error)
	ListByGuide(guideID string) ([]models.Payment, error)
	// SetStatus applies an admin status edit. Moving into completed credits
	// the guide wallet with the earnings exactly once.
	SetStatus(ctx context.Context, id, newStatus string) (*models.Payment, error)
	// CreatePaymentIntent opens a Stripe payment intent for a pending payment.
	CreatePaymentIntent(paymentID string) (clientSecret string, err error)
	// Revenue aggregates completed payments.
	Revenue() (*models.RevenueSummary, error)
}

// DefaultPaymentService is the production implementation.
type DefaultPaymentService struct {
	Repo    paymentRepo.PaymentRepository
	Wallets walletRepo.WalletRepository
	// FeePercent is the platform commission in percent, fixed per deployment.
	FeePercent float64
}
