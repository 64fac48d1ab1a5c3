package paymentRepo

import "tundavala/models"

// PaymentRepository defines methods for payment record data access.
type PaymentRepository interface {
	// GetByID retrieves a payment by its ID.
	GetByID(id string) (*models.Payment, error)
	// GetByBooking retrieves the payment attached to a booking, or nil.
	GetByBooking(bookingID string) (*models.Payment, error)
	// GetByGuide retrieves all payments for a guide, newest first.
	GetByGuide(guideID string) ([]models.Payment, error)
	// GetAll retrieves all payments, newest first.
	GetAll() ([]models.Payment, error)
	// Create inserts a new payment record.
	Create(payment *models.Payment) error
	// UpdateStatus sets the payment status only if the stored status still
	// equals expectedStatus. Returns false when the guard did not match.
	UpdateStatus(id, expectedStatus, newStatus string) (bool, error)
	// SetTransactionID stores the processor reference on a payment.
	SetTransactionID(id, transactionID string) error
	// RevenueSummary aggregates completed payments server-side.
	RevenueSummary() (*models.RevenueSummary, error)
}
