package payment

import (
	"context"
	"fmt"
	"math"

	"tundavala/models"
	"tundavala/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// validStatuses enumerates the admin-editable payment statuses.
var validStatuses = map[string]bool{
	models.PaymentPending:   true,
	models.PaymentCompleted: true,
	models.PaymentFailed:    true,
	models.PaymentRefunded:  true,
}

// FeeSplit computes the platform fee and guide earnings for an amount.
// The split is fixed at record creation and never recomputed.
func FeeSplit(amount, feePercent float64) (platformFee, guideEarnings float64) {
	platformFee = math.Round(amount*feePercent) / 100
	return platformFee, amount - platformFee
}

// CreateForBooking opens the pending payment record for a confirmed booking.
func (s *DefaultPaymentService) CreateForBooking(booking *models.Booking) (*models.Payment, error) {
	existing, err := s.Repo.GetByBooking(booking.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing payment: %w", err)
	}
	if existing != nil {
		return existing, nil
	}

	fee, earnings := FeeSplit(booking.TotalPrice, s.FeePercent)
	pay := &models.Payment{
		ID:            uuid.New().String(),
		BookingID:     booking.ID,
		GuideID:       booking.GuideID,
		TouristID:     booking.TouristID,
		Amount:        booking.TotalPrice,
		PlatformFee:   fee,
		GuideEarnings: earnings,
		Status:        models.PaymentPending,
		TouristName:   booking.TouristName,
		GuideName:     booking.GuideName,
		PackageTitle:  booking.PackageTitle,
	}
	if err := s.Repo.Create(pay); err != nil {
		return nil, fmt.Errorf("failed to create payment: %w", err)
	}
	return pay, nil
}

// GetByID retrieves a payment.
func (s *DefaultPaymentService) GetByID(id string) (*models.Payment, error) {
	return s.Repo.GetByID(id)
}

// GetByBooking retrieves the payment attached to a booking, or nil.
func (s *DefaultPaymentService) GetByBooking(bookingID string) (*models.Payment, error) {
	return s.Repo.GetByBooking(bookingID)
}

// ListAll lists every payment for the admin back office.
func (s *DefaultPaymentService) ListAll() ([]models.Payment, error) {
	return s.Repo.GetAll()
}

// ListByGuide lists a guide's payments.
func (s *DefaultPaymentService) ListByGuide(guideID string) ([]models.Payment, error) {
	return s.Repo.GetByGuide(guideID)
}

// SetStatus applies an admin status edit. Admins may re-edit freely between
// the known statuses, but a completed payment credits the guide wallet
// exactly once: the credit is keyed to the payment's ledger entry, so a
// repeated edit is a no-op and a credit lost to a wallet failure is
// recovered on the next edit into completed.
func (s *DefaultPaymentService) SetStatus(ctx context.Context, id, newStatus string) (*models.Payment, error) {
	if !validStatuses[newStatus] {
		return nil, fmt.Errorf("unknown payment status %q", newStatus)
	}

	pay, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch payment: %w", err)
	}

	if pay.Status != newStatus {
		matched, err := s.Repo.UpdateStatus(id, pay.Status, newStatus)
		if err != nil {
			return nil, fmt.Errorf("failed to update payment status: %w", err)
		}
		if !matched {
			return nil, fmt.Errorf("payment %s was modified concurrently, retry", id)
		}
		pay.Status = newStatus
	}

	if newStatus == models.PaymentCompleted {
		if err := s.creditEarnings(ctx, pay); err != nil {
			// The status already advanced; the credit is the part that must
			// not be lost. Surface the failure so the edit is retried, and
			// the ledger check in creditEarnings lets the retry pick up
			// where this attempt died.
			return nil, fmt.Errorf("payment completed but earnings credit failed: %w", err)
		}
	}

	return pay, nil
}

// creditEarnings moves the guide's share of a completed payment into their
// wallet and appends the earning ledger entry, atomically. The ledger entry
// doubles as the idempotency marker: a payment whose earning entry already
// exists is not credited again.
func (s *DefaultPaymentService) creditEarnings(ctx context.Context, pay *models.Payment) error {
	return s.Wallets.WithTransaction(ctx, func(ctx context.Context) error {
		existing, err := s.Wallets.GetTransactionByReference(ctx, pay.ID, models.TxnEarning)
		if err != nil {
			return err
		}
		if existing != nil {
			return nil
		}

		wallet, err := s.Wallets.EnsureWallet(ctx, pay.GuideID)
		if err != nil {
			return err
		}

		before := wallet.CurrentBalance
		after := before + pay.GuideEarnings
		if err := s.Wallets.SetBalances(ctx, pay.GuideID, after, wallet.PendingWithdrawal, wallet.TotalWithdrawn); err != nil {
			return err
		}

		txn := &models.Transaction{
			ID:            uuid.New().String(),
			GuideID:       pay.GuideID,
			Type:          models.TxnEarning,
			Amount:        pay.GuideEarnings,
			Description:   fmt.Sprintf("Earnings from booking %s", pay.BookingID),
			Reference:     pay.ID,
			BalanceBefore: before,
			BalanceAfter:  after,
		}
		if err := s.Wallets.InsertTransaction(ctx, txn); err != nil {
			return err
		}

		utils.GetLogger().Info("credited guide earnings",
			zap.String("guideID", pay.GuideID),
			zap.String("paymentID", pay.ID),
			zap.Float64("amount", pay.GuideEarnings))
		return nil
	})
}

// Revenue aggregates completed payments server-side.
func (s *DefaultPaymentService) Revenue() (*models.RevenueSummary, error) {
	return s.Repo.RevenueSummary()
}

// Summarize aggregates a payment set in memory: completed payments only.
// For any consistently created set, TotalRevenue == TotalFees +
// TotalGuideEarnings.
func Summarize(payments []models.Payment) models.RevenueSummary {
	var sum models.RevenueSummary
	for _, p := range payments {
		if p.Status != models.PaymentCompleted {
			continue
		}
		sum.TotalRevenue += p.Amount
		sum.TotalFees += p.PlatformFee
		sum.TotalGuideEarnings += p.GuideEarnings
		sum.CompletedCount++
	}
	return sum
}
