package payment

import (
	"fmt"

	"tundavala/models"
	"tundavala/utils"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// CreatePaymentIntent opens a Stripe payment intent for a pending payment and
// returns the client secret the app confirms against. Stripe only takes minor
// units, so the kwanza amount is converted to centimos.
func (s *DefaultPaymentService) CreatePaymentIntent(paymentID string) (string, error) {
	pay, err := s.Repo.GetByID(paymentID)
	if err != nil {
		return "", fmt.Errorf("failed to fetch payment: %w", err)
	}
	if pay.Status != models.PaymentPending {
		return "", fmt.Errorf("payment %s is %s, only pending payments can be charged", paymentID, pay.Status)
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(pay.Amount * 100)),
		Currency: stripe.String(string(stripe.CurrencyAOA)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.AddMetadata("payment_id", pay.ID)
	params.AddMetadata("booking_id", pay.BookingID)

	intent, err := paymentintent.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create payment intent: %w", err)
	}

	if intent.ID != "" {
		if err := s.Repo.SetTransactionID(pay.ID, intent.ID); err != nil {
			utils.GetLogger().Error("failed to record stripe intent id",
				zap.String("paymentID", pay.ID), zap.Error(err))
		}
	}
	return intent.ClientSecret, nil
}
