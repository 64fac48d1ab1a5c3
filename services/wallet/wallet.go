package wallet

import (
	"context"
	"fmt"

	"tundavala/models"
	"tundavala/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// GetWallet retrieves a guide's wallet, provisioning an empty one on first
// access.
func (s *DefaultWalletService) GetWallet(ctx context.Context, guideID string) (*models.Wallet, error) {
	return s.Repo.EnsureWallet(ctx, guideID)
}

// GetLedger retrieves a guide's transaction history, newest first.
func (s *DefaultWalletService) GetLedger(ctx context.Context, guideID string) ([]models.Transaction, error) {
	return s.Repo.GetTransactionsByGuide(ctx, guideID)
}

// ListByGuide retrieves a guide's withdrawal requests.
func (s *DefaultWalletService) ListByGuide(ctx context.Context, guideID string) ([]models.WithdrawalRequest, error) {
	return s.Repo.GetWithdrawalsByGuide(ctx, guideID)
}

// ListAll retrieves every withdrawal request.
func (s *DefaultWalletService) ListAll(ctx context.Context) ([]models.WithdrawalRequest, error) {
	return s.Repo.GetAllWithdrawals(ctx)
}

// RequestWithdrawal opens a withdrawal request. The amount leaves
// CurrentBalance and enters PendingWithdrawal immediately, in the same
// transaction that creates the request and its ledger entry, so the funds
// cannot be requested twice.
func (s *DefaultWalletService) RequestWithdrawal(ctx context.Context, guideID string, input WithdrawalInput) (*models.WithdrawalRequest, error) {
	var req *models.WithdrawalRequest

	err := s.Repo.WithTransaction(ctx, func(ctx context.Context) error {
		wallet, err := s.Repo.EnsureWallet(ctx, guideID)
		if err != nil {
			return err
		}
		if input.Amount > wallet.CurrentBalance {
			return fmt.Errorf("%w: requested %.2f, available %.2f",
				ErrInsufficientBalance, input.Amount, wallet.CurrentBalance)
		}

		req = &models.WithdrawalRequest{
			ID:            uuid.New().String(),
			GuideID:       guideID,
			Amount:        input.Amount,
			BankName:      input.BankName,
			AccountNumber: input.AccountNumber,
			AccountHolder: input.AccountHolder,
			Status:        models.WithdrawalPending,
		}
		if user, err := s.Users.GetByID(guideID); err == nil {
			req.GuideName = user.Name
		}
		if err := s.Repo.CreateWithdrawal(ctx, req); err != nil {
			return err
		}

		before := wallet.CurrentBalance
		after := before - input.Amount
		if err := s.Repo.SetBalances(ctx, guideID, after,
			wallet.PendingWithdrawal+input.Amount, wallet.TotalWithdrawn); err != nil {
			return err
		}

		return s.Repo.InsertTransaction(ctx, &models.Transaction{
			ID:            uuid.New().String(),
			GuideID:       guideID,
			Type:          models.TxnWithdrawalRequest,
			Amount:        -input.Amount,
			Description:   "Withdrawal requested",
			Reference:     req.ID,
			BalanceBefore: before,
			BalanceAfter:  after,
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to request withdrawal: %w", err)
	}

	utils.GetLogger().Info("withdrawal requested",
		zap.String("guideID", guideID),
		zap.String("withdrawalID", req.ID),
		zap.Float64("amount", input.Amount))
	return req, nil
}

// ApplyTransition moves a withdrawal request along the lifecycle. The status
// write, the wallet rebalance and the ledger entry land in one transaction;
// a failing wallet sync rolls the status back too.
func (s *DefaultWalletService) ApplyTransition(ctx context.Context, requestID string, input TransitionInput) (*models.WithdrawalRequest, error) {
	var updated *models.WithdrawalRequest

	err := s.Repo.WithTransaction(ctx, func(ctx context.Context) error {
		req, err := s.Repo.GetWithdrawal(ctx, requestID)
		if err != nil {
			return err
		}
		if err := ValidateTransition(req.Status, input.Status); err != nil {
			return err
		}

		fields := bson.M{"status": input.Status}
		if input.AdminNotes != "" {
			fields["admin_notes"] = input.AdminNotes
		}
		if input.Status == models.WithdrawalRejected && input.Reason != "" {
			fields["reason"] = input.Reason
		}
		if err := s.Repo.UpdateWithdrawal(ctx, requestID, fields); err != nil {
			return err
		}

		wallet, err := s.Repo.EnsureWallet(ctx, req.GuideID)
		if err != nil {
			return err
		}
		plan := Reconcile(wallet, req, req.Status, input.Status)
		if plan.Touched {
			if err := s.Repo.SetBalances(ctx, req.GuideID,
				plan.CurrentBalance, plan.PendingWithdrawal, plan.TotalWithdrawn); err != nil {
				return err
			}
			plan.Entry.ID = uuid.New().String()
			if err := s.Repo.InsertTransaction(ctx, plan.Entry); err != nil {
				return err
			}
		}

		req.Status = input.Status
		if input.AdminNotes != "" {
			req.AdminNotes = input.AdminNotes
		}
		if input.Status == models.WithdrawalRejected && input.Reason != "" {
			req.Reason = input.Reason
		}
		updated = req
		return nil
	})
	if err != nil {
		return nil, err
	}

	utils.GetLogger().Info("withdrawal transitioned",
		zap.String("withdrawalID", requestID),
		zap.String("status", input.Status))
	return updated, nil
}
