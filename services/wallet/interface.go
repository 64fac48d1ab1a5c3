package wallet

import (
	"context"

	userRepo "tundavala/database/repository/user"
	walletRepo "tundavala/database/repository/wallet"
	"tundavala/models"
)

// WithdrawalInput carries the fields a guide submits to request a payout.
type WithdrawalInput struct {
	Amount        float64 `json:"amount" binding:"required,gt=0"`
	BankName      string  `json:"bank_name" binding:"required"`
	AccountNumber string  `json:"account_number" binding:"required"`
	AccountHolder string  `json:"account_holder" binding:"required"`
}

// TransitionInput carries an admin's withdrawal status edit.
type TransitionInput struct {
	Status     string `json:"status" binding:"required"`
	AdminNotes string `json:"admin_notes"`
	Reason     string `json:"reason"`
}

// WalletService covers guide wallets, withdrawal requests and the ledger.
type WalletService interface {
	// GetWallet retrieves a guide's wallet, provisioning an empty one on
	// first access.
	GetWallet(ctx context.Context, guideID string) (*models.Wallet, error)
	// GetLedger retrieves a guide's transaction history, newest first.
	GetLedger(ctx context.Context, guideID string) ([]models.Transaction, error)
	// RequestWithdrawal moves funds from the current balance into the
	// pending bucket and opens a withdrawal request, atomically.
	RequestWithdrawal(ctx context.Context, guideID string, input WithdrawalInput) (*models.WithdrawalRequest, error)
	// ApplyTransition moves a withdrawal request along the lifecycle and
	// reconciles the wallet in the same transaction.
	ApplyTransition(ctx context.Context, requestID string, input TransitionInput) (*models.WithdrawalRequest, error)
	// ListByGuide retrieves a guide's withdrawal requests.
	ListByGuide(ctx context.Context, guideID string) ([]models.WithdrawalRequest, error)
	// ListAll retrieves every withdrawal request for the admin back office.
	ListAll(ctx context.Context) ([]models.WithdrawalRequest, error)
}

// DefaultWalletService is the production implementation.
type DefaultWalletService struct {
	Repo  walletRepo.WalletRepository
	Users userRepo.UserRepository
}
