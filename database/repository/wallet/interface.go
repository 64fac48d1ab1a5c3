package walletRepo

import (
	"context"

	"tundavala/models"

	"go.mongodb.org/mongo-driver/bson"
)

// WalletRepository covers the wallets, withdrawals and transactions
// collections. Methods take a context so the wallet service can compose
// them inside a single Mongo transaction via WithTransaction.
type WalletRepository interface {
	// EnsureWallet retrieves a guide's wallet, creating a zero-balance one
	// if it does not exist yet.
	EnsureWallet(ctx context.Context, guideID string) (*models.Wallet, error)
	// GetWallet retrieves a guide's wallet, or nil if none exists.
	GetWallet(ctx context.Context, guideID string) (*models.Wallet, error)
	// SetBalances overwrites the wallet's three balance buckets.
	SetBalances(ctx context.Context, guideID string, current, pending, withdrawn float64) error

	// GetWithdrawal retrieves a withdrawal request by its ID.
	GetWithdrawal(ctx context.Context, id string) (*models.WithdrawalRequest, error)
	// GetWithdrawalsByGuide retrieves a guide's withdrawal requests, newest first.
	GetWithdrawalsByGuide(ctx context.Context, guideID string) ([]models.WithdrawalRequest, error)
	// GetAllWithdrawals retrieves all withdrawal requests, newest first.
	GetAllWithdrawals(ctx context.Context) ([]models.WithdrawalRequest, error)
	// CreateWithdrawal inserts a new withdrawal request.
	CreateWithdrawal(ctx context.Context, req *models.WithdrawalRequest) error
	// UpdateWithdrawal applies a partial $set update to a withdrawal request.
	UpdateWithdrawal(ctx context.Context, id string, fields bson.M) error

	// InsertTransaction appends an immutable ledger entry. Ledger entries
	// are never updated or deleted.
	InsertTransaction(ctx context.Context, txn *models.Transaction) error
	// GetTransactionsByGuide retrieves a guide's ledger, newest first.
	GetTransactionsByGuide(ctx context.Context, guideID string) ([]models.Transaction, error)
	// GetTransactionByReference retrieves the ledger entry of the given type
	// pointing at reference, or nil if none exists.
	GetTransactionByReference(ctx context.Context, reference, txnType string) (*models.Transaction, error)

	// WithTransaction runs fn inside a single Mongo transaction. The context
	// passed to fn must be used for every repository call made within it.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
