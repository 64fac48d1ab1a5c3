package models

import "time"

// Withdrawal request statuses.
const (
	WithdrawalPending    = "pending"
	WithdrawalApproved   = "approved"
	WithdrawalProcessing = "processing"
	WithdrawalCompleted  = "completed"
	WithdrawalRejected   = "rejected"
)

// Ledger entry types.
const (
	TxnWithdrawalRequest = "withdrawal_request"
	TxnWithdrawal        = "withdrawal"
	TxnAdminAdjustment   = "admin_adjustment"
	TxnEarning           = "earning"
)

// Wallet is the per-guide running balance record. Funds move
// CurrentBalance -> PendingWithdrawal when a withdrawal is requested,
// PendingWithdrawal -> TotalWithdrawn when it completes, and
// PendingWithdrawal -> CurrentBalance when it is rejected.
// CurrentBalance and PendingWithdrawal are never driven negative.
type Wallet struct {
	GuideID           string    `bson:"guide_id" json:"guide_id"`
	CurrentBalance    float64   `bson:"current_balance" json:"current_balance"`
	PendingWithdrawal float64   `bson:"pending_withdrawal" json:"pending_withdrawal"`
	TotalWithdrawn    float64   `bson:"total_withdrawn" json:"total_withdrawn"`
	UpdatedAt         time.Time `bson:"updated_at" json:"updated_at"`
}

// WithdrawalRequest is a guide's request to move wallet funds to a bank account.
type WithdrawalRequest struct {
	ID            string    `bson:"id" json:"id"`
	GuideID       string    `bson:"guide_id" json:"guide_id"`
	GuideName     string    `bson:"guide_name,omitempty" json:"guide_name,omitempty"`
	Amount        float64   `bson:"amount" json:"amount"`
	BankName      string    `bson:"bank_name" json:"bank_name"`
	AccountNumber string    `bson:"account_number" json:"account_number"`
	AccountHolder string    `bson:"account_holder" json:"account_holder"`
	Status        string    `bson:"status" json:"status"`
	AdminNotes    string    `bson:"admin_notes,omitempty" json:"admin_notes,omitempty"`
	Reason        string    `bson:"reason,omitempty" json:"reason,omitempty"` // rejection reason
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time `bson:"updated_at" json:"updated_at"`
}

// Transaction is an immutable, append-only ledger entry tied to a guide.
// Amount is signed: credits positive, debits negative.
type Transaction struct {
	ID            string    `bson:"id" json:"id"`
	GuideID       string    `bson:"guide_id" json:"guide_id"`
	Type          string    `bson:"type" json:"type"`
	Amount        float64   `bson:"amount" json:"amount"`
	Description   string    `bson:"description" json:"description"`
	Reference     string    `bson:"reference,omitempty" json:"reference,omitempty"` // withdrawal or payment ID
	BalanceBefore float64   `bson:"balance_before" json:"balance_before"`
	BalanceAfter  float64   `bson:"balance_after" json:"balance_after"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
}
