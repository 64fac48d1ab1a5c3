package wallet

import "tundavala/models"

// allowedTransitions enumerates every legal withdrawal status edge. The
// happy path is pending -> approved -> processing -> completed; any
// non-terminal request can be rejected. Completed and rejected are terminal.
var allowedTransitions = map[string][]string{
	models.WithdrawalPending:    {models.WithdrawalApproved, models.WithdrawalRejected},
	models.WithdrawalApproved:   {models.WithdrawalProcessing, models.WithdrawalRejected},
	models.WithdrawalProcessing: {models.WithdrawalCompleted, models.WithdrawalRejected},
	models.WithdrawalCompleted:  {},
	models.WithdrawalRejected:   {},
}

// CanTransition reports whether a withdrawal may move between two statuses.
func CanTransition(from, to string) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// ValidateTransition returns a TransitionError for any edge CanTransition
// rejects, including unknown statuses and self-transitions.
func ValidateTransition(from, to string) error {
	if !CanTransition(from, to) {
		return &TransitionError{From: from, To: to}
	}
	return nil
}

// IsTerminal reports whether a withdrawal status admits no further edges.
func IsTerminal(status string) bool {
	next, known := allowedTransitions[status]
	return known && len(next) == 0
}

// ReconcilePlan describes the wallet mutation a withdrawal status change
// produces. A nil Entry with Touched false means the edge carries no
// wallet side effect.
type ReconcilePlan struct {
	Touched           bool
	CurrentBalance    float64
	PendingWithdrawal float64
	TotalWithdrawn    float64
	Entry             *models.Transaction
}

// Reconcile computes the wallet side effect of moving a withdrawal from
// prevStatus to newStatus. Side effects fire on the new status value and
// only when the previous status differs, so re-applying the same edge is a
// no-op. PendingWithdrawal is clamped at zero rather than driven negative.
//
// Completion moves the amount from the pending bucket to the withdrawn
// total. CurrentBalance is untouched because the funds left it when the
// withdrawal was requested; the ledger entry records the unchanged balance
// on both sides. Rejection refunds the amount back into CurrentBalance.
func Reconcile(w *models.Wallet, req *models.WithdrawalRequest, prevStatus, newStatus string) ReconcilePlan {
	plan := ReconcilePlan{
		CurrentBalance:    w.CurrentBalance,
		PendingWithdrawal: w.PendingWithdrawal,
		TotalWithdrawn:    w.TotalWithdrawn,
	}
	if prevStatus == newStatus {
		return plan
	}

	switch newStatus {
	case models.WithdrawalCompleted:
		plan.Touched = true
		plan.PendingWithdrawal = clampZero(w.PendingWithdrawal - req.Amount)
		plan.TotalWithdrawn = w.TotalWithdrawn + req.Amount
		plan.Entry = &models.Transaction{
			GuideID:       req.GuideID,
			Type:          models.TxnWithdrawal,
			Amount:        -req.Amount,
			Description:   "Withdrawal paid out to " + req.BankName,
			Reference:     req.ID,
			BalanceBefore: w.CurrentBalance,
			BalanceAfter:  w.CurrentBalance,
		}
	case models.WithdrawalRejected:
		plan.Touched = true
		plan.PendingWithdrawal = clampZero(w.PendingWithdrawal - req.Amount)
		plan.CurrentBalance = w.CurrentBalance + req.Amount
		plan.Entry = &models.Transaction{
			GuideID:       req.GuideID,
			Type:          models.TxnAdminAdjustment,
			Amount:        req.Amount,
			Description:   "Withdrawal rejected, funds returned",
			Reference:     req.ID,
			BalanceBefore: w.CurrentBalance,
			BalanceAfter:  plan.CurrentBalance,
		}
	}
	return plan
}

func clampZero(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
