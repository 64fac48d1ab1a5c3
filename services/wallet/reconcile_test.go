package wallet

import (
	"errors"
	"testing"

	"tundavala/models"

	"github.com/stretchr/testify/assert"
)

func TestWithdrawalTransitions(t *testing.T) {
	cases := []struct {
		from    string
		to      string
		allowed bool
	}{
		{models.WithdrawalPending, models.WithdrawalApproved, true},
		{models.WithdrawalPending, models.WithdrawalRejected, true},
		{models.WithdrawalApproved, models.WithdrawalProcessing, true},
		{models.WithdrawalApproved, models.WithdrawalRejected, true},
		{models.WithdrawalProcessing, models.WithdrawalCompleted, true},
		{models.WithdrawalProcessing, models.WithdrawalRejected, true},
		{models.WithdrawalPending, models.WithdrawalCompleted, false},
		{models.WithdrawalPending, models.WithdrawalProcessing, false},
		{models.WithdrawalCompleted, models.WithdrawalRejected, false},
		{models.WithdrawalRejected, models.WithdrawalPending, false},
		{models.WithdrawalApproved, models.WithdrawalPending, false},
		{models.WithdrawalPending, models.WithdrawalPending, false},
	}

	for _, tc := range cases {
		assert.Equalf(t, tc.allowed, CanTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}

	err := ValidateTransition(models.WithdrawalCompleted, models.WithdrawalPending)
	assert.True(t, errors.Is(err, ErrInvalidTransition))

	assert.True(t, IsTerminal(models.WithdrawalCompleted))
	assert.True(t, IsTerminal(models.WithdrawalRejected))
	assert.False(t, IsTerminal(models.WithdrawalProcessing))
}

func TestReconcileCompletion(t *testing.T) {
	w := &models.Wallet{GuideID: "g1", CurrentBalance: 8500, PendingWithdrawal: 5000, TotalWithdrawn: 2000}
	req := &models.WithdrawalRequest{ID: "w1", GuideID: "g1", Amount: 5000, BankName: "BAI"}

	plan := Reconcile(w, req, models.WithdrawalProcessing, models.WithdrawalCompleted)

	assert.True(t, plan.Touched)
	assert.Equal(t, 8500.0, plan.CurrentBalance, "completion must not touch the current balance")
	assert.Equal(t, 0.0, plan.PendingWithdrawal)
	assert.Equal(t, 7000.0, plan.TotalWithdrawn)

	assert.Equal(t, models.TxnWithdrawal, plan.Entry.Type)
	assert.Equal(t, -5000.0, plan.Entry.Amount)
	assert.Equal(t, 8500.0, plan.Entry.BalanceBefore)
	assert.Equal(t, 8500.0, plan.Entry.BalanceAfter)
	assert.Equal(t, "w1", plan.Entry.Reference)
}

func TestReconcileRejectionRefunds(t *testing.T) {
	w := &models.Wallet{GuideID: "g1", CurrentBalance: 1000, PendingWithdrawal: 5000}
	req := &models.WithdrawalRequest{ID: "w1", GuideID: "g1", Amount: 5000}

	plan := Reconcile(w, req, models.WithdrawalApproved, models.WithdrawalRejected)

	assert.True(t, plan.Touched)
	assert.Equal(t, 6000.0, plan.CurrentBalance)
	assert.Equal(t, 0.0, plan.PendingWithdrawal)
	assert.Equal(t, 0.0, plan.TotalWithdrawn)

	assert.Equal(t, models.TxnAdminAdjustment, plan.Entry.Type)
	assert.Equal(t, 5000.0, plan.Entry.Amount)
	assert.Equal(t, 1000.0, plan.Entry.BalanceBefore)
	assert.Equal(t, 6000.0, plan.Entry.BalanceAfter)
}

func TestReconcileClampsPendingAtZero(t *testing.T) {
	w := &models.Wallet{GuideID: "g1", CurrentBalance: 0, PendingWithdrawal: 3000}
	req := &models.WithdrawalRequest{ID: "w1", GuideID: "g1", Amount: 5000}

	plan := Reconcile(w, req, models.WithdrawalProcessing, models.WithdrawalCompleted)
	assert.Equal(t, 0.0, plan.PendingWithdrawal)
	assert.Equal(t, 5000.0, plan.TotalWithdrawn)

	plan = Reconcile(w, req, models.WithdrawalApproved, models.WithdrawalRejected)
	assert.Equal(t, 0.0, plan.PendingWithdrawal)
	assert.Equal(t, 5000.0, plan.CurrentBalance)
}

func TestReconcileIdempotentOnRepeatedStatus(t *testing.T) {
	w := &models.Wallet{GuideID: "g1", CurrentBalance: 1000, PendingWithdrawal: 5000, TotalWithdrawn: 2000}
	req := &models.WithdrawalRequest{ID: "w1", GuideID: "g1", Amount: 5000}

	for _, status := range []string{models.WithdrawalCompleted, models.WithdrawalRejected} {
		plan := Reconcile(w, req, status, status)
		assert.False(t, plan.Touched)
		assert.Nil(t, plan.Entry)
		assert.Equal(t, w.CurrentBalance, plan.CurrentBalance)
		assert.Equal(t, w.PendingWithdrawal, plan.PendingWithdrawal)
		assert.Equal(t, w.TotalWithdrawn, plan.TotalWithdrawn)
	}
}

func TestReconcileIntermediateEdgesUntouched(t *testing.T) {
	w := &models.Wallet{GuideID: "g1", CurrentBalance: 1000, PendingWithdrawal: 5000}
	req := &models.WithdrawalRequest{ID: "w1", GuideID: "g1", Amount: 5000}

	for _, to := range []string{models.WithdrawalApproved, models.WithdrawalProcessing} {
		plan := Reconcile(w, req, models.WithdrawalPending, to)
		assert.False(t, plan.Touched, "edge into %s must not move funds", to)
		assert.Nil(t, plan.Entry)
	}
}
