package wallet

import (
	"context"
	"errors"
	"testing"

	"tundavala/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

// fakeWalletRepo keeps everything in memory. WithTransaction snapshots state
// and restores it when fn fails, mirroring an aborted Mongo transaction.
type fakeWalletRepo struct {
	wallets     map[string]*models.Wallet
	withdrawals map[string]*models.WithdrawalRequest
	ledger      []models.Transaction
}

func newFakeWalletRepo() *fakeWalletRepo {
	return &fakeWalletRepo{
		wallets:     map[string]*models.Wallet{},
		withdrawals: map[string]*models.WithdrawalRequest{},
	}
}

func (r *fakeWalletRepo) EnsureWallet(ctx context.Context, guideID string) (*models.Wallet, error) {
	if w, ok := r.wallets[guideID]; ok {
		snapshot := *w
		return &snapshot, nil
	}
	w := &models.Wallet{GuideID: guideID}
	r.wallets[guideID] = w
	snapshot := *w
	return &snapshot, nil
}

func (r *fakeWalletRepo) GetWallet(ctx context.Context, guideID string) (*models.Wallet, error) {
	w, ok := r.wallets[guideID]
	if !ok {
		return nil, nil
	}
	snapshot := *w
	return &snapshot, nil
}

func (r *fakeWalletRepo) SetBalances(ctx context.Context, guideID string, current, pending, withdrawn float64) error {
	w, ok := r.wallets[guideID]
	if !ok {
		return errors.New("wallet not found")
	}
	w.CurrentBalance = current
	w.PendingWithdrawal = pending
	w.TotalWithdrawn = withdrawn
	return nil
}

func (r *fakeWalletRepo) GetWithdrawal(ctx context.Context, id string) (*models.WithdrawalRequest, error) {
	req, ok := r.withdrawals[id]
	if !ok {
		return nil, errors.New("withdrawal not found")
	}
	snapshot := *req
	return &snapshot, nil
}

func (r *fakeWalletRepo) GetWithdrawalsByGuide(ctx context.Context, guideID string) ([]models.WithdrawalRequest, error) {
	var out []models.WithdrawalRequest
	for _, req := range r.withdrawals {
		if req.GuideID == guideID {
			out = append(out, *req)
		}
	}
	return out, nil
}

func (r *fakeWalletRepo) GetAllWithdrawals(ctx context.Context) ([]models.WithdrawalRequest, error) {
	var out []models.WithdrawalRequest
	for _, req := range r.withdrawals {
		out = append(out, *req)
	}
	return out, nil
}

func (r *fakeWalletRepo) CreateWithdrawal(ctx context.Context, req *models.WithdrawalRequest) error {
	snapshot := *req
	r.withdrawals[req.ID] = &snapshot
	return nil
}

func (r *fakeWalletRepo) UpdateWithdrawal(ctx context.Context, id string, fields bson.M) error {
	req, ok := r.withdrawals[id]
	if !ok {
		return errors.New("withdrawal not found")
	}
	if v, ok := fields["status"].(string); ok {
		req.Status = v
	}
	if v, ok := fields["admin_notes"].(string); ok {
		req.AdminNotes = v
	}
	if v, ok := fields["reason"].(string); ok {
		req.Reason = v
	}
	return nil
}

func (r *fakeWalletRepo) InsertTransaction(ctx context.Context, txn *models.Transaction) error {
	r.ledger = append(r.ledger, *txn)
	return nil
}

func (r *fakeWalletRepo) GetTransactionsByGuide(ctx context.Context, guideID string) ([]models.Transaction, error) {
	var out []models.Transaction
	for _, txn := range r.ledger {
		if txn.GuideID == guideID {
			out = append(out, txn)
		}
	}
	return out, nil
}

func (r *fakeWalletRepo) GetTransactionByReference(ctx context.Context, reference, txnType string) (*models.Transaction, error) {
	for i := range r.ledger {
		if r.ledger[i].Reference == reference && r.ledger[i].Type == txnType {
			snapshot := r.ledger[i]
			return &snapshot, nil
		}
	}
	return nil, nil
}

func (r *fakeWalletRepo) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	walletsBackup := map[string]*models.Wallet{}
	for k, v := range r.wallets {
		snapshot := *v
		walletsBackup[k] = &snapshot
	}
	withdrawalsBackup := map[string]*models.WithdrawalRequest{}
	for k, v := range r.withdrawals {
		snapshot := *v
		withdrawalsBackup[k] = &snapshot
	}
	ledgerBackup := append([]models.Transaction(nil), r.ledger...)

	if err := fn(ctx); err != nil {
		r.wallets = walletsBackup
		r.withdrawals = withdrawalsBackup
		r.ledger = ledgerBackup
		return err
	}
	return nil
}

type fakeUserRepo struct{}

func (fakeUserRepo) GetByID(id string) (*models.User, error) {
	return &models.User{ID: id, Name: "Adalberto Quissanga"}, nil
}
func (fakeUserRepo) GetByEmail(email string) (*models.User, error) { return nil, nil }
func (fakeUserRepo) GetAll() ([]models.User, error)                { return nil, nil }
func (fakeUserRepo) Create(user *models.User) error                { return nil }
func (fakeUserRepo) UpdateFields(id string, fields bson.M) error   { return nil }
func (fakeUserRepo) Delete(id string) error                        { return nil }
func (fakeUserRepo) CountByRole(role string) (int64, error)        { return 0, nil }
func (fakeUserRepo) GetByIDWithProjection(id string, projection bson.M) (*models.User, error) {
	return nil, nil
}

func newService(repo *fakeWalletRepo) *DefaultWalletService {
	return &DefaultWalletService{Repo: repo, Users: fakeUserRepo{}}
}

func TestRequestWithdrawalMovesFundsToPending(t *testing.T) {
	repo := newFakeWalletRepo()
	repo.wallets["g1"] = &models.Wallet{GuideID: "g1", CurrentBalance: 10000}
	svc := newService(repo)

	req, err := svc.RequestWithdrawal(context.Background(), "g1", WithdrawalInput{
		Amount: 6000, BankName: "BAI", AccountNumber: "123", AccountHolder: "Adalberto",
	})
	require.NoError(t, err)
	assert.Equal(t, models.WithdrawalPending, req.Status)
	assert.Equal(t, "Adalberto Quissanga", req.GuideName)

	w := repo.wallets["g1"]
	assert.Equal(t, 4000.0, w.CurrentBalance)
	assert.Equal(t, 6000.0, w.PendingWithdrawal)

	require.Len(t, repo.ledger, 1)
	assert.Equal(t, models.TxnWithdrawalRequest, repo.ledger[0].Type)
	assert.Equal(t, -6000.0, repo.ledger[0].Amount)
	assert.Equal(t, 10000.0, repo.ledger[0].BalanceBefore)
	assert.Equal(t, 4000.0, repo.ledger[0].BalanceAfter)
}

func TestRequestWithdrawalInsufficientBalance(t *testing.T) {
	repo := newFakeWalletRepo()
	repo.wallets["g1"] = &models.Wallet{GuideID: "g1", CurrentBalance: 1000}
	svc := newService(repo)

	_, err := svc.RequestWithdrawal(context.Background(), "g1", WithdrawalInput{
		Amount: 6000, BankName: "BAI", AccountNumber: "123", AccountHolder: "Adalberto",
	})
	assert.True(t, errors.Is(err, ErrInsufficientBalance))

	// Nothing moved and no request survived the aborted transaction.
	assert.Equal(t, 1000.0, repo.wallets["g1"].CurrentBalance)
	assert.Empty(t, repo.withdrawals)
	assert.Empty(t, repo.ledger)
}

func TestApplyTransitionCompletedSettlesOnce(t *testing.T) {
	repo := newFakeWalletRepo()
	repo.wallets["g1"] = &models.Wallet{GuideID: "g1", CurrentBalance: 2000, PendingWithdrawal: 6000}
	repo.withdrawals["w1"] = &models.WithdrawalRequest{
		ID: "w1", GuideID: "g1", Amount: 6000, Status: models.WithdrawalProcessing,
	}
	svc := newService(repo)

	req, err := svc.ApplyTransition(context.Background(), "w1", TransitionInput{
		Status: models.WithdrawalCompleted, AdminNotes: "paid via BAI transfer",
	})
	require.NoError(t, err)
	assert.Equal(t, models.WithdrawalCompleted, req.Status)
	assert.Equal(t, "paid via BAI transfer", req.AdminNotes)

	w := repo.wallets["g1"]
	assert.Equal(t, 2000.0, w.CurrentBalance)
	assert.Equal(t, 0.0, w.PendingWithdrawal)
	assert.Equal(t, 6000.0, w.TotalWithdrawn)
	require.Len(t, repo.ledger, 1)
	assert.Equal(t, models.TxnWithdrawal, repo.ledger[0].Type)

	// Re-applying the same status is rejected and moves nothing.
	_, err = svc.ApplyTransition(context.Background(), "w1", TransitionInput{Status: models.WithdrawalCompleted})
	assert.True(t, errors.Is(err, ErrInvalidTransition))
	assert.Equal(t, 6000.0, repo.wallets["g1"].TotalWithdrawn)
	assert.Len(t, repo.ledger, 1)
}

func TestApplyTransitionRejectionRefundsExactlyOnce(t *testing.T) {
	repo := newFakeWalletRepo()
	repo.wallets["g1"] = &models.Wallet{GuideID: "g1", CurrentBalance: 500, PendingWithdrawal: 4000}
	repo.withdrawals["w1"] = &models.WithdrawalRequest{
		ID: "w1", GuideID: "g1", Amount: 4000, Status: models.WithdrawalPending,
	}
	svc := newService(repo)

	req, err := svc.ApplyTransition(context.Background(), "w1", TransitionInput{
		Status: models.WithdrawalRejected, Reason: "conta invalida",
	})
	require.NoError(t, err)
	assert.Equal(t, "conta invalida", req.Reason)

	w := repo.wallets["g1"]
	assert.Equal(t, 4500.0, w.CurrentBalance)
	assert.Equal(t, 0.0, w.PendingWithdrawal)
	require.Len(t, repo.ledger, 1)
	assert.Equal(t, models.TxnAdminAdjustment, repo.ledger[0].Type)
	assert.Equal(t, 4000.0, repo.ledger[0].Amount)

	_, err = svc.ApplyTransition(context.Background(), "w1", TransitionInput{Status: models.WithdrawalRejected})
	assert.True(t, errors.Is(err, ErrInvalidTransition))
	assert.Equal(t, 4500.0, repo.wallets["g1"].CurrentBalance)
	assert.Len(t, repo.ledger, 1)
}

func TestApplyTransitionIntermediateEdgesMoveNoFunds(t *testing.T) {
	repo := newFakeWalletRepo()
	repo.wallets["g1"] = &models.Wallet{GuideID: "g1", CurrentBalance: 500, PendingWithdrawal: 4000}
	repo.withdrawals["w1"] = &models.WithdrawalRequest{
		ID: "w1", GuideID: "g1", Amount: 4000, Status: models.WithdrawalPending,
	}
	svc := newService(repo)

	_, err := svc.ApplyTransition(context.Background(), "w1", TransitionInput{Status: models.WithdrawalApproved})
	require.NoError(t, err)
	_, err = svc.ApplyTransition(context.Background(), "w1", TransitionInput{Status: models.WithdrawalProcessing})
	require.NoError(t, err)

	w := repo.wallets["g1"]
	assert.Equal(t, 500.0, w.CurrentBalance)
	assert.Equal(t, 4000.0, w.PendingWithdrawal)
	assert.Empty(t, repo.ledger)
	assert.Equal(t, models.WithdrawalProcessing, repo.withdrawals["w1"].Status)
}

func TestApplyTransitionInvalidEdgeLeavesStatus(t *testing.T) {
	repo := newFakeWalletRepo()
	repo.wallets["g1"] = &models.Wallet{GuideID: "g1", PendingWithdrawal: 4000}
	repo.withdrawals["w1"] = &models.WithdrawalRequest{
		ID: "w1", GuideID: "g1", Amount: 4000, Status: models.WithdrawalPending,
	}
	svc := newService(repo)

	// Completion straight from pending skips approval and processing.
	_, err := svc.ApplyTransition(context.Background(), "w1", TransitionInput{Status: models.WithdrawalCompleted})
	assert.True(t, errors.Is(err, ErrInvalidTransition))
	assert.Equal(t, models.WithdrawalPending, repo.withdrawals["w1"].Status)
	assert.Equal(t, 0.0, repo.wallets["g1"].TotalWithdrawn)
}

func TestFullWithdrawalRoundTrip(t *testing.T) {
	repo := newFakeWalletRepo()
	repo.wallets["g1"] = &models.Wallet{GuideID: "g1", CurrentBalance: 8500}
	svc := newService(repo)
	ctx := context.Background()

	req, err := svc.RequestWithdrawal(ctx, "g1", WithdrawalInput{
		Amount: 8500, BankName: "BFA", AccountNumber: "9", AccountHolder: "A",
	})
	require.NoError(t, err)

	for _, status := range []string{models.WithdrawalApproved, models.WithdrawalProcessing, models.WithdrawalCompleted} {
		_, err = svc.ApplyTransition(ctx, req.ID, TransitionInput{Status: status})
		require.NoError(t, err)
	}

	w := repo.wallets["g1"]
	assert.Equal(t, 0.0, w.CurrentBalance)
	assert.Equal(t, 0.0, w.PendingWithdrawal)
	assert.Equal(t, 8500.0, w.TotalWithdrawn)

	// Request debit plus completion entry.
	require.Len(t, repo.ledger, 2)
	assert.Equal(t, models.TxnWithdrawalRequest, repo.ledger[0].Type)
	assert.Equal(t, models.TxnWithdrawal, repo.ledger[1].Type)
}
