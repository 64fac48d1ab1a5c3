package payment

import (
	"context"
	"errors"
	"testing"

	"tundavala/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

type fakePaymentRepo struct {
	payments map[string]*models.Payment
}

func newFakePaymentRepo(payments ...*models.Payment) *fakePaymentRepo {
	repo := &fakePaymentRepo{payments: map[string]*models.Payment{}}
	for _, p := range payments {
		repo.payments[p.ID] = p
	}
	return repo
}

func (r *fakePaymentRepo) GetByID(id string) (*models.Payment, error) {
	p, ok := r.payments[id]
	if !ok {
		return nil, errors.New("payment not found")
	}
	snapshot := *p
	return &snapshot, nil
}

func (r *fakePaymentRepo) GetByBooking(bookingID string) (*models.Payment, error) {
	for _, p := range r.payments {
		if p.BookingID == bookingID {
			snapshot := *p
			return &snapshot, nil
		}
	}
	return nil, nil
}

func (r *fakePaymentRepo) GetByGuide(guideID string) ([]models.Payment, error) { return nil, nil }
func (r *fakePaymentRepo) GetAll() ([]models.Payment, error)                   { return nil, nil }

func (r *fakePaymentRepo) Create(p *models.Payment) error {
	snapshot := *p
	r.payments[p.ID] = &snapshot
	return nil
}

func (r *fakePaymentRepo) UpdateStatus(id, expectedStatus, newStatus string) (bool, error) {
	p, ok := r.payments[id]
	if !ok {
		return false, errors.New("payment not found")
	}
	if p.Status != expectedStatus {
		return false, nil
	}
	p.Status = newStatus
	return true, nil
}

func (r *fakePaymentRepo) SetTransactionID(id, transactionID string) error {
	if p, ok := r.payments[id]; ok {
		p.TransactionID = transactionID
	}
	return nil
}

func (r *fakePaymentRepo) RevenueSummary() (*models.RevenueSummary, error) {
	var payments []models.Payment
	for _, p := range r.payments {
		payments = append(payments, *p)
	}
	summary := Summarize(payments)
	return &summary, nil
}

type fakeWalletRepo struct {
	wallets map[string]*models.Wallet
	ledger  []models.Transaction
	// insertFailures makes that many InsertTransaction calls fail.
	insertFailures int
}

func newFakeWalletRepo() *fakeWalletRepo {
	return &fakeWalletRepo{wallets: map[string]*models.Wallet{}}
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
	return r.EnsureWallet(ctx, guideID)
}

func (r *fakeWalletRepo) SetBalances(ctx context.Context, guideID string, current, pending, withdrawn float64) error {
	w := r.wallets[guideID]
	w.CurrentBalance = current
	w.PendingWithdrawal = pending
	w.TotalWithdrawn = withdrawn
	return nil
}

func (r *fakeWalletRepo) GetWithdrawal(ctx context.Context, id string) (*models.WithdrawalRequest, error) {
	return nil, nil
}
func (r *fakeWalletRepo) GetWithdrawalsByGuide(ctx context.Context, guideID string) ([]models.WithdrawalRequest, error) {
	return nil, nil
}
func (r *fakeWalletRepo) GetAllWithdrawals(ctx context.Context) ([]models.WithdrawalRequest, error) {
	return nil, nil
}
func (r *fakeWalletRepo) CreateWithdrawal(ctx context.Context, req *models.WithdrawalRequest) error {
	return nil
}
func (r *fakeWalletRepo) UpdateWithdrawal(ctx context.Context, id string, fields bson.M) error {
	return nil
}

func (r *fakeWalletRepo) InsertTransaction(ctx context.Context, txn *models.Transaction) error {
	if r.insertFailures > 0 {
		r.insertFailures--
		return errors.New("ledger write failed")
	}
	r.ledger = append(r.ledger, *txn)
	return nil
}

func (r *fakeWalletRepo) GetTransactionsByGuide(ctx context.Context, guideID string) ([]models.Transaction, error) {
	return r.ledger, nil
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

// WithTransaction restores the pre-transaction state when fn fails, the way
// an aborted Mongo transaction would.
func (r *fakeWalletRepo) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	wallets := map[string]*models.Wallet{}
	for id, w := range r.wallets {
		snapshot := *w
		wallets[id] = &snapshot
	}
	ledger := append([]models.Transaction(nil), r.ledger...)

	if err := fn(ctx); err != nil {
		r.wallets = wallets
		r.ledger = ledger
		return err
	}
	return nil
}

func TestFeeSplit(t *testing.T) {
	fee, earnings := FeeSplit(10000, 15)
	assert.Equal(t, 1500.0, fee)
	assert.Equal(t, 8500.0, earnings)

	fee, earnings = FeeSplit(9999, 15)
	assert.Equal(t, fee+earnings, 9999.0, "split must always sum back to the amount")
}

func TestCreateForBookingFixesSplit(t *testing.T) {
	repo := newFakePaymentRepo()
	svc := &DefaultPaymentService{Repo: repo, Wallets: newFakeWalletRepo(), FeePercent: 15}

	booking := &models.Booking{
		ID: "b1", GuideID: "g1", TouristID: "t1", TotalPrice: 10000,
		GuideName: "Kiala", TouristName: "Marta", PackageTitle: "Deserto do Namibe",
	}
	pay, err := svc.CreateForBooking(booking)
	require.NoError(t, err)

	assert.Equal(t, 10000.0, pay.Amount)
	assert.Equal(t, 1500.0, pay.PlatformFee)
	assert.Equal(t, 8500.0, pay.GuideEarnings)
	assert.Equal(t, models.PaymentPending, pay.Status)
	assert.Equal(t, "Deserto do Namibe", pay.PackageTitle)

	// A second confirm attempt reuses the existing record.
	again, err := svc.CreateForBooking(booking)
	require.NoError(t, err)
	assert.Equal(t, pay.ID, again.ID)
	assert.Len(t, repo.payments, 1)
}

func TestSetStatusCompletedCreditsGuideOnce(t *testing.T) {
	repo := newFakePaymentRepo(&models.Payment{
		ID: "p1", BookingID: "b1", GuideID: "g1", Amount: 10000,
		PlatformFee: 1500, GuideEarnings: 8500, Status: models.PaymentPending,
	})
	wallets := newFakeWalletRepo()
	svc := &DefaultPaymentService{Repo: repo, Wallets: wallets, FeePercent: 15}

	pay, err := svc.SetStatus(context.Background(), "p1", models.PaymentCompleted)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentCompleted, pay.Status)

	assert.Equal(t, 8500.0, wallets.wallets["g1"].CurrentBalance)
	require.Len(t, wallets.ledger, 1)
	assert.Equal(t, models.TxnEarning, wallets.ledger[0].Type)
	assert.Equal(t, 8500.0, wallets.ledger[0].Amount)
	assert.Equal(t, 0.0, wallets.ledger[0].BalanceBefore)
	assert.Equal(t, 8500.0, wallets.ledger[0].BalanceAfter)

	// Re-applying the same status is a no-op credit-wise.
	_, err = svc.SetStatus(context.Background(), "p1", models.PaymentCompleted)
	require.NoError(t, err)
	assert.Equal(t, 8500.0, wallets.wallets["g1"].CurrentBalance)
	assert.Len(t, wallets.ledger, 1)
}

func TestSetStatusRecoversLostEarningsCredit(t *testing.T) {
	repo := newFakePaymentRepo(&models.Payment{
		ID: "p1", BookingID: "b1", GuideID: "g1", Amount: 10000,
		PlatformFee: 1500, GuideEarnings: 8500, Status: models.PaymentPending,
	})
	wallets := newFakeWalletRepo()
	wallets.insertFailures = 1
	svc := &DefaultPaymentService{Repo: repo, Wallets: wallets, FeePercent: 15}

	// The status lands but the wallet transaction aborts.
	_, err := svc.SetStatus(context.Background(), "p1", models.PaymentCompleted)
	require.Error(t, err)
	assert.Equal(t, models.PaymentCompleted, repo.payments["p1"].Status)
	assert.Empty(t, wallets.ledger)

	// Retrying the edit credits the earnings the first attempt lost.
	_, err = svc.SetStatus(context.Background(), "p1", models.PaymentCompleted)
	require.NoError(t, err)
	assert.Equal(t, 8500.0, wallets.wallets["g1"].CurrentBalance, "guide earnings must eventually be credited")
	require.Len(t, wallets.ledger, 1)
	assert.Equal(t, models.TxnEarning, wallets.ledger[0].Type)
	assert.Equal(t, "p1", wallets.ledger[0].Reference)

	// And only once.
	_, err = svc.SetStatus(context.Background(), "p1", models.PaymentCompleted)
	require.NoError(t, err)
	assert.Equal(t, 8500.0, wallets.wallets["g1"].CurrentBalance)
	assert.Len(t, wallets.ledger, 1)
}

func TestSetStatusRejectsUnknownStatus(t *testing.T) {
	repo := newFakePaymentRepo(&models.Payment{ID: "p1", Status: models.PaymentPending})
	svc := &DefaultPaymentService{Repo: repo, Wallets: newFakeWalletRepo()}

	_, err := svc.SetStatus(context.Background(), "p1", "voided")
	assert.Error(t, err)
	assert.Equal(t, models.PaymentPending, repo.payments["p1"].Status)
}

func TestSetStatusNonCompletedEdgesSkipWallet(t *testing.T) {
	repo := newFakePaymentRepo(&models.Payment{
		ID: "p1", GuideID: "g1", GuideEarnings: 8500, Status: models.PaymentPending,
	})
	wallets := newFakeWalletRepo()
	svc := &DefaultPaymentService{Repo: repo, Wallets: wallets}

	for _, status := range []string{models.PaymentFailed, models.PaymentRefunded, models.PaymentPending} {
		_, err := svc.SetStatus(context.Background(), "p1", status)
		require.NoError(t, err)
	}
	_, created := wallets.wallets["g1"]
	assert.False(t, created)
	assert.Empty(t, wallets.ledger)
}

func TestSummarizeRevenueInvariant(t *testing.T) {
	payments := []models.Payment{
		{Amount: 10000, PlatformFee: 1500, GuideEarnings: 8500, Status: models.PaymentCompleted},
		{Amount: 6000, PlatformFee: 900, GuideEarnings: 5100, Status: models.PaymentCompleted},
		{Amount: 4000, PlatformFee: 600, GuideEarnings: 3400, Status: models.PaymentPending},
		{Amount: 2000, PlatformFee: 300, GuideEarnings: 1700, Status: models.PaymentRefunded},
	}

	sum := Summarize(payments)
	assert.Equal(t, 16000.0, sum.TotalRevenue, "only completed payments count")
	assert.Equal(t, 2, sum.CompletedCount)
	assert.Equal(t, sum.TotalRevenue, sum.TotalFees+sum.TotalGuideEarnings)
}
