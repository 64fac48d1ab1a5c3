package walletRepo

import (
	"context"
	"fmt"
	"time"

	"tundavala/database"
	"tundavala/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoWalletRepo implements WalletRepository using MongoDB.
type MongoWalletRepo struct {
	wallets     *mongo.Collection
	withdrawals *mongo.Collection
	txns        *mongo.Collection
}

// NewMongoWalletRepo creates a new instance of WalletRepository using MongoDB.
func NewMongoWalletRepo() WalletRepository {
	repo := &MongoWalletRepo{
		wallets:     database.Collection("wallets"),
		withdrawals: database.Collection("withdrawals"),
		txns:        database.Collection("transactions"),
	}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create wallet indexes: %v\n", err)
	}
	return repo
}

func (r *MongoWalletRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := r.wallets.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "guide_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return fmt.Errorf("failed to create wallet index: %w", err)
	}

	withdrawalIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "guide_id", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}
	if _, err := r.withdrawals.Indexes().CreateMany(ctx, withdrawalIndexes); err != nil {
		return fmt.Errorf("failed to create withdrawal indexes: %w", err)
	}

	txnIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "guide_id", Value: 1}, {Key: "created_at", Value: -1}}},
		// One ledger entry per (reference, type): the earning credit for a
		// payment cannot land twice.
		{
			Keys: bson.D{{Key: "reference", Value: 1}, {Key: "type", Value: 1}},
			Options: options.Index().SetUnique(true).
				SetPartialFilterExpression(bson.M{"reference": bson.M{"$exists": true}}),
		},
	}
	if _, err := r.txns.Indexes().CreateMany(ctx, txnIndexes); err != nil {
		return fmt.Errorf("failed to create transaction indexes: %w", err)
	}
	return nil
}

// EnsureWallet retrieves a guide's wallet, creating a zero-balance one if missing.
func (r *MongoWalletRepo) EnsureWallet(ctx context.Context, guideID string) (*models.Wallet, error) {
	wallet, err := r.GetWallet(ctx, guideID)
	if err != nil {
		return nil, err
	}
	if wallet != nil {
		return wallet, nil
	}

	wallet = &models.Wallet{GuideID: guideID, UpdatedAt: time.Now()}
	if _, err := r.wallets.InsertOne(ctx, wallet); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return r.GetWallet(ctx, guideID)
		}
		return nil, fmt.Errorf("failed to create wallet for guide %s: %w", guideID, err)
	}
	return wallet, nil
}

// GetWallet retrieves a guide's wallet, or nil if none exists.
func (r *MongoWalletRepo) GetWallet(ctx context.Context, guideID string) (*models.Wallet, error) {
	var wallet models.Wallet
	if err := r.wallets.FindOne(ctx, bson.M{"guide_id": guideID}).Decode(&wallet); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch wallet for guide %s: %w", guideID, err)
	}
	return &wallet, nil
}

// SetBalances overwrites the wallet's three balance buckets.
func (r *MongoWalletRepo) SetBalances(ctx context.Context, guideID string, current, pending, withdrawn float64) error {
	update := bson.M{"$set": bson.M{
		"current_balance":    current,
		"pending_withdrawal": pending,
		"total_withdrawn":    withdrawn,
		"updated_at":         time.Now(),
	}}
	result, err := r.wallets.UpdateOne(ctx, bson.M{"guide_id": guideID}, update)
	if err != nil {
		return fmt.Errorf("failed to update wallet for guide %s: %w", guideID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("wallet for guide %s not found", guideID)
	}
	return nil
}

// GetWithdrawal retrieves a withdrawal request by its ID.
func (r *MongoWalletRepo) GetWithdrawal(ctx context.Context, id string) (*models.WithdrawalRequest, error) {
	var req models.WithdrawalRequest
	if err := r.withdrawals.FindOne(ctx, bson.M{"id": id}).Decode(&req); err != nil {
		return nil, fmt.Errorf("failed to fetch withdrawal with id %s: %w", id, err)
	}
	return &req, nil
}

// GetWithdrawalsByGuide retrieves a guide's withdrawal requests, newest first.
func (r *MongoWalletRepo) GetWithdrawalsByGuide(ctx context.Context, guideID string) ([]models.WithdrawalRequest, error) {
	return r.findWithdrawals(ctx, bson.M{"guide_id": guideID})
}

// GetAllWithdrawals retrieves all withdrawal requests, newest first.
func (r *MongoWalletRepo) GetAllWithdrawals(ctx context.Context) ([]models.WithdrawalRequest, error) {
	return r.findWithdrawals(ctx, bson.M{})
}

func (r *MongoWalletRepo) findWithdrawals(ctx context.Context, filter bson.M) ([]models.WithdrawalRequest, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.withdrawals.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve withdrawals: %w", err)
	}
	defer cursor.Close(ctx)

	var reqs []models.WithdrawalRequest
	if err := cursor.All(ctx, &reqs); err != nil {
		return nil, fmt.Errorf("failed to decode withdrawals: %w", err)
	}
	return reqs, nil
}

// CreateWithdrawal inserts a new withdrawal request.
func (r *MongoWalletRepo) CreateWithdrawal(ctx context.Context, req *models.WithdrawalRequest) error {
	now := time.Now()
	req.CreatedAt = now
	req.UpdatedAt = now

	if _, err := r.withdrawals.InsertOne(ctx, req); err != nil {
		return fmt.Errorf("failed to create withdrawal: %w", err)
	}
	return nil
}

// UpdateWithdrawal applies a partial $set update to a withdrawal request.
func (r *MongoWalletRepo) UpdateWithdrawal(ctx context.Context, id string, fields bson.M) error {
	fields["updated_at"] = time.Now()
	result, err := r.withdrawals.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("failed to update withdrawal %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("withdrawal with id %s not found", id)
	}
	return nil
}

// InsertTransaction appends an immutable ledger entry.
func (r *MongoWalletRepo) InsertTransaction(ctx context.Context, txn *models.Transaction) error {
	txn.CreatedAt = time.Now()
	if _, err := r.txns.InsertOne(ctx, txn); err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}
	return nil
}

// GetTransactionByReference retrieves the ledger entry of the given type
// pointing at reference, or nil if none exists.
func (r *MongoWalletRepo) GetTransactionByReference(ctx context.Context, reference, txnType string) (*models.Transaction, error) {
	var txn models.Transaction
	if err := r.txns.FindOne(ctx, bson.M{"reference": reference, "type": txnType}).Decode(&txn); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch transaction for reference %s: %w", reference, err)
	}
	return &txn, nil
}

// GetTransactionsByGuide retrieves a guide's ledger, newest first.
func (r *MongoWalletRepo) GetTransactionsByGuide(ctx context.Context, guideID string) ([]models.Transaction, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.txns.Find(ctx, bson.M{"guide_id": guideID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve transactions: %w", err)
	}
	defer cursor.Close(ctx)

	var txns []models.Transaction
	if err := cursor.All(ctx, &txns); err != nil {
		return nil, fmt.Errorf("failed to decode transactions: %w", err)
	}
	return txns, nil
}

// WithTransaction runs fn inside a single Mongo transaction. The status
// update, wallet mutation and ledger append of a withdrawal transition either
// all commit or none do.
func (r *MongoWalletRepo) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	client := r.wallets.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := fn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		return fmt.Errorf("wallet transaction failed: %w", err)
	}
	return nil
}
