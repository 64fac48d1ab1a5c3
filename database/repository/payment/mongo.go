package paymentRepo

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

// MongoPaymentRepo implements PaymentRepository using MongoDB.
type MongoPaymentRepo struct {
	coll *mongo.Collection
}

// NewMongoPaymentRepo creates a new instance of PaymentRepository using MongoDB.
func NewMongoPaymentRepo() PaymentRepository {
	repo := &MongoPaymentRepo{coll: database.Collection("payments")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create payment indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoPaymentRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "booking_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "guide_id", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a payment by its ID.
func (r *MongoPaymentRepo) GetByID(id string) (*models.Payment, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var payment models.Payment
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&payment); err != nil {
		return nil, fmt.Errorf("failed to fetch payment with id %s: %w", id, err)
	}
	return &payment, nil
}

// GetByBooking retrieves the payment attached to a booking, or nil.
func (r *MongoPaymentRepo) GetByBooking(bookingID string) (*models.Payment, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var payment models.Payment
	if err := r.coll.FindOne(ctx, bson.M{"booking_id": bookingID}).Decode(&payment); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch payment for booking %s: %w", bookingID, err)
	}
	return &payment, nil
}

// GetByGuide retrieves all payments for a guide, newest first.
func (r *MongoPaymentRepo) GetByGuide(guideID string) ([]models.Payment, error) {
	return r.find(bson.M{"guide_id": guideID})
}

// GetAll retrieves all payments, newest first.
func (r *MongoPaymentRepo) GetAll() ([]models.Payment, error) {
	return r.find(bson.M{})
}

func (r *MongoPaymentRepo) find(filter bson.M) ([]models.Payment, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve payments: %w", err)
	}
	defer cursor.Close(ctx)

	var payments []models.Payment
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, fmt.Errorf("failed to decode payments: %w", err)
	}
	return payments, nil
}

// Create inserts a new payment record.
func (r *MongoPaymentRepo) Create(payment *models.Payment) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	payment.CreatedAt = now
	payment.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, payment); err != nil {
		return fmt.Errorf("failed to create payment: %w", err)
	}
	return nil
}

// UpdateStatus sets the payment status conditioned on the stored status still
// being expectedStatus.
func (r *MongoPaymentRepo) UpdateStatus(id, expectedStatus, newStatus string) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id, "status": expectedStatus}
	update := bson.M{"$set": bson.M{"status": newStatus, "updated_at": time.Now()}}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("failed to update payment %s status: %w", id, err)
	}
	return result.MatchedCount > 0, nil
}

// SetTransactionID stores the processor reference on a payment.
func (r *MongoPaymentRepo) SetTransactionID(id, transactionID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"transaction_id": transactionID, "updated_at": time.Now()}}
	if _, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update); err != nil {
		return fmt.Errorf("failed to set transaction id on payment %s: %w", id, err)
	}
	return nil
}

// RevenueSummary aggregates completed payments server-side.
func (r *MongoPaymentRepo) RevenueSummary() (*models.RevenueSummary, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"status": models.PaymentCompleted}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":                  nil,
			"total_revenue":        bson.M{"$sum": "$amount"},
			"total_fees":           bson.M{"$sum": "$platform_fee"},
			"total_guide_earnings": bson.M{"$sum": "$guide_earnings"},
			"completed_count":      bson.M{"$sum": 1},
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate revenue: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		TotalRevenue       float64 `bson:"total_revenue"`
		TotalFees          float64 `bson:"total_fees"`
		TotalGuideEarnings float64 `bson:"total_guide_earnings"`
		CompletedCount     int     `bson:"completed_count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode revenue aggregate: %w", err)
	}

	summary := &models.RevenueSummary{}
	if len(rows) > 0 {
		summary.TotalRevenue = rows[0].TotalRevenue
		summary.TotalFees = rows[0].TotalFees
		summary.TotalGuideEarnings = rows[0].TotalGuideEarnings
		summary.CompletedCount = rows[0].CompletedCount
	}
	return summary, nil
}
