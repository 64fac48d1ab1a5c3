package bookingRepo

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

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo creates a new instance of BookingRepository using MongoDB.
func NewMongoBookingRepo() BookingRepository {
	repo := &MongoBookingRepo{coll: database.Collection("bookings")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create booking indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoBookingRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "tourist_id", Value: 1}}},
		{Keys: bson.D{{Key: "guide_id", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "created_at", Value: 1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a booking by its ID.
func (r *MongoBookingRepo) GetByID(id string) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var booking models.Booking
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&booking); err != nil {
		return nil, fmt.Errorf("failed to fetch booking with id %s: %w", id, err)
	}
	return &booking, nil
}

// GetByTourist retrieves all bookings made by a tourist, newest first.
func (r *MongoBookingRepo) GetByTourist(touristID string) ([]models.Booking, error) {
	return r.find(bson.M{"tourist_id": touristID})
}

// GetByGuide retrieves all bookings for a guide, newest first.
func (r *MongoBookingRepo) GetByGuide(guideID string) ([]models.Booking, error) {
	return r.find(bson.M{"guide_id": guideID})
}

// GetAll retrieves all bookings, newest first.
func (r *MongoBookingRepo) GetAll() ([]models.Booking, error) {
	return r.find(bson.M{})
}

func (r *MongoBookingRepo) find(filter bson.M) ([]models.Booking, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}

// Create inserts a new booking.
func (r *MongoBookingRepo) Create(booking *models.Booking) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	booking.CreatedAt = now
	booking.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, booking); err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

// UpdateStatus sets the booking status conditioned on the stored status still
// being expectedStatus, so two racing edits cannot both win.
func (r *MongoBookingRepo) UpdateStatus(id, expectedStatus, newStatus string) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id, "status": expectedStatus}
	update := bson.M{"$set": bson.M{"status": newStatus, "updated_at": time.Now()}}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("failed to update booking %s status: %w", id, err)
	}
	return result.MatchedCount > 0, nil
}

// GetStalePending retrieves bookings still pending that were created before the cutoff.
func (r *MongoBookingRepo) GetStalePending(cutoff time.Time) ([]models.Booking, error) {
	return r.find(bson.M{
		"status":     models.BookingPending,
		"created_at": bson.M{"$lt": cutoff},
	})
}

// Count counts all bookings.
func (r *MongoBookingRepo) Count() (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count bookings: %w", err)
	}
	return count, nil
}
