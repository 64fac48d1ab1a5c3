package destinationRepo

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

// MongoDestinationRepo implements DestinationRepository using MongoDB.
type MongoDestinationRepo struct {
	coll *mongo.Collection
}

// NewMongoDestinationRepo creates a new instance of DestinationRepository using MongoDB.
func NewMongoDestinationRepo() DestinationRepository {
	repo := &MongoDestinationRepo{coll: database.Collection("destinations")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create destination indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoDestinationRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "is_featured", Value: 1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetAll retrieves all destinations, optionally only featured ones.
func (r *MongoDestinationRepo) GetAll(featuredOnly bool) ([]models.Destination, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{}
	if featuredOnly {
		filter["is_featured"] = true
	}

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve destinations: %w", err)
	}
	defer cursor.Close(ctx)

	var dests []models.Destination
	if err := cursor.All(ctx, &dests); err != nil {
		return nil, fmt.Errorf("failed to decode destinations: %w", err)
	}
	return dests, nil
}

// Create inserts a new destination.
func (r *MongoDestinationRepo) Create(dest *models.Destination) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	dest.CreatedAt = now
	dest.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, dest); err != nil {
		return fmt.Errorf("failed to create destination: %w", err)
	}
	return nil
}

// UpdateFields applies a partial $set update to a destination document.
func (r *MongoDestinationRepo) UpdateFields(id string, fields bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	fields["updated_at"] = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("failed to update destination %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("destination with id %s not found", id)
	}
	return nil
}

// Delete removes a destination by its ID.
func (r *MongoDestinationRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete destination %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("destination with id %s not found", id)
	}
	return nil
}
