package tourRepo

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

// MongoTourRepo implements TourRepository using MongoDB.
type MongoTourRepo struct {
	coll *mongo.Collection
}

// NewMongoTourRepo creates a new instance of TourRepository using MongoDB.
func NewMongoTourRepo() TourRepository {
	repo := &MongoTourRepo{coll: database.Collection("packages")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create package indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoTourRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "guide_id", Value: 1}}},
		{Keys: bson.D{{Key: "is_active", Value: 1}, {Key: "location", Value: 1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a tour package by its ID.
func (r *MongoTourRepo) GetByID(id string) (*models.TourPackage, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var pkg models.TourPackage
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&pkg); err != nil {
		return nil, fmt.Errorf("failed to fetch package with id %s: %w", id, err)
	}
	return &pkg, nil
}

// GetAllActive retrieves all active packages, optionally filtered by location.
func (r *MongoTourRepo) GetAllActive(location string) ([]models.TourPackage, error) {
	filter := bson.M{"is_active": true}
	if location != "" {
		filter["location"] = bson.M{"$regex": location, "$options": "i"}
	}
	return r.find(filter)
}

// GetByGuide retrieves all packages owned by a guide.
func (r *MongoTourRepo) GetByGuide(guideID string) ([]models.TourPackage, error) {
	return r.find(bson.M{"guide_id": guideID})
}

func (r *MongoTourRepo) find(filter bson.M) ([]models.TourPackage, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve packages: %w", err)
	}
	defer cursor.Close(ctx)

	var pkgs []models.TourPackage
	if err := cursor.All(ctx, &pkgs); err != nil {
		return nil, fmt.Errorf("failed to decode packages: %w", err)
	}
	return pkgs, nil
}

// Create inserts a new tour package.
func (r *MongoTourRepo) Create(pkg *models.TourPackage) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	pkg.CreatedAt = now
	pkg.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, pkg); err != nil {
		return fmt.Errorf("failed to create package: %w", err)
	}
	return nil
}

// UpdateFields applies a partial $set update to a package document.
func (r *MongoTourRepo) UpdateFields(id string, fields bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	fields["updated_at"] = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("failed to update package with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("package with id %s not found", id)
	}
	return nil
}

// Delete removes a tour package by its ID.
func (r *MongoTourRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete package with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("package with id %s not found", id)
	}
	return nil
}
