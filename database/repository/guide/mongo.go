package guideRepo

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

// MongoGuideRepo implements GuideRepository using MongoDB.
type MongoGuideRepo struct {
	coll *mongo.Collection
}

// NewMongoGuideRepo creates a new instance of GuideRepository using MongoDB.
func NewMongoGuideRepo() GuideRepository {
	repo := &MongoGuideRepo{coll: database.Collection("guides")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create guide indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoGuideRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "city", Value: 1}}},
		{Keys: bson.D{{Key: "is_active", Value: 1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a guide profile, or nil if the user has none yet.
func (r *MongoGuideRepo) GetByID(id string) (*models.Guide, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var guide models.Guide
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&guide); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch guide with id %s: %w", id, err)
	}
	return &guide, nil
}

// GetAll retrieves all guide profiles.
func (r *MongoGuideRepo) GetAll() ([]models.Guide, error) {
	return r.find(bson.M{})
}

// Search retrieves active guides matching the criteria. Empty criteria
// fields are ignored.
func (r *MongoGuideRepo) Search(criteria models.GuideSearchCriteria) ([]models.Guide, error) {
	filter := bson.M{"is_active": true}
	if criteria.City != "" {
		filter["city"] = bson.M{"$regex": criteria.City, "$options": "i"}
	}
	if criteria.Specialty != "" {
		filter["specialties"] = criteria.Specialty
	}
	if criteria.Language != "" {
		filter["languages"] = criteria.Language
	}
	return r.find(filter)
}

func (r *MongoGuideRepo) find(filter bson.M) ([]models.Guide, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "rating", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve guides: %w", err)
	}
	defer cursor.Close(ctx)

	var guides []models.Guide
	if err := cursor.All(ctx, &guides); err != nil {
		return nil, fmt.Errorf("failed to decode guides: %w", err)
	}
	return guides, nil
}

// Create inserts a new guide profile.
func (r *MongoGuideRepo) Create(guide *models.Guide) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	guide.CreatedAt = now
	guide.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, guide); err != nil {
		return fmt.Errorf("failed to create guide: %w", err)
	}
	return nil
}

// UpdateFields applies a partial $set update to a guide document.
func (r *MongoGuideRepo) UpdateFields(id string, fields bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	fields["updated_at"] = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("failed to update guide with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("guide with id %s not found", id)
	}
	return nil
}

// Delete removes a guide profile by its ID.
func (r *MongoGuideRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete guide with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("guide with id %s not found", id)
	}
	return nil
}

// Count counts all guide profiles.
func (r *MongoGuideRepo) Count() (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count guides: %w", err)
	}
	return count, nil
}

// CountActive counts guide profiles currently accepting bookings.
func (r *MongoGuideRepo) CountActive() (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, bson.M{"is_active": true})
	if err != nil {
		return 0, fmt.Errorf("failed to count active guides: %w", err)
	}
	return count, nil
}
