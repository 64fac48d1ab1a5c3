package favoriteRepo

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

// MongoFavoriteRepo implements FavoriteRepository using MongoDB.
type MongoFavoriteRepo struct {
	coll *mongo.Collection
}

// NewMongoFavoriteRepo creates a new instance of FavoriteRepository using MongoDB.
func NewMongoFavoriteRepo() FavoriteRepository {
	repo := &MongoFavoriteRepo{coll: database.Collection("favorites")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create favorite indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoFavoriteRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "tourist_id", Value: 1}, {Key: "guide_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByTourist retrieves all favorites saved by a tourist, newest first.
func (r *MongoFavoriteRepo) GetByTourist(touristID string) ([]models.Favorite, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"tourist_id": touristID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve favorites: %w", err)
	}
	defer cursor.Close(ctx)

	var favs []models.Favorite
	if err := cursor.All(ctx, &favs); err != nil {
		return nil, fmt.Errorf("failed to decode favorites: %w", err)
	}
	return favs, nil
}

// Create inserts a favorite. Re-adding an existing pair is a no-op.
func (r *MongoFavoriteRepo) Create(fav *models.Favorite) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	fav.CreatedAt = time.Now()
	if _, err := r.coll.InsertOne(ctx, fav); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil
		}
		return fmt.Errorf("failed to create favorite: %w", err)
	}
	return nil
}

// Delete removes the favorite for a (tourist, guide) pair.
func (r *MongoFavoriteRepo) Delete(touristID, guideID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"tourist_id": touristID, "guide_id": guideID}
	if _, err := r.coll.DeleteOne(ctx, filter); err != nil {
		return fmt.Errorf("failed to delete favorite: %w", err)
	}
	return nil
}
