package favoriteRepo

import "tundavala/models"

// FavoriteRepository defines methods for favorite data access.
type FavoriteRepository interface {
	// GetByTourist retrieves all favorites saved by a tourist, newest first.
	GetByTourist(touristID string) ([]models.Favorite, error)
	// Create inserts a favorite. Re-adding an existing pair is a no-op.
	Create(fav *models.Favorite) error
	// Delete removes the favorite for a (tourist, guide) pair.
	Delete(touristID, guideID string) error
}
