package guideRepo

import (
	"tundavala/models"

	"go.mongodb.org/mongo-driver/bson"
)

// GuideRepository defines methods for guide profile data access.
type GuideRepository interface {
	// GetByID retrieves a guide profile by its ID (the owning user ID),
	// or nil if none exists.
	GetByID(id string) (*models.Guide, error)
	// GetAll retrieves all guide profiles.
	GetAll() ([]models.Guide, error)
	// Search retrieves active guides matching the criteria.
	Search(criteria models.GuideSearchCriteria) ([]models.Guide, error)
	// Create inserts a new guide profile.
	Create(guide *models.Guide) error
	// UpdateFields applies a partial $set update to a guide document.
	UpdateFields(id string, fields bson.M) error
	// Delete removes a guide profile by its ID.
	Delete(id string) error
	// Count counts all guide profiles.
	Count() (int64, error)
	// CountActive counts guide profiles currently accepting bookings.
	CountActive() (int64, error)
}
