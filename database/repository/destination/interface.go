package destinationRepo

import (
	"tundavala/models"

	"go.mongodb.org/mongo-driver/bson"
)

// DestinationRepository defines methods for curated destination data access.
type DestinationRepository interface {
	// GetAll retrieves all destinations. When featuredOnly is set, only
	// featured ones are returned.
	GetAll(featuredOnly bool) ([]models.Destination, error)
	// Create inserts a new destination.
	Create(dest *models.Destination) error
	// UpdateFields applies a partial $set update to a destination document.
	UpdateFields(id string, fields bson.M) error
	// Delete removes a destination by its ID.
	Delete(id string) error
}
