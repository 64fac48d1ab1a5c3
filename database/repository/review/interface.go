package reviewRepo

import (
	"tundavala/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ReviewRepository defines methods for review data access.
type ReviewRepository interface {
	// GetByBookingAndTourist retrieves the review for a (booking, tourist)
	// pair, or nil if none exists.
	GetByBookingAndTourist(bookingID, touristID string) (*models.Review, error)
	// GetByGuide retrieves all reviews for a guide, newest first.
	GetByGuide(guideID string) ([]models.Review, error)
	// GetByPackage retrieves all reviews for a package, newest first.
	GetByPackage(packageID string) ([]models.Review, error)
	// Create inserts a new review.
	Create(review *models.Review) error
	// UpdateFields applies a partial $set update to a review document.
	UpdateFields(id string, fields bson.M) error
}
