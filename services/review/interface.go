package review

import (
	bookingRepo "tundavala/database/repository/booking"
	guideRepo "tundavala/database/repository/guide"
	reviewRepo "tundavala/database/repository/review"
	tourRepo "tundavala/database/repository/tour"
	userRepo "tundavala/database/repository/user"
	"tundavala/models"
)

// ReviewService covers review submission and retrieval.
type ReviewService interface {
	// Submit creates or updates the tourist's review of a booking and
	// recomputes the guide and package rating aggregates.
	Submit(touristID string, input models.ReviewInput) (*models.Review, error)
	ListByGuide(guideID string) ([]models.Review, error)
	ListByPackage(packageID string) ([]models.Review, error)
}

// DefaultReviewService is the production implementation.
type DefaultReviewService struct {
	Repo     reviewRepo.ReviewRepository
	Bookings bookingRepo.BookingRepository
	Guides   guideRepo.GuideRepository
	Tours    tourRepo.TourRepository
	Users    userRepo.UserRepository
}
