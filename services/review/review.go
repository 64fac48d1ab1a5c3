package review

import (
	"errors"
	"fmt"
	"math"

	"tundavala/models"
	"tundavala/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// ErrBookingNotReviewable is returned when the booking is not finished or
// does not belong to the submitting tourist.
var ErrBookingNotReviewable = errors.New("booking cannot be reviewed")

// AverageRating computes the arithmetic mean of a review set, rounded to one
// decimal. An empty set averages to zero.
func AverageRating(reviews []models.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	return math.Round(float64(sum)/float64(len(reviews))*10) / 10
}

// Submit creates or updates the tourist's review of a booking. A second
// submission for the same booking overwrites the first instead of stacking a
// duplicate; the unique index backs the lookup against races.
func (s *DefaultReviewService) Submit(touristID string, input models.ReviewInput) (*models.Review, error) {
	booking, err := s.Bookings.GetByID(input.BookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking: %w", err)
	}
	if booking.TouristID != touristID {
		return nil, fmt.Errorf("%w: booking belongs to another tourist", ErrBookingNotReviewable)
	}
	if booking.Status != models.BookingFinished {
		return nil, fmt.Errorf("%w: booking is %s, only finished bookings can be reviewed",
			ErrBookingNotReviewable, booking.Status)
	}

	existing, err := s.Repo.GetByBookingAndTourist(input.BookingID, touristID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up existing review: %w", err)
	}

	var review *models.Review
	if existing != nil {
		if err := s.Repo.UpdateFields(existing.ID, bson.M{
			"rating":  input.Rating,
			"comment": input.Comment,
		}); err != nil {
			return nil, fmt.Errorf("failed to update review: %w", err)
		}
		existing.Rating = input.Rating
		existing.Comment = input.Comment
		review = existing
	} else {
		review = &models.Review{
			ID:        uuid.New().String(),
			BookingID: booking.ID,
			TouristID: touristID,
			GuideID:   booking.GuideID,
			PackageID: booking.PackageID,
			Rating:    input.Rating,
			Comment:   input.Comment,
		}
		if user, err := s.Users.GetByID(touristID); err == nil {
			review.TouristName = user.Name
		}
		if err := s.Repo.Create(review); err != nil {
			// Two concurrent first submissions race into the unique index;
			// the loser lands on the winner's document as an update.
			if mongo.IsDuplicateKeyError(err) {
				winner, lookupErr := s.Repo.GetByBookingAndTourist(input.BookingID, touristID)
				if lookupErr != nil || winner == nil {
					return nil, fmt.Errorf("failed to create review: %w", err)
				}
				if err := s.Repo.UpdateFields(winner.ID, bson.M{
					"rating":  input.Rating,
					"comment": input.Comment,
				}); err != nil {
					return nil, fmt.Errorf("failed to update review: %w", err)
				}
				winner.Rating = input.Rating
				winner.Comment = input.Comment
				review = winner
			} else {
				return nil, fmt.Errorf("failed to create review: %w", err)
			}
		}
	}

	s.refreshAggregates(booking.GuideID, booking.PackageID)
	return review, nil
}

// refreshAggregates recomputes the rating mean and review count from the full
// review set. Recomputing from scratch keeps edits and creates on the same
// path. Aggregate failures are logged, never surfaced to the reviewer.
func (s *DefaultReviewService) refreshAggregates(guideID, packageID string) {
	logger := utils.GetLogger()

	if reviews, err := s.Repo.GetByGuide(guideID); err == nil {
		if err := s.Guides.UpdateFields(guideID, bson.M{
			"rating":       AverageRating(reviews),
			"review_count": len(reviews),
		}); err != nil {
			logger.Error("failed to refresh guide rating", zap.String("guideID", guideID), zap.Error(err))
		}
	} else {
		logger.Error("failed to load guide reviews", zap.String("guideID", guideID), zap.Error(err))
	}

	if packageID == "" {
		return
	}
	if reviews, err := s.Repo.GetByPackage(packageID); err == nil {
		if err := s.Tours.UpdateFields(packageID, bson.M{
			"rating":       AverageRating(reviews),
			"review_count": len(reviews),
		}); err != nil {
			logger.Error("failed to refresh package rating", zap.String("packageID", packageID), zap.Error(err))
		}
	} else {
		logger.Error("failed to load package reviews", zap.String("packageID", packageID), zap.Error(err))
	}
}

// ListByGuide retrieves a guide's reviews.
func (s *DefaultReviewService) ListByGuide(guideID string) ([]models.Review, error) {
	return s.Repo.GetByGuide(guideID)
}

// ListByPackage retrieves a package's reviews.
func (s *DefaultReviewService) ListByPackage(packageID string) ([]models.Review, error) {
	return s.Repo.GetByPackage(packageID)
}
