package user

import (
	"fmt"

	"tundavala/models"
	"tundavala/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// GetUserByID retrieves a user by ID, excluding sensitive fields.
func (s *DefaultUserService) GetUserByID(userID string) (*models.User, error) {
	projection := bson.M{"password_hash": 0, "token_hash": 0}
	user, err := s.Repo.GetByIDWithProjection(userID, projection)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// GetUserByEmail retrieves a user by email, excluding sensitive fields.
func (s *DefaultUserService) GetUserByEmail(email string) (*models.User, error) {
	user, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user != nil {
		user.PasswordHash = ""
		user.TokenHash = ""
	}
	return user, nil
}

// UpdateUser updates non-empty profile fields using a partial update.
// The role field is immutable and never part of the update.
func (s *DefaultUserService) UpdateUser(userID string, update models.User) (*models.User, error) {
	logger := utils.GetLogger()

	updateFields := bson.M{}
	if update.Name != "" {
		updateFields["name"] = update.Name
	}
	if update.PhoneNumber != "" {
		updateFields["phone_number"] = update.PhoneNumber
	}
	if update.City != "" {
		updateFields["city"] = update.City
	}
	if update.PhotoURL != "" {
		updateFields["photo_url"] = update.PhotoURL
	}

	if len(updateFields) == 0 {
		return nil, fmt.Errorf("no updatable fields provided")
	}

	if err := s.Repo.UpdateFields(userID, updateFields); err != nil {
		logger.Error("Failed to update user", zap.String("userID", userID), zap.Error(err))
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return s.GetUserByID(userID)
}

// DeleteUser removes an account.
func (s *DefaultUserService) DeleteUser(userID string) error {
	if err := s.Repo.Delete(userID); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

// GetAllUsers retrieves all accounts for the admin back office.
func (s *DefaultUserService) GetAllUsers() ([]models.User, error) {
	users, err := s.Repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	for i := range users {
		users[i].PasswordHash = ""
		users[i].TokenHash = ""
	}
	return users, nil
}

// AddFavorite saves a guide for a tourist, denormalizing the guide's display
// fields onto the favorite. Re-adding an existing pair is a no-op.
func (s *DefaultUserService) AddFavorite(touristID, guideID string) (*models.Favorite, error) {
	guide, err := s.Guides.GetByID(guideID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch guide: %w", err)
	}
	if guide == nil {
		return nil, fmt.Errorf("guide %s not found", guideID)
	}

	fav := &models.Favorite{
		ID:         uuid.New().String(),
		TouristID:  touristID,
		GuideID:    guideID,
		GuideName:  guide.Name,
		GuideCity:  guide.City,
		GuidePhoto: guide.PhotoURL,
	}
	if err := s.Favorites.Create(fav); err != nil {
		return nil, fmt.Errorf("failed to add favorite: %w", err)
	}
	return fav, nil
}

// RemoveFavorite drops a saved guide.
func (s *DefaultUserService) RemoveFavorite(touristID, guideID string) error {
	if err := s.Favorites.Delete(touristID, guideID); err != nil {
		return fmt.Errorf("failed to remove favorite: %w", err)
	}
	return nil
}

// GetFavorites lists a tourist's saved guides.
func (s *DefaultUserService) GetFavorites(touristID string) ([]models.Favorite, error) {
	favs, err := s.Favorites.GetByTourist(touristID)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	return favs, nil
}
