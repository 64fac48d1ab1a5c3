package guide

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"tundavala/models"
	"tundavala/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

const (
	directoryCacheKey = "guides:directory:"
	directoryCacheTTL = 5 * time.Minute
)

// CreateProfile onboards a guide. The profile is keyed by the owning user ID
// and a zero-balance wallet is provisioned alongside it.
func (s *DefaultGuideService) CreateProfile(userID string, profile models.Guide) (*models.Guide, error) {
	userRec, err := s.Users.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if userRec.Role != models.RoleGuide {
		return nil, fmt.Errorf("user %s does not hold the guide role", userID)
	}

	existing, err := s.Repo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing profile: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("guide profile already exists")
	}

	profile.ID = userID
	if profile.Name == "" {
		profile.Name = userRec.Name
	}
	profile.Rating = 0
	profile.ReviewCount = 0
	profile.IsActive = true

	if err := s.Repo.Create(&profile); err != nil {
		return nil, fmt.Errorf("failed to create guide profile: %w", err)
	}

	if _, err := s.Wallets.EnsureWallet(context.Background(), userID); err != nil {
		// Profile exists but the wallet is missing; EnsureWallet runs again
		// lazily on the first wallet read.
		utils.GetLogger().Error("CreateProfile: wallet provisioning failed",
			zap.String("guideID", userID), zap.Error(err))
	}

	s.invalidateDirectory()
	return &profile, nil
}

// GetProfile retrieves a guide profile.
func (s *DefaultGuideService) GetProfile(guideID string) (*models.Guide, error) {
	guide, err := s.Repo.GetByID(guideID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch guide: %w", err)
	}
	if guide == nil {
		return nil, fmt.Errorf("guide %s not found", guideID)
	}
	return guide, nil
}

// UpdateProfile updates non-empty profile fields. Rating and review count are
// owned by the review service and never updated here.
func (s *DefaultGuideService) UpdateProfile(guideID string, update models.Guide) (*models.Guide, error) {
	updateFields := bson.M{}
	if update.Name != "" {
		updateFields["name"] = update.Name
	}
	if update.City != "" {
		updateFields["city"] = update.City
	}
	if update.Description != "" {
		updateFields["description"] = update.Description
	}
	if update.Experience != 0 {
		updateFields["experience"] = update.Experience
	}
	if update.PricePerHour != 0 {
		updateFields["price_per_hour"] = update.PricePerHour
	}
	if update.Languages != nil {
		updateFields["languages"] = update.Languages
	}
	if update.Specialties != nil {
		updateFields["specialties"] = update.Specialties
	}
	if update.PhotoURL != "" {
		updateFields["photo_url"] = update.PhotoURL
	}

	if len(updateFields) == 0 {
		return nil, fmt.Errorf("no updatable fields provided")
	}

	if err := s.Repo.UpdateFields(guideID, updateFields); err != nil {
		return nil, fmt.Errorf("failed to update guide: %w", err)
	}

	s.invalidateDirectory()
	return s.GetProfile(guideID)
}

// SetActive toggles a guide's visibility in the public directory.
func (s *DefaultGuideService) SetActive(guideID string, active bool) error {
	if err := s.Repo.UpdateFields(guideID, bson.M{"is_active": active}); err != nil {
		return fmt.Errorf("failed to set guide active flag: %w", err)
	}
	s.invalidateDirectory()
	return nil
}

// DeleteProfile removes a guide profile.
func (s *DefaultGuideService) DeleteProfile(guideID string) error {
	if err := s.Repo.Delete(guideID); err != nil {
		return fmt.Errorf("failed to delete guide: %w", err)
	}
	s.invalidateDirectory()
	return nil
}

// Search lists active guides matching the criteria, serving from the Redis
// cache when possible.
func (s *DefaultGuideService) Search(criteria models.GuideSearchCriteria) ([]models.Guide, error) {
	cacheKey := directoryCacheKey + criteria.City + ":" + criteria.Specialty + ":" + criteria.Language
	ctx := context.Background()

	if s.Cache != nil {
		if cached, err := s.Cache.Get(ctx, cacheKey).Result(); err == nil {
			var guides []models.Guide
			if err := json.Unmarshal([]byte(cached), &guides); err == nil {
				return guides, nil
			}
		}
	}

	guides, err := s.Repo.Search(criteria)
	if err != nil {
		return nil, fmt.Errorf("failed to search guides: %w", err)
	}

	if s.Cache != nil {
		if data, err := json.Marshal(guides); err == nil {
			if err := s.Cache.Set(ctx, cacheKey, data, directoryCacheTTL).Err(); err != nil {
				utils.GetLogger().Warn("Search: failed to cache directory", zap.Error(err))
			}
		}
	}
	return guides, nil
}

// GetAll lists every guide profile for the admin back office.
func (s *DefaultGuideService) GetAll() ([]models.Guide, error) {
	guides, err := s.Repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list guides: %w", err)
	}
	return guides, nil
}

// invalidateDirectory drops all cached directory pages after a profile write.
func (s *DefaultGuideService) invalidateDirectory() {
	if s.Cache == nil {
		return
	}
	ctx := context.Background()
	iter := s.Cache.Scan(ctx, 0, directoryCacheKey+"*", 100).Iterator()
	for iter.Next(ctx) {
		s.Cache.Del(ctx, iter.Val())
	}
}
