package guide

import (
	guideRepo "tundavala/database/repository/guide"
	userRepo "tundavala/database/repository/user"
	walletRepo "tundavala/database/repository/wallet"
	"tundavala/models"

	"github.com/go-redis/redis/v8"
)

// GuideService covers guide profile lifecycle and the public directory.
type GuideService interface {
	// CreateProfile onboards a guide: creates the profile keyed by the user
	// ID and provisions a zero-balance wallet.
	CreateProfile(userID string, profile models.Guide) (*models.Guide, error)
	GetProfile(guideID string) (*models.Guide, error)
	UpdateProfile(guideID string, update models.Guide) (*models.Guide, error)
	SetActive(guideID string, active bool) error
	DeleteProfile(guideID string) error

	// Search lists active guides matching the criteria. Results are cached
	// briefly to keep the public directory cheap.
	Search(criteria models.GuideSearchCriteria) ([]models.Guide, error)
	GetAll() ([]models.Guide, error)
}

// DefaultGuideService is the production implementation.
type DefaultGuideService struct {
	Repo    guideRepo.GuideRepository
	Users   userRepo.UserRepository
	Wallets walletRepo.WalletRepository
	Cache   *redis.Client
}
