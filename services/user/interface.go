package user

import (
	favoriteRepo "tundavala/database/repository/favorite"
	guideRepo "tundavala/database/repository/guide"
	userRepo "tundavala/database/repository/user"
	"tundavala/models"
)

// UserService covers account lifecycle, authentication and favorites.
type UserService interface {
	// Registration & authentication
	Register(data models.UserRegistrationData) (*AuthResponse, error)
	Authenticate(email, password string) (*AuthResponse, error)
	AuthenticateWithGoogle(idToken string) (*AuthResponse, error)

	// Account management
	GetUserByID(userID string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	UpdateUser(userID string, update models.User) (*models.User, error)
	UpdatePassword(userID, currentPassword, newPassword string) error
	RevokeAuthToken(userID string) error
	DeleteUser(userID string) error

	// Favorites
	AddFavorite(touristID, guideID string) (*models.Favorite, error)
	RemoveFavorite(touristID, guideID string) error
	GetFavorites(touristID string) ([]models.Favorite, error)

	// Admin / utility
	GetAllUsers() ([]models.User, error)
}

// TokenVerifier abstracts Firebase ID-token verification so social login can
// be tested without a live Firebase project.
type TokenVerifier interface {
	Verify(idToken string) (email, name, photoURL string, err error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo      userRepo.UserRepository
	Guides    guideRepo.GuideRepository
	Favorites favoriteRepo.FavoriteRepository
	Verifier  TokenVerifier
}

// AuthResponse contains the authenticated user's identity and token.
type AuthResponse struct {
	ID       string `json:"id"`
	Token    string `json:"token"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	PhotoURL string `json:"photo_url,omitempty"`
}
