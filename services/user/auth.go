package user

import (
	"context"
	"fmt"
	"time"

	"tundavala/models"
	"tundavala/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Register creates a new account with the tourist or guide role. Admin
// accounts are provisioned out of band.
func (s *DefaultUserService) Register(data models.UserRegistrationData) (*AuthResponse, error) {
	if data.Role != models.RoleTourist && data.Role != models.RoleGuide {
		return nil, fmt.Errorf("invalid role %q", data.Role)
	}

	existing, err := s.Repo.GetByEmail(data.Email)
	if err != nil {
		return nil, fmt.Errorf("registration failed: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("an account with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	newUser := &models.User{
		ID:           uuid.New().String(),
		Name:         data.Name,
		Email:        data.Email,
		PasswordHash: string(hash),
		Role:         data.Role,
		PhoneNumber:  data.PhoneNumber,
		City:         data.City,
		Provider:     "password",
	}
	if err := s.Repo.Create(newUser); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.issueToken(newUser)
}

// Authenticate verifies an email/password pair and issues a fresh token.
func (s *DefaultUserService) Authenticate(email, password string) (*AuthResponse, error) {
	userRec, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("Authenticate: failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if userRec == nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userRec.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	return s.issueToken(userRec)
}

// AuthenticateWithGoogle verifies a Firebase ID token and signs the matching
// account in, creating a tourist account on first login.
func (s *DefaultUserService) AuthenticateWithGoogle(idToken string) (*AuthResponse, error) {
	email, name, photoURL, err := s.Verifier.Verify(idToken)
	if err != nil {
		return nil, fmt.Errorf("google sign-in failed: %w", err)
	}

	userRec, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("google sign-in failed: %w", err)
	}
	if userRec == nil {
		userRec = &models.User{
			ID:       uuid.New().String(),
			Name:     name,
			Email:    email,
			Role:     models.RoleTourist,
			PhotoURL: photoURL,
			Provider: "google",
		}
		if err := s.Repo.Create(userRec); err != nil {
			return nil, fmt.Errorf("failed to create user: %w", err)
		}
	}

	return s.issueToken(userRec)
}

// issueToken generates a JWT, persists its hash and caches it for the auth
// middleware.
func (s *DefaultUserService) issueToken(userRec *models.User) (*AuthResponse, error) {
	token, err := utils.GenerateToken(userRec.ID, userRec.Email, userRec.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	tokenHash := utils.HashToken(token)

	if err := s.Repo.UpdateFields(userRec.ID, bson.M{"token_hash": tokenHash}); err != nil {
		return nil, fmt.Errorf("failed to persist token: %w", err)
	}

	authCache := utils.GetAuthCacheClient()
	cacheKey := utils.AuthCachePrefix + userRec.ID
	if err := authCache.Set(context.Background(), cacheKey, tokenHash, 7*24*time.Hour).Err(); err != nil {
		utils.GetLogger().Warn("issueToken: failed to cache token hash", zap.Error(err))
	}

	return &AuthResponse{
		ID:       userRec.ID,
		Token:    token,
		Name:     userRec.Name,
		Email:    userRec.Email,
		Role:     userRec.Role,
		PhotoURL: userRec.PhotoURL,
	}, nil
}

// RevokeAuthToken clears the persisted token hash and its cache entry,
// signing the user out everywhere.
func (s *DefaultUserService) RevokeAuthToken(userID string) error {
	if err := s.Repo.UpdateFields(userID, bson.M{"token_hash": ""}); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}

	authCache := utils.GetAuthCacheClient()
	if err := authCache.Del(context.Background(), utils.AuthCachePrefix+userID).Err(); err != nil {
		utils.GetLogger().Warn("RevokeAuthToken: failed to clear token cache", zap.Error(err))
	}
	return nil
}

// UpdatePassword verifies the current password and stores a new hash.
func (s *DefaultUserService) UpdatePassword(userID, currentPassword, newPassword string) error {
	existing, err := s.Repo.GetByID(userID)
	if err != nil {
		return fmt.Errorf("user not found: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(existing.PasswordHash), []byte(currentPassword)); err != nil {
		return fmt.Errorf("current password is incorrect")
	}
	if len(newPassword) < 8 {
		return fmt.Errorf("password must be at least 8 characters")
	}

	newHash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}

	if err := s.Repo.UpdateFields(userID, bson.M{"password_hash": string(newHash)}); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return s.RevokeAuthToken(userID)
}
