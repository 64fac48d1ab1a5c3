package models

import "time"

// Roles a platform account can hold. A role is assigned at registration
// and never changes afterwards.
const (
	RoleTourist = "tourist"
	RoleGuide   = "guide"
	RoleAdmin   = "admin"
)

// User represents a platform account (tourist, guide or admin).
type User struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"password_hash,omitempty" json:"-"`
	Role         string    `bson:"role" json:"role"`
	PhoneNumber  string    `bson:"phone_number,omitempty" json:"phone_number,omitempty"`
	City         string    `bson:"city,omitempty" json:"city,omitempty"`
	PhotoURL     string    `bson:"photo_url,omitempty" json:"photo_url,omitempty"`
	// TokenHash holds the SHA-256 of the currently issued JWT; cleared on revoke.
	TokenHash string    `bson:"token_hash,omitempty" json:"-"`
	Provider  string    `bson:"provider,omitempty" json:"provider,omitempty"` // "password" or "google"
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// UserRegistrationData carries the fields accepted at sign-up.
type UserRegistrationData struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	Role        string `json:"role" binding:"required,oneof=tourist guide"`
	PhoneNumber string `json:"phone_number"`
	City        string `json:"city"`
}
