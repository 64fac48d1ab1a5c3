package models

import "time"

// Guide is the public profile of a supplier user offering tours.
// It is keyed by the owning user's ID.
type Guide struct {
	ID          string   `bson:"id" json:"id"` // same as the owning user ID
	Name        string   `bson:"name" json:"name"`
	City        string   `bson:"city" json:"city"`
	Description string   `bson:"description" json:"description"`
	Experience  int      `bson:"experience" json:"experience"` // years
	PricePerHour float64 `bson:"price_per_hour" json:"price_per_hour"`
	Languages   []string `bson:"languages" json:"languages"`
	Specialties []string `bson:"specialties" json:"specialties"`
	// Rating is the arithmetic mean of all review ratings, recomputed on
	// every review write. ReviewCount is the full review count.
	Rating      float64   `bson:"rating" json:"rating"`
	ReviewCount int       `bson:"review_count" json:"review_count"`
	PhotoURL    string    `bson:"photo_url,omitempty" json:"photo_url,omitempty"`
	IsActive    bool      `bson:"is_active" json:"is_active"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}

// GuideSearchCriteria holds parameters for the public guide directory.
type GuideSearchCriteria struct {
	City      string
	Specialty string
	Language  string
}
