package models

import "time"

// Destination is an admin-curated highlight shown on the landing pages
// (Tundavala, Kalandula, Mussulo, ...).
type Destination struct {
	ID          string    `bson:"id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Province    string    `bson:"province" json:"province"`
	Description string    `bson:"description" json:"description"`
	ImageURL    string    `bson:"image_url,omitempty" json:"image_url,omitempty"`
	IsFeatured  bool      `bson:"is_featured" json:"is_featured"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}
