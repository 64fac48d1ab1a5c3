package models

import "time"

// Favorite marks a guide saved by a tourist. The (tourist, guide) pair is
// unique; re-adding an existing favorite is a no-op.
type Favorite struct {
	ID         string    `bson:"id" json:"id"`
	TouristID  string    `bson:"tourist_id" json:"tourist_id"`
	GuideID    string    `bson:"guide_id" json:"guide_id"`
	GuideName  string    `bson:"guide_name" json:"guide_name"`
	GuideCity  string    `bson:"guide_city,omitempty" json:"guide_city,omitempty"`
	GuidePhoto string    `bson:"guide_photo,omitempty" json:"guide_photo,omitempty"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
}
