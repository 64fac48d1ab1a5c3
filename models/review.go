package models

import "time"

// Review is a tourist's rating of a finished booking. At most one review
// exists per (booking, tourist) pair; a second submission updates the first.
type Review struct {
	ID          string    `bson:"id" json:"id"`
	BookingID   string    `bson:"booking_id" json:"booking_id"`
	TouristID   string    `bson:"tourist_id" json:"tourist_id"`
	TouristName string    `bson:"tourist_name,omitempty" json:"tourist_name,omitempty"`
	GuideID     string    `bson:"guide_id" json:"guide_id"`
	PackageID   string    `bson:"package_id,omitempty" json:"package_id,omitempty"`
	Rating      int       `bson:"rating" json:"rating"` // 1-5
	Comment     string    `bson:"comment" json:"comment"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}

// ReviewInput carries a review submission.
type ReviewInput struct {
	BookingID string `json:"booking_id" binding:"required"`
	Rating    int    `json:"rating" binding:"required,min=1,max=5"`
	Comment   string `json:"comment" binding:"required,min=10"`
}
