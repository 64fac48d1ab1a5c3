package models

import "time"

// Booking statuses. Kept in Portuguese to match what the mobile and web
// clients display.
const (
	BookingPending   = "Pendente"
	BookingConfirmed = "Confirmado"
	BookingFinished  = "Finalizado"
	BookingCancelled = "Cancelado"
)

// Booking represents a reservation of a guide (optionally through a package)
// by a tourist for a date/time.
type Booking struct {
	ID           string    `bson:"id" json:"id"`
	PackageID    string    `bson:"package_id,omitempty" json:"package_id,omitempty"`
	PackageTitle string    `bson:"package_title,omitempty" json:"package_title,omitempty"`
	GuideID      string    `bson:"guide_id" json:"guide_id"`
	GuideName    string    `bson:"guide_name" json:"guide_name"`
	TouristID    string    `bson:"tourist_id" json:"tourist_id"`
	TouristName  string    `bson:"tourist_name" json:"tourist_name"`
	Date         string    `bson:"date" json:"date"` // "YYYY-MM-DD"
	Time         string    `bson:"time" json:"time"` // "HH:MM"
	Duration     int       `bson:"duration" json:"duration"` // hours
	GroupSize    int       `bson:"group_size" json:"group_size"`
	TotalPrice   float64   `bson:"total_price" json:"total_price"`
	Status       string    `bson:"status" json:"status"`
	Notes        string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`
}

// BookingInput carries the fields a tourist submits to create a booking.
type BookingInput struct {
	PackageID string `json:"package_id"`
	GuideID   string `json:"guide_id" binding:"required"`
	Date      string `json:"date" binding:"required"`
	Time      string `json:"time" binding:"required"`
	Duration  int    `json:"duration"`
	GroupSize int    `json:"group_size" binding:"required,min=1"`
	Notes     string `json:"notes"`
}
