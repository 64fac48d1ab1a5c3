package tourRepo

import (
	"tundavala/models"

	"go.mongodb.org/mongo-driver/bson"
)

// TourRepository defines methods for tour package data access.
type TourRepository interface {
	// GetByID retrieves a tour package by its ID.
	GetByID(id string) (*models.TourPackage, error)
	// GetAllActive retrieves all active packages, optionally filtered by location.
	GetAllActive(location string) ([]models.TourPackage, error)
	// GetByGuide retrieves all packages owned by a guide.
	GetByGuide(guideID string) ([]models.TourPackage, error)
	// Create inserts a new tour package.
	Create(pkg *models.TourPackage) error
	// UpdateFields applies a partial $set update to a package document.
	UpdateFields(id string, fields bson.M) error
	// Delete removes a tour package by its ID.
	Delete(id string) error
}
