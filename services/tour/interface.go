package tour

import (
	guideRepo "tundavala/database/repository/guide"
	tourRepo "tundavala/database/repository/tour"
	"tundavala/models"
)

// ListField names one of the ordered string-list fields on a package.
type ListField string

const (
	FieldIncludes  ListField = "includes"
	FieldExcludes  ListField = "excludes"
	FieldItinerary ListField = "itinerary"
	FieldImages    ListField = "images"
)

// ListEdit is one operation against a package's ordered string-list field.
type ListEdit struct {
	Field ListField `json:"field" binding:"required,oneof=includes excludes itinerary images"`
	Op    string    `json:"op" binding:"required,oneof=add remove replace"`
	Index int       `json:"index"`
	Value string    `json:"value"`
}

// TourService covers tour package lifecycle.
type TourService interface {
	Create(guideID string, pkg models.TourPackage) (*models.TourPackage, error)
	GetByID(id string) (*models.TourPackage, error)
	ListActive(location string) ([]models.TourPackage, error)
	ListByGuide(guideID string) ([]models.TourPackage, error)
	Update(id string, update models.TourPackage) (*models.TourPackage, error)
	// EditList applies an ordered-list edit (add/remove/replace) to one of
	// the package's string-list fields.
	EditList(id string, edit ListEdit) (*models.TourPackage, error)
	SetActive(id string, active bool) error
	Delete(id string) error
}

// DefaultTourService is the production implementation.
type DefaultTourService struct {
	Repo   tourRepo.TourRepository
	Guides guideRepo.GuideRepository
}
