package tour

import (
	"fmt"

	"tundavala/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// Create adds a new package owned by the guide. The guide name is
// denormalized onto the package for display.
func (s *DefaultTourService) Create(guideID string, pkg models.TourPackage) (*models.TourPackage, error) {
	guide, err := s.Guides.GetByID(guideID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch guide: %w", err)
	}
	if guide == nil {
		return nil, fmt.Errorf("guide %s not found", guideID)
	}

	if pkg.Title == "" {
		return nil, fmt.Errorf("package title is required")
	}
	if pkg.Price <= 0 {
		return nil, fmt.Errorf("package price must be positive")
	}
	if pkg.MaxGroupSize <= 0 {
		pkg.MaxGroupSize = 1
	}

	pkg.ID = uuid.New().String()
	pkg.GuideID = guideID
	pkg.GuideName = guide.Name
	pkg.IsActive = true
	pkg.Rating = 0
	pkg.ReviewCount = 0

	if err := s.Repo.Create(&pkg); err != nil {
		return nil, fmt.Errorf("failed to create package: %w", err)
	}
	return &pkg, nil
}

// GetByID retrieves a package.
func (s *DefaultTourService) GetByID(id string) (*models.TourPackage, error) {
	return s.Repo.GetByID(id)
}

// ListActive lists active packages, optionally filtered by location.
func (s *DefaultTourService) ListActive(location string) ([]models.TourPackage, error) {
	return s.Repo.GetAllActive(location)
}

// ListByGuide lists a guide's packages, active or not.
func (s *DefaultTourService) ListByGuide(guideID string) ([]models.TourPackage, error) {
	return s.Repo.GetByGuide(guideID)
}

// Update updates non-empty scalar fields of a package. List fields are edited
// through EditList.
func (s *DefaultTourService) Update(id string, update models.TourPackage) (*models.TourPackage, error) {
	updateFields := bson.M{}
	if update.Title != "" {
		updateFields["title"] = update.Title
	}
	if update.Description != "" {
		updateFields["description"] = update.Description
	}
	if update.Duration != 0 {
		updateFields["duration"] = update.Duration
	}
	if update.Price != 0 {
		updateFields["price"] = update.Price
	}
	if update.MaxGroupSize != 0 {
		updateFields["max_group_size"] = update.MaxGroupSize
	}
	if update.Location != "" {
		updateFields["location"] = update.Location
	}

	if len(updateFields) == 0 {
		return nil, fmt.Errorf("no updatable fields provided")
	}

	if err := s.Repo.UpdateFields(id, updateFields); err != nil {
		return nil, fmt.Errorf("failed to update package: %w", err)
	}
	return s.Repo.GetByID(id)
}

// EditList applies one add/remove/replace operation to a package's ordered
// string-list field and persists the resulting list whole.
func (s *DefaultTourService) EditList(id string, edit ListEdit) (*models.TourPackage, error) {
	pkg, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch package: %w", err)
	}

	var list models.StringList
	switch edit.Field {
	case FieldIncludes:
		list = pkg.Includes
	case FieldExcludes:
		list = pkg.Excludes
	case FieldItinerary:
		list = pkg.Itinerary
	case FieldImages:
		list = pkg.Images
	default:
		return nil, fmt.Errorf("unknown list field %q", edit.Field)
	}

	switch edit.Op {
	case "add":
		if edit.Value == "" {
			return nil, fmt.Errorf("value is required for add")
		}
		list = list.Add(edit.Value)
	case "remove":
		if edit.Index < 0 || edit.Index >= len(list) {
			return nil, fmt.Errorf("index %d out of range", edit.Index)
		}
		list = list.Remove(edit.Index)
	case "replace":
		if edit.Index < 0 || edit.Index >= len(list) {
			return nil, fmt.Errorf("index %d out of range", edit.Index)
		}
		list = list.Replace(edit.Index, edit.Value)
	default:
		return nil, fmt.Errorf("unknown list operation %q", edit.Op)
	}

	if err := s.Repo.UpdateFields(id, bson.M{string(edit.Field): list}); err != nil {
		return nil, fmt.Errorf("failed to update package list: %w", err)
	}
	return s.Repo.GetByID(id)
}

// SetActive toggles a package's visibility.
func (s *DefaultTourService) SetActive(id string, active bool) error {
	if err := s.Repo.UpdateFields(id, bson.M{"is_active": active}); err != nil {
		return fmt.Errorf("failed to set package active flag: %w", err)
	}
	return nil
}

// Delete removes a package.
func (s *DefaultTourService) Delete(id string) error {
	return s.Repo.Delete(id)
}
