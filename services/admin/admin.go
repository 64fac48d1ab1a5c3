package admin

import (
	"fmt"

	"tundavala/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// Dashboard assembles the back office summary counters.
func (s *DefaultAdminService) Dashboard() (*DashboardStats, error) {
	stats := &DashboardStats{}

	var err error
	if stats.Tourists, err = s.Users.CountByRole(models.RoleTourist); err != nil {
		return nil, fmt.Errorf("failed to count tourists: %w", err)
	}
	if stats.Guides, err = s.Users.CountByRole(models.RoleGuide); err != nil {
		return nil, fmt.Errorf("failed to count guides: %w", err)
	}
	if stats.ActiveGuides, err = s.Guides.CountActive(); err != nil {
		return nil, fmt.Errorf("failed to count active guides: %w", err)
	}
	if stats.Bookings, err = s.Bookings.Count(); err != nil {
		return nil, fmt.Errorf("failed to count bookings: %w", err)
	}
	if stats.Revenue, err = s.Payments.Revenue(); err != nil {
		return nil, fmt.Errorf("failed to aggregate revenue: %w", err)
	}
	return stats, nil
}

// ListDestinations retrieves curated destinations.
func (s *DefaultAdminService) ListDestinations(featuredOnly bool) ([]models.Destination, error) {
	return s.Destinations.GetAll(featuredOnly)
}

// CreateDestination adds a curated destination.
func (s *DefaultAdminService) CreateDestination(input DestinationInput) (*models.Destination, error) {
	dest := &models.Destination{
		ID:          uuid.New().String(),
		Name:        input.Name,
		Province:    input.Province,
		Description: input.Description,
		ImageURL:    input.ImageURL,
		IsFeatured:  input.IsFeatured,
	}
	if err := s.Destinations.Create(dest); err != nil {
		return nil, fmt.Errorf("failed to create destination: %w", err)
	}
	return dest, nil
}

// UpdateDestination edits a curated destination.
func (s *DefaultAdminService) UpdateDestination(id string, input DestinationInput) error {
	return s.Destinations.UpdateFields(id, bson.M{
		"name":        input.Name,
		"province":    input.Province,
		"description": input.Description,
		"image_url":   input.ImageURL,
		"is_featured": input.IsFeatured,
	})
}

// DeleteDestination removes a curated destination.
func (s *DefaultAdminService) DeleteDestination(id string) error {
	return s.Destinations.Delete(id)
}
