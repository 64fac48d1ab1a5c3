package admin

import (
	bookingRepo "tundavala/database/repository/booking"
	destinationRepo "tundavala/database/repository/destination"
	guideRepo "tundavala/database/repository/guide"
	"tundavala/models"
	"tundavala/services/payment"
)

// DashboardStats is the admin landing page summary.
type DashboardStats struct {
	Tourists     int64                  `json:"tourists"`
	Guides       int64                  `json:"guides"`
	ActiveGuides int64                  `json:"active_guides"`
	Bookings     int64                  `json:"bookings"`
	Revenue      *models.RevenueSummary `json:"revenue"`
}

// DestinationInput carries an admin destination edit.
type DestinationInput struct {
	Name        string `json:"name" binding:"required"`
	Province    string `json:"province" binding:"required"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	IsFeatured  bool   `json:"is_featured"`
}

// AdminService covers the back office: platform stats and curated content.
type AdminService interface {
	Dashboard() (*DashboardStats, error)
	ListDestinations(featuredOnly bool) ([]models.Destination, error)
	CreateDestination(input DestinationInput) (*models.Destination, error)
	UpdateDestination(id string, input DestinationInput) error
	DeleteDestination(id string) error
}

// DefaultAdminService is the production implementation.
type DefaultAdminService struct {
	Users        UserCounter
	Guides       guideRepo.GuideRepository
	Bookings     bookingRepo.BookingRepository
	Destinations destinationRepo.DestinationRepository
	Payments     payment.PaymentService
}

// UserCounter is the slice of the user repository the dashboard needs.
type UserCounter interface {
	CountByRole(role string) (int64, error)
}
