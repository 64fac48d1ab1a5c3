package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tundavala/models"
	"tundavala/services/booking"
)

// BookingHandler serves the reservation lifecycle endpoints.
type BookingHandler struct {
	BookingService booking.BookingService
}

// CreateHandler handles POST /bookings.
func (h *BookingHandler) CreateHandler(c *gin.Context) {
	logger := getLogger(c)

	userID, ok := actorID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input models.BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	created, err := h.BookingService.Create(userID, input)
	if err != nil {
		logger.Error("Booking creation failed", zap.String("touristID", userID), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetHandler handles GET /bookings/:id. Only the involved tourist, the guide
// or an admin may read a booking.
func (h *BookingHandler) GetHandler(c *gin.Context) {
	b, err := h.BookingService.GetByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
		return
	}

	userID, _ := actorID(c)
	if b.TouristID != userID && b.GuideID != userID && actorRole(c) != models.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "not your booking"})
		return
	}
	c.JSON(http.StatusOK, b)
}

// ListMineHandler handles GET /bookings. A tourist sees their reservations, a
// guide the ones made with them.
func (h *BookingHandler) ListMineHandler(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var (
		bookings []models.Booking
		err      error
	)
	if actorRole(c) == models.RoleGuide {
		bookings, err = h.BookingService.ListByGuide(userID)
	} else {
		bookings, err = h.BookingService.ListByTourist(userID)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// TransitionHandler handles PUT /bookings/:id/status. Guides move their own
// bookings; admins move any.
func (h *BookingHandler) TransitionHandler(c *gin.Context) {
	logger := getLogger(c)

	userID, ok := actorID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	b, err := h.BookingService.GetByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
		return
	}
	role := actorRole(c)
	isOwner := b.GuideID == userID
	isTourist := b.TouristID == userID
	// Tourists may only cancel their own pending bookings.
	allowed := role == models.RoleAdmin || isOwner ||
		(isTourist && input.Status == models.BookingCancelled && b.Status == models.BookingPending)
	if !allowed {
		c.JSON(http.StatusForbidden, gin.H{"error": "not allowed to change this booking"})
		return
	}

	updated, err := h.BookingService.Transition(c.Param("id"), input.Status)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrInvalidTransition):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		case errors.Is(err, booking.ErrConcurrentUpdate):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			logger.Error("Booking transition failed", zap.String("bookingID", c.Param("id")), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, updated)
}
