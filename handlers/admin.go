package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tundavala/services/admin"
	"tundavala/services/booking"
	"tundavala/services/guide"
	"tundavala/services/user"
)

// AdminHandler serves the back office endpoints.
type AdminHandler struct {
	AdminService   admin.AdminService
	UserService    user.UserService
	BookingService booking.BookingService
	GuideService   guide.GuideService
}

// DashboardHandler handles GET /admin/dashboard.
func (h *AdminHandler) DashboardHandler(c *gin.Context) {
	logger := getLogger(c)

	stats, err := h.AdminService.Dashboard()
	if err != nil {
		logger.Error("Dashboard stats failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// ListUsersHandler handles GET /admin/users.
func (h *AdminHandler) ListUsersHandler(c *gin.Context) {
	users, err := h.UserService.GetAllUsers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, users)
}

// DeleteUserHandler handles DELETE /admin/users/:id.
func (h *AdminHandler) DeleteUserHandler(c *gin.Context) {
	logger := getLogger(c)

	if err := h.UserService.DeleteUser(c.Param("id")); err != nil {
		logger.Error("User deletion failed", zap.String("userID", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "user deleted"})
}

// ListBookingsHandler handles GET /admin/bookings.
func (h *AdminHandler) ListBookingsHandler(c *gin.Context) {
	bookings, err := h.BookingService.ListAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// EnsurePaymentHandler handles POST /admin/bookings/:id/payment. Re-opens
// the payment record for a confirmed booking whose creation failed during
// the confirmation; idempotent when the record already exists.
func (h *AdminHandler) EnsurePaymentHandler(c *gin.Context) {
	logger := getLogger(c)

	bookingID := c.Param("id")
	pay, err := h.BookingService.EnsurePayment(bookingID)
	if err != nil {
		logger.Error("Payment repair failed", zap.String("bookingID", bookingID), zap.Error(err))
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, pay)
}

// SetGuideActiveHandler handles PUT /admin/guides/:id/active. Lets the back
// office pull a guide from the directory without touching the account.
func (h *AdminHandler) SetGuideActiveHandler(c *gin.Context) {
	logger := getLogger(c)

	var input struct {
		Active *bool `json:"active" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	guideID := c.Param("id")
	if err := h.GuideService.SetActive(guideID, *input.Active); err != nil {
		logger.Error("Guide activation toggle failed", zap.String("guideID", guideID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "guide updated"})
}

// ListDestinationsHandler handles GET /destinations. Public; ?featured=true
// narrows to the landing page picks.
func (h *AdminHandler) ListDestinationsHandler(c *gin.Context) {
	dests, err := h.AdminService.ListDestinations(c.Query("featured") == "true")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dests)
}

// CreateDestinationHandler handles POST /admin/destinations.
func (h *AdminHandler) CreateDestinationHandler(c *gin.Context) {
	var input admin.DestinationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	dest, err := h.AdminService.CreateDestination(input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, dest)
}

// UpdateDestinationHandler handles PUT /admin/destinations/:id.
func (h *AdminHandler) UpdateDestinationHandler(c *gin.Context) {
	var input admin.DestinationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if err := h.AdminService.UpdateDestination(c.Param("id"), input); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "destination updated"})
}

// DeleteDestinationHandler handles DELETE /admin/destinations/:id.
func (h *AdminHandler) DeleteDestinationHandler(c *gin.Context) {
	if err := h.AdminService.DeleteDestination(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "destination deleted"})
}
