package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tundavala/models"
	"tundavala/services/payment"
)

// PaymentHandler serves payment record endpoints.
type PaymentHandler struct {
	PaymentService payment.PaymentService
}

// GetByBookingHandler handles GET /payments/booking/:bookingId.
func (h *PaymentHandler) GetByBookingHandler(c *gin.Context) {
	pay, err := h.PaymentService.GetByBooking(c.Param("bookingId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if pay == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no payment for this booking"})
		return
	}

	userID, _ := actorID(c)
	if pay.TouristID != userID && pay.GuideID != userID && actorRole(c) != models.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "not your payment"})
		return
	}
	c.JSON(http.StatusOK, pay)
}

// ListMineHandler handles GET /payments/mine for guides.
func (h *PaymentHandler) ListMineHandler(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	payments, err := h.PaymentService.ListByGuide(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, payments)
}

// CreateIntentHandler handles POST /payments/:id/intent. Returns the Stripe
// client secret the app confirms the charge with.
func (h *PaymentHandler) CreateIntentHandler(c *gin.Context) {
	logger := getLogger(c)

	pay, err := h.PaymentService.GetByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "payment not found"})
		return
	}
	userID, _ := actorID(c)
	if pay.TouristID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "not your payment"})
		return
	}

	secret, err := h.PaymentService.CreatePaymentIntent(pay.ID)
	if err != nil {
		logger.Error("Payment intent failed", zap.String("paymentID", pay.ID), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"client_secret": secret})
}

// Admin endpoints below.

// ListAllHandler handles GET /admin/payments.
func (h *PaymentHandler) ListAllHandler(c *gin.Context) {
	payments, err := h.PaymentService.ListAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, payments)
}

// SetStatusHandler handles PUT /admin/payments/:id/status.
func (h *PaymentHandler) SetStatusHandler(c *gin.Context) {
	logger := getLogger(c)

	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	pay, err := h.PaymentService.SetStatus(c.Request.Context(), c.Param("id"), input.Status)
	if err != nil {
		logger.Error("Payment status edit failed", zap.String("paymentID", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, pay)
}

// RevenueHandler handles GET /admin/payments/revenue.
func (h *PaymentHandler) RevenueHandler(c *gin.Context) {
	summary, err := h.PaymentService.Revenue()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}
