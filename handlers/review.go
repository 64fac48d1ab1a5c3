package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tundavala/models"
	"tundavala/services/review"
)

// ReviewHandler serves review endpoints.
type ReviewHandler struct {
	ReviewService review.ReviewService
}

// SubmitHandler handles POST /reviews. A repeat submission for the same
// booking updates the earlier review.
func (h *ReviewHandler) SubmitHandler(c *gin.Context) {
	logger := getLogger(c)

	userID, ok := actorID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input models.ReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	r, err := h.ReviewService.Submit(userID, input)
	if err != nil {
		if errors.Is(err, review.ErrBookingNotReviewable) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Review submission failed", zap.String("touristID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, r)
}

// ListByGuideHandler handles GET /reviews/guide/:guideId.
func (h *ReviewHandler) ListByGuideHandler(c *gin.Context) {
	reviews, err := h.ReviewService.ListByGuide(c.Param("guideId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// ListByPackageHandler handles GET /reviews/package/:packageId.
func (h *ReviewHandler) ListByPackageHandler(c *gin.Context) {
	reviews, err := h.ReviewService.ListByPackage(c.Param("packageId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, reviews)
}
