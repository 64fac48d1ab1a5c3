package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tundavala/models"
	"tundavala/services/guide"
)

// GuideHandler serves guide profile and directory endpoints.
type GuideHandler struct {
	GuideService guide.GuideService
}

// CreateProfileHandler handles POST /guides. The profile is keyed by the
// authenticated user.
func (h *GuideHandler) CreateProfileHandler(c *gin.Context) {
	logger := getLogger(c)

	userID, ok := actorID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var profile models.Guide
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	created, err := h.GuideService.CreateProfile(userID, profile)
	if err != nil {
		logger.Error("Guide onboarding failed", zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetProfileHandler handles GET /guides/:id.
func (h *GuideHandler) GetProfileHandler(c *gin.Context) {
	profile, err := h.GuideService.GetProfile(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "guide not found"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateProfileHandler handles PUT /guides/me.
func (h *GuideHandler) UpdateProfileHandler(c *gin.Context) {
	logger := getLogger(c)

	userID, ok := actorID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var update models.Guide
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	profile, err := h.GuideService.UpdateProfile(userID, update)
	if err != nil {
		logger.Error("Guide update failed", zap.String("guideID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// SearchHandler handles GET /guides. Query params: city, specialty, language.
func (h *GuideHandler) SearchHandler(c *gin.Context) {
	criteria := models.GuideSearchCriteria{
		City:      c.Query("city"),
		Specialty: c.Query("specialty"),
		Language:  c.Query("language"),
	}

	guides, err := h.GuideService.Search(criteria)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, guides)
}

// SetActiveHandler handles PUT /guides/me/active.
func (h *GuideHandler) SetActiveHandler(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input struct {
		Active *bool `json:"active" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if err := h.GuideService.SetActive(userID, *input.Active); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "availability updated"})
}
