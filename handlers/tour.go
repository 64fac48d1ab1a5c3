package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tundavala/models"
	"tundavala/services/tour"
)

// TourHandler serves tour package endpoints.
type TourHandler struct {
	TourService tour.TourService
}

// requireOwnership fetches the package and checks the actor owns it, unless
// the actor is an admin. Returns nil when the check failed and the response
// was already written.
func (h *TourHandler) requireOwnership(c *gin.Context, packageID string) *models.TourPackage {
	pkg, err := h.TourService.GetByID(packageID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "package not found"})
		return nil
	}

	userID, _ := actorID(c)
	if pkg.GuideID != userID && actorRole(c) != models.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "not the package owner"})
		return nil
	}
	return pkg
}

// CreateHandler handles POST /tours.
func (h *TourHandler) CreateHandler(c *gin.Context) {
	logger := getLogger(c)

	userID, ok := actorID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var pkg models.TourPackage
	if err := c.ShouldBindJSON(&pkg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	created, err := h.TourService.Create(userID, pkg)
	if err != nil {
		logger.Error("Package creation failed", zap.String("guideID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetHandler handles GET /tours/:id.
func (h *TourHandler) GetHandler(c *gin.Context) {
	pkg, err := h.TourService.GetByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "package not found"})
		return
	}
	c.JSON(http.StatusOK, pkg)
}

// ListHandler handles GET /tours. Query param: location.
func (h *TourHandler) ListHandler(c *gin.Context) {
	pkgs, err := h.TourService.ListActive(c.Query("location"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, pkgs)
}

// ListMineHandler handles GET /tours/mine.
func (h *TourHandler) ListMineHandler(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	pkgs, err := h.TourService.ListByGuide(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, pkgs)
}

// UpdateHandler handles PUT /tours/:id.
func (h *TourHandler) UpdateHandler(c *gin.Context) {
	logger := getLogger(c)

	if h.requireOwnership(c, c.Param("id")) == nil {
		return
	}

	var update models.TourPackage
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	pkg, err := h.TourService.Update(c.Param("id"), update)
	if err != nil {
		logger.Error("Package update failed", zap.String("packageID", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, pkg)
}

// EditListHandler handles PATCH /tours/:id/lists. The body names the list
// field and the add/remove/replace operation.
func (h *TourHandler) EditListHandler(c *gin.Context) {
	logger := getLogger(c)

	if h.requireOwnership(c, c.Param("id")) == nil {
		return
	}

	var edit tour.ListEdit
	if err := c.ShouldBindJSON(&edit); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	pkg, err := h.TourService.EditList(c.Param("id"), edit)
	if err != nil {
		logger.Error("List edit failed", zap.String("packageID", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, pkg)
}

// DeleteHandler handles DELETE /tours/:id.
func (h *TourHandler) DeleteHandler(c *gin.Context) {
	logger := getLogger(c)

	if h.requireOwnership(c, c.Param("id")) == nil {
		return
	}

	if err := h.TourService.Delete(c.Param("id")); err != nil {
		logger.Error("Package deletion failed", zap.String("packageID", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "package deleted"})
}
