package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tundavala/utils"
)

// getLogger retrieves a Zap logger from the Gin context or falls back to the
// global one.
func getLogger(c *gin.Context) *zap.Logger {
	if l, exists := c.Get("logger"); exists {
		if logger, ok := l.(*zap.Logger); ok {
			return logger
		}
	}
	return utils.GetLogger()
}

// actorID returns the authenticated user's ID set by the auth middleware.
func actorID(c *gin.Context) (string, bool) {
	id, ok := c.Get("userID")
	if !ok {
		return "", false
	}
	idStr, ok := id.(string)
	return idStr, ok
}

// actorRole returns the authenticated user's role set by the auth middleware.
func actorRole(c *gin.Context) string {
	role, _ := c.Get("userRole")
	roleStr, _ := role.(string)
	return roleStr
}
