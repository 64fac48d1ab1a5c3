package middleware

import (
	"tundavala/models"

	"github.com/gin-gonic/gin"
)

// AdminAuthMiddleware gates a route group to admins.
func AdminAuthMiddleware() gin.HandlerFunc {
	return RequireRole(models.RoleAdmin)
}
