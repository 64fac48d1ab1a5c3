package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireRole gates a route group to the given roles. Must run after
// JWTAuthMiddleware, which binds the role to the context.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		actorRole := c.GetString("userRole")
		for _, role := range roles {
			if actorRole == role {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient role"})
	}
}
