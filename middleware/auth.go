package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	userRepo "tundavala/database/repository/user"
	"tundavala/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthMiddleware validates the bearer token and binds the actor to the
// request context. The token hash is checked against the Redis auth cache
// first and falls back to the persisted user record, so a revoked token dies
// even when the cache was flushed.
func JWTAuthMiddleware(users userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		token, err := utils.ValidateToken(tokenString)
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		userID, role, err := utils.ExtractClaimsFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			return
		}

		computedHash := utils.HashToken(tokenString)
		if !tokenHashValid(userID, computedHash, users) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token revoked or superseded"})
			return
		}

		c.Set("userID", userID)
		c.Set("userRole", role)
		c.Next()
	}
}

func tokenHashValid(userID, hash string, users userRepo.UserRepository) bool {
	if utils.AuthCacheClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		cached, err := utils.AuthCacheClient.Get(ctx, utils.AuthCachePrefix+userID).Result()
		if err == nil {
			return cached == hash
		}
	}

	usr, err := users.GetByID(userID)
	if err != nil || usr == nil {
		return false
	}
	return usr.TokenHash == hash
}
