package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tundavala/models"
	"tundavala/services/user"
)

// AuthHandler serves registration and login.
type AuthHandler struct {
	UserService user.UserService
}

// RegisterHandler handles POST /auth/register.
func (h *AuthHandler) RegisterHandler(c *gin.Context) {
	logger := getLogger(c)

	var data models.UserRegistrationData
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	resp, err := h.UserService.Register(data)
	if err != nil {
		logger.Error("Registration failed", zap.String("email", data.Email), zap.Error(err))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// LoginHandler handles POST /auth/login.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	logger := getLogger(c)

	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	resp, err := h.UserService.Authenticate(input.Email, input.Password)
	if err != nil {
		logger.Warn("Login failed", zap.String("email", input.Email), zap.Error(err))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GoogleLoginHandler handles POST /auth/google. The client sends the Firebase
// ID token it obtained from the Google sign-in flow.
func (h *AuthHandler) GoogleLoginHandler(c *gin.Context) {
	logger := getLogger(c)

	var input struct {
		IDToken string `json:"id_token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	resp, err := h.UserService.AuthenticateWithGoogle(input.IDToken)
	if err != nil {
		logger.Warn("Google login failed", zap.Error(err))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid Google token"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// LogoutHandler handles POST /auth/logout.
func (h *AuthHandler) LogoutHandler(c *gin.Context) {
	logger := getLogger(c)

	userID, ok := actorID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	if err := h.UserService.RevokeAuthToken(userID); err != nil {
		logger.Error("Failed to revoke token", zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to log out"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}
