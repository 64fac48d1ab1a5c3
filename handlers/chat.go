package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tundavala/services/chat"
)

// ChatHandler serves conversation and message endpoints.
type ChatHandler struct {
	ChatService chat.ChatService
}

// StartConversationHandler handles POST /conversations. Returns the existing
// conversation when the pair has already talked.
func (h *ChatHandler) StartConversationHandler(c *gin.Context) {
	logger := getLogger(c)

	userID, ok := actorID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input struct {
		ParticipantID string `json:"participant_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	conv, err := h.ChatService.StartConversation(userID, input.ParticipantID)
	if err != nil {
		logger.Error("Failed to start conversation", zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, conv)
}

// ListConversationsHandler handles GET /conversations.
func (h *ChatHandler) ListConversationsHandler(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	convs, err := h.ChatService.ListConversations(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, convs)
}

// SendMessageHandler handles POST /conversations/:id/messages.
func (h *ChatHandler) SendMessageHandler(c *gin.Context) {
	logger := getLogger(c)

	userID, ok := actorID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input chat.MessageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	msg, err := h.ChatService.SendMessage(c.Param("id"), userID, input)
	if err != nil {
		if errors.Is(err, chat.ErrNotParticipant) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to send message", zap.String("conversationID", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, msg)
}

// ListMessagesHandler handles GET /conversations/:id/messages.
func (h *ChatHandler) ListMessagesHandler(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	msgs, err := h.ChatService.ListMessages(c.Param("id"), userID)
	if err != nil {
		if errors.Is(err, chat.ErrNotParticipant) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, msgs)
}
