package chatRepo

import "tundavala/models"

// ChatRepository defines methods for conversation and message data access.
type ChatRepository interface {
	// GetConversationByKey retrieves the conversation for a participant-pair
	// key, or nil if none exists.
	GetConversationByKey(key string) (*models.Conversation, error)
	// GetConversationByID retrieves a conversation by its ID.
	GetConversationByID(id string) (*models.Conversation, error)
	// GetConversationsFor retrieves all conversations a user participates in,
	// most recently active first.
	GetConversationsFor(userID string) ([]models.Conversation, error)
	// CreateConversation inserts a new conversation. A duplicate participant
	// key returns ErrDuplicateConversation.
	CreateConversation(conv *models.Conversation) error
	// TouchConversation records the latest message preview on a conversation.
	TouchConversation(id, lastMessage string) error

	// InsertMessage appends a message to a conversation.
	InsertMessage(msg *models.Message) error
	// GetMessages retrieves a conversation's messages in send order.
	GetMessages(conversationID string) ([]models.Message, error)
}
