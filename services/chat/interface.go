package chat

import (
	chatRepo "tundavala/database/repository/chat"
	userRepo "tundavala/database/repository/user"
	"tundavala/models"
)

// MessageInput carries a message submission.
type MessageInput struct {
	Text string `json:"text" binding:"required"`
}

// ChatService covers conversations and their message history.
type ChatService interface {
	// StartConversation returns the conversation between two users, creating
	// it if the pair has never talked. At most one conversation exists per
	// unordered pair.
	StartConversation(userID, otherID string) (*models.Conversation, error)
	ListConversations(userID string) ([]models.Conversation, error)
	// SendMessage appends a message and refreshes the conversation preview.
	SendMessage(conversationID, senderID string, input MessageInput) (*models.Message, error)
	ListMessages(conversationID, userID string) ([]models.Message, error)
}

// DefaultChatService is the production implementation.
type DefaultChatService struct {
	Repo  chatRepo.ChatRepository
	Users userRepo.UserRepository
}
