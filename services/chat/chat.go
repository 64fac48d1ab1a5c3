package chat

import (
	"errors"
	"fmt"

	chatRepo "tundavala/database/repository/chat"
	"tundavala/models"

	"github.com/google/uuid"
)

// ErrNotParticipant is returned when a user touches a conversation they are
// not part of.
var ErrNotParticipant = errors.New("user is not a participant of this conversation")

// StartConversation returns the conversation between two users, creating it
// on first contact. The unique participant-key index settles races: when two
// users start the same conversation at once, the loser re-reads the winner's
// document.
func (s *DefaultChatService) StartConversation(userID, otherID string) (*models.Conversation, error) {
	if userID == otherID {
		return nil, fmt.Errorf("cannot start a conversation with yourself")
	}

	key := models.ParticipantKey(userID, otherID)
	existing, err := s.Repo.GetConversationByKey(key)
	if err != nil {
		return nil, fmt.Errorf("failed to look up conversation: %w", err)
	}
	if existing != nil {
		return existing, nil
	}

	conv := &models.Conversation{
		ID:                uuid.New().String(),
		ParticipantKey:    key,
		Participants:      []string{userID, otherID},
		ParticipantNames:  map[string]string{},
		ParticipantPhotos: map[string]string{},
	}
	for _, id := range conv.Participants {
		if user, err := s.Users.GetByID(id); err == nil {
			conv.ParticipantNames[id] = user.Name
			if user.PhotoURL != "" {
				conv.ParticipantPhotos[id] = user.PhotoURL
			}
		}
	}

	if err := s.Repo.CreateConversation(conv); err != nil {
		if errors.Is(err, chatRepo.ErrDuplicateConversation) {
			return s.Repo.GetConversationByKey(key)
		}
		return nil, fmt.Errorf("failed to create conversation: %w", err)
	}
	return conv, nil
}

// ListConversations retrieves the user's conversations, most recently active
// first.
func (s *DefaultChatService) ListConversations(userID string) ([]models.Conversation, error) {
	return s.Repo.GetConversationsFor(userID)
}

// SendMessage appends a message and refreshes the conversation preview.
func (s *DefaultChatService) SendMessage(conversationID, senderID string, input MessageInput) (*models.Message, error) {
	conv, err := s.Repo.GetConversationByID(conversationID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch conversation: %w", err)
	}
	if !isParticipant(conv, senderID) {
		return nil, ErrNotParticipant
	}

	msg := &models.Message{
		ID:             uuid.New().String(),
		ConversationID: conversationID,
		SenderID:       senderID,
		Text:           input.Text,
	}
	if err := s.Repo.InsertMessage(msg); err != nil {
		return nil, fmt.Errorf("failed to send message: %w", err)
	}

	if err := s.Repo.TouchConversation(conversationID, input.Text); err != nil {
		// The message landed; a stale preview is tolerable.
		return msg, nil
	}
	return msg, nil
}

// ListMessages retrieves a conversation's history in send order.
func (s *DefaultChatService) ListMessages(conversationID, userID string) ([]models.Message, error) {
	conv, err := s.Repo.GetConversationByID(conversationID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch conversation: %w", err)
	}
	if !isParticipant(conv, userID) {
		return nil, ErrNotParticipant
	}
	return s.Repo.GetMessages(conversationID)
}

func isParticipant(conv *models.Conversation, userID string) bool {
	for _, id := range conv.Participants {
		if id == userID {
			return true
		}
	}
	return false
}
