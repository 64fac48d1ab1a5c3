package models

import (
	"sort"
	"strings"
	"time"
)

// Conversation is a message thread between two participants. ParticipantKey
// is the sorted pair of participant IDs and carries a unique index, so at most
// one conversation document can ever exist per unordered pair.
type Conversation struct {
	ID             string            `bson:"id" json:"id"`
	ParticipantKey string            `bson:"participant_key" json:"-"`
	Participants   []string          `bson:"participants" json:"participants"`
	// Display name and photo per participant ID, denormalized for list views.
	ParticipantNames  map[string]string `bson:"participant_names" json:"participant_names"`
	ParticipantPhotos map[string]string `bson:"participant_photos,omitempty" json:"participant_photos,omitempty"`
	LastMessage       string            `bson:"last_message,omitempty" json:"last_message,omitempty"`
	LastMessageAt     time.Time         `bson:"last_message_at,omitempty" json:"last_message_at,omitempty"`
	CreatedAt         time.Time         `bson:"created_at" json:"created_at"`
	UpdatedAt         time.Time         `bson:"updated_at" json:"updated_at"`
}

// ParticipantKey builds the canonical key for an unordered participant pair.
func ParticipantKey(a, b string) string {
	ids := []string{a, b}
	sort.Strings(ids)
	return strings.Join(ids, "|")
}

// Message is one entry in a conversation's append-only history.
type Message struct {
	ID             string    `bson:"id" json:"id"`
	ConversationID string    `bson:"conversation_id" json:"conversation_id"`
	SenderID       string    `bson:"sender_id" json:"sender_id"`
	Text           string    `bson:"text" json:"text"`
	CreatedAt      time.Time `bson:"created_at" json:"created_at"`
}
