package chatRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tundavala/database"
	"tundavala/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrDuplicateConversation is returned when a conversation already exists for
// the participant pair. Callers re-fetch by key instead of failing.
var ErrDuplicateConversation = errors.New("conversation already exists for participant pair")

// MongoChatRepo implements ChatRepository using MongoDB.
type MongoChatRepo struct {
	conversations *mongo.Collection
	messages      *mongo.Collection
}

// NewMongoChatRepo creates a new instance of ChatRepository using MongoDB.
func NewMongoChatRepo() ChatRepository {
	repo := &MongoChatRepo{
		conversations: database.Collection("conversations"),
		messages:      database.Collection("messages"),
	}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create chat indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoChatRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	// participant_key is unique: the store, not a read-then-write sequence,
	// guarantees one conversation per unordered pair.
	convIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "participant_key", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "participants", Value: 1}}},
	}
	if _, err := r.conversations.Indexes().CreateMany(ctx, convIndexes); err != nil {
		return fmt.Errorf("failed to create conversation indexes: %w", err)
	}

	msgIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "conversation_id", Value: 1}, {Key: "created_at", Value: 1}}},
	}
	if _, err := r.messages.Indexes().CreateMany(ctx, msgIndexes); err != nil {
		return fmt.Errorf("failed to create message indexes: %w", err)
	}
	return nil
}

// GetConversationByKey retrieves the conversation for a participant-pair key,
// or nil if none exists.
func (r *MongoChatRepo) GetConversationByKey(key string) (*models.Conversation, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var conv models.Conversation
	if err := r.conversations.FindOne(ctx, bson.M{"participant_key": key}).Decode(&conv); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch conversation by key: %w", err)
	}
	return &conv, nil
}

// GetConversationByID retrieves a conversation by its ID.
func (r *MongoChatRepo) GetConversationByID(id string) (*models.Conversation, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var conv models.Conversation
	if err := r.conversations.FindOne(ctx, bson.M{"id": id}).Decode(&conv); err != nil {
		return nil, fmt.Errorf("failed to fetch conversation with id %s: %w", id, err)
	}
	return &conv, nil
}

// GetConversationsFor retrieves all conversations a user participates in,
// most recently active first.
func (r *MongoChatRepo) GetConversationsFor(userID string) ([]models.Conversation, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "last_message_at", Value: -1}})
	cursor, err := r.conversations.Find(ctx, bson.M{"participants": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve conversations: %w", err)
	}
	defer cursor.Close(ctx)

	var convs []models.Conversation
	if err := cursor.All(ctx, &convs); err != nil {
		return nil, fmt.Errorf("failed to decode conversations: %w", err)
	}
	return convs, nil
}

// CreateConversation inserts a new conversation.
func (r *MongoChatRepo) CreateConversation(conv *models.Conversation) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	conv.CreatedAt = now
	conv.UpdatedAt = now

	if _, err := r.conversations.InsertOne(ctx, conv); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateConversation
		}
		return fmt.Errorf("failed to create conversation: %w", err)
	}
	return nil
}

// TouchConversation records the latest message preview on a conversation.
func (r *MongoChatRepo) TouchConversation(id, lastMessage string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	update := bson.M{"$set": bson.M{
		"last_message":    lastMessage,
		"last_message_at": now,
		"updated_at":      now,
	}}
	if _, err := r.conversations.UpdateOne(ctx, bson.M{"id": id}, update); err != nil {
		return fmt.Errorf("failed to touch conversation %s: %w", id, err)
	}
	return nil
}

// InsertMessage appends a message to a conversation.
func (r *MongoChatRepo) InsertMessage(msg *models.Message) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	msg.CreatedAt = time.Now()
	if _, err := r.messages.InsertOne(ctx, msg); err != nil {
		return fmt.Errorf("failed to insert message: %w", err)
	}
	return nil
}

// GetMessages retrieves a conversation's messages in send order.
func (r *MongoChatRepo) GetMessages(conversationID string) ([]models.Message, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := r.messages.Find(ctx, bson.M{"conversation_id": conversationID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve messages: %w", err)
	}
	defer cursor.Close(ctx)

	var msgs []models.Message
	if err := cursor.All(ctx, &msgs); err != nil {
		return nil, fmt.Errorf("failed to decode messages: %w", err)
	}
	return msgs, nil
}
