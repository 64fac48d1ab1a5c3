package chat

import (
	"errors"
	"sort"
	"testing"

	chatRepo "tundavala/database/repository/chat"
	"tundavala/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

type fakeChatRepo struct {
	conversations map[string]*models.Conversation // by participant key
	messages      []models.Message
	// raceWith simulates a concurrent creation that wins the unique index.
	raceWith *models.Conversation
}

func newFakeChatRepo() *fakeChatRepo {
	return &fakeChatRepo{conversations: map[string]*models.Conversation{}}
}

func (r *fakeChatRepo) GetConversationByKey(key string) (*models.Conversation, error) {
	if conv, ok := r.conversations[key]; ok {
		snapshot := *conv
		return &snapshot, nil
	}
	return nil, nil
}

func (r *fakeChatRepo) GetConversationByID(id string) (*models.Conversation, error) {
	for _, conv := range r.conversations {
		if conv.ID == id {
			snapshot := *conv
			return &snapshot, nil
		}
	}
	return nil, errors.New("conversation not found")
}

func (r *fakeChatRepo) GetConversationsFor(userID string) ([]models.Conversation, error) {
	var out []models.Conversation
	for _, conv := range r.conversations {
		for _, p := range conv.Participants {
			if p == userID {
				out = append(out, *conv)
				break
			}
		}
	}
	return out, nil
}

func (r *fakeChatRepo) CreateConversation(conv *models.Conversation) error {
	if r.raceWith != nil {
		r.conversations[r.raceWith.ParticipantKey] = r.raceWith
		r.raceWith = nil
		return chatRepo.ErrDuplicateConversation
	}
	if _, exists := r.conversations[conv.ParticipantKey]; exists {
		return chatRepo.ErrDuplicateConversation
	}
	snapshot := *conv
	r.conversations[conv.ParticipantKey] = &snapshot
	return nil
}

func (r *fakeChatRepo) TouchConversation(id, lastMessage string) error {
	for _, conv := range r.conversations {
		if conv.ID == id {
			conv.LastMessage = lastMessage
			return nil
		}
	}
	return errors.New("conversation not found")
}

func (r *fakeChatRepo) InsertMessage(msg *models.Message) error {
	r.messages = append(r.messages, *msg)
	return nil
}

func (r *fakeChatRepo) GetMessages(conversationID string) ([]models.Message, error) {
	var out []models.Message
	for _, m := range r.messages {
		if m.ConversationID == conversationID {
			out = append(out, m)
		}
	}
	return out, nil
}

type fakeUserRepo struct{}

func (fakeUserRepo) GetByID(id string) (*models.User, error) {
	return &models.User{ID: id, Name: "User " + id, PhotoURL: "https://example.com/" + id + ".jpg"}, nil
}
func (fakeUserRepo) GetByEmail(email string) (*models.User, error) { return nil, nil }
func (fakeUserRepo) GetAll() ([]models.User, error)                { return nil, nil }
func (fakeUserRepo) Create(u *models.User) error                   { return nil }
func (fakeUserRepo) UpdateFields(id string, fields bson.M) error   { return nil }
func (fakeUserRepo) Delete(id string) error                        { return nil }
func (fakeUserRepo) CountByRole(role string) (int64, error)        { return 0, nil }
func (fakeUserRepo) GetByIDWithProjection(id string, p bson.M) (*models.User, error) {
	return nil, nil
}

func TestParticipantKeyIsOrderIndependent(t *testing.T) {
	assert.Equal(t, models.ParticipantKey("a", "b"), models.ParticipantKey("b", "a"))
	assert.Equal(t, "a|b", models.ParticipantKey("b", "a"))
}

func TestStartConversationCreatesOncePerPair(t *testing.T) {
	repo := newFakeChatRepo()
	svc := &DefaultChatService{Repo: repo, Users: fakeUserRepo{}}

	first, err := svc.StartConversation("t1", "g1")
	require.NoError(t, err)
	assert.Equal(t, "User t1", first.ParticipantNames["t1"])

	sorted := append([]string(nil), first.Participants...)
	sort.Strings(sorted)
	assert.Equal(t, []string{"g1", "t1"}, sorted)

	// Same pair from the other side reuses the document.
	second, err := svc.StartConversation("g1", "t1")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, repo.conversations, 1)
}

func TestStartConversationLosingRaceReusesWinner(t *testing.T) {
	repo := newFakeChatRepo()
	winner := &models.Conversation{
		ID:             "conv-winner",
		ParticipantKey: models.ParticipantKey("t1", "g1"),
		Participants:   []string{"t1", "g1"},
	}
	repo.raceWith = winner
	svc := &DefaultChatService{Repo: repo, Users: fakeUserRepo{}}

	conv, err := svc.StartConversation("t1", "g1")
	require.NoError(t, err)
	assert.Equal(t, "conv-winner", conv.ID)
	assert.Len(t, repo.conversations, 1)
}

func TestStartConversationRejectsSelf(t *testing.T) {
	svc := &DefaultChatService{Repo: newFakeChatRepo(), Users: fakeUserRepo{}}
	_, err := svc.StartConversation("t1", "t1")
	assert.Error(t, err)
}

func TestSendMessageUpdatesPreview(t *testing.T) {
	repo := newFakeChatRepo()
	svc := &DefaultChatService{Repo: repo, Users: fakeUserRepo{}}

	conv, err := svc.StartConversation("t1", "g1")
	require.NoError(t, err)

	msg, err := svc.SendMessage(conv.ID, "t1", MessageInput{Text: "Bom dia, o passeio mantem-se?"})
	require.NoError(t, err)
	assert.Equal(t, "t1", msg.SenderID)

	stored := repo.conversations[conv.ParticipantKey]
	assert.Equal(t, "Bom dia, o passeio mantem-se?", stored.LastMessage)

	msgs, err := svc.ListMessages(conv.ID, "g1")
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, msg.ID, msgs[0].ID)
}

func TestOutsidersAreRejected(t *testing.T) {
	repo := newFakeChatRepo()
	svc := &DefaultChatService{Repo: repo, Users: fakeUserRepo{}}

	conv, err := svc.StartConversation("t1", "g1")
	require.NoError(t, err)

	_, err = svc.SendMessage(conv.ID, "intruder", MessageInput{Text: "ola"})
	assert.True(t, errors.Is(err, ErrNotParticipant))

	_, err = svc.ListMessages(conv.ID, "intruder")
	assert.True(t, errors.Is(err, ErrNotParticipant))
}
