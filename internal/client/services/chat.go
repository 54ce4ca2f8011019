package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/adminconsole/internal/client/models"
	"github.com/dmitrijs2005/adminconsole/internal/client/repositories/transcripts"
	"github.com/dmitrijs2005/adminconsole/internal/client/session"
	"github.com/dmitrijs2005/adminconsole/internal/logging"
)

const (
	guestOwnerID = "guest"

	resetMessage = "Conversation cleared. How can I help you?"
)

// ChatService runs the AI chat. Replies come from the admin API; the
// transcript stays in the local database and is scoped to the current user.
type ChatService interface {
	// History returns the transcript ordered by id. An empty transcript is
	// seeded with a welcome record first.
	History(ctx context.Context) ([]models.TranscriptRecord, error)
	// Send stores the user's message, asks for a reply and stores it.
	// Blank text is ignored and returns no records. When the reply fails the
	// stored user record is returned with the error.
	Send(ctx context.Context, text string) ([]models.TranscriptRecord, error)
	// Reset deletes the transcript and seeds a fresh welcome record.
	Reset(ctx context.Context) (models.TranscriptRecord, error)
	// OwnerID is the transcript owner for the current session.
	OwnerID() string
}

type chatService struct {
	api     API
	session *session.Session
	repo    transcripts.Repository
	log     logging.Logger

	now func() time.Time

	mu     sync.Mutex
	lastID int64
}

func NewChatService(api API, s *session.Session, repo transcripts.Repository, log logging.Logger) ChatService {
	return &chatService{api: api, session: s, repo: repo, log: log, now: time.Now}
}

// OwnerID prefers the user id, then the username, then "guest".
func (c *chatService) OwnerID() string {
	u, ok := c.session.Profile()
	switch {
	case ok && u.ID != 0:
		return strconv.FormatUint(uint64(u.ID), 10)
	case ok && u.Username != "":
		return u.Username
	default:
		return guestOwnerID
	}
}

func (c *chatService) History(ctx context.Context) ([]models.TranscriptRecord, error) {
	owner := c.OwnerID()

	records, err := c.repo.ReadAll(ctx, owner)
	if err != nil {
		c.log.Error(ctx, "failed to load chat history", "owner", owner, "error", err)
		return nil, err
	}
	if len(records) > 0 {
		models.SortByID(records)
		c.observe(records[len(records)-1].ID)
		return records, nil
	}

	welcome, err := c.appendRecord(ctx, owner, c.nextID(), models.ChatRoleAssistant, c.welcomeMessage())
	if err != nil {
		return nil, err
	}
	return []models.TranscriptRecord{welcome}, nil
}

func (c *chatService) Send(ctx context.Context, text string) ([]models.TranscriptRecord, error) {
	if strings.TrimSpace(text) == "" {
		return []models.TranscriptRecord{}, nil
	}
	owner := c.OwnerID()

	userRec, err := c.appendRecord(ctx, owner, c.nextPairID(), models.ChatRoleUser, text)
	if err != nil {
		return nil, err
	}
	sent := []models.TranscriptRecord{userRec}

	var reply models.ChatReply
	if err := c.api.PostRaw(ctx, "/ai/chat", models.ChatRequest{Message: text}, &reply); err != nil {
		return sent, err
	}

	aiRec, err := c.appendRecord(ctx, owner, userRec.ID+1, models.ChatRoleAssistant, reply.Reply)
	if err != nil {
		return sent, err
	}
	return append(sent, aiRec), nil
}

func (c *chatService) Reset(ctx context.Context) (models.TranscriptRecord, error) {
	owner := c.OwnerID()

	if err := c.repo.ClearAll(ctx, owner); err != nil {
		c.log.Error(ctx, "failed to clear chat history", "owner", owner, "error", err)
		return models.TranscriptRecord{}, err
	}
	return c.appendRecord(ctx, owner, c.nextID(), models.ChatRoleAssistant, resetMessage)
}

func (c *chatService) appendRecord(ctx context.Context, owner string, id int64, role models.ChatRole, content string) (models.TranscriptRecord, error) {
	rec := models.TranscriptRecord{
		ID:        id,
		OwnerID:   owner,
		Role:      role,
		Content:   content,
		Timestamp: c.now().UTC(),
	}
	if err := c.repo.Append(ctx, owner, rec); err != nil {
		c.log.Error(ctx, "failed to store chat record", "owner", owner, "id", id, "error", err)
		return models.TranscriptRecord{}, err
	}
	return rec, nil
}

func (c *chatService) welcomeMessage() string {
	name := ""
	if u, ok := c.session.Profile(); ok {
		name = u.DisplayName()
	}
	if name == "" {
		return "Hello! I am your AI assistant. This conversation is visible only to you."
	}
	return fmt.Sprintf("Hello %s! I am your AI assistant. This conversation is visible only to you.", name)
}

// nextID returns the current time in milliseconds, bumped past every id
// handed out or observed so far.
func (c *chatService) nextID() int64 {
	return c.reserve(1)
}

// nextPairID reserves id and id+1; the reply to a message takes the second.
func (c *chatService) nextPairID() int64 {
	return c.reserve(2)
}

func (c *chatService) reserve(n int64) int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.now().UnixMilli()
	if id <= c.lastID {
		id = c.lastID + 1
	}
	c.lastID = id + n - 1
	return id
}

func (c *chatService) observe(id int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if id > c.lastID {
		c.lastID = id
	}
}
