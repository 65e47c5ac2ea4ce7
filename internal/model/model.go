package model

import (
	"time"

	"github.com/google/uuid"
)

// Role identifies the author of a chat message.
type Role string

const (
	RoleUser      Role = "user"
	RoleSystem    Role = "system"
	RoleAssistant Role = "assistant"
	// RoleLogger marks client-side status and error entries. They are never sent to a model.
	RoleLogger Role = "logger"
)

const (
	// PendingContent is the content of the assistant placeholder shown while a model call is in flight.
	PendingContent = "CONTENT_PENDING"
	// DefaultSessionTitle is the title of a session that has not been summarized yet.
	DefaultSessionTitle = "New Chat"
	// ModelErrorMessage replaces the pending placeholder when a turn fails.
	ModelErrorMessage = "Error Getting Model Response"
)

// UploadedFile references on-disk content attached to a message. Extraction happens at send time.
type UploadedFile struct {
	FilePath      string `json:"filePath" validate:"required"`
	DisplayName   string `json:"displayName"`
	FileExtension string `json:"fileExtension"`
}

// ChatMessage stores a single message in a chat session.
type ChatMessage struct {
	Content       string         `json:"content"`
	Role          Role           `json:"role"`
	Timestamp     time.Time      `json:"timestamp"`
	ModelUsed     string         `json:"modelUsed,omitempty"`
	AttachedFiles []UploadedFile `json:"attachedFiles"`
	AttachedURLs  []string       `json:"attachedUrls"`
}

// ChatSession is one persisted conversation thread with its own attachment context.
// ContextFiles and ContextURLs only ever grow.
type ChatSession struct {
	ID           uuid.UUID      `json:"id"`
	Title        string         `json:"title"`
	Messages     []ChatMessage  `json:"messages"`
	CreatedAt    time.Time      `json:"createdAt"`
	ContextFiles []UploadedFile `json:"contextFiles"`
	ContextURLs  []string       `json:"contextUrls"`
}

// NewChatSession returns an empty session titled "New Chat".
func NewChatSession(now time.Time) *ChatSession {
	return &ChatSession{
		ID:           uuid.New(),
		Title:        DefaultSessionTitle,
		Messages:     []ChatMessage{},
		CreatedAt:    now,
		ContextFiles: []UploadedFile{},
		ContextURLs:  []string{},
	}
}

// HasContext reports whether any file or URL has ever been attached to the session.
func (s *ChatSession) HasContext() bool {
	return len(s.ContextFiles) > 0 || len(s.ContextURLs) > 0
}

// Normalize replaces nil slices with empty ones so the JSON form always carries arrays.
func (s *ChatSession) Normalize() {
	if s.Messages == nil {
		s.Messages = []ChatMessage{}
	}
	if s.ContextFiles == nil {
		s.ContextFiles = []UploadedFile{}
	}
	if s.ContextURLs == nil {
		s.ContextURLs = []string{}
	}
}

// ModelResponse is the uniform wire shape of every model-call result.
type ModelResponse struct {
	Data string `json:"data"`
}

// WithoutLoggerMessages returns the messages that may be sent to a model, preserving order.
func WithoutLoggerMessages(messages []ChatMessage) []ChatMessage {
	out := make([]ChatMessage, 0, len(messages))
	for _, msg := range messages {
		if msg.Role == RoleLogger {
			continue
		}
		out = append(out, msg)
	}
	return out
}
