package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	app_errors "github.com/agmada-asa/Nexus/internal/errors"
	"github.com/agmada-asa/Nexus/internal/model"
	"github.com/agmada-asa/Nexus/internal/repository"
)

// Conversation answers a chat history, optionally with attachment context.
type Conversation interface {
	Converse(ctx context.Context, messages []model.ChatMessage, modelID string, files []model.UploadedFile, urls []string) (*model.ModelResponse, error)
}

// TitleSummarizer names a chat from its opening message.
type TitleSummarizer interface {
	Summarize(ctx context.Context, openingMessage string) (string, error)
}

// SendRequest is one user turn in a session.
type SendRequest struct {
	Content string               `json:"content" validate:"required"`
	Model   string               `json:"model" validate:"required"`
	Files   []model.UploadedFile `json:"files,omitempty" validate:"omitempty,dive"`
	URLs    []string             `json:"urls,omitempty" validate:"omitempty,dive,url"`
}

// SessionService owns chat sessions: their persistence and the send-turn flow.
type SessionService struct {
	repo         repository.SessionRepository
	conversation Conversation
	titles       TitleSummarizer
	now          func() time.Time
}

func NewSessionService(repo repository.SessionRepository, conversation Conversation, titles TitleSummarizer) *SessionService {
	return &SessionService{
		repo:         repo,
		conversation: conversation,
		titles:       titles,
		now:          time.Now,
	}
}

func (s *SessionService) Create(ctx context.Context) (*model.ChatSession, error) {
	session := model.NewChatSession(s.now())
	if err := s.repo.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("%w: could not save session: %w", app_errors.ErrStorage, err)
	}
	slog.Info("Created chat session", "session_id", session.ID)
	return session, nil
}

func (s *SessionService) List(ctx context.Context) ([]*model.ChatSession, error) {
	sessions, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: could not list sessions: %w", app_errors.ErrStorage, err)
	}
	return sessions, nil
}

func (s *SessionService) Get(ctx context.Context, id string) (*model.ChatSession, error) {
	sessionID, err := parseSessionID(id)
	if err != nil {
		return nil, err
	}
	return s.load(ctx, sessionID)
}

func (s *SessionService) Rename(ctx context.Context, id, title string) (*model.ChatSession, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("%w: title cannot be empty", app_errors.ErrValidation)
	}

	session, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	session.Title = title
	if err := s.repo.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("%w: could not save session: %w", app_errors.ErrStorage, err)
	}
	return session, nil
}

func (s *SessionService) Delete(ctx context.Context, id string) error {
	sessionID, err := parseSessionID(id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, sessionID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%w: session %s", app_errors.ErrNotFound, id)
		}
		return fmt.Errorf("%w: could not delete session: %w", app_errors.ErrStorage, err)
	}
	slog.Info("Deleted chat session", "session_id", id)
	return nil
}

// Send records a user turn and the model's answer in the session.
//
// The user message and a pending assistant placeholder are saved first. The
// placeholder is then replaced by the answer, or by a logger entry when the
// model call fails; that failure is logged, not returned. After the first
// exchange the session is titled from its opening message.
func (s *SessionService) Send(ctx context.Context, id string, req SendRequest) (*model.ChatSession, error) {
	if strings.TrimSpace(req.Content) == "" {
		return nil, fmt.Errorf("%w: message content cannot be empty", app_errors.ErrValidation)
	}
	if !model.IsValidModel(req.Model) {
		return nil, fmt.Errorf("%w: %q", app_errors.ErrInvalidModel, req.Model)
	}

	session, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	now := s.now()
	session.Messages = append(session.Messages, model.ChatMessage{
		Content:       req.Content,
		Role:          model.RoleUser,
		Timestamp:     now,
		AttachedFiles: req.Files,
		AttachedURLs:  req.URLs,
	})
	session.ContextFiles = append(session.ContextFiles, req.Files...)
	session.ContextURLs = append(session.ContextURLs, req.URLs...)

	session.Messages = append(session.Messages, model.ChatMessage{
		Content:   model.PendingContent,
		Role:      model.RoleAssistant,
		Timestamp: now,
		ModelUsed: req.Model,
	})
	pending := len(session.Messages) - 1
	s.save(ctx, session)

	history := model.WithoutLoggerMessages(session.Messages[:pending])
	resp, err := s.conversation.Converse(ctx, history, req.Model, session.ContextFiles, session.ContextURLs)
	if err != nil {
		slog.Error("Model call failed", "session_id", session.ID, "model", req.Model, "error", err)
		session.Messages[pending] = model.ChatMessage{
			Content:   model.ModelErrorMessage,
			Role:      model.RoleLogger,
			Timestamp: s.now(),
		}
	} else {
		session.Messages[pending].Content = resp.Data
		session.Messages[pending].Timestamp = s.now()
	}
	s.save(ctx, session)

	if len(session.Messages) == 2 {
		s.nameSession(ctx, session)
	}
	return session, nil
}

func (s *SessionService) nameSession(ctx context.Context, session *model.ChatSession) {
	title, err := s.titles.Summarize(ctx, session.Messages[0].Content)
	if err != nil {
		slog.Warn("Could not generate chat title", "session_id", session.ID, "error", err)
		return
	}
	session.Title = title
	s.save(ctx, session)
}

// save persists session on a path where failures are only logged.
func (s *SessionService) save(ctx context.Context, session *model.ChatSession) {
	if err := s.repo.Save(ctx, session); err != nil {
		slog.Error("Failed to save chat session", "session_id", session.ID, "error", err)
	}
}

func (s *SessionService) load(ctx context.Context, id uuid.UUID) (*model.ChatSession, error) {
	session, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: session %s", app_errors.ErrNotFound, id)
		}
		return nil, fmt.Errorf("%w: could not load session: %w", app_errors.ErrStorage, err)
	}
	return session, nil
}

func parseSessionID(id string) (uuid.UUID, error) {
	sessionID, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: invalid session id %q", app_errors.ErrValidation, id)
	}
	return sessionID, nil
}
