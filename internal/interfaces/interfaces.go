package interfaces

import (
	"context"

	"github.com/agmada-asa/Nexus/internal/model"
	"github.com/agmada-asa/Nexus/internal/service"
)

// This file defines the contracts the HTTP layer depends on. Handlers take
// these interfaces rather than the concrete services so they can be tested
// against mocks.

// ConversationService answers chat histories, with or without attachments.
type ConversationService interface {
	Prompt(ctx context.Context, messages []model.ChatMessage, modelID string) (*model.ModelResponse, error)
	PromptWithMedia(ctx context.Context, messages []model.ChatMessage, modelID string, files []model.UploadedFile, urls []string) (*model.ModelResponse, error)
}

// TitleService names chats.
type TitleService interface {
	GetChatTitle(ctx context.Context, messages []model.ChatMessage) (*model.ModelResponse, error)
}

// SessionService defines the contract for stored chat sessions.
type SessionService interface {
	Create(ctx context.Context) (*model.ChatSession, error)
	List(ctx context.Context) ([]*model.ChatSession, error)
	Get(ctx context.Context, id string) (*model.ChatSession, error)
	Rename(ctx context.Context, id, title string) (*model.ChatSession, error)
	Delete(ctx context.Context, id string) error
	Send(ctx context.Context, id string, req service.SendRequest) (*model.ChatSession, error)
}

// ModelService defines the contract for the model catalog.
type ModelService interface {
	List(ctx context.Context) ([]service.ModelStatus, error)
}
