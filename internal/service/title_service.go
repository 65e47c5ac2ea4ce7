package service

import (
	"context"
	"encoding/json"
	"fmt"

	app_errors "github.com/agmada-asa/Nexus/internal/errors"
	"github.com/agmada-asa/Nexus/internal/llm"
	"github.com/agmada-asa/Nexus/internal/model"
)

const titlePrompt = `Make a basic title for a chat with this opening message: "%s" Respond using JSON"`

var titleFormat = json.RawMessage(`{"type":"object","properties":{"title":{"type":"string"}},"required":["title"]}`)

// TitleService names chats from their opening message.
type TitleService struct {
	llm   llm.LLMProvider
	model string
}

func NewTitleService(llmProvider llm.LLMProvider, titleModel string) *TitleService {
	return &TitleService{llm: llmProvider, model: titleModel}
}

// Summarize asks the title model for a JSON object {"title": ...}. A reply that
// does not decode is an error; there is no retry or fallback title.
func (s *TitleService) Summarize(ctx context.Context, openingMessage string) (string, error) {
	resp, err := s.llm.Generate(ctx, &llm.GenerateRequest{
		Model: s.model,
		Messages: []llm.Message{{
			Role:    string(model.RoleUser),
			Content: fmt.Sprintf(titlePrompt, openingMessage),
		}},
		Format: titleFormat,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", app_errors.ErrModelCall, err)
	}

	var decoded struct {
		Title *string `json:"title"`
	}
	if err := json.Unmarshal([]byte(resp.Response), &decoded); err != nil {
		return "", fmt.Errorf("%w: title response is not JSON: %w", app_errors.ErrDecode, err)
	}
	if decoded.Title == nil {
		return "", fmt.Errorf("%w: title response has no title field", app_errors.ErrDecode)
	}
	return *decoded.Title, nil
}

// GetChatTitle summarizes the first message of a chat that is not a logger entry.
func (s *TitleService) GetChatTitle(ctx context.Context, messages []model.ChatMessage) (*model.ModelResponse, error) {
	history := model.WithoutLoggerMessages(messages)
	if len(history) == 0 {
		return nil, fmt.Errorf("%w: at least one chat message is required", app_errors.ErrValidation)
	}

	title, err := s.Summarize(ctx, history[0].Content)
	if err != nil {
		return nil, err
	}
	return &model.ModelResponse{Data: title}, nil
}
