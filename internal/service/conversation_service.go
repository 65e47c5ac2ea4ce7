package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/cloudwego/eino/schema"

	"github.com/agmada-asa/Nexus/internal/chunker"
	app_errors "github.com/agmada-asa/Nexus/internal/errors"
	"github.com/agmada-asa/Nexus/internal/index"
	"github.com/agmada-asa/Nexus/internal/llm"
	"github.com/agmada-asa/Nexus/internal/model"
)

const contextSystemPrompt = "Context information is below.\n---------------------\n%s\n---------------------\n"

// DocumentBuilder turns attachments into indexable documents.
type DocumentBuilder interface {
	Build(ctx context.Context, files []model.UploadedFile, urls []string) ([]*schema.Document, error)
}

// IndexProvider returns the persistent retrieval index of a model.
type IndexProvider interface {
	ForModel(ctx context.Context, model string) (index.Index, error)
}

// ConversationService sends chat histories to a model, either directly or
// augmented with context retrieved from the session's attachments.
type ConversationService struct {
	llm          llm.LLMProvider
	builder      DocumentBuilder
	indexes      IndexProvider
	chunkSize    int
	chunkOverlap int
}

func NewConversationService(llmProvider llm.LLMProvider, builder DocumentBuilder, indexes IndexProvider, chunkSize, chunkOverlap int) *ConversationService {
	return &ConversationService{
		llm:          llmProvider,
		builder:      builder,
		indexes:      indexes,
		chunkSize:    chunkSize,
		chunkOverlap: chunkOverlap,
	}
}

// Converse answers the last message of messages. With any file or URL it runs
// the retrieval-augmented path, otherwise the plain chunked path.
func (s *ConversationService) Converse(ctx context.Context, messages []model.ChatMessage, modelID string, files []model.UploadedFile, urls []string) (*model.ModelResponse, error) {
	if len(files)+len(urls) > 0 {
		return s.PromptWithMedia(ctx, messages, modelID, files, urls)
	}
	return s.Prompt(ctx, messages, modelID)
}

// Prompt splits the latest message into overlapping chunks and asks the model
// about each chunk in turn, every call carrying the full prior history. The
// answers are joined with a single space.
func (s *ConversationService) Prompt(ctx context.Context, messages []model.ChatMessage, modelID string) (*model.ModelResponse, error) {
	history, err := prepareHistory(messages, modelID)
	if err != nil {
		return nil, err
	}

	latest := history[len(history)-1].Content
	chunks, err := chunker.Split(latest, s.chunkSize, s.chunkOverlap)
	if err != nil {
		return nil, err
	}

	base := toLLMMessages(history)
	responses := make([]string, 0, len(chunks))
	for i, chunk := range chunks {
		llmMessages := make([]llm.Message, len(base))
		copy(llmMessages, base)
		llmMessages[len(llmMessages)-1].Content = chunk

		resp, err := s.llm.Generate(ctx, &llm.GenerateRequest{Model: modelID, Messages: llmMessages})
		if err != nil {
			return nil, fmt.Errorf("%w: chunk %d of %d: %w", app_errors.ErrModelCall, i+1, len(chunks), err)
		}
		responses = append(responses, resp.Response)
	}

	if len(chunks) > 1 {
		slog.Debug("Answered chunked prompt", "model", modelID, "chunks", len(chunks))
	}
	return &model.ModelResponse{Data: strings.Join(responses, " ")}, nil
}

// PromptWithMedia extracts every attachment, adds the documents to the model's
// index, retrieves the nodes closest to the latest message, and streams one
// answer grounded on them.
func (s *ConversationService) PromptWithMedia(ctx context.Context, messages []model.ChatMessage, modelID string, files []model.UploadedFile, urls []string) (*model.ModelResponse, error) {
	history, err := prepareHistory(messages, modelID)
	if err != nil {
		return nil, err
	}
	latest := history[len(history)-1].Content

	docs, err := s.builder.Build(ctx, files, urls)
	if err != nil {
		if errors.Is(err, app_errors.ErrExtraction) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", app_errors.ErrExtraction, err)
	}

	idx, err := s.indexes.ForModel(ctx, modelID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", app_errors.ErrIndexing, err)
	}

	if len(docs) > 0 {
		ids, err := idx.Store(ctx, docs)
		if err != nil {
			return nil, fmt.Errorf("%w: could not store documents: %w", app_errors.ErrIndexing, err)
		}
		slog.Debug("Indexed attachments", "model", modelID, "documents", len(docs), "nodes", len(ids))
	}

	nodes, err := idx.Retrieve(ctx, latest)
	if err != nil {
		return nil, fmt.Errorf("%w: could not retrieve context: %w", app_errors.ErrIndexing, err)
	}

	llmMessages := make([]llm.Message, 0, len(history)+1)
	llmMessages = append(llmMessages, llm.Message{Role: string(model.RoleSystem), Content: fmt.Sprintf(contextSystemPrompt, joinNodes(nodes))})
	llmMessages = append(llmMessages, toLLMMessages(history)...)

	answer, err := s.stream(ctx, &llm.GenerateRequest{Model: modelID, Messages: llmMessages})
	if err != nil {
		return nil, err
	}
	return &model.ModelResponse{Data: answer}, nil
}

// stream runs a streamed chat to completion and returns the concatenated text.
func (s *ConversationService) stream(ctx context.Context, req *llm.GenerateRequest) (string, error) {
	ch := make(chan llm.StreamResponse)
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.llm.GenerateStream(ctx, req, ch)
	}()

	var sb strings.Builder
	var streamErr string
	for chunk := range ch {
		if chunk.Error != "" {
			streamErr = chunk.Error
			continue
		}
		sb.WriteString(chunk.Content)
	}

	if err := <-errCh; err != nil {
		return "", fmt.Errorf("%w: %w", app_errors.ErrModelCall, err)
	}
	if streamErr != "" {
		return "", fmt.Errorf("%w: %s", app_errors.ErrModelCall, streamErr)
	}
	return sb.String(), nil
}

// prepareHistory checks the model against the allow-list and drops logger
// entries. The result always has at least one message.
func prepareHistory(messages []model.ChatMessage, modelID string) ([]model.ChatMessage, error) {
	if !model.IsValidModel(modelID) {
		return nil, fmt.Errorf("%w: %q", app_errors.ErrInvalidModel, modelID)
	}
	history := model.WithoutLoggerMessages(messages)
	if len(history) == 0 {
		return nil, fmt.Errorf("%w: at least one chat message is required", app_errors.ErrValidation)
	}
	return history, nil
}

func toLLMMessages(messages []model.ChatMessage) []llm.Message {
	out := make([]llm.Message, 0, len(messages))
	for _, msg := range messages {
		out = append(out, llm.Message{Role: string(msg.Role), Content: msg.Content})
	}
	return out
}

func joinNodes(nodes []*schema.Document) string {
	parts := make([]string, 0, len(nodes))
	for _, n := range nodes {
		parts = append(parts, n.Content)
	}
	return strings.Join(parts, "\n\n")
}
