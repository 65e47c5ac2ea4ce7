package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	app_errors "github.com/agmada-asa/Nexus/internal/errors"
	"github.com/agmada-asa/Nexus/internal/interfaces"
	"github.com/agmada-asa/Nexus/internal/model"
)

// ChatMessageDTO is one message of a client-held chat history.
type ChatMessageDTO struct {
	Content string `json:"content" example:"What is in this document?"`
	Role    string `json:"role" validate:"required,oneof=user system assistant logger" example:"user"`
}

// MediaFileDTO references a local file the server reads as context.
type MediaFileDTO struct {
	FilePath string `json:"filePath" validate:"required" example:"/Users/me/notes.pdf"`
	Name     string `json:"name" example:"notes.pdf"`
	FileType string `json:"fileType" example:"pdf"`
}

// URLDTO references a web page the server fetches as context.
type URLDTO struct {
	URL string `json:"url" validate:"required,url" example:"https://example.com"`
}

// PromptRequest is the body of POST /prompt/{model} and POST /getChatTitle.
type PromptRequest struct {
	ChatMessages []ChatMessageDTO `json:"chatMessages" validate:"required,min=1,dive"`
}

// PromptWithMediaRequest is the body of POST /promptWithMedia/{model}.
type PromptWithMediaRequest struct {
	ChatMessages []ChatMessageDTO `json:"chatMessages" validate:"required,min=1,dive"`
	Files        []MediaFileDTO   `json:"files" validate:"omitempty,dive"`
	URLs         []URLDTO         `json:"urls" validate:"omitempty,dive"`
}

// PromptHandler serves the model routes used by the desktop client.
type PromptHandler struct {
	conversations interfaces.ConversationService
	titles        interfaces.TitleService
	strictModels  bool
}

// NewPromptHandler creates a PromptHandler. With strictModels set, unknown
// models are answered with 422 instead of the plain-text sentinel.
func NewPromptHandler(conversations interfaces.ConversationService, titles interfaces.TitleService, strictModels bool) *PromptHandler {
	return &PromptHandler{conversations: conversations, titles: titles, strictModels: strictModels}
}

// HandleRoot godoc
// @Summary      Liveness greeting
// @Tags         Prompt
// @Produce      plain
// @Success      200  {string}  string  "Hello World"
// @Router       / [get]
func (h *PromptHandler) HandleRoot(w http.ResponseWriter, r *http.Request) {
	respondWithText(w, http.StatusOK, "Hello World")
}

// HandlePrompt godoc
// @Summary      Prompt a model
// @Description  Answers a chat history. Long latest messages are split into chunks that are answered one after another.
// @Tags         Prompt
// @Accept       json
// @Produce      json
// @Param        model    path  string         true  "Model identifier"
// @Param        request  body  PromptRequest  true  "Chat history"
// @Success      200      {object}  model.ModelResponse
// @Failure      400      {object}  ErrorResponse
// @Failure      502      {object}  ErrorResponse
// @Router       /prompt/{model} [post]
func (h *PromptHandler) HandlePrompt(w http.ResponseWriter, r *http.Request) {
	modelID := chi.URLParam(r, "model")
	if !h.checkModel(w, modelID) {
		return
	}

	var req PromptRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, err)
		return
	}

	resp, err := h.conversations.Prompt(r.Context(), toChatMessages(req.ChatMessages), modelID)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, resp)
}

// HandlePromptWithMedia godoc
// @Summary      Prompt a model with files and URLs
// @Description  Extracts the attachments, indexes them for the model and answers the chat with retrieved context.
// @Tags         Prompt
// @Accept       json
// @Produce      json
// @Param        model    path  string                  true  "Model identifier"
// @Param        request  body  PromptWithMediaRequest  true  "Chat history and attachments"
// @Success      200      {object}  model.ModelResponse
// @Failure      400      {object}  ErrorResponse
// @Failure      502      {object}  ErrorResponse
// @Router       /promptWithMedia/{model} [post]
func (h *PromptHandler) HandlePromptWithMedia(w http.ResponseWriter, r *http.Request) {
	modelID := chi.URLParam(r, "model")
	if !h.checkModel(w, modelID) {
		return
	}

	var req PromptWithMediaRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, err)
		return
	}

	files := make([]model.UploadedFile, 0, len(req.Files))
	for _, f := range req.Files {
		files = append(files, model.UploadedFile{FilePath: f.FilePath, DisplayName: f.Name, FileExtension: f.FileType})
	}
	urls := make([]string, 0, len(req.URLs))
	for _, u := range req.URLs {
		urls = append(urls, u.URL)
	}

	resp, err := h.conversations.PromptWithMedia(r.Context(), toChatMessages(req.ChatMessages), modelID, files, urls)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, resp)
}

// HandleGetChatTitle godoc
// @Summary      Generate a chat title
// @Description  Names a chat from its first message.
// @Tags         Prompt
// @Accept       json
// @Produce      json
// @Param        request  body  PromptRequest  true  "Chat history"
// @Success      200      {object}  model.ModelResponse
// @Failure      400      {object}  ErrorResponse
// @Failure      502      {object}  ErrorResponse
// @Router       /getChatTitle [post]
func (h *PromptHandler) HandleGetChatTitle(w http.ResponseWriter, r *http.Request) {
	var req PromptRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, err)
		return
	}

	resp, err := h.titles.GetChatTitle(r.Context(), toChatMessages(req.ChatMessages))
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, resp)
}

// checkModel answers unknown models and reports whether handling should continue.
func (h *PromptHandler) checkModel(w http.ResponseWriter, modelID string) bool {
	if model.IsValidModel(modelID) {
		return true
	}
	if h.strictModels {
		respondWithError(w, fmt.Errorf("%w: %q", app_errors.ErrInvalidModel, modelID))
		return false
	}
	respondWithText(w, http.StatusOK, invalidModelBody)
	return false
}

func toChatMessages(dtos []ChatMessageDTO) []model.ChatMessage {
	messages := make([]model.ChatMessage, 0, len(dtos))
	for _, m := range dtos {
		messages = append(messages, model.ChatMessage{Content: m.Content, Role: model.Role(m.Role)})
	}
	return messages
}
