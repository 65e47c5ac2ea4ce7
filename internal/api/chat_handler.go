package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/agmada-asa/Nexus/internal/interfaces"
	"github.com/agmada-asa/Nexus/internal/service"
)

// UpdateTitleRequest is the DTO for the manual chat title update endpoint.
type UpdateTitleRequest struct {
	Title string `json:"title" validate:"required,min=1,max=100" example:"My Custom Chat Title"`
}

// ChatHandler serves the stored chat sessions.
type ChatHandler struct {
	sessions interfaces.SessionService
}

func NewChatHandler(sessions interfaces.SessionService) *ChatHandler {
	return &ChatHandler{sessions: sessions}
}

// HandleListChats godoc
// @Summary      List chats
// @Description  Gets all stored chat sessions, newest first.
// @Tags         Chats
// @Produce      json
// @Success      200  {array}   model.ChatSession
// @Failure      500  {object}  ErrorResponse
// @Router       /api/v1/chats [get]
func (h *ChatHandler) HandleListChats(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.sessions.List(r.Context())
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, sessions)
}

// HandleCreateChat godoc
// @Summary      Create a chat
// @Tags         Chats
// @Produce      json
// @Success      201  {object}  model.ChatSession
// @Failure      500  {object}  ErrorResponse
// @Router       /api/v1/chats [post]
func (h *ChatHandler) HandleCreateChat(w http.ResponseWriter, r *http.Request) {
	session, err := h.sessions.Create(r.Context())
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, session)
}

// HandleGetChat godoc
// @Summary      Get a chat
// @Tags         Chats
// @Produce      json
// @Param        chatID  path  string  true  "Chat ID"
// @Success      200     {object}  model.ChatSession
// @Failure      400     {object}  ErrorResponse
// @Failure      404     {object}  ErrorResponse
// @Router       /api/v1/chats/{chatID} [get]
func (h *ChatHandler) HandleGetChat(w http.ResponseWriter, r *http.Request) {
	session, err := h.sessions.Get(r.Context(), chi.URLParam(r, "chatID"))
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, session)
}

// HandleUpdateChatTitle godoc
// @Summary      Rename a chat
// @Tags         Chats
// @Accept       json
// @Produce      json
// @Param        chatID   path  string              true  "Chat ID"
// @Param        request  body  UpdateTitleRequest  true  "New title"
// @Success      200      {object}  model.ChatSession
// @Failure      400      {object}  ErrorResponse
// @Failure      404      {object}  ErrorResponse
// @Router       /api/v1/chats/{chatID}/title [put]
func (h *ChatHandler) HandleUpdateChatTitle(w http.ResponseWriter, r *http.Request) {
	var req UpdateTitleRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, err)
		return
	}

	session, err := h.sessions.Rename(r.Context(), chi.URLParam(r, "chatID"), req.Title)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, session)
}

// HandleDeleteChat godoc
// @Summary      Delete a chat
// @Tags         Chats
// @Produce      json
// @Param        chatID  path  string  true  "Chat ID"
// @Success      200     {object}  StatusResponse
// @Failure      404     {object}  ErrorResponse
// @Router       /api/v1/chats/{chatID} [delete]
func (h *ChatHandler) HandleDeleteChat(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Delete(r.Context(), chi.URLParam(r, "chatID")); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}

// HandleSendMessage godoc
// @Summary      Send a message
// @Description  Appends a user turn to the chat and answers it. A failed model call is recorded in the chat as a logger entry.
// @Tags         Chats
// @Accept       json
// @Produce      json
// @Param        chatID   path  string               true  "Chat ID"
// @Param        request  body  service.SendRequest  true  "User turn"
// @Success      200      {object}  model.ChatSession
// @Failure      400      {object}  ErrorResponse
// @Failure      404      {object}  ErrorResponse
// @Failure      422      {object}  ErrorResponse
// @Router       /api/v1/chats/{chatID}/messages [post]
func (h *ChatHandler) HandleSendMessage(w http.ResponseWriter, r *http.Request) {
	var req service.SendRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, err)
		return
	}

	session, err := h.sessions.Send(r.Context(), chi.URLParam(r, "chatID"), req)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, session)
}
