package api_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/agmada-asa/Nexus/internal/api"
	"github.com/agmada-asa/Nexus/internal/interfaces/mocks"
	"github.com/agmada-asa/Nexus/internal/model"
)

func TestNewRouter(t *testing.T) {
	mockConversations := mocks.NewMockConversationService(t)
	mockSessions := mocks.NewMockSessionService(t)
	router := api.NewRouter(
		api.NewPromptHandler(mockConversations, mocks.NewMockTitleService(t), false),
		api.NewChatHandler(mockSessions),
		api.NewModelHandler(mocks.NewMockModelService(t)),
	)

	t.Run("Root greeting", func(t *testing.T) {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "Hello World", rr.Body.String())
		assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Health check", func(t *testing.T) {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
	})

	t.Run("Preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/prompt/phi4", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.Equal(t, "http://localhost:5173", rr.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Model path parameter keeps its tag", func(t *testing.T) {
		mockConversations.On("Prompt", mock.Anything, mock.Anything, "deepseek-r1:8b").
			Return(&model.ModelResponse{Data: "ok"}, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/prompt/deepseek-r1:8b", strings.NewReader(`{"chatMessages":[{"content":"Hi","role":"user"}]}`))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Chat routes", func(t *testing.T) {
		mockSessions.On("Get", mock.Anything, "abc").Return(&model.ChatSession{Title: "x"}, nil).Once()

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/chats/abc", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
	})
}
