package api

import (
	"net/http"
	"time"

	// This blank import is required by swaggo to find the API definitions.
	_ "github.com/agmada-asa/Nexus/docs"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

// NewRouter creates and configures a new chi router with all the application's routes.
func NewRouter(promptHandler *PromptHandler, chatHandler *ChatHandler, modelHandler *ModelHandler) *chi.Mux {
	r := chi.NewRouter()

	// --- Global Middleware ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors)

	r.Get("/api/swagger/*", httpSwagger.WrapHandler)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		respondWithJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
	})

	// --- Desktop client routes ---
	// Generations can take minutes on local hardware, so these have no timeout.
	r.Get("/", promptHandler.HandleRoot)
	r.Post("/prompt/{model}", promptHandler.HandlePrompt)
	r.Post("/promptWithMedia/{model}", promptHandler.HandlePromptWithMedia)
	r.Post("/getChatTitle", promptHandler.HandleGetChatTitle)

	// --- API Version 1 Routes ---
	r.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(middleware.Timeout(60 * time.Second))

			r.Get("/chats", chatHandler.HandleListChats)
			r.Post("/chats", chatHandler.HandleCreateChat)
			r.Get("/chats/{chatID}", chatHandler.HandleGetChat)
			r.Put("/chats/{chatID}/title", chatHandler.HandleUpdateChatTitle)
			r.Delete("/chats/{chatID}", chatHandler.HandleDeleteChat)

			r.Get("/models", modelHandler.HandleListModels)
		})

		r.Post("/chats/{chatID}/messages", chatHandler.HandleSendMessage)
	})

	return r
}

// cors allows any origin. The server only listens for a local desktop client.
func cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin == "" {
			origin = "*"
		}
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.Header().Set("Access-Control-Max-Age", "86400")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
