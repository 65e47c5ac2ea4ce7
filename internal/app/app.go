package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"

	"github.com/agmada-asa/Nexus/internal/api"
	"github.com/agmada-asa/Nexus/internal/config"
	"github.com/agmada-asa/Nexus/internal/contextbuilder"
	"github.com/agmada-asa/Nexus/internal/extract"
	"github.com/agmada-asa/Nexus/internal/index"
	"github.com/agmada-asa/Nexus/internal/llm"
	"github.com/agmada-asa/Nexus/internal/repository"
	"github.com/agmada-asa/Nexus/internal/service"
)

// App holds the wired server and the resources it must release on shutdown.
type App struct {
	Server  *http.Server
	Indexes *index.Manager
	Redis   *redis.Client
}

// Close releases the index databases and the redis client, if any.
func (a *App) Close() error {
	var errs []error
	if err := a.Indexes.Close(); err != nil {
		errs = append(errs, err)
	}
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func Run() int {
	cfg, err := config.LoadConfig()
	if err != nil {
		// slog is not yet configured, so use the default logger for this critical error.
		slog.Error("Failed to load configuration", "error", err)
		return 1
	}

	setupLogger(cfg.LogLevel)

	logConfigSource()

	if cfg.WaitForOllama {
		waitForOllama(cfg.OllamaURL)
	}

	app, err := NewApp(cfg)
	if err != nil {
		slog.Error("Failed to initialize application", "error", err)
		return 1
	}
	defer func() {
		if err := app.Close(); err != nil {
			slog.Error("Failed to release application resources", "error", err)
		}
	}()

	slog.Info("Starting server", "port", cfg.AppPort)
	if err := app.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server failed", "error", err)
		return 1
	}

	return 0
}

// NewApp wires every component from cfg without starting the server.
func NewApp(cfg *config.Config) (*App, error) {
	ctx := context.Background()
	ollamaProvider := llm.NewOllamaProvider(cfg.OllamaURL)

	embedder, err := index.NewOllamaEmbedder(ctx, cfg.OllamaURL, cfg.EmbeddingModel)
	if err != nil {
		return nil, fmt.Errorf("failed to create embedder: %w", err)
	}
	splitter, err := index.NewSplitter(ctx, cfg.IndexChunkSize, cfg.IndexChunkOverlap)
	if err != nil {
		return nil, fmt.Errorf("failed to create splitter: %w", err)
	}
	indexes := index.NewManager(cfg.StorageDir, embedder, splitter, cfg.RetrievalTopK)

	fileReader, err := extract.NewFileReader(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create file reader: %w", err)
	}
	builder := contextbuilder.NewBuilder(
		extract.NewTranscriber(cfg.TranscribeCommand),
		extract.NewImageReader(ollamaProvider, cfg.VisionModel, cfg.OCRCommand),
		fileReader,
		extract.NewPageFetcher(&http.Client{Timeout: 30 * time.Second}),
		cfg.ExtractConcurrency,
	)

	app := &App{Indexes: indexes}
	repo, err := newSessionRepository(cfg, app)
	if err != nil {
		return nil, err
	}

	conversationService := service.NewConversationService(ollamaProvider, builder, indexes, cfg.ChunkSize, cfg.ChunkOverlap)
	titleService := service.NewTitleService(ollamaProvider, cfg.TitleModel)
	sessionService := service.NewSessionService(repo, conversationService, titleService)
	modelService := service.NewModelService(ollamaProvider)

	router := api.NewRouter(
		api.NewPromptHandler(conversationService, titleService, cfg.StrictModelValidation),
		api.NewChatHandler(sessionService),
		api.NewModelHandler(modelService),
	)

	app.Server = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.AppPort),
		Handler:           router,
		ReadHeaderTimeout: 20 * time.Second,
		WriteTimeout:      0, // Generations may run for minutes.
		IdleTimeout:       120 * time.Second,
	}
	return app, nil
}

func newSessionRepository(cfg *config.Config, app *App) (repository.SessionRepository, error) {
	switch strings.ToLower(cfg.SessionBackend) {
	case "", "file":
		slog.Info("Storing chat sessions on disk", "dir", cfg.SessionsDir)
		return repository.NewFileRepository(cfg.SessionsDir), nil
	case "redis":
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			_ = rdb.Close()
			return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.RedisAddr, err)
		}
		slog.Info("Storing chat sessions in redis", "addr", cfg.RedisAddr)
		app.Redis = rdb
		return repository.NewRedisRepository(rdb), nil
	default:
		return nil, fmt.Errorf("unknown session backend %q", cfg.SessionBackend)
	}
}

func logConfigSource() {
	configFileUsed := viper.ConfigFileUsed()
	if configFileUsed != "" {
		slog.Info("Successfully loaded configuration from file.", "file", configFileUsed)
	} else {
		slog.Info("Configuration file not found. Using environment variables and defaults.")
	}
}

func setupLogger(logLevel string) {
	var level slog.Level
	switch strings.ToUpper(logLevel) {
	case "DEBUG":
		level = slog.LevelDebug
	case "WARN":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}

func waitForOllama(ollamaURL string) {
	slog.Info("Waiting for Ollama to be ready...")
	client := &http.Client{Timeout: 2 * time.Second}
	for {
		resp, err := client.Get(ollamaURL)
		if err == nil && resp.StatusCode == http.StatusOK {
			if bErr := resp.Body.Close(); bErr != nil {
				slog.Warn("Failed to close response body in ollama health check", "error", bErr)
			}
			slog.Info("Ollama is ready.")
			return
		}
		if resp != nil {
			if bErr := resp.Body.Close(); bErr != nil {
				slog.Warn("Failed to close response body in ollama health check (retry path)", "error", bErr)
			}
		}
		slog.Debug("Ollama not ready yet, retrying in 3 seconds...", "url", ollamaURL, "error", err)
		time.Sleep(3 * time.Second)
	}
}
