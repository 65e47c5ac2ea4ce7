package index

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/cloudwego/eino-ext/components/document/transformer/splitter/recursive"
	"github.com/cloudwego/eino-ext/components/embedding/ollama"
	"github.com/cloudwego/eino/components/document"
	"github.com/cloudwego/eino/components/embedding"

	"github.com/agmada-asa/Nexus/internal/database"
)

// Manager lazily opens one Store per model under baseDir/<model>/index.db and
// keeps it open until Close.
type Manager struct {
	baseDir  string
	embedder embedding.Embedder
	splitter document.Transformer
	topK     int
	open     func(path string) (*sql.DB, error)

	mu     sync.Mutex
	stores map[string]*Store
	dbs    []*sql.DB
}

func NewManager(baseDir string, embedder embedding.Embedder, splitter document.Transformer, topK int) *Manager {
	return &Manager{
		baseDir:  baseDir,
		embedder: embedder,
		splitter: splitter,
		topK:     topK,
		open:     database.OpenIndex,
		stores:   make(map[string]*Store),
	}
}

func (m *Manager) ForModel(_ context.Context, model string) (Index, error) {
	if model == "" || model == "." || model == ".." || strings.ContainsAny(model, `/\`) {
		return nil, fmt.Errorf("invalid index name %q", model)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if store, ok := m.stores[model]; ok {
		return store, nil
	}

	path := filepath.Join(m.baseDir, model, "index.db")
	db, err := m.open(path)
	if err != nil {
		return nil, fmt.Errorf("open index for %s: %w", model, err)
	}
	slog.Info("Opened vector index", "model", model, "path", path)

	store := NewStore(db, m.embedder, m.splitter, m.topK)
	m.stores[model] = store
	m.dbs = append(m.dbs, db)
	return store, nil
}

func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var errs []error
	for _, db := range m.dbs {
		if err := db.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	m.dbs = nil
	m.stores = make(map[string]*Store)
	return errors.Join(errs...)
}

// NewOllamaEmbedder returns an embedder served by the Ollama instance at baseURL.
func NewOllamaEmbedder(ctx context.Context, baseURL, model string) (embedding.Embedder, error) {
	return ollama.NewEmbedder(ctx, &ollama.EmbeddingConfig{
		BaseURL: baseURL,
		Model:   model,
		Timeout: 5 * time.Minute,
	})
}

// NewSplitter returns the transformer that cuts documents into index nodes.
func NewSplitter(ctx context.Context, chunkSize, overlap int) (document.Transformer, error) {
	return recursive.NewSplitter(ctx, &recursive.Config{
		ChunkSize:   chunkSize,
		OverlapSize: overlap,
		Separators:  []string{"\n\n", "\n", ". ", "? ", "! ", ", ", " ", ""},
		KeepType:    recursive.KeepTypeNone,
	})
}
