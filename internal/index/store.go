// Package index keeps one persistent vector index per chat model. Documents are
// split into nodes, embedded, and stored in SQLite; retrieval ranks every
// stored node by cosine similarity to the query.
package index

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/cloudwego/eino/components/document"
	"github.com/cloudwego/eino/components/embedding"
	"github.com/cloudwego/eino/components/indexer"
	"github.com/cloudwego/eino/components/retriever"
	"github.com/cloudwego/eino/schema"
	"github.com/google/uuid"
)

// MetaDocumentID is the metadata key holding the id of the document a node was
// split from.
const MetaDocumentID = "document_id"

const embedBatchSize = 32

// Index stores documents and retrieves the nodes most similar to a query.
type Index interface {
	indexer.Indexer
	retriever.Retriever
}

type Store struct {
	db       *sql.DB
	embedder embedding.Embedder
	splitter document.Transformer
	topK     int
	now      func() time.Time
}

// NewStore returns a Store over an already migrated database. splitter may be
// nil, in which case each document is stored as a single node.
func NewStore(db *sql.DB, embedder embedding.Embedder, splitter document.Transformer, topK int) *Store {
	return &Store{
		db:       db,
		embedder: embedder,
		splitter: splitter,
		topK:     topK,
		now:      time.Now,
	}
}

type node struct {
	id         string
	documentID string
	content    string
	metadata   map[string]any
}

// Store inserts every document as new nodes and returns the node ids. Storing
// the same content twice yields duplicate nodes.
func (s *Store) Store(ctx context.Context, docs []*schema.Document, opts ...indexer.Option) ([]string, error) {
	options := indexer.GetCommonOptions(&indexer.Options{Embedding: s.embedder}, opts...)
	if options.Embedding == nil {
		return nil, fmt.Errorf("no embedder configured")
	}

	nodes, err := s.split(ctx, docs)
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return []string{}, nil
	}

	vectors, err := embedAll(ctx, options.Embedding, nodes)
	if err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, "INSERT INTO nodes (id, document_id, content, metadata, embedding, created_at) VALUES (?, ?, ?, ?, ?, ?)")
	if err != nil {
		return nil, fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	createdAt := s.now().UTC()
	ids := make([]string, 0, len(nodes))
	for i, n := range nodes {
		metadata, err := json.Marshal(n.metadata)
		if err != nil {
			return nil, fmt.Errorf("encode metadata of node %s: %w", n.id, err)
		}
		vectorJSON, err := json.Marshal(vectors[i])
		if err != nil {
			return nil, fmt.Errorf("encode embedding of node %s: %w", n.id, err)
		}
		if _, err := stmt.ExecContext(ctx, n.id, n.documentID, n.content, string(metadata), string(vectorJSON), createdAt); err != nil {
			return nil, fmt.Errorf("insert node %s: %w", n.id, err)
		}
		ids = append(ids, n.id)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit nodes: %w", err)
	}
	return ids, nil
}

// Retrieve embeds query and returns the top-K stored nodes by cosine
// similarity, most similar first. Each result carries its Score.
func (s *Store) Retrieve(ctx context.Context, query string, opts ...retriever.Option) ([]*schema.Document, error) {
	topK := s.topK
	options := retriever.GetCommonOptions(&retriever.Options{TopK: &topK, Embedding: s.embedder}, opts...)
	if options.Embedding == nil {
		return nil, fmt.Errorf("no embedder configured")
	}

	vectors, err := options.Embedding.EmbedStrings(ctx, []string{query})
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}
	if len(vectors) != 1 {
		return nil, fmt.Errorf("embed query: expected 1 vector, got %d", len(vectors))
	}
	queryVector := vectors[0]

	rows, err := s.db.QueryContext(ctx, "SELECT id, document_id, content, metadata, embedding FROM nodes")
	if err != nil {
		return nil, fmt.Errorf("query nodes: %w", err)
	}
	defer rows.Close()

	var results []*schema.Document
	for rows.Next() {
		var id, documentID, content, metadataJSON, embeddingJSON string
		if err := rows.Scan(&id, &documentID, &content, &metadataJSON, &embeddingJSON); err != nil {
			return nil, fmt.Errorf("scan node: %w", err)
		}

		var vector []float64
		if err := json.Unmarshal([]byte(embeddingJSON), &vector); err != nil {
			return nil, fmt.Errorf("decode embedding of node %s: %w", id, err)
		}
		score := cosineSimilarity(queryVector, vector)
		if options.ScoreThreshold != nil && score < *options.ScoreThreshold {
			continue
		}

		metadata := map[string]any{}
		if err := json.Unmarshal([]byte(metadataJSON), &metadata); err != nil {
			return nil, fmt.Errorf("decode metadata of node %s: %w", id, err)
		}
		metadata[MetaDocumentID] = documentID

		doc := &schema.Document{ID: id, Content: content, MetaData: metadata}
		results = append(results, doc.WithScore(score))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate nodes: %w", err)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score() > results[j].Score()
	})
	if options.TopK != nil && *options.TopK >= 0 && len(results) > *options.TopK {
		results = results[:*options.TopK]
	}
	return results, nil
}

func (s *Store) split(ctx context.Context, docs []*schema.Document) ([]node, error) {
	var nodes []node
	for _, doc := range docs {
		if doc == nil {
			continue
		}
		documentID := doc.ID
		if documentID == "" {
			documentID = uuid.NewString()
		}

		parts := []*schema.Document{doc}
		if s.splitter != nil {
			var err error
			parts, err = s.splitter.Transform(ctx, []*schema.Document{doc})
			if err != nil {
				return nil, fmt.Errorf("split document %s: %w", documentID, err)
			}
		}

		for _, part := range parts {
			if part.Content == "" {
				continue
			}
			metadata := make(map[string]any, len(part.MetaData)+1)
			for k, v := range part.MetaData {
				metadata[k] = v
			}
			metadata[MetaDocumentID] = documentID
			nodes = append(nodes, node{
				id:         uuid.NewString(),
				documentID: documentID,
				content:    part.Content,
				metadata:   metadata,
			})
		}
	}
	return nodes, nil
}

func embedAll(ctx context.Context, embedder embedding.Embedder, nodes []node) ([][]float64, error) {
	vectors := make([][]float64, 0, len(nodes))
	for start := 0; start < len(nodes); start += embedBatchSize {
		end := min(start+embedBatchSize, len(nodes))
		texts := make([]string, 0, end-start)
		for _, n := range nodes[start:end] {
			texts = append(texts, n.content)
		}

		batch, err := embedder.EmbedStrings(ctx, texts)
		if err != nil {
			return nil, fmt.Errorf("embed nodes: %w", err)
		}
		if len(batch) != len(texts) {
			return nil, fmt.Errorf("vector count mismatch: expected %d, got %d", len(texts), len(batch))
		}
		vectors = append(vectors, batch...)
	}
	return vectors, nil
}

// cosineSimilarity returns 0 when either vector has zero length or the
// dimensions differ.
func cosineSimilarity(a, b []float64) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
