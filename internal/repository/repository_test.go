package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agmada-asa/Nexus/internal/model"
)

func newSession(createdAt time.Time, title string) *model.ChatSession {
	s := model.NewChatSession(createdAt)
	s.Title = title
	return s
}

// assertSameSession compares every field of two sessions. Times are compared
// with time.Equal since a reloaded time has no monotonic reading.
func assertSameSession(t *testing.T, want, got *model.ChatSession) {
	t.Helper()
	assert.Equal(t, want.ID, got.ID)
	assert.Equal(t, want.Title, got.Title)
	assert.True(t, want.CreatedAt.Equal(got.CreatedAt), "createdAt: want %s, got %s", want.CreatedAt, got.CreatedAt)
	assert.Equal(t, want.ContextFiles, got.ContextFiles)
	assert.Equal(t, want.ContextURLs, got.ContextURLs)
	require.Len(t, got.Messages, len(want.Messages))
	for i := range want.Messages {
		w, g := want.Messages[i], got.Messages[i]
		assert.Equal(t, w.Content, g.Content, "message %d content", i)
		assert.Equal(t, w.Role, g.Role, "message %d role", i)
		assert.True(t, w.Timestamp.Equal(g.Timestamp), "message %d timestamp: want %s, got %s", i, w.Timestamp, g.Timestamp)
		assert.Equal(t, w.ModelUsed, g.ModelUsed, "message %d modelUsed", i)
		assert.Equal(t, w.AttachedFiles, g.AttachedFiles, "message %d attachedFiles", i)
		assert.Equal(t, w.AttachedURLs, g.AttachedURLs, "message %d attachedUrls", i)
	}
}

// runContract exercises the SessionRepository behaviour every backend shares.
func runContract(t *testing.T, repo SessionRepository) {
	ctx := context.Background()
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("Save and Get round trip", func(t *testing.T) {
		s := newSession(base, "Round trip")
		s.Messages = append(s.Messages,
			model.ChatMessage{
				Content:       "hello",
				Role:          model.RoleUser,
				Timestamp:     base,
				AttachedFiles: []model.UploadedFile{{FilePath: "/tmp/a.pdf", DisplayName: "a.pdf", FileExtension: "pdf"}},
				AttachedURLs:  []string{"https://example.com"},
			},
			model.ChatMessage{
				Content:   "hi there",
				Role:      model.RoleAssistant,
				Timestamp: base.Add(90 * time.Second),
				ModelUsed: "phi4",
			},
			model.ChatMessage{
				Content:   model.ModelErrorMessage,
				Role:      model.RoleLogger,
				Timestamp: base.Add(2 * time.Minute),
			},
		)
		s.ContextFiles = append(s.ContextFiles, model.UploadedFile{FilePath: "/tmp/a.pdf", DisplayName: "a.pdf", FileExtension: "pdf"})
		s.ContextURLs = append(s.ContextURLs, "https://example.com")
		require.NoError(t, repo.Save(ctx, s))

		got, err := repo.Get(ctx, s.ID)
		require.NoError(t, err)
		assertSameSession(t, s, got)
	})

	t.Run("Round trip keeps empty lists empty", func(t *testing.T) {
		s := newSession(base, "Empty lists")
		s.Messages = append(s.Messages, model.ChatMessage{
			Content:       "no attachments",
			Role:          model.RoleUser,
			Timestamp:     base,
			AttachedFiles: []model.UploadedFile{},
			AttachedURLs:  []string{},
		})
		require.NoError(t, repo.Save(ctx, s))

		got, err := repo.Get(ctx, s.ID)
		require.NoError(t, err)
		assertSameSession(t, s, got)
		require.Len(t, got.Messages, 1)
		assert.NotNil(t, got.Messages[0].AttachedFiles)
		assert.NotNil(t, got.Messages[0].AttachedURLs)
		assert.NotNil(t, got.ContextFiles)
		assert.NotNil(t, got.ContextURLs)
	})

	t.Run("Round trip of a session without messages", func(t *testing.T) {
		s := newSession(base, "Fresh")
		require.NoError(t, repo.Save(ctx, s))

		got, err := repo.Get(ctx, s.ID)
		require.NoError(t, err)
		assertSameSession(t, s, got)
		assert.NotNil(t, got.Messages)
	})

	t.Run("Save overwrites", func(t *testing.T) {
		s := newSession(base, "First")
		require.NoError(t, repo.Save(ctx, s))
		s.Title = "Second"
		require.NoError(t, repo.Save(ctx, s))

		got, err := repo.Get(ctx, s.ID)
		require.NoError(t, err)
		assert.Equal(t, "Second", got.Title)
	})

	t.Run("Get missing", func(t *testing.T) {
		_, err := repo.Get(ctx, uuid.New())
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		s := newSession(base, "Doomed")
		require.NoError(t, repo.Save(ctx, s))
		require.NoError(t, repo.Delete(ctx, s.ID))

		_, err := repo.Get(ctx, s.ID)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.ErrorIs(t, repo.Delete(ctx, s.ID), ErrNotFound)
	})

	t.Run("List newest first", func(t *testing.T) {
		older := newSession(base.Add(1*time.Hour), "older")
		newest := newSession(base.Add(3*time.Hour), "newest")
		middle := newSession(base.Add(2*time.Hour), "middle")
		for _, s := range []*model.ChatSession{older, newest, middle} {
			require.NoError(t, repo.Save(ctx, s))
		}

		sessions, err := repo.List(ctx)
		require.NoError(t, err)

		var order []string
		for _, s := range sessions {
			switch s.ID {
			case older.ID, newest.ID, middle.ID:
				order = append(order, s.Title)
			}
		}
		assert.Equal(t, []string{"newest", "middle", "older"}, order)
	})
}

func TestFileRepository(t *testing.T) {
	runContract(t, NewFileRepository(filepath.Join(t.TempDir(), "Chats")))
}

func TestFileRepository_ListSkipsCorruptFiles(t *testing.T) {
	dir := t.TempDir()
	repo := NewFileRepository(dir)
	ctx := context.Background()

	good := newSession(time.Now(), "good")
	require.NoError(t, repo.Save(ctx, good))
	require.NoError(t, os.WriteFile(filepath.Join(dir, uuid.NewString()+".json"), []byte("{not json"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.txt"), []byte("ignored"), 0o600))

	sessions, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, good.ID, sessions[0].ID)
}

func TestFileRepository_ListMissingDirectory(t *testing.T) {
	repo := NewFileRepository(filepath.Join(t.TempDir(), "does-not-exist"))

	sessions, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, sessions)
}

func TestFileRepository_WritesOneFilePerSession(t *testing.T) {
	dir := t.TempDir()
	repo := NewFileRepository(dir)
	s := newSession(time.Now(), "file")
	require.NoError(t, repo.Save(context.Background(), s))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "no temp files may be left behind")
	assert.Equal(t, s.ID.String()+".json", entries[0].Name())
}

// TestRedisRepository runs against a live server and is skipped when
// REDIS_TEST_ADDR is not set.
func TestRedisRepository(t *testing.T) {
	addr := os.Getenv("REDIS_TEST_ADDR")
	if addr == "" {
		t.Skip("REDIS_TEST_ADDR not set")
	}

	rdb := redis.NewClient(&redis.Options{Addr: addr, DB: 15})
	defer rdb.Close()
	ctx := context.Background()
	require.NoError(t, rdb.FlushDB(ctx).Err())
	defer rdb.FlushDB(ctx)

	runContract(t, NewRedisRepository(rdb))
}
