package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/agmada-asa/Nexus/internal/model"
)

type fileRepository struct {
	dir string
}

// NewFileRepository stores each session as <dir>/<id>.json. The directory is
// created on first write.
func NewFileRepository(dir string) SessionRepository {
	return &fileRepository{dir: dir}
}

func (r *fileRepository) path(id uuid.UUID) string {
	return filepath.Join(r.dir, id.String()+".json")
}

func (r *fileRepository) Save(_ context.Context, session *model.ChatSession) error {
	session.Normalize()
	data, err := json.MarshalIndent(session, "", "  ")
	if err != nil {
		return fmt.Errorf("could not encode session %s: %w", session.ID, err)
	}
	return atomicWriteFile(r.path(session.ID), data, 0o600)
}

func (r *fileRepository) Get(_ context.Context, id uuid.UUID) (*model.ChatSession, error) {
	return r.load(r.path(id))
}

func (r *fileRepository) load(path string) (*model.ChatSession, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var session model.ChatSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("could not decode %s: %w", filepath.Base(path), err)
	}
	session.Normalize()
	return &session, nil
}

func (r *fileRepository) List(_ context.Context) ([]*model.ChatSession, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []*model.ChatSession{}, nil
		}
		return nil, err
	}

	sessions := make([]*model.ChatSession, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		session, err := r.load(filepath.Join(r.dir, entry.Name()))
		if err != nil {
			slog.Warn("Skipping unreadable session file", "file", entry.Name(), "error", err)
			continue
		}
		sessions = append(sessions, session)
	}

	sort.SliceStable(sessions, func(i, j int) bool {
		return sessions[i].CreatedAt.After(sessions[j].CreatedAt)
	})
	return sessions, nil
}

func (r *fileRepository) Delete(_ context.Context, id uuid.UUID) error {
	if err := os.Remove(r.path(id)); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// atomicWriteFile writes data to a temp file in the target directory, syncs it,
// and renames it over path, so readers see either the old or the new content.
func atomicWriteFile(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}

	f, err := os.CreateTemp(dir, ".tmp-")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tempPath := f.Name()

	success := false
	defer func() {
		if !success {
			_ = f.Close()
			_ = os.Remove(tempPath)
		}
	}()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("failed to write data: %w", err)
	}
	if err := f.Sync(); err != nil {
		return fmt.Errorf("failed to sync data to disk: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tempPath, perm); err != nil {
		return fmt.Errorf("failed to set file permissions: %w", err)
	}
	if err := os.Rename(tempPath, path); err != nil {
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	success = true
	return nil
}
