package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/agmada-asa/Nexus/internal/model"
)

// SessionRepository persists chat sessions. Every Save overwrites the whole
// session; there is no cross-process locking, so two writers of the same id
// race and the last one wins.
type SessionRepository interface {
	Save(ctx context.Context, session *model.ChatSession) error
	Get(ctx context.Context, id uuid.UUID) (*model.ChatSession, error)
	// List returns every readable session, newest first.
	List(ctx context.Context) ([]*model.ChatSession, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
