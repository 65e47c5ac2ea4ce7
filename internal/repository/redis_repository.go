package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/agmada-asa/Nexus/internal/model"
)

const sessionsIndexKey = "sessions"

type redisRepository struct {
	rdb *redis.Client
}

// NewRedisRepository stores each session as a JSON string under session:<id>
// and keeps a sorted set of ids scored by creation time for listing.
func NewRedisRepository(rdb *redis.Client) SessionRepository {
	return &redisRepository{rdb: rdb}
}

func (r *redisRepository) sessionKey(id string) string { return fmt.Sprintf("session:%s", id) }

func (r *redisRepository) Save(ctx context.Context, session *model.ChatSession) error {
	session.Normalize()
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("could not encode session %s: %w", session.ID, err)
	}

	id := session.ID.String()
	pipe := r.rdb.TxPipeline()
	pipe.Set(ctx, r.sessionKey(id), data, 0)
	pipe.ZAdd(ctx, sessionsIndexKey, redis.Z{Score: float64(session.CreatedAt.UnixNano()), Member: id})
	_, err = pipe.Exec(ctx)
	return err
}

func (r *redisRepository) Get(ctx context.Context, id uuid.UUID) (*model.ChatSession, error) {
	return r.get(ctx, id.String())
}

func (r *redisRepository) get(ctx context.Context, id string) (*model.ChatSession, error) {
	data, err := r.rdb.Get(ctx, r.sessionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var session model.ChatSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("could not decode session %s: %w", id, err)
	}
	session.Normalize()
	return &session, nil
}

func (r *redisRepository) List(ctx context.Context) ([]*model.ChatSession, error) {
	ids, err := r.rdb.ZRevRange(ctx, sessionsIndexKey, 0, -1).Result()
	if err != nil {
		return nil, err
	}

	sessions := make([]*model.ChatSession, 0, len(ids))
	for _, id := range ids {
		session, err := r.get(ctx, id)
		if err != nil {
			slog.Warn("Skipping unreadable session", "session_id", id, "error", err)
			continue
		}
		sessions = append(sessions, session)
	}
	return sessions, nil
}

func (r *redisRepository) Delete(ctx context.Context, id uuid.UUID) error {
	key := r.sessionKey(id.String())
	exists, err := r.rdb.Exists(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("could not check session for deletion: %w", err)
	}
	if exists == 0 {
		return ErrNotFound
	}

	pipe := r.rdb.TxPipeline()
	pipe.Del(ctx, key)
	pipe.ZRem(ctx, sessionsIndexKey, id.String())
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to execute session deletion pipeline: %w", err)
	}
	return nil
}
