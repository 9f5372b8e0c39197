package sessionstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"gitlab.com/codebench-2025.net/internal/core/ports/primary"
	"gitlab.com/codebench-2025.net/internal/core/ports/secondary"
	"gitlab.com/codebench-2025.net/internal/domain"
)

const (
	sessionKeyPrefix  = "session:"
	sessionExpiration = 2 * time.Hour
)

var _ secondary.SessionStore = (*SessionStore)(nil)

// SessionStore implements the SessionStore interface with Redis
type SessionStore struct {
	redisClient *redis.Client
	logger      primary.Logger
}

// NewSessionStore creates a new Redis session store
func NewSessionStore(redisClient *redis.Client, logger primary.Logger) *SessionStore {
	return &SessionStore{
		redisClient: redisClient,
		logger:      logger,
	}
}

// SaveSession saves a session to Redis, refreshing its expiration
func (s *SessionStore) SaveSession(ctx context.Context, session *domain.Session) error {
	sessionJSON, err := json.Marshal(session)
	if err != nil {
		s.logger.Error("Failed to marshal session", "sessionId", session.ID, "error", err)
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	key := sessionKeyPrefix + session.ID.String()
	if err := s.redisClient.Set(ctx, key, sessionJSON, sessionExpiration).Err(); err != nil {
		s.logger.Error("Failed to save session", "sessionId", session.ID, "error", err)
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

// GetSession retrieves a session from Redis by ID. A missing session
// returns nil without error.
func (s *SessionStore) GetSession(ctx context.Context, sessionID uuid.UUID) (*domain.Session, error) {
	key := sessionKeyPrefix + sessionID.String()
	sessionJSON, err := s.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		s.logger.Error("Failed to get session", "sessionId", sessionID, "error", err)
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var session domain.Session
	if err := json.Unmarshal(sessionJSON, &session); err != nil {
		s.logger.Error("Failed to unmarshal session", "sessionId", sessionID, "error", err)
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	return &session, nil
}

// DeleteSession removes a session from Redis
func (s *SessionStore) DeleteSession(ctx context.Context, sessionID uuid.UUID) error {
	key := sessionKeyPrefix + sessionID.String()
	if err := s.redisClient.Del(ctx, key).Err(); err != nil {
		s.logger.Error("Failed to delete session", "sessionId", sessionID, "error", err)
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
