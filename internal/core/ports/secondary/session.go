package secondary

import (
	"context"

	"github.com/google/uuid"

	"gitlab.com/codebench-2025.net/internal/domain"
)

// SessionStore defines the interface for workbench session state.
// GetSession returns nil without error when the session does not exist.
type SessionStore interface {
	SaveSession(ctx context.Context, session *domain.Session) error

	GetSession(ctx context.Context, sessionID uuid.UUID) (*domain.Session, error)

	DeleteSession(ctx context.Context, sessionID uuid.UUID) error
}
