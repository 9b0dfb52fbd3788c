package ports

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/flavorvault/recipe-service/internal/domain"
)

// SessionStore persists per-session state out of process.
// State is transient: a missing record is not an error, it is a fresh
// anonymous session; nothing here survives store expiry or clearing.
type SessionStore interface {
	Get(ctx context.Context, sessionID uuid.UUID) (*domain.SessionState, error)
	Put(ctx context.Context, sessionID uuid.UUID, state domain.SessionState, ttl time.Duration) error
	Delete(ctx context.Context, sessionID uuid.UUID) error
}
