package ports

import (
	"time"

	"github.com/google/uuid"
)

type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// CodeSource derives the one-time code for a point in time.
// The code is a deterministic function of (shared secret, time window), so
// generation needs no counter state; the issued code is cached in session
// state and verification compares against that cached value.
type CodeSource interface {
	Current(at time.Time) (string, error)
	Window() time.Duration
}

// SessionTokenCodec converts a session id to and from the signed token the
// client carries in its cookie. Decode failures mean the client gets a fresh
// anonymous session, never an error response.
type SessionTokenCodec interface {
	Issue(sessionID uuid.UUID) (string, error)
	Decode(token string) (uuid.UUID, error)
}
