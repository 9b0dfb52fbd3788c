package domain

import (
	"time"

	"github.com/google/uuid"
)

// Account is the persisted user identity.
// It carries only what login needs; everything else in this system is
// per-session transient state.
type Account struct {
	ID           uuid.UUID
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
