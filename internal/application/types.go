package application

import (
	"time"

	"github.com/google/uuid"
)

type Config struct {
	SessionTTL      time.Duration
	MaxCodeAttempts int
}

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

type RegisterResponse struct {
	AccountID uuid.UUID `json:"account_id"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SessionView is the client-facing projection of session state.
// The stored challenge code never leaves the server, only the fact that a
// code is outstanding and when it stops being accepted.
type SessionView struct {
	Authenticated   bool       `json:"authenticated"`
	Verified        bool       `json:"verified"`
	Username        string     `json:"username,omitempty"`
	CodeOutstanding bool       `json:"code_outstanding"`
	CodeExpiresAt   *time.Time `json:"code_expires_at,omitempty"`
}

type ShoppingEntryRequest struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
	Unit     string `json:"unit"`
	Notes    string `json:"notes"`
}
