package domain

import (
	"time"

	"github.com/google/uuid"
)

// VerificationChallenge is the one-time code outstanding for a session.
// The code is cached at issue time and verification compares against it,
// never against a freshly derived code, so a code issued near a time-window
// boundary stays verifiable for its full validity window.
type VerificationChallenge struct {
	Code     string        `json:"code"`
	IssuedAt time.Time     `json:"issued_at"`
	Window   time.Duration `json:"window"`
	Attempts int           `json:"attempts"`
}

// ExpiresAt is the last instant the challenge code is accepted.
func (c VerificationChallenge) ExpiresAt() time.Time {
	return c.IssuedAt.Add(c.Window)
}

// SessionState is the server-side state for one client session.
// At most one challenge is outstanding; issuing a new code overwrites it.
type SessionState struct {
	AccountID    *uuid.UUID             `json:"account_id,omitempty"`
	Username     string                 `json:"username,omitempty"`
	Email        string                 `json:"email,omitempty"`
	Challenge    *VerificationChallenge `json:"challenge,omitempty"`
	Verified     bool                   `json:"verified"`
	ShoppingList []ShoppingListEntry    `json:"shopping_list,omitempty"`
}

// Authenticated reports whether the password step has completed.
func (s SessionState) Authenticated() bool {
	return s.AccountID != nil
}

// ShoppingListEntry is a session-scoped shopping list item.
// Entries are keyed by id so edits and deletes never depend on value equality.
type ShoppingListEntry struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Quantity string    `json:"quantity,omitempty"`
	Unit     string    `json:"unit,omitempty"`
	Notes    string    `json:"notes,omitempty"`
}
