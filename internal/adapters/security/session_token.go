package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/flavorvault/recipe-service/internal/ports"
)

var _ ports.SessionTokenCodec = (*SessionTokenCodec)(nil)

// SessionTokenCodec signs and verifies the session cookie value.
// The cookie only has to bind a client to its server-side session id, so a
// compact HS256 token over the configured session secret is enough; all real
// state stays in the store.
type SessionTokenCodec struct {
	secret []byte
	ttl    time.Duration
}

// NewSessionTokenCodec builds a codec from the session signing secret.
func NewSessionTokenCodec(secret string, ttl time.Duration) (*SessionTokenCodec, error) {
	if secret == "" {
		return nil, errors.New("session signing secret is required")
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &SessionTokenCodec{secret: []byte(secret), ttl: ttl}, nil
}

type sessionClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

func (c *SessionTokenCodec) Issue(sessionID uuid.UUID) (string, error) {
	now := time.Now().UTC()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		SessionID: sessionID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	})
	return token.SignedString(c.secret)
}

func (c *SessionTokenCodec) Decode(raw string) (uuid.UUID, error) {
	parsed, err := jwt.ParseWithClaims(raw, &sessionClaims{}, func(token *jwt.Token) (any, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("unexpected signing method: %s", token.Method.Alg())
		}
		return c.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithLeeway(30*time.Second))
	if err != nil {
		return uuid.Nil, err
	}
	claims, ok := parsed.Claims.(*sessionClaims)
	if !ok || !parsed.Valid {
		return uuid.Nil, errors.New("invalid session token claims")
	}
	sessionID, err := uuid.Parse(claims.SessionID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("parse sid: %w", err)
	}
	return sessionID, nil
}
