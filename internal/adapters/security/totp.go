package security

import (
	"encoding/base32"
	"errors"
	"strings"
	"time"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"

	"github.com/flavorvault/recipe-service/internal/ports"
)

var _ ports.CodeSource = (*TOTPCodeSource)(nil)

// TOTPCodeSource derives six-digit codes from a shared base32 secret and a
// configurable time window (RFC 6238). A shorter window shrinks the replay
// surface; a longer one tolerates slow email delivery.
type TOTPCodeSource struct {
	secret string
	window time.Duration
}

// NewTOTPCodeSource validates the secret up front so a misconfigured
// deployment fails at startup rather than on first login.
func NewTOTPCodeSource(secret string, window time.Duration) (*TOTPCodeSource, error) {
	secret = strings.ToUpper(strings.TrimSpace(secret))
	if secret == "" {
		return nil, errors.New("otp shared secret is required")
	}
	if _, err := base32.StdEncoding.WithPadding(base32.NoPadding).DecodeString(strings.TrimRight(secret, "=")); err != nil {
		return nil, errors.New("otp shared secret must be base32")
	}
	if window <= 0 {
		window = 90 * time.Second
	}
	return &TOTPCodeSource{secret: secret, window: window}, nil
}

func (s *TOTPCodeSource) Current(at time.Time) (string, error) {
	return totp.GenerateCodeCustom(s.secret, at, totp.ValidateOpts{
		Period:    uint(s.window / time.Second),
		Digits:    otp.DigitsSix,
		Algorithm: otp.AlgorithmSHA1,
	})
}

func (s *TOTPCodeSource) Window() time.Duration {
	return s.window
}
