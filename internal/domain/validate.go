package domain

import (
	"fmt"
	"net/mail"
	"strings"
)

const (
	minUsernameLength = 4
	maxUsernameLength = 20
	minPasswordLength = 8
	maxPasswordLength = 72
	maxEmailLength    = 120
)

// ValidateUsername enforces the registration username policy.
func ValidateUsername(username string) error {
	if len(username) < minUsernameLength || len(username) > maxUsernameLength {
		return fmt.Errorf("%w: username must be %d-%d characters", ErrInvalidInput, minUsernameLength, maxUsernameLength)
	}
	for _, r := range username {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-', r == '.':
		default:
			return fmt.Errorf("%w: username contains unsupported character %q", ErrInvalidInput, r)
		}
	}
	return nil
}

// ValidatePassword enforces the baseline password policy.
// The upper bound matches what bcrypt hashes in full.
func ValidatePassword(password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, minPasswordLength)
	}
	if len(password) > maxPasswordLength {
		return fmt.Errorf("%w: password must be <= %d characters", ErrInvalidInput, maxPasswordLength)
	}
	return nil
}

// NormalizeEmail lowercases, trims, and format-checks an email address.
func NormalizeEmail(email string) (string, error) {
	trimmed := strings.ToLower(strings.TrimSpace(email))
	if trimmed == "" {
		return "", fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if len(trimmed) > maxEmailLength {
		return "", fmt.Errorf("%w: email must be <= %d characters", ErrInvalidInput, maxEmailLength)
	}
	if _, err := mail.ParseAddress(trimmed); err != nil {
		return "", fmt.Errorf("%w: invalid email", ErrInvalidInput)
	}
	return trimmed, nil
}
