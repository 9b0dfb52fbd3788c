package domain

import "errors"

var (
	// ErrNotFound is returned when the requested resource does not exist.
	// Keeping this sentinel in domain lets adapters map it consistently to 404.
	ErrNotFound = errors.New("resource not found")
	// ErrInvalidCredentials hides whether the username or the password failed.
	// The reason is to prevent account-enumeration side channels.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidInput covers malformed registration input.
	ErrInvalidInput = errors.New("invalid input")
	// ErrDuplicateUsername and ErrDuplicateEmail are reported as field-level
	// validation failures on registration.
	ErrDuplicateUsername = errors.New("username already taken")
	ErrDuplicateEmail    = errors.New("email already registered")
	// ErrUnauthorized signals a request outside any authenticated session.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrVerificationRequired gates protected capabilities on the verified flag.
	ErrVerificationRequired = errors.New("two-factor verification required")
	// ErrNoChallenge means verification was attempted with no code outstanding.
	ErrNoChallenge = errors.New("no verification code outstanding")
	// ErrInvalidCode is a wrong but retryable code submission.
	ErrInvalidCode = errors.New("invalid verification code")
	// ErrCodeExpired means the outstanding code outlived its validity window.
	ErrCodeExpired = errors.New("verification code expired")
	// ErrTooManyCodeAttempts invalidates the challenge after repeated mismatches.
	ErrTooManyCodeAttempts = errors.New("too many verification attempts")
	// ErrDeliveryFailed is a notification transport failure, surfaced not retried.
	ErrDeliveryFailed = errors.New("code delivery failed")
)
