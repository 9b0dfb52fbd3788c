package application

import (
	"context"
	"crypto/subtle"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/flavorvault/recipe-service/internal/domain"
)

// Register creates an account after validating the triple.
// Duplicates are pre-checked for field-level errors, but the storage layer's
// unique constraints are what actually close the concurrent-registration race.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (RegisterResponse, error) {
	username := strings.TrimSpace(req.Username)
	if err := domain.ValidateUsername(username); err != nil {
		return RegisterResponse{}, err
	}
	if err := domain.ValidatePassword(req.Password); err != nil {
		return RegisterResponse{}, err
	}
	email, err := domain.NormalizeEmail(req.Email)
	if err != nil {
		return RegisterResponse{}, err
	}

	if _, err := s.accounts.GetByUsername(ctx, username); err == nil {
		return RegisterResponse{}, fmt.Errorf("%w: %w", domain.ErrInvalidInput, domain.ErrDuplicateUsername)
	}

	passwordHash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return RegisterResponse{}, fmt.Errorf("hash password: %w", err)
	}

	account, err := s.accounts.Create(ctx, domain.Account{
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    s.nowFn(),
	})
	if err != nil {
		return RegisterResponse{}, err
	}
	return RegisterResponse{AccountID: account.ID}, nil
}

// Login runs the password step of the state machine.
// A failed attempt changes nothing: the session keeps whatever state it had
// and the caller gets a deliberately unspecific error.
func (s *Service) Login(ctx context.Context, sessionID uuid.UUID, req LoginRequest) (SessionView, error) {
	account, err := s.accounts.GetByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		return SessionView{}, domain.ErrInvalidCredentials
	}
	if err := s.hasher.Compare(account.PasswordHash, req.Password); err != nil {
		return SessionView{}, domain.ErrInvalidCredentials
	}

	state, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return SessionView{}, err
	}
	state.AccountID = &account.ID
	state.Username = account.Username
	state.Email = account.Email
	state.Challenge = nil
	state.Verified = false

	if err := s.saveSession(ctx, sessionID, state); err != nil {
		return SessionView{}, err
	}
	return s.toView(state), nil
}

// SendCode issues a fresh challenge and dispatches it by email.
// Issuing overwrites any outstanding challenge, so at most one code is ever
// live per session. Two concurrent calls race on that overwrite with the last
// write winning; human-paced interaction makes that acceptable.
func (s *Service) SendCode(ctx context.Context, sessionID uuid.UUID) error {
	state, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return err
	}
	if !state.Authenticated() {
		return domain.ErrUnauthorized
	}

	now := s.nowFn()
	code, err := s.codes.Current(now)
	if err != nil {
		return fmt.Errorf("derive code: %w", err)
	}
	state.Challenge = &domain.VerificationChallenge{
		Code:     code,
		IssuedAt: now,
		Window:   s.codes.Window(),
	}
	if err := s.saveSession(ctx, sessionID, state); err != nil {
		return err
	}

	if err := s.mailer.Deliver(ctx, state.Email, code); err != nil {
		slog.Default().WarnContext(ctx, "verification code delivery failed",
			"service", "flavorvault",
			"module", "application",
			"layer", "application",
			"operation", "send_code",
			"outcome", "failure",
			"error", err,
		)
		return fmt.Errorf("%w: %v", domain.ErrDeliveryFailed, err)
	}
	return nil
}

// VerifyCode compares the submitted code against the stored challenge.
// A match consumes the challenge and sets the verified flag; resubmitting the
// same code afterwards fails because the challenge is gone.
func (s *Service) VerifyCode(ctx context.Context, sessionID uuid.UUID, input string) (SessionView, error) {
	state, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return SessionView{}, err
	}
	if !state.Authenticated() {
		return SessionView{}, domain.ErrUnauthorized
	}
	if state.Challenge == nil {
		return SessionView{}, domain.ErrNoChallenge
	}

	now := s.nowFn()
	if now.After(state.Challenge.ExpiresAt()) {
		state.Challenge = nil
		if err := s.saveSession(ctx, sessionID, state); err != nil {
			return SessionView{}, err
		}
		return SessionView{}, domain.ErrCodeExpired
	}

	input = strings.TrimSpace(input)
	if subtle.ConstantTimeCompare([]byte(input), []byte(state.Challenge.Code)) != 1 {
		state.Challenge.Attempts++
		if state.Challenge.Attempts >= s.cfg.MaxCodeAttempts {
			state.Challenge = nil
			if err := s.saveSession(ctx, sessionID, state); err != nil {
				return SessionView{}, err
			}
			return SessionView{}, domain.ErrTooManyCodeAttempts
		}
		if err := s.saveSession(ctx, sessionID, state); err != nil {
			return SessionView{}, err
		}
		return SessionView{}, domain.ErrInvalidCode
	}

	state.Challenge = nil
	state.Verified = true
	if err := s.saveSession(ctx, sessionID, state); err != nil {
		return SessionView{}, err
	}
	return s.toView(state), nil
}

// Logout clears the whole session record: identity, verified flag, challenge,
// and any session-held data go together.
func (s *Service) Logout(ctx context.Context, sessionID uuid.UUID) error {
	state, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return err
	}
	if !state.Authenticated() {
		return domain.ErrUnauthorized
	}
	return s.sessions.Delete(ctx, sessionID)
}

// Session returns the client-facing view of the current session.
func (s *Service) Session(ctx context.Context, sessionID uuid.UUID) (SessionView, error) {
	state, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return SessionView{}, err
	}
	return s.toView(state), nil
}

// RequireVerified is the guard predicate for protected capabilities.
// Callers get the current state back so they can act on it without a second
// store round-trip.
func (s *Service) RequireVerified(ctx context.Context, sessionID uuid.UUID) (domain.SessionState, error) {
	state, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return domain.SessionState{}, err
	}
	if !state.Authenticated() {
		return domain.SessionState{}, domain.ErrUnauthorized
	}
	if !state.Verified {
		return domain.SessionState{}, domain.ErrVerificationRequired
	}
	return state, nil
}
