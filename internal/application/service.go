package application

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/flavorvault/recipe-service/internal/domain"
	"github.com/flavorvault/recipe-service/internal/ports"
)

const defaultMaxCodeAttempts = 5

type Service struct {
	cfg      Config
	accounts ports.AccountRepository
	sessions ports.SessionStore
	hasher   ports.PasswordHasher
	codes    ports.CodeSource
	mailer   ports.Mailer
	nowFn    func() time.Time
}

type Dependencies struct {
	Config   Config
	Accounts ports.AccountRepository
	Sessions ports.SessionStore
	Hasher   ports.PasswordHasher
	Codes    ports.CodeSource
	Mailer   ports.Mailer
}

func NewService(deps Dependencies) *Service {
	cfg := deps.Config
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = 24 * time.Hour
	}
	if cfg.MaxCodeAttempts <= 0 {
		cfg.MaxCodeAttempts = defaultMaxCodeAttempts
	}
	return &Service{
		cfg:      cfg,
		accounts: deps.Accounts,
		sessions: deps.Sessions,
		hasher:   deps.Hasher,
		codes:    deps.Codes,
		mailer:   deps.Mailer,
		nowFn:    func() time.Time { return time.Now().UTC() },
	}
}

// loadSession returns the stored state for a session, or a fresh anonymous
// state when nothing is stored. Transient store loss is indistinguishable
// from a new client, which is the intended lifecycle.
func (s *Service) loadSession(ctx context.Context, sessionID uuid.UUID) (domain.SessionState, error) {
	state, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return domain.SessionState{}, err
	}
	if state == nil {
		return domain.SessionState{}, nil
	}
	return *state, nil
}

// saveSession writes state back, refreshing the session TTL.
func (s *Service) saveSession(ctx context.Context, sessionID uuid.UUID, state domain.SessionState) error {
	return s.sessions.Put(ctx, sessionID, state, s.cfg.SessionTTL)
}

func (s *Service) toView(state domain.SessionState) SessionView {
	view := SessionView{
		Authenticated: state.Authenticated(),
		Verified:      state.Verified,
		Username:      state.Username,
	}
	if state.Challenge != nil {
		view.CodeOutstanding = true
		expires := state.Challenge.ExpiresAt()
		view.CodeExpiresAt = &expires
	}
	return view
}
