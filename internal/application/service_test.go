package application

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/flavorvault/recipe-service/internal/domain"
)

// fakeAccounts is an in-memory account repository with the same duplicate
// semantics the Postgres adapter maps out of constraint violations.
type fakeAccounts struct {
	mu      sync.Mutex
	byName  map[string]domain.Account
	byEmail map[string]domain.Account
	creates int
}

func newFakeAccounts() *fakeAccounts {
	return &fakeAccounts{
		byName:  make(map[string]domain.Account),
		byEmail: make(map[string]domain.Account),
	}
}

func (f *fakeAccounts) Create(_ context.Context, account domain.Account) (domain.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byName[account.Username]; ok {
		return domain.Account{}, fmt.Errorf("%w: %w", domain.ErrInvalidInput, domain.ErrDuplicateUsername)
	}
	if _, ok := f.byEmail[account.Email]; ok {
		return domain.Account{}, fmt.Errorf("%w: %w", domain.ErrInvalidInput, domain.ErrDuplicateEmail)
	}
	account.ID = uuid.New()
	f.byName[account.Username] = account
	f.byEmail[account.Email] = account
	f.creates++
	return account, nil
}

func (f *fakeAccounts) GetByUsername(_ context.Context, username string) (domain.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	account, ok := f.byName[username]
	if !ok {
		return domain.Account{}, domain.ErrNotFound
	}
	return account, nil
}

type fakeSessions struct {
	mu     sync.Mutex
	states map[uuid.UUID]domain.SessionState
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{states: make(map[uuid.UUID]domain.SessionState)}
}

func (f *fakeSessions) Get(_ context.Context, sessionID uuid.UUID) (*domain.SessionState, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	state, ok := f.states[sessionID]
	if !ok {
		return nil, nil
	}
	return &state, nil
}

func (f *fakeSessions) Put(_ context.Context, sessionID uuid.UUID, state domain.SessionState, _ time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.states[sessionID] = state
	return nil
}

func (f *fakeSessions) Delete(_ context.Context, sessionID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.states, sessionID)
	return nil
}

// fakeHasher keeps tests fast; the real bcrypt adapter is exercised in its
// own package.
type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }

func (fakeHasher) Compare(hash, password string) error {
	if hash != "hashed:"+password {
		return errors.New("hash mismatch")
	}
	return nil
}

type stubCodes struct {
	code   string
	window time.Duration
}

func (s stubCodes) Current(time.Time) (string, error) { return s.code, nil }

func (s stubCodes) Window() time.Duration { return s.window }

type fakeMailer struct {
	mu        sync.Mutex
	delivered []string
	failWith  error
}

func (f *fakeMailer) Deliver(_ context.Context, toAddress, code string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return f.failWith
	}
	f.delivered = append(f.delivered, toAddress+":"+code)
	return nil
}

type testEnv struct {
	svc      *Service
	accounts *fakeAccounts
	sessions *fakeSessions
	mailer   *fakeMailer
	now      time.Time
}

func newTestEnv() *testEnv {
	env := &testEnv{
		accounts: newFakeAccounts(),
		sessions: newFakeSessions(),
		mailer:   &fakeMailer{},
		now:      time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC),
	}
	env.svc = NewService(Dependencies{
		Accounts: env.accounts,
		Sessions: env.sessions,
		Hasher:   fakeHasher{},
		Codes:    stubCodes{code: "483920", window: 90 * time.Second},
		Mailer:   env.mailer,
	})
	env.svc.nowFn = func() time.Time { return env.now }
	return env
}

func (e *testEnv) advance(d time.Duration) { e.now = e.now.Add(d) }

// registerAndLogin walks a session to the password-verified state.
func (e *testEnv) registerAndLogin(ctx context.Context, sid uuid.UUID) error {
	_, err := e.svc.Register(ctx, RegisterRequest{
		Username: "alice",
		Password: "correct horse",
		Email:    "alice@example.com",
	})
	if err != nil {
		return err
	}
	_, err = e.svc.Login(ctx, sid, LoginRequest{Username: "alice", Password: "correct horse"})
	return err
}

// verify walks the session the rest of the way to fully verified.
func (e *testEnv) verify(ctx context.Context, sid uuid.UUID) error {
	if err := e.svc.SendCode(ctx, sid); err != nil {
		return err
	}
	_, err := e.svc.VerifyCode(ctx, sid, "483920")
	return err
}
