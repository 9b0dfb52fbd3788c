package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/flavorvault/recipe-service/internal/domain"
)

func TestRegisterValidation(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		req  RegisterRequest
	}{
		{"short username", RegisterRequest{Username: "ab", Password: "longenough", Email: "a@example.com"}},
		{"long username", RegisterRequest{Username: "abcdefghijklmnopqrstu", Password: "longenough", Email: "a@example.com"}},
		{"bad username chars", RegisterRequest{Username: "bad name!", Password: "longenough", Email: "a@example.com"}},
		{"short password", RegisterRequest{Username: "alice", Password: "short", Email: "a@example.com"}},
		{"bad email", RegisterRequest{Username: "alice", Password: "longenough", Email: "not-an-email"}},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			env := newTestEnv()
			_, err := env.svc.Register(context.Background(), tc.req)
			if !errors.Is(err, domain.ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
			if env.accounts.creates != 0 {
				t.Fatalf("no account should be created on invalid input")
			}
		})
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	t.Parallel()
	env := newTestEnv()
	ctx := context.Background()

	if _, err := env.svc.Register(ctx, RegisterRequest{Username: "alice", Password: "longenough", Email: "a@example.com"}); err != nil {
		t.Fatalf("first register: %v", err)
	}
	_, err := env.svc.Register(ctx, RegisterRequest{Username: "alice", Password: "longenough", Email: "b@example.com"})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for duplicate username, got %v", err)
	}
}

func TestRegisterDuplicateEmailCaughtByStore(t *testing.T) {
	t.Parallel()
	env := newTestEnv()
	ctx := context.Background()

	if _, err := env.svc.Register(ctx, RegisterRequest{Username: "alice", Password: "longenough", Email: "a@example.com"}); err != nil {
		t.Fatalf("first register: %v", err)
	}
	// Same email under a different username slips past the pre-check and is
	// rejected by the store's constraint semantics.
	_, err := env.svc.Register(ctx, RegisterRequest{Username: "bob", Password: "longenough", Email: "A@Example.com"})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for duplicate email, got %v", err)
	}
}

func TestRegisterNormalizesEmail(t *testing.T) {
	t.Parallel()
	env := newTestEnv()
	ctx := context.Background()

	if _, err := env.svc.Register(ctx, RegisterRequest{Username: "alice", Password: "longenough", Email: "  Alice@Example.COM "}); err != nil {
		t.Fatalf("register: %v", err)
	}
	account, err := env.accounts.GetByUsername(ctx, "alice")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if account.Email != "alice@example.com" {
		t.Fatalf("email not normalized: %q", account.Email)
	}
}

func TestLoginWrongPasswordLeavesSessionUntouched(t *testing.T) {
	t.Parallel()
	env := newTestEnv()
	ctx := context.Background()
	sid := uuid.New()

	if err := env.registerAndLogin(ctx, sid); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if err := env.verify(ctx, sid); err != nil {
		t.Fatalf("verify: %v", err)
	}

	_, err := env.svc.Login(ctx, sid, LoginRequest{Username: "alice", Password: "wrong"})
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}

	view, err := env.svc.Session(ctx, sid)
	if err != nil {
		t.Fatalf("session: %v", err)
	}
	if !view.Verified {
		t.Fatalf("failed login must not downgrade the session")
	}
}

func TestLoginUnknownUserIsIndistinguishable(t *testing.T) {
	t.Parallel()
	env := newTestEnv()
	ctx := context.Background()

	_, err := env.svc.Login(ctx, uuid.New(), LoginRequest{Username: "nobody", Password: "whatever"})
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLoginResetsVerificationState(t *testing.T) {
	t.Parallel()
	env := newTestEnv()
	ctx := context.Background()
	sid := uuid.New()

	if err := env.registerAndLogin(ctx, sid); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if err := env.verify(ctx, sid); err != nil {
		t.Fatalf("verify: %v", err)
	}

	view, err := env.svc.Login(ctx, sid, LoginRequest{Username: "alice", Password: "correct horse"})
	if err != nil {
		t.Fatalf("relogin: %v", err)
	}
	if view.Verified {
		t.Fatalf("fresh login must drop the verified flag")
	}
	if view.CodeOutstanding {
		t.Fatalf("fresh login must clear any outstanding challenge")
	}
}

func TestSendCodeRequiresIdentity(t *testing.T) {
	t.Parallel()
	env := newTestEnv()

	err := env.svc.SendCode(context.Background(), uuid.New())
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestSendCodeDeliversToAccountEmail(t *testing.T) {
	t.Parallel()
	env := newTestEnv()
	ctx := context.Background()
	sid := uuid.New()

	if err := env.registerAndLogin(ctx, sid); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if err := env.svc.SendCode(ctx, sid); err != nil {
		t.Fatalf("send code: %v", err)
	}
	if len(env.mailer.delivered) != 1 || env.mailer.delivered[0] != "alice@example.com:483920" {
		t.Fatalf("unexpected deliveries: %v", env.mailer.delivered)
	}
}

func TestSendCodeOverwritesOutstandingChallenge(t *testing.T) {
	t.Parallel()
	env := newTestEnv()
	ctx := context.Background()
	sid := uuid.New()

	if err := env.registerAndLogin(ctx, sid); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if err := env.svc.SendCode(ctx, sid); err != nil {
		t.Fatalf("first send: %v", err)
	}
	env.advance(30 * time.Second)
	if err := env.svc.SendCode(ctx, sid); err != nil {
		t.Fatalf("second send: %v", err)
	}

	state, err := env.sessions.Get(ctx, sid)
	if err != nil || state == nil || state.Challenge == nil {
		t.Fatalf("expected a stored challenge, got state=%v err=%v", state, err)
	}
	if !state.Challenge.IssuedAt.Equal(env.now) {
		t.Fatalf("reissue must overwrite the challenge, issued_at=%v now=%v", state.Challenge.IssuedAt, env.now)
	}
	if state.Challenge.Attempts != 0 {
		t.Fatalf("reissue must reset the attempt counter")
	}
}

func TestSendCodeDeliveryFailureSurfaces(t *testing.T) {
	t.Parallel()
	env := newTestEnv()
	ctx := context.Background()
	sid := uuid.New()

	if err := env.registerAndLogin(ctx, sid); err != nil {
		t.Fatalf("setup: %v", err)
	}
	env.mailer.failWith = errors.New("smtp down")

	err := env.svc.SendCode(ctx, sid)
	if !errors.Is(err, domain.ErrDeliveryFailed) {
		t.Fatalf("expected ErrDeliveryFailed, got %v", err)
	}
}

func TestVerifyCodeHappyPath(t *testing.T) {
	t.Parallel()
	env := newTestEnv()
	ctx := context.Background()
	sid := uuid.New()

	if err := env.registerAndLogin(ctx, sid); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if err := env.svc.SendCode(ctx, sid); err != nil {
		t.Fatalf("send: %v", err)
	}

	view, err := env.svc.VerifyCode(ctx, sid, " 483920 ")
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if !view.Verified {
		t.Fatalf("session should be verified")
	}
	if view.CodeOutstanding {
		t.Fatalf("challenge must be consumed on success")
	}
}

func TestVerifyCodeReplayFails(t *testing.T) {
	t.Parallel()
	env := newTestEnv()
	ctx := context.Background()
	sid := uuid.New()

	if err := env.registerAndLogin(ctx, sid); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if err := env.verify(ctx, sid); err != nil {
		t.Fatalf("verify: %v", err)
	}

	_, err := env.svc.VerifyCode(ctx, sid, "483920")
	if !errors.Is(err, domain.ErrNoChallenge) {
		t.Fatalf("replaying a consumed code should fail with ErrNoChallenge, got %v", err)
	}
}

func TestVerifyCodeWithoutChallenge(t *testing.T) {
	t.Parallel()
	env := newTestEnv()
	ctx := context.Background()
	sid := uuid.New()

	if err := env.registerAndLogin(ctx, sid); err != nil {
		t.Fatalf("setup: %v", err)
	}
	_, err := env.svc.VerifyCode(ctx, sid, "483920")
	if !errors.Is(err, domain.ErrNoChallenge) {
		t.Fatalf("expected ErrNoChallenge, got %v", err)
	}
}

func TestVerifyCodeExpiry(t *testing.T) {
	t.Parallel()
	env := newTestEnv()
	ctx := context.Background()
	sid := uuid.New()

	if err := env.registerAndLogin(ctx, sid); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if err := env.svc.SendCode(ctx, sid); err != nil {
		t.Fatalf("send: %v", err)
	}
	env.advance(91 * time.Second)

	_, err := env.svc.VerifyCode(ctx, sid, "483920")
	if !errors.Is(err, domain.ErrCodeExpired) {
		t.Fatalf("expected ErrCodeExpired, got %v", err)
	}

	// The expired challenge is gone, so a retry reports no challenge.
	_, err = env.svc.VerifyCode(ctx, sid, "483920")
	if !errors.Is(err, domain.ErrNoChallenge) {
		t.Fatalf("expected ErrNoChallenge after expiry cleanup, got %v", err)
	}
}

func TestVerifyCodeAtWindowBoundaryStillValid(t *testing.T) {
	t.Parallel()
	env := newTestEnv()
	ctx := context.Background()
	sid := uuid.New()

	if err := env.registerAndLogin(ctx, sid); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if err := env.svc.SendCode(ctx, sid); err != nil {
		t.Fatalf("send: %v", err)
	}
	env.advance(90 * time.Second)

	if _, err := env.svc.VerifyCode(ctx, sid, "483920"); err != nil {
		t.Fatalf("code at exactly issued_at+window should verify, got %v", err)
	}
}

func TestVerifyCodeAttemptCap(t *testing.T) {
	t.Parallel()
	env := newTestEnv()
	ctx := context.Background()
	sid := uuid.New()

	if err := env.registerAndLogin(ctx, sid); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if err := env.svc.SendCode(ctx, sid); err != nil {
		t.Fatalf("send: %v", err)
	}

	for i := 0; i < 4; i++ {
		_, err := env.svc.VerifyCode(ctx, sid, "000000")
		if !errors.Is(err, domain.ErrInvalidCode) {
			t.Fatalf("attempt %d: expected ErrInvalidCode, got %v", i+1, err)
		}
	}
	_, err := env.svc.VerifyCode(ctx, sid, "000000")
	if !errors.Is(err, domain.ErrTooManyCodeAttempts) {
		t.Fatalf("expected ErrTooManyCodeAttempts on fifth miss, got %v", err)
	}

	// The challenge is invalidated outright, even for the correct code.
	_, err = env.svc.VerifyCode(ctx, sid, "483920")
	if !errors.Is(err, domain.ErrNoChallenge) {
		t.Fatalf("expected ErrNoChallenge after cap, got %v", err)
	}
}

func TestLogoutDropsEverything(t *testing.T) {
	t.Parallel()
	env := newTestEnv()
	ctx := context.Background()
	sid := uuid.New()

	if err := env.registerAndLogin(ctx, sid); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if err := env.verify(ctx, sid); err != nil {
		t.Fatalf("verify: %v", err)
	}
	if _, err := env.svc.AddShoppingEntry(ctx, sid, ShoppingEntryRequest{Name: "eggs"}); err != nil {
		t.Fatalf("add entry: %v", err)
	}

	if err := env.svc.Logout(ctx, sid); err != nil {
		t.Fatalf("logout: %v", err)
	}

	view, err := env.svc.Session(ctx, sid)
	if err != nil {
		t.Fatalf("session: %v", err)
	}
	if view.Authenticated || view.Verified {
		t.Fatalf("logout must return the session to anonymous, got %+v", view)
	}
	if _, err := env.svc.ListShopping(ctx, sid); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("shopping list must be gone with the session, got %v", err)
	}
}

func TestLogoutWithoutIdentity(t *testing.T) {
	t.Parallel()
	env := newTestEnv()

	err := env.svc.Logout(context.Background(), uuid.New())
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestSessionsAreIsolated(t *testing.T) {
	t.Parallel()
	env := newTestEnv()
	ctx := context.Background()
	first := uuid.New()
	second := uuid.New()

	if err := env.registerAndLogin(ctx, first); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if err := env.verify(ctx, first); err != nil {
		t.Fatalf("verify: %v", err)
	}

	view, err := env.svc.Session(ctx, second)
	if err != nil {
		t.Fatalf("session: %v", err)
	}
	if view.Authenticated {
		t.Fatalf("verification in one session must not leak into another")
	}
}
