package security

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	t.Parallel()

	codec, err := NewSessionTokenCodec("test-secret", time.Hour)
	if err != nil {
		t.Fatalf("new codec: %v", err)
	}

	sid := uuid.New()
	token, err := codec.Issue(sid)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	got, err := codec.Decode(token)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got != sid {
		t.Fatalf("want %s got %s", sid, got)
	}
}

func TestSessionTokenRejectsTampering(t *testing.T) {
	t.Parallel()

	codec, err := NewSessionTokenCodec("test-secret", time.Hour)
	if err != nil {
		t.Fatalf("new codec: %v", err)
	}
	token, err := codec.Issue(uuid.New())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	tampered := token[:len(token)-2] + "xx"
	if _, err := codec.Decode(tampered); err == nil {
		t.Fatal("tampered token must not decode")
	}
}

func TestSessionTokenRejectsForeignSecret(t *testing.T) {
	t.Parallel()

	issuer, err := NewSessionTokenCodec("secret-one", time.Hour)
	if err != nil {
		t.Fatalf("new codec: %v", err)
	}
	verifier, err := NewSessionTokenCodec("secret-two", time.Hour)
	if err != nil {
		t.Fatalf("new codec: %v", err)
	}

	token, err := issuer.Issue(uuid.New())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := verifier.Decode(token); err == nil {
		t.Fatal("token signed under a different secret must not decode")
	}
}

func TestSessionTokenRejectsGarbage(t *testing.T) {
	t.Parallel()

	codec, err := NewSessionTokenCodec("test-secret", time.Hour)
	if err != nil {
		t.Fatalf("new codec: %v", err)
	}
	for _, raw := range []string{"", "garbage", strings.Repeat("a.", 10)} {
		if _, err := codec.Decode(raw); err == nil {
			t.Fatalf("raw %q must not decode", raw)
		}
	}
}

func TestSessionTokenCodecRequiresSecret(t *testing.T) {
	t.Parallel()

	if _, err := NewSessionTokenCodec("", time.Hour); err == nil {
		t.Fatal("empty secret must be rejected")
	}
}
