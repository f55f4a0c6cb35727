package identity

import (
	"context"
	"errors"
	"testing"

	"github.com/ridebite/backend/internal/session"
)

func providerCode(t *testing.T, err error) string {
	t.Helper()
	var pe *session.ProviderError
	if !errors.As(err, &pe) {
		t.Fatalf("error type = %T (%v), want *session.ProviderError", err, err)
	}
	return pe.Code
}

func TestSignUpThenSignIn(t *testing.T) {
	p := NewProvider(newMemStore())
	ctx := context.Background()

	created, err := p.SignUp(ctx, "a@x.com", "secret1")
	if err != nil {
		t.Fatalf("sign up: %v", err)
	}
	if created.ID == "" || created.Email != "a@x.com" {
		t.Errorf("identity = %+v", created)
	}

	got, err := p.SignIn(ctx, "a@x.com", "secret1")
	if err != nil {
		t.Fatalf("sign in: %v", err)
	}
	if got.ID != created.ID {
		t.Errorf("sign in id = %q, want %q", got.ID, created.ID)
	}
}

func TestSignUp_Codes(t *testing.T) {
	p := NewProvider(newMemStore())
	ctx := context.Background()
	if _, err := p.SignUp(ctx, "a@x.com", "secret1"); err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		name     string
		email    string
		password string
		want     string
	}{
		{"malformed email", "not-an-email", "secret1", session.CodeInvalidEmail},
		{"short password", "b@x.com", "12345", session.CodeWeakPassword},
		{"duplicate email", "a@x.com", "secret1", session.CodeEmailInUse},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := p.SignUp(ctx, tc.email, tc.password)
			if got := providerCode(t, err); got != tc.want {
				t.Errorf("code = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestSignIn_Codes(t *testing.T) {
	p := NewProvider(newMemStore())
	ctx := context.Background()
	if _, err := p.SignUp(ctx, "a@x.com", "secret1"); err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		name     string
		email    string
		password string
		want     string
	}{
		{"malformed email", "nope", "secret1", session.CodeInvalidEmail},
		{"unknown email", "ghost@x.com", "secret1", session.CodeUserNotFound},
		{"wrong password", "a@x.com", "wrong", session.CodeWrongPassword},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := p.SignIn(ctx, tc.email, tc.password)
			if got := providerCode(t, err); got != tc.want {
				t.Errorf("code = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestSignIn_RateLimited(t *testing.T) {
	p := NewProvider(newMemStore())
	ctx := context.Background()
	if _, err := p.SignUp(ctx, "a@x.com", "secret1"); err != nil {
		t.Fatal(err)
	}

	var last error
	for i := 0; i < 6; i++ {
		_, last = p.SignIn(ctx, "a@x.com", "wrong")
	}
	if got := providerCode(t, last); got != session.CodeTooManyRequests {
		t.Errorf("code after burst = %q, want %q", got, session.CodeTooManyRequests)
	}

	// Other emails are unaffected.
	if _, err := p.SignIn(ctx, "other@x.com", "secret1"); providerCode(t, err) != session.CodeUserNotFound {
		t.Errorf("unrelated email should not be throttled")
	}
}

func TestOnSessionChange_DeliversSnapshotAndChanges(t *testing.T) {
	p := NewProvider(newMemStore())
	ctx := context.Background()

	var got []*session.Identity
	unsubscribe := p.OnSessionChange(func(identity *session.Identity) {
		got = append(got, identity)
	})

	if len(got) != 1 || got[0] != nil {
		t.Fatalf("snapshot on subscribe = %v, want single nil delivery", got)
	}

	identity, err := p.SignUp(ctx, "a@x.com", "secret1")
	if err != nil {
		t.Fatal(err)
	}
	if err := p.SignOut(ctx); err != nil {
		t.Fatal(err)
	}

	if len(got) != 3 {
		t.Fatalf("deliveries = %d, want 3", len(got))
	}
	if got[1] == nil || got[1].ID != identity.ID {
		t.Errorf("second delivery = %v, want signed-in identity", got[1])
	}
	if got[2] != nil {
		t.Errorf("third delivery = %v, want nil after sign out", got[2])
	}

	unsubscribe()
	if _, err := p.SignUp(ctx, "b@x.com", "secret1"); err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 {
		t.Errorf("deliveries after unsubscribe = %d, want 3", len(got))
	}
}

func TestSignOut_WithoutSessionIsNoop(t *testing.T) {
	p := NewProvider(newMemStore())
	if err := p.SignOut(context.Background()); err != nil {
		t.Errorf("sign out without session: %v", err)
	}
}
