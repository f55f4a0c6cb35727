package identity

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/ridebite/backend/internal/session"
)

func testUser() *session.User {
	return &session.User{
		ID:        uuid.New().String(),
		Name:      "Alice",
		Email:     "a@x.com",
		Role:      session.RoleUser,
		CreatedAt: "2026-03-01T12:00:00Z",
	}
}

func TestIssueAndParse(t *testing.T) {
	store := newMemStore()
	svc := NewTokenService(store, "test-secret", time.Hour)
	ctx := context.Background()
	user := testUser()

	raw, err := svc.Issue(ctx, user)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	identity, err := svc.Parse(ctx, raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if identity.ID != user.ID {
		t.Errorf("sub = %q, want %q", identity.ID, user.ID)
	}
	if identity.Email != user.Email || identity.Name != user.Name {
		t.Errorf("identity = %+v", identity)
	}
}

func TestParse_RejectsRevokedToken(t *testing.T) {
	store := newMemStore()
	svc := NewTokenService(store, "test-secret", time.Hour)
	ctx := context.Background()
	user := testUser()

	raw, err := svc.Issue(ctx, user)
	if err != nil {
		t.Fatal(err)
	}

	accountID, _ := uuid.Parse(user.ID)
	if err := store.RevokeTokens(ctx, accountID); err != nil {
		t.Fatal(err)
	}

	if _, err := svc.Parse(ctx, raw); err == nil {
		t.Error("expected revoked token to be rejected")
	}
}

func TestParse_RejectsWrongSecret(t *testing.T) {
	store := newMemStore()
	ctx := context.Background()

	raw, err := NewTokenService(store, "secret-one", time.Hour).Issue(ctx, testUser())
	if err != nil {
		t.Fatal(err)
	}

	if _, err := NewTokenService(store, "secret-two", time.Hour).Parse(ctx, raw); err == nil {
		t.Error("expected signature mismatch to be rejected")
	}
}

func TestParse_RejectsExpiredToken(t *testing.T) {
	store := newMemStore()
	svc := NewTokenService(store, "test-secret", time.Hour)
	svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	ctx := context.Background()

	raw, err := svc.Issue(ctx, testUser())
	if err != nil {
		t.Fatal(err)
	}

	if _, err := svc.Parse(ctx, raw); err == nil {
		t.Error("expected expired token to be rejected")
	}
}
