package profile

import (
	"context"
	"testing"

	"github.com/ridebite/backend/internal/session"
)

func TestMemoryStore_RoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	empty, err := store.Empty(ctx)
	if err != nil || !empty {
		t.Fatalf("Empty() = %v, %v; want true, nil", empty, err)
	}
	if _, ok, _ := store.Get(ctx, "u1"); ok {
		t.Fatal("Get on empty store reported a document")
	}

	doc := &session.User{ID: "u1", Name: "Alice", Email: "a@x.com", Role: session.RoleAdmin, CreatedAt: "2026-03-01T12:00:00Z"}
	if err := store.Put(ctx, doc); err != nil {
		t.Fatal(err)
	}

	got, ok, err := store.Get(ctx, "u1")
	if err != nil || !ok {
		t.Fatalf("Get() ok=%v err=%v", ok, err)
	}
	if *got != *doc {
		t.Errorf("Get() = %+v, want %+v", got, doc)
	}

	if empty, _ := store.Empty(ctx); empty {
		t.Error("Empty() = true after Put")
	}
}

func TestMemoryStore_GetReturnsCopy(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	if err := store.Put(ctx, &session.User{ID: "u1", Role: session.RoleUser}); err != nil {
		t.Fatal(err)
	}

	got, _, _ := store.Get(ctx, "u1")
	got.Role = session.RoleAdmin

	again, _, _ := store.Get(ctx, "u1")
	if again.Role != session.RoleUser {
		t.Error("mutating a returned document changed the stored one")
	}
}
