package session

import (
	"context"
	"log/slog"
	"time"
)

// Resolver turns an authenticated identity into a profile document.
//
// Existing documents are returned verbatim and never overwritten on read.
// A missing document is created exactly once; the first document ever
// written to the store gets the admin role, every later one gets the user
// role. When the store is unreachable the resolver degrades to an
// in-memory record with the user role so the application keeps working;
// that record is not persisted and is re-resolved on the next login.
type Resolver struct {
	store ProfileStore
	now   func() time.Time
}

func NewResolver(store ProfileStore) *Resolver {
	return &Resolver{store: store, now: time.Now}
}

func (r *Resolver) Resolve(ctx context.Context, identity Identity) *User {
	existing, ok, err := r.store.Get(ctx, identity.ID)
	if err != nil {
		slog.Error("profile lookup failed, using fallback profile", "user_id", identity.ID, "error", err)
		return r.fallback(identity)
	}
	if ok {
		return existing
	}

	role := RoleUser
	empty, err := r.store.Empty(ctx)
	if err != nil {
		slog.Error("profile count failed, using fallback profile", "user_id", identity.ID, "error", err)
		return r.fallback(identity)
	}
	if empty {
		role = RoleAdmin
	}

	user := NewUser(identity, role, r.now())
	if err := r.store.Put(ctx, user); err != nil {
		slog.Error("profile create failed, using fallback profile", "user_id", identity.ID, "error", err)
		return r.fallback(identity)
	}
	slog.Info("profile created", "user_id", user.ID, "role", user.Role)
	return user
}

// fallback never grants admin.
func (r *Resolver) fallback(identity Identity) *User {
	return NewUser(identity, RoleUser, r.now())
}
