package session

import "context"

// Provider error codes. Concrete identity providers fail with one of these;
// the session layer translates them to user-facing messages and never lets
// a raw code reach a caller.
const (
	CodeInvalidEmail    = "invalid-email"
	CodeUserNotFound    = "user-not-found"
	CodeWrongPassword   = "wrong-password"
	CodeTooManyRequests = "too-many-requests"
	CodeEmailInUse      = "email-already-in-use"
	CodeWeakPassword    = "weak-password"
)

// ProviderError carries an identity-provider failure code across the port
// boundary.
type ProviderError struct {
	Code string
}

func (e *ProviderError) Error() string { return "identity provider: " + e.Code }

// IdentityProvider is the credential-verification service the session
// manager delegates to. OnSessionChange delivers the current session state
// to the callback immediately on subscribe, then again on every sign-in and
// sign-out, serially and in order. The returned function unsubscribes.
type IdentityProvider interface {
	SignIn(ctx context.Context, email, password string) (Identity, error)
	SignUp(ctx context.Context, email, password string) (Identity, error)
	SignOut(ctx context.Context) error
	OnSessionChange(fn func(identity *Identity)) (unsubscribe func())
}

// ProfileStore holds one profile document per identity. Get reports absence
// with ok=false and no error; errors are reserved for an unreachable store.
type ProfileStore interface {
	Get(ctx context.Context, id string) (*User, bool, error)
	Put(ctx context.Context, user *User) error
	// Empty reports whether the users collection holds no documents. Used
	// only to decide the first-registrant rule.
	Empty(ctx context.Context) (bool, error)
}
