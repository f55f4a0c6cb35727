package identity

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/ridebite/backend/internal/models"
	"github.com/ridebite/backend/internal/session"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/time/rate"
)

const minPasswordLength = 6

// Provider is the credential-based session.IdentityProvider: bcrypt
// verification against the accounts table, per-email sign-in throttling,
// and a subscriber registry for session-change notifications.
//
// Subscribers receive the current session state immediately on subscribe
// and every subsequent change serially, in order. Callbacks run with the
// provider lock held and must not call back into the Provider.
type Provider struct {
	store Store

	mu          sync.Mutex
	current     *session.Identity
	subscribers map[int]func(*session.Identity)
	nextSub     int
	limiters    map[string]*rate.Limiter
}

func NewProvider(store Store) *Provider {
	return &Provider{
		store:       store,
		subscribers: make(map[int]func(*session.Identity)),
		limiters:    make(map[string]*rate.Limiter),
	}
}

func (p *Provider) SignIn(ctx context.Context, email, password string) (session.Identity, error) {
	if !p.allow(email) {
		return session.Identity{}, &session.ProviderError{Code: session.CodeTooManyRequests}
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return session.Identity{}, &session.ProviderError{Code: session.CodeInvalidEmail}
	}

	account, err := p.store.AccountByEmail(ctx, email)
	if errors.Is(err, ErrAccountNotFound) {
		return session.Identity{}, &session.ProviderError{Code: session.CodeUserNotFound}
	}
	if err != nil {
		return session.Identity{}, fmt.Errorf("sign in: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return session.Identity{}, &session.ProviderError{Code: session.CodeWrongPassword}
	}

	identity := session.Identity{ID: account.ID.String(), Email: account.Email}
	p.setSession(&identity)
	return identity, nil
}

func (p *Provider) SignUp(ctx context.Context, email, password string) (session.Identity, error) {
	if _, err := mail.ParseAddress(email); err != nil {
		return session.Identity{}, &session.ProviderError{Code: session.CodeInvalidEmail}
	}
	if len(password) < minPasswordLength {
		return session.Identity{}, &session.ProviderError{Code: session.CodeWeakPassword}
	}

	if _, err := p.store.AccountByEmail(ctx, email); err == nil {
		return session.Identity{}, &session.ProviderError{Code: session.CodeEmailInUse}
	} else if !errors.Is(err, ErrAccountNotFound) {
		return session.Identity{}, fmt.Errorf("sign up: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return session.Identity{}, fmt.Errorf("hash password: %w", err)
	}

	account := &models.Account{ID: uuid.New(), Email: email, PasswordHash: string(hash)}
	if err := p.store.CreateAccount(ctx, account); err != nil {
		return session.Identity{}, fmt.Errorf("sign up: %w", err)
	}
	slog.Info("account created", "account_id", account.ID)

	identity := session.Identity{ID: account.ID.String(), Email: account.Email}
	p.setSession(&identity)
	return identity, nil
}

func (p *Provider) SignOut(ctx context.Context) error {
	p.mu.Lock()
	current := p.current
	p.mu.Unlock()
	if current == nil {
		return nil
	}

	if accountID, err := uuid.Parse(current.ID); err == nil {
		if err := p.store.RevokeTokens(ctx, accountID); err != nil {
			return fmt.Errorf("sign out: %w", err)
		}
	}

	p.setSession(nil)
	return nil
}

// Revoke invalidates every active token for the account, independent of
// which session is current. Used when an authenticated HTTP caller logs
// out.
func (p *Provider) Revoke(ctx context.Context, accountID uuid.UUID) error {
	return p.store.RevokeTokens(ctx, accountID)
}

func (p *Provider) OnSessionChange(fn func(*session.Identity)) func() {
	p.mu.Lock()
	defer p.mu.Unlock()

	id := p.nextSub
	p.nextSub++
	p.subscribers[id] = fn
	fn(p.current)

	return func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		delete(p.subscribers, id)
	}
}

func (p *Provider) setSession(identity *session.Identity) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.current = identity
	for _, fn := range p.subscribers {
		fn(identity)
	}
}

// allow throttles sign-in attempts per email: burst of 5, refilling one
// attempt every 12 seconds.
func (p *Provider) allow(email string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	lim, ok := p.limiters[email]
	if !ok {
		lim = rate.NewLimiter(rate.Every(12*time.Second), 5)
		p.limiters[email] = lim
	}
	return lim.Allow()
}
