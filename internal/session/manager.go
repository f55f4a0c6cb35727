package session

import (
	"context"
	"sync"
)

// Manager is the single source of truth for "who is logged in". It bridges
// the identity provider and the profile store: provider notifications are
// reconciled with the store one at a time, in arrival order, on a single
// goroutine, so profile resolutions never overlap.
//
// Initializing starts true and flips to false exactly once, after the first
// notification has been fully processed, whatever its content.
type Manager struct {
	provider IdentityProvider
	resolver *Resolver

	mu           sync.RWMutex
	current      *User
	initializing bool

	changes     chan *Identity
	done        chan struct{}
	unsubscribe func()
	stopOnce    sync.Once
}

func NewManager(provider IdentityProvider, resolver *Resolver) *Manager {
	return &Manager{
		provider:     provider,
		resolver:     resolver,
		initializing: true,
		changes:      make(chan *Identity, 16),
		done:         make(chan struct{}),
	}
}

// Start subscribes to the provider's session-change stream and begins
// processing notifications. The subscription stays active until Stop.
func (m *Manager) Start() {
	m.unsubscribe = m.provider.OnSessionChange(func(identity *Identity) {
		select {
		case m.changes <- identity:
		case <-m.done:
		}
	})
	go m.run()
}

// Stop releases the subscription. Idempotent.
func (m *Manager) Stop() {
	m.stopOnce.Do(func() {
		if m.unsubscribe != nil {
			m.unsubscribe()
		}
		close(m.done)
	})
}

func (m *Manager) run() {
	for {
		select {
		case identity := <-m.changes:
			m.reconcile(identity)
		case <-m.done:
			return
		}
	}
}

func (m *Manager) reconcile(identity *Identity) {
	var user *User
	if identity != nil {
		user = m.resolver.Resolve(context.Background(), *identity)
	}

	m.mu.Lock()
	m.current = user
	m.initializing = false
	m.mu.Unlock()
}

// CurrentUser returns the resolved session user, or nil when no one is
// signed in.
func (m *Manager) CurrentUser() *User {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Initializing reports whether the first session-resolution pass is still
// pending.
func (m *Manager) Initializing() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.initializing
}

// Login verifies credentials with the provider, resolves the profile and
// makes it current. Failures surface as AuthError only.
func (m *Manager) Login(ctx context.Context, email, password string) (*User, error) {
	identity, err := m.provider.SignIn(ctx, email, password)
	if err != nil {
		return nil, Translate(err, MsgLoginFailed)
	}

	user := m.resolver.Resolve(ctx, identity)
	m.setCurrent(user)
	return user, nil
}

// Signup registers a new account with the provider and creates its profile
// document, applying the first-registrant rule.
func (m *Manager) Signup(ctx context.Context, name, email, password string) (*User, error) {
	identity, err := m.provider.SignUp(ctx, email, password)
	if err != nil {
		return nil, Translate(err, MsgSignupFailed)
	}

	identity.Name = name
	user := m.resolver.Resolve(ctx, identity)
	m.setCurrent(user)
	return user, nil
}

// Logout terminates the provider session and clears the current user.
func (m *Manager) Logout(ctx context.Context) error {
	if err := m.provider.SignOut(ctx); err != nil {
		return Translate(err, MsgLogoutFailed)
	}
	m.setCurrent(nil)
	return nil
}

func (m *Manager) setCurrent(user *User) {
	m.mu.Lock()
	m.current = user
	m.mu.Unlock()
}
