package session

import (
	"context"
	"errors"
	"sync"
)

// fakeStore is an in-memory ProfileStore with switchable failure modes.
type fakeStore struct {
	mu        sync.Mutex
	docs      map[string]*User
	puts      int
	failGet   bool
	failEmpty bool
	failPut   bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{docs: make(map[string]*User)}
}

func (s *fakeStore) Get(_ context.Context, id string) (*User, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failGet {
		return nil, false, errors.New("store unreachable")
	}
	u, ok := s.docs[id]
	if !ok {
		return nil, false, nil
	}
	cp := *u
	return &cp, true, nil
}

func (s *fakeStore) Put(_ context.Context, user *User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failPut {
		return errors.New("store unreachable")
	}
	cp := *user
	s.docs[user.ID] = &cp
	s.puts++
	return nil
}

func (s *fakeStore) Empty(_ context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failEmpty {
		return false, errors.New("store unreachable")
	}
	return len(s.docs) == 0, nil
}

// fakeProvider is a scriptable IdentityProvider. Sign-in/up return the
// configured identity or error; notifications are pushed by tests through
// emit and delivered serially, as the real provider guarantees.
type fakeProvider struct {
	mu          sync.Mutex
	identity    Identity
	signInErr   error
	signUpErr   error
	signOutErr  error
	subscribers []func(*Identity)
	unsubs      int
}

func (p *fakeProvider) SignIn(_ context.Context, _, _ string) (Identity, error) {
	if p.signInErr != nil {
		return Identity{}, p.signInErr
	}
	return p.identity, nil
}

func (p *fakeProvider) SignUp(_ context.Context, _, _ string) (Identity, error) {
	if p.signUpErr != nil {
		return Identity{}, p.signUpErr
	}
	return p.identity, nil
}

func (p *fakeProvider) SignOut(_ context.Context) error {
	return p.signOutErr
}

func (p *fakeProvider) OnSessionChange(fn func(*Identity)) func() {
	p.mu.Lock()
	p.subscribers = append(p.subscribers, fn)
	p.mu.Unlock()
	return func() {
		p.mu.Lock()
		p.unsubs++
		p.mu.Unlock()
	}
}

func (p *fakeProvider) emit(identity *Identity) {
	p.mu.Lock()
	subs := append([]func(*Identity){}, p.subscribers...)
	p.mu.Unlock()
	for _, fn := range subs {
		fn(identity)
	}
}
