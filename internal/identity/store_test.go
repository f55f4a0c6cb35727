package identity

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/ridebite/backend/internal/models"
)

// memStore is the in-memory Store used by provider and token tests.
type memStore struct {
	mu       sync.Mutex
	accounts map[string]*models.Account
	tokens   map[uuid.UUID]*models.SessionToken
}

func newMemStore() *memStore {
	return &memStore{
		accounts: make(map[string]*models.Account),
		tokens:   make(map[uuid.UUID]*models.SessionToken),
	}
}

func (s *memStore) AccountByEmail(_ context.Context, email string) (*models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	account, ok := s.accounts[email]
	if !ok {
		return nil, ErrAccountNotFound
	}
	cp := *account
	return &cp, nil
}

func (s *memStore) CreateAccount(_ context.Context, account *models.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *account
	s.accounts[account.Email] = &cp
	return nil
}

func (s *memStore) SaveToken(_ context.Context, token *models.SessionToken) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *token
	s.tokens[token.ID] = &cp
	return nil
}

func (s *memStore) TokenActive(_ context.Context, jti uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	token, ok := s.tokens[jti]
	if !ok {
		return false, nil
	}
	return !token.Revoked, nil
}

func (s *memStore) RevokeTokens(_ context.Context, accountID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, token := range s.tokens {
		if token.AccountID == accountID {
			token.Revoked = true
		}
	}
	return nil
}
