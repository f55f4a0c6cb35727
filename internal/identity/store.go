package identity

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/ridebite/backend/internal/models"
	"gorm.io/gorm"
)

var ErrAccountNotFound = errors.New("account not found")

// Store is the persistence surface the credential provider needs. Kept as
// an interface so provider tests run against an in-memory implementation.
type Store interface {
	AccountByEmail(ctx context.Context, email string) (*models.Account, error)
	CreateAccount(ctx context.Context, account *models.Account) error
	SaveToken(ctx context.Context, token *models.SessionToken) error
	TokenActive(ctx context.Context, jti uuid.UUID) (bool, error)
	RevokeTokens(ctx context.Context, accountID uuid.UUID) error
}

type gormStore struct {
	db *gorm.DB
}

// NewStore returns the Postgres-backed Store.
func NewStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) AccountByEmail(ctx context.Context, email string) (*models.Account, error) {
	var account models.Account
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&account).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrAccountNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("account lookup: %w", err)
	}
	return &account, nil
}

func (s *gormStore) CreateAccount(ctx context.Context, account *models.Account) error {
	if err := s.db.WithContext(ctx).Create(account).Error; err != nil {
		return fmt.Errorf("create account: %w", err)
	}
	return nil
}

func (s *gormStore) SaveToken(ctx context.Context, token *models.SessionToken) error {
	if err := s.db.WithContext(ctx).Create(token).Error; err != nil {
		return fmt.Errorf("save session token: %w", err)
	}
	return nil
}

func (s *gormStore) TokenActive(ctx context.Context, jti uuid.UUID) (bool, error) {
	var token models.SessionToken
	err := s.db.WithContext(ctx).First(&token, "id = ?", jti).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("token lookup: %w", err)
	}
	return !token.Revoked, nil
}

func (s *gormStore) RevokeTokens(ctx context.Context, accountID uuid.UUID) error {
	err := s.db.WithContext(ctx).Model(&models.SessionToken{}).
		Where("account_id = ? AND revoked = false", accountID).
		Update("revoked", true).Error
	if err != nil {
		return fmt.Errorf("revoke tokens: %w", err)
	}
	return nil
}
