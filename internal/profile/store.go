// Package profile provides the "users" collection backing the session
// layer: one document per identity-provider identifier.
package profile

import (
	"context"
	"errors"
	"fmt"

	"github.com/ridebite/backend/internal/models"
	"github.com/ridebite/backend/internal/session"
	"gorm.io/gorm"
)

// GormStore is the Postgres-backed session.ProfileStore.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Get(ctx context.Context, id string) (*session.User, bool, error) {
	var doc models.UserProfile
	err := s.db.WithContext(ctx).First(&doc, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("profile get: %w", err)
	}
	return fromModel(&doc), true, nil
}

func (s *GormStore) Put(ctx context.Context, user *session.User) error {
	doc := models.UserProfile{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      string(user.Role),
		CreatedAt: user.CreatedAt,
	}
	if err := s.db.WithContext(ctx).Create(&doc).Error; err != nil {
		return fmt.Errorf("profile put: %w", err)
	}
	return nil
}

func (s *GormStore) Empty(ctx context.Context) (bool, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.UserProfile{}).Count(&count).Error; err != nil {
		return false, fmt.Errorf("profile count: %w", err)
	}
	return count == 0, nil
}

func fromModel(doc *models.UserProfile) *session.User {
	return &session.User{
		ID:        doc.ID,
		Name:      doc.Name,
		Email:     doc.Email,
		Role:      session.Role(doc.Role),
		CreatedAt: doc.CreatedAt,
	}
}
