package models

import (
	"time"

	"gorm.io/datatypes"
)

// UserProfile is the "users" collection document: one row per identity
// provider identifier. Role is written once at creation and only read
// afterwards. Extra keeps forward-compatible profile fields as JSONB.
type UserProfile struct {
	ID        string         `gorm:"size:36;primaryKey" json:"id"`
	Name      string         `gorm:"size:255" json:"name"`
	Email     string         `gorm:"size:255;not null;index" json:"email"`
	Role      string         `gorm:"size:20;not null;default:'user'" json:"role"`
	CreatedAt string         `gorm:"size:40;not null" json:"created_at"`
	Extra     datatypes.JSON `gorm:"type:jsonb;default:'{}'" json:"extra,omitempty"`
	UpdatedAt time.Time      `json:"-"`
}
