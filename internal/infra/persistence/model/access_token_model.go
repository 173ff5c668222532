package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AccessTokenModel mirrors the 'personal_access_tokens' table.
type AccessTokenModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;index:idx_personal_access_tokens_user_id"`
	Name      string     `gorm:"type:varchar(255);not null"`
	TokenHash string     `gorm:"type:varchar(64);not null;uniqueIndex:idx_personal_access_tokens_token_hash"`
	ExpiresAt *time.Time `gorm:"index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AccessTokenModel) TableName() string {
	return "personal_access_tokens"
}

func (m *AccessTokenModel) BeforeCreate(_ *gorm.DB) error {
	return assignID(&m.ID)
}
