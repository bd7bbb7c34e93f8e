// file: internals/features/users/auth/model/token_blacklist_model.go
package model

import (
	"time"

	"gorm.io/gorm"
)

// TokenBlacklistModel: access token yang sudah di-logout.
// Baris dibersihkan scheduler setelah lewat expired_at.
type TokenBlacklistModel struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Token     string         `gorm:"type:text;not null;uniqueIndex" json:"token"`
	ExpiredAt time.Time      `gorm:"not null" json:"expired_at"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (TokenBlacklistModel) TableName() string {
	return "token_blacklist"
}
