package model

import (
	"time"

	"github.com/google/uuid"
)

// AccountModel mirrors the 'accounts' table. IDs are UUIDv7 assigned by the repository.
// Session and verification columns are NULL when no token is outstanding.
type AccountModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username        string    `gorm:"type:varchar(64);uniqueIndex:idx_accounts_username;not null"`
	Email           string    `gorm:"type:varchar(255);uniqueIndex:idx_accounts_email;not null"`
	PasswordHash    string    `gorm:"type:varchar(255);not null"`
	IsEmailVerified bool      `gorm:"not null;default:false"`

	EmailVerificationTokenHash   *string    `gorm:"type:char(64);index:idx_accounts_verification_hash"`
	EmailVerificationTokenExpiry *time.Time `gorm:"type:timestamptz"`

	RefreshTokenHash *string    `gorm:"type:char(64)"`
	SessionIssuedAt  *time.Time `gorm:"type:timestamptz"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}
