package db_models

import "github.com/google/uuid"

// ResetToken stores only the sha1 hex of the plaintext token. The plaintext
// travels once, in the reset email. Single-use, expires 5 minutes after issue;
// expiry is checked at use-time.
type ResetToken struct {
	BaseModel
	UserID    uuid.UUID `gorm:"type:uuid;index"`
	TokenHash string    `gorm:"size:255;uniqueIndex"`
	ExpiresAt int64     `gorm:"not null"`
	Used      bool      `gorm:"default:false"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
