package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"yournews/internal/models/db_models"
)

type ResetTokenRepository interface {
	Insert(ctx context.Context, token *db_models.ResetToken) error
	FindUnusedByHash(ctx context.Context, tokenHash string) (*db_models.ResetToken, error)

	// ConsumeAndSetPassword marks the token used and writes the new password
	// hash in one transaction, keeping the token single-use.
	ConsumeAndSetPassword(ctx context.Context, tokenID, userID uuid.UUID, passwordHash string) error
}

type resetTokenRepository struct {
	db *gorm.DB
}

func NewResetTokenRepository(db *gorm.DB) ResetTokenRepository {
	return &resetTokenRepository{db: db}
}

func (r *resetTokenRepository) Insert(ctx context.Context, token *db_models.ResetToken) error {
	return r.db.WithContext(ctx).Create(token).Error
}

func (r *resetTokenRepository) FindUnusedByHash(ctx context.Context, tokenHash string) (*db_models.ResetToken, error) {
	var token db_models.ResetToken
	err := r.db.WithContext(ctx).
		First(&token, "token_hash = ? AND used = ?", tokenHash, false).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &token, nil
}

func (r *resetTokenRepository) ConsumeAndSetPassword(ctx context.Context, tokenID, userID uuid.UUID, passwordHash string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&db_models.ResetToken{}).
			Where("id = ? AND used = ?", tokenID, false).
			Update("used", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Model(&db_models.User{}).
			Where("id = ?", userID).
			Update("password_hash", passwordHash).Error
	})
}
