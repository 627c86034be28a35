package repositories

import (
	"context"

	"gorm.io/gorm"

	"yournews/internal/models/db_models"
)

type NotificationRepository interface {
	Insert(ctx context.Context, entry *db_models.NotificationLog) error
	ListByRecipient(ctx context.Context, email string) ([]db_models.NotificationLog, error)
}

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (n *notificationRepository) Insert(ctx context.Context, entry *db_models.NotificationLog) error {
	return n.db.WithContext(ctx).Create(entry).Error
}

func (n *notificationRepository) ListByRecipient(ctx context.Context, email string) ([]db_models.NotificationLog, error) {
	var entries []db_models.NotificationLog
	err := n.db.WithContext(ctx).
		Where("recipient = ?", email).
		Order("created_at DESC").
		Find(&entries).Error
	return entries, err
}
