package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"yournews/internal/models/db_models"
	"yournews/pkg/utils"
)

type ApplicationRepository interface {
	// Insert creates the application, checking the one-pending-per-user rule
	// inside the same transaction as the insert.
	Insert(ctx context.Context, application *db_models.RoleApplication) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.RoleApplication, error)
	ListAll(ctx context.Context) ([]db_models.RoleApplication, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.RoleApplication, error)
}

type applicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

func (a *applicationRepository) Insert(ctx context.Context, application *db_models.RoleApplication) error {
	return a.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var pending int64
		err := tx.Model(&db_models.RoleApplication{}).
			Where("user_id = ? AND status = ?", application.UserID, db_models.ApplicationPending).
			Count(&pending).Error
		if err != nil {
			return err
		}
		if pending > 0 {
			return utils.ErrPendingApplication
		}
		return tx.Create(application).Error
	})
}

func (a *applicationRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.RoleApplication, error) {
	var application db_models.RoleApplication
	err := a.db.WithContext(ctx).
		Preload("User").
		First(&application, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &application, nil
}

func (a *applicationRepository) ListAll(ctx context.Context) ([]db_models.RoleApplication, error) {
	var applications []db_models.RoleApplication
	err := a.db.WithContext(ctx).
		Preload("User").
		Order("created_at DESC").
		Find(&applications).Error
	return applications, err
}

func (a *applicationRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.RoleApplication, error) {
	var applications []db_models.RoleApplication
	err := a.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&applications).Error
	return applications, err
}
