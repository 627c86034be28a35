package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"yournews/internal/models/db_models"
)

type NewsletterRepository interface {
	Insert(ctx context.Context, newsletter *db_models.Newsletter) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Newsletter, error)

	ListAll(ctx context.Context, page, pageSize int) ([]db_models.Newsletter, int64, error)
	ListForReader(ctx context.Context, journalistIDs, publisherIDs []uuid.UUID, page, pageSize int) ([]db_models.Newsletter, int64, error)
	ListByJournalist(ctx context.Context, journalistID uuid.UUID) ([]db_models.Newsletter, error)

	Save(ctx context.Context, newsletter *db_models.Newsletter) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type newsletterRepository struct {
	db *gorm.DB
}

func NewNewsletterRepository(db *gorm.DB) NewsletterRepository {
	return &newsletterRepository{db: db}
}

func (n *newsletterRepository) Insert(ctx context.Context, newsletter *db_models.Newsletter) error {
	return n.db.WithContext(ctx).Create(newsletter).Error
}

func (n *newsletterRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Newsletter, error) {
	var newsletter db_models.Newsletter
	err := n.db.WithContext(ctx).
		Preload("Journalist.User").Preload("Publisher").
		First(&newsletter, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &newsletter, nil
}

func (n *newsletterRepository) ListAll(ctx context.Context, page, pageSize int) ([]db_models.Newsletter, int64, error) {
	filtered := func() *gorm.DB {
		return n.db.WithContext(ctx).Model(&db_models.Newsletter{})
	}

	var count int64
	if err := filtered().Count(&count).Error; err != nil {
		return nil, 0, err
	}

	var newsletters []db_models.Newsletter
	err := filtered().
		Preload("Journalist.User").Preload("Publisher").
		Order("created_at DESC").
		Offset((page - 1) * pageSize).Limit(pageSize).
		Find(&newsletters).Error
	return newsletters, count, err
}

func (n *newsletterRepository) ListForReader(ctx context.Context, journalistIDs, publisherIDs []uuid.UUID, page, pageSize int) ([]db_models.Newsletter, int64, error) {
	if len(journalistIDs) == 0 && len(publisherIDs) == 0 {
		return []db_models.Newsletter{}, 0, nil
	}

	filtered := func() *gorm.DB {
		return n.db.WithContext(ctx).
			Model(&db_models.Newsletter{}).
			Where("journalist_id IN ? OR publisher_id IN ?", idsOrNone(journalistIDs), idsOrNone(publisherIDs))
	}

	var count int64
	if err := filtered().Count(&count).Error; err != nil {
		return nil, 0, err
	}

	var newsletters []db_models.Newsletter
	err := filtered().
		Preload("Journalist.User").Preload("Publisher").
		Order("created_at DESC").
		Offset((page - 1) * pageSize).Limit(pageSize).
		Find(&newsletters).Error
	return newsletters, count, err
}

func (n *newsletterRepository) ListByJournalist(ctx context.Context, journalistID uuid.UUID) ([]db_models.Newsletter, error) {
	var newsletters []db_models.Newsletter
	err := n.db.WithContext(ctx).
		Preload("Journalist.User").Preload("Publisher").
		Where("journalist_id = ?", journalistID).
		Order("created_at DESC").
		Find(&newsletters).Error
	return newsletters, err
}

func (n *newsletterRepository) Save(ctx context.Context, newsletter *db_models.Newsletter) error {
	return n.db.WithContext(ctx).Save(newsletter).Error
}

func (n *newsletterRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return n.db.WithContext(ctx).Delete(&db_models.Newsletter{}, "id = ?", id).Error
}
