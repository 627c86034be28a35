package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"yournews/internal/models/db_models"
)

type ArticleRepository interface {
	Insert(ctx context.Context, article *db_models.Article) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Article, error)

	// ListApproved returns the page of approved articles everyone but
	// readers sees, newest first, plus the total count.
	ListApproved(ctx context.Context, page, pageSize int) ([]db_models.Article, int64, error)

	// ListApprovedForReader restricts the approved set to the reader's
	// subscribed journalists/publishers. An article matching through both
	// subscriptions appears once.
	ListApprovedForReader(ctx context.Context, journalistIDs, publisherIDs []uuid.UUID, page, pageSize int) ([]db_models.Article, int64, error)

	ListApprovedByJournalist(ctx context.Context, journalistID uuid.UUID) ([]db_models.Article, error)
	ListApprovedByPublisher(ctx context.Context, publisherID uuid.UUID) ([]db_models.Article, error)

	Save(ctx context.Context, article *db_models.Article) error
	Delete(ctx context.Context, id uuid.UUID) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status db_models.ArticleStatus) error
}

type articleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

func (a *articleRepository) Insert(ctx context.Context, article *db_models.Article) error {
	return a.db.WithContext(ctx).Create(article).Error
}

func (a *articleRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Article, error) {
	var article db_models.Article
	err := a.db.WithContext(ctx).
		Preload("Journalist.User").Preload("Publisher").
		First(&article, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &article, nil
}

func (a *articleRepository) ListApproved(ctx context.Context, page, pageSize int) ([]db_models.Article, int64, error) {
	filtered := func() *gorm.DB {
		return a.db.WithContext(ctx).
			Model(&db_models.Article{}).
			Where("status = ?", db_models.ArticleApproved)
	}

	var count int64
	if err := filtered().Count(&count).Error; err != nil {
		return nil, 0, err
	}

	var articles []db_models.Article
	err := filtered().
		Preload("Journalist.User").Preload("Publisher").
		Order("created_at DESC").
		Offset((page - 1) * pageSize).Limit(pageSize).
		Find(&articles).Error
	return articles, count, err
}

func (a *articleRepository) ListApprovedForReader(ctx context.Context, journalistIDs, publisherIDs []uuid.UUID, page, pageSize int) ([]db_models.Article, int64, error) {
	if len(journalistIDs) == 0 && len(publisherIDs) == 0 {
		return []db_models.Article{}, 0, nil
	}

	filtered := func() *gorm.DB {
		return a.db.WithContext(ctx).
			Model(&db_models.Article{}).
			Where("status = ?", db_models.ArticleApproved).
			Where("journalist_id IN ? OR publisher_id IN ?", idsOrNone(journalistIDs), idsOrNone(publisherIDs))
	}

	var count int64
	if err := filtered().Count(&count).Error; err != nil {
		return nil, 0, err
	}

	var articles []db_models.Article
	err := filtered().
		Preload("Journalist.User").Preload("Publisher").
		Order("created_at DESC").
		Offset((page - 1) * pageSize).Limit(pageSize).
		Find(&articles).Error
	return articles, count, err
}

func (a *articleRepository) ListApprovedByJournalist(ctx context.Context, journalistID uuid.UUID) ([]db_models.Article, error) {
	var articles []db_models.Article
	err := a.db.WithContext(ctx).
		Preload("Journalist.User").Preload("Publisher").
		Where("journalist_id = ? AND status = ?", journalistID, db_models.ArticleApproved).
		Order("created_at DESC").
		Find(&articles).Error
	return articles, err
}

func (a *articleRepository) ListApprovedByPublisher(ctx context.Context, publisherID uuid.UUID) ([]db_models.Article, error) {
	var articles []db_models.Article
	err := a.db.WithContext(ctx).
		Preload("Journalist.User").Preload("Publisher").
		Where("publisher_id = ? AND status = ?", publisherID, db_models.ArticleApproved).
		Order("created_at DESC").
		Find(&articles).Error
	return articles, err
}

func (a *articleRepository) Save(ctx context.Context, article *db_models.Article) error {
	return a.db.WithContext(ctx).Save(article).Error
}

func (a *articleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return a.db.WithContext(ctx).Delete(&db_models.Article{}, "id = ?", id).Error
}

func (a *articleRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status db_models.ArticleStatus) error {
	return a.db.WithContext(ctx).
		Model(&db_models.Article{}).
		Where("id = ?", id).
		Update("status", status).Error
}

// idsOrNone keeps an empty id list from matching anything: an empty IN-list
// would otherwise be rendered as IN (NULL) by some dialects and as a syntax
// error by others.
func idsOrNone(ids []uuid.UUID) []uuid.UUID {
	if len(ids) == 0 {
		return []uuid.UUID{uuid.Nil}
	}
	return ids
}
