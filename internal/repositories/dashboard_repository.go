package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"yournews/internal/models/db_models"
)

type DashboardRepository interface {
	ArticlesByPublisher(ctx context.Context, publisherID uuid.UUID) ([]db_models.Article, error)
	ArticlesByJournalist(ctx context.Context, journalistID uuid.UUID) ([]db_models.Article, error)

	ArticleStatusCountsByPublisher(ctx context.Context, publisherID uuid.UUID) (map[db_models.ArticleStatus]int64, error)

	// JournalistContentCounts aggregates per-journalist article and
	// newsletter totals for a publisher's roster.
	JournalistContentCounts(ctx context.Context, publisherID uuid.UUID) ([]JournalistCountsRow, error)

	CountNewslettersByPublisher(ctx context.Context, publisherID uuid.UUID) (int64, error)
}

type JournalistCountsRow struct {
	JournalistID     string `gorm:"column:journalist_id"`
	Articles         int64  `gorm:"column:articles"`
	PendingArticles  int64  `gorm:"column:pending_articles"`
	ApprovedArticles int64  `gorm:"column:approved_articles"`
	RejectedArticles int64  `gorm:"column:rejected_articles"`
}

type dashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{db: db}
}

func (r *dashboardRepository) ArticlesByPublisher(ctx context.Context, publisherID uuid.UUID) ([]db_models.Article, error) {
	var articles []db_models.Article
	err := r.db.WithContext(ctx).
		Preload("Journalist.User").Preload("Publisher").
		Where("publisher_id = ?", publisherID).
		Order("status ASC, created_at DESC").
		Find(&articles).Error
	return articles, err
}

func (r *dashboardRepository) ArticlesByJournalist(ctx context.Context, journalistID uuid.UUID) ([]db_models.Article, error) {
	var articles []db_models.Article
	err := r.db.WithContext(ctx).
		Preload("Journalist.User").Preload("Publisher").
		Where("journalist_id = ?", journalistID).
		Order("status ASC, created_at DESC").
		Find(&articles).Error
	return articles, err
}

func (r *dashboardRepository) ArticleStatusCountsByPublisher(ctx context.Context, publisherID uuid.UUID) (map[db_models.ArticleStatus]int64, error) {
	type row struct {
		Status db_models.ArticleStatus `gorm:"column:status"`
		Count  int64                   `gorm:"column:count"`
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Model(&db_models.Article{}).
		Select("status, COUNT(*) AS count").
		Where("publisher_id = ?", publisherID).
		Group("status").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[db_models.ArticleStatus]int64, len(rows))
	for _, r := range rows {
		counts[r.Status] = r.Count
	}
	return counts, nil
}

func (r *dashboardRepository) JournalistContentCounts(ctx context.Context, publisherID uuid.UUID) ([]JournalistCountsRow, error) {
	var rows []JournalistCountsRow
	err := r.db.WithContext(ctx).
		Table("articles a").
		Select(`
			a.journalist_id,
			COUNT(*) AS articles,
			COUNT(*) FILTER (WHERE a.status = 'pending') AS pending_articles,
			COUNT(*) FILTER (WHERE a.status = 'approved') AS approved_articles,
			COUNT(*) FILTER (WHERE a.status = 'rejected') AS rejected_articles`).
		Where("a.publisher_id = ?", publisherID).
		Where("a.deleted_at IS NULL").
		Group("a.journalist_id").
		Find(&rows).Error
	return rows, err
}

func (r *dashboardRepository) CountNewslettersByPublisher(ctx context.Context, publisherID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Newsletter{}).
		Where("publisher_id = ?", publisherID).
		Count(&count).Error
	return count, err
}
