package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"yournews/internal/models/db_models"
)

// ProfileRepository reads the role-specific profile rows. Profile creation
// happens only inside the role-decision transaction, so there is no Insert
// here.
type ProfileRepository interface {
	FindJournalistByUserID(ctx context.Context, userID uuid.UUID) (*db_models.Journalist, error)
	FindEditorByUserID(ctx context.Context, userID uuid.UUID) (*db_models.Editor, error)
	FindPublisherByUserID(ctx context.Context, userID uuid.UUID) (*db_models.Publisher, error)

	FindJournalistByID(ctx context.Context, id uuid.UUID) (*db_models.Journalist, error)
	FindPublisherByID(ctx context.Context, id uuid.UUID) (*db_models.Publisher, error)

	ListPublishers(ctx context.Context) ([]db_models.Publisher, error)
	ListJournalists(ctx context.Context) ([]db_models.Journalist, error)
	ListEditorsByPublisher(ctx context.Context, publisherID uuid.UUID) ([]db_models.Editor, error)
	ListJournalistsByPublisher(ctx context.Context, publisherID uuid.UUID) ([]db_models.Journalist, error)
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (p *profileRepository) FindJournalistByUserID(ctx context.Context, userID uuid.UUID) (*db_models.Journalist, error) {
	var journalist db_models.Journalist
	err := p.db.WithContext(ctx).
		Preload("User").Preload("Publisher").
		First(&journalist, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &journalist, nil
}

func (p *profileRepository) FindEditorByUserID(ctx context.Context, userID uuid.UUID) (*db_models.Editor, error) {
	var editor db_models.Editor
	err := p.db.WithContext(ctx).
		Preload("User").Preload("Publisher").
		First(&editor, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &editor, nil
}

func (p *profileRepository) FindPublisherByUserID(ctx context.Context, userID uuid.UUID) (*db_models.Publisher, error) {
	var publisher db_models.Publisher
	err := p.db.WithContext(ctx).First(&publisher, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &publisher, nil
}

func (p *profileRepository) FindJournalistByID(ctx context.Context, id uuid.UUID) (*db_models.Journalist, error) {
	var journalist db_models.Journalist
	err := p.db.WithContext(ctx).
		Preload("User").Preload("Publisher").
		First(&journalist, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &journalist, nil
}

func (p *profileRepository) FindPublisherByID(ctx context.Context, id uuid.UUID) (*db_models.Publisher, error) {
	var publisher db_models.Publisher
	err := p.db.WithContext(ctx).First(&publisher, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &publisher, nil
}

func (p *profileRepository) ListPublishers(ctx context.Context) ([]db_models.Publisher, error) {
	var publishers []db_models.Publisher
	err := p.db.WithContext(ctx).Order("name ASC").Find(&publishers).Error
	return publishers, err
}

func (p *profileRepository) ListJournalists(ctx context.Context) ([]db_models.Journalist, error) {
	var journalists []db_models.Journalist
	err := p.db.WithContext(ctx).
		Preload("User").Preload("Publisher").
		Find(&journalists).Error
	return journalists, err
}

func (p *profileRepository) ListEditorsByPublisher(ctx context.Context, publisherID uuid.UUID) ([]db_models.Editor, error) {
	var editors []db_models.Editor
	err := p.db.WithContext(ctx).
		Preload("User").
		Where("publisher_id = ?", publisherID).
		Find(&editors).Error
	return editors, err
}

func (p *profileRepository) ListJournalistsByPublisher(ctx context.Context, publisherID uuid.UUID) ([]db_models.Journalist, error) {
	var journalists []db_models.Journalist
	err := p.db.WithContext(ctx).
		Preload("User").
		Where("publisher_id = ?", publisherID).
		Find(&journalists).Error
	return journalists, err
}
