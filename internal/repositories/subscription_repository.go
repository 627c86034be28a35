package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"yournews/internal/models/db_models"
)

// SubscribeOutcome tells the caller which branch of the idempotent toggle
// actually ran.
type SubscribeOutcome string

const (
	OutcomeSubscribed        SubscribeOutcome = "subscribed"
	OutcomeResubscribed      SubscribeOutcome = "resubscribed"
	OutcomeAlreadySubscribed SubscribeOutcome = "already_subscribed"
	OutcomeUnsubscribed      SubscribeOutcome = "unsubscribed"
	OutcomeNotSubscribed     SubscribeOutcome = "not_subscribed"
)

// SubscriberRow is one deduplication candidate for fan-out.
type SubscriberRow struct {
	Email    string `gorm:"column:email"`
	Username string `gorm:"column:username"`
}

type SubscriptionRepository interface {
	ActiveJournalistIDs(ctx context.Context, readerID uuid.UUID) ([]uuid.UUID, error)
	ActivePublisherIDs(ctx context.Context, readerID uuid.UUID) ([]uuid.UUID, error)

	HasActiveJournalistSubscription(ctx context.Context, readerID, journalistID uuid.UUID) (bool, error)
	HasActivePublisherSubscription(ctx context.Context, readerID, publisherID uuid.UUID) (bool, error)

	// Upsert* implement the get-or-create/reactivate/no-op toggle inside one
	// transaction. The unique pair index resolves racing inserts.
	UpsertJournalistSubscription(ctx context.Context, readerID, journalistID uuid.UUID) (SubscribeOutcome, error)
	UpsertPublisherSubscription(ctx context.Context, readerID, publisherID uuid.UUID) (SubscribeOutcome, error)

	DeactivateJournalistSubscription(ctx context.Context, readerID, journalistID uuid.UUID) (SubscribeOutcome, error)
	DeactivatePublisherSubscription(ctx context.Context, readerID, publisherID uuid.UUID) (SubscribeOutcome, error)

	ListActiveByReader(ctx context.Context, readerID uuid.UUID) ([]db_models.JournalistSubscription, []db_models.PublisherSubscription, error)

	// ListActiveSubscribers returns the recipients for a fan-out: every
	// reader with an active subscription to the journalist or the publisher.
	// Deduplication by email happens in the notifier.
	ListActiveSubscribers(ctx context.Context, journalistID, publisherID uuid.UUID) ([]SubscriberRow, error)

	CountActiveByJournalist(ctx context.Context, journalistID uuid.UUID) (int64, error)
	CountActiveByPublisher(ctx context.Context, publisherID uuid.UUID) (int64, error)
}

type subscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (s *subscriptionRepository) ActiveJournalistIDs(ctx context.Context, readerID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := s.db.WithContext(ctx).
		Model(&db_models.JournalistSubscription{}).
		Where("reader_id = ? AND is_active = ?", readerID, true).
		Pluck("journalist_id", &ids).Error
	return ids, err
}

func (s *subscriptionRepository) ActivePublisherIDs(ctx context.Context, readerID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := s.db.WithContext(ctx).
		Model(&db_models.PublisherSubscription{}).
		Where("reader_id = ? AND is_active = ?", readerID, true).
		Pluck("publisher_id", &ids).Error
	return ids, err
}

func (s *subscriptionRepository) HasActiveJournalistSubscription(ctx context.Context, readerID, journalistID uuid.UUID) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&db_models.JournalistSubscription{}).
		Where("reader_id = ? AND journalist_id = ? AND is_active = ?", readerID, journalistID, true).
		Count(&count).Error
	return count > 0, err
}

func (s *subscriptionRepository) HasActivePublisherSubscription(ctx context.Context, readerID, publisherID uuid.UUID) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&db_models.PublisherSubscription{}).
		Where("reader_id = ? AND publisher_id = ? AND is_active = ?", readerID, publisherID, true).
		Count(&count).Error
	return count > 0, err
}

func (s *subscriptionRepository) UpsertJournalistSubscription(ctx context.Context, readerID, journalistID uuid.UUID) (SubscribeOutcome, error) {
	var outcome SubscribeOutcome
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var sub db_models.JournalistSubscription
		err := tx.Where("reader_id = ? AND journalist_id = ?", readerID, journalistID).First(&sub).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			sub = db_models.JournalistSubscription{
				ReaderID:     readerID,
				JournalistID: journalistID,
				IsActive:     true,
			}
			if err := tx.Create(&sub).Error; err != nil {
				return err
			}
			outcome = OutcomeSubscribed
			return nil
		case err != nil:
			return err
		case !sub.IsActive:
			if err := tx.Model(&sub).Update("is_active", true).Error; err != nil {
				return err
			}
			outcome = OutcomeResubscribed
			return nil
		default:
			outcome = OutcomeAlreadySubscribed
			return nil
		}
	})
	return outcome, err
}

func (s *subscriptionRepository) UpsertPublisherSubscription(ctx context.Context, readerID, publisherID uuid.UUID) (SubscribeOutcome, error) {
	var outcome SubscribeOutcome
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var sub db_models.PublisherSubscription
		err := tx.Where("reader_id = ? AND publisher_id = ?", readerID, publisherID).First(&sub).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			sub = db_models.PublisherSubscription{
				ReaderID:    readerID,
				PublisherID: publisherID,
				IsActive:    true,
			}
			if err := tx.Create(&sub).Error; err != nil {
				return err
			}
			outcome = OutcomeSubscribed
			return nil
		case err != nil:
			return err
		case !sub.IsActive:
			if err := tx.Model(&sub).Update("is_active", true).Error; err != nil {
				return err
			}
			outcome = OutcomeResubscribed
			return nil
		default:
			outcome = OutcomeAlreadySubscribed
			return nil
		}
	})
	return outcome, err
}

func (s *subscriptionRepository) DeactivateJournalistSubscription(ctx context.Context, readerID, journalistID uuid.UUID) (SubscribeOutcome, error) {
	res := s.db.WithContext(ctx).
		Model(&db_models.JournalistSubscription{}).
		Where("reader_id = ? AND journalist_id = ? AND is_active = ?", readerID, journalistID, true).
		Update("is_active", false)
	if res.Error != nil {
		return "", res.Error
	}
	if res.RowsAffected == 0 {
		return OutcomeNotSubscribed, nil
	}
	return OutcomeUnsubscribed, nil
}

func (s *subscriptionRepository) DeactivatePublisherSubscription(ctx context.Context, readerID, publisherID uuid.UUID) (SubscribeOutcome, error) {
	res := s.db.WithContext(ctx).
		Model(&db_models.PublisherSubscription{}).
		Where("reader_id = ? AND publisher_id = ? AND is_active = ?", readerID, publisherID, true).
		Update("is_active", false)
	if res.Error != nil {
		return "", res.Error
	}
	if res.RowsAffected == 0 {
		return OutcomeNotSubscribed, nil
	}
	return OutcomeUnsubscribed, nil
}

func (s *subscriptionRepository) ListActiveByReader(ctx context.Context, readerID uuid.UUID) ([]db_models.JournalistSubscription, []db_models.PublisherSubscription, error) {
	var journalistSubs []db_models.JournalistSubscription
	err := s.db.WithContext(ctx).
		Preload("Journalist.User").Preload("Journalist.Publisher").
		Where("reader_id = ? AND is_active = ?", readerID, true).
		Find(&journalistSubs).Error
	if err != nil {
		return nil, nil, err
	}

	var publisherSubs []db_models.PublisherSubscription
	err = s.db.WithContext(ctx).
		Preload("Publisher").
		Where("reader_id = ? AND is_active = ?", readerID, true).
		Find(&publisherSubs).Error
	if err != nil {
		return nil, nil, err
	}

	return journalistSubs, publisherSubs, nil
}

func (s *subscriptionRepository) ListActiveSubscribers(ctx context.Context, journalistID, publisherID uuid.UUID) ([]SubscriberRow, error) {
	var byJournalist []SubscriberRow
	err := s.db.WithContext(ctx).
		Table("journalist_subscriptions s").
		Select("u.email, u.username").
		Joins("JOIN users u ON u.id = s.reader_id").
		Where("s.journalist_id = ? AND s.is_active = ?", journalistID, true).
		Where("s.deleted_at IS NULL").
		Find(&byJournalist).Error
	if err != nil {
		return nil, err
	}

	var byPublisher []SubscriberRow
	err = s.db.WithContext(ctx).
		Table("publisher_subscriptions s").
		Select("u.email, u.username").
		Joins("JOIN users u ON u.id = s.reader_id").
		Where("s.publisher_id = ? AND s.is_active = ?", publisherID, true).
		Where("s.deleted_at IS NULL").
		Find(&byPublisher).Error
	if err != nil {
		return nil, err
	}

	return append(byJournalist, byPublisher...), nil
}

func (s *subscriptionRepository) CountActiveByJournalist(ctx context.Context, journalistID uuid.UUID) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&db_models.JournalistSubscription{}).
		Where("journalist_id = ? AND is_active = ?", journalistID, true).
		Count(&count).Error
	return count, err
}

func (s *subscriptionRepository) CountActiveByPublisher(ctx context.Context, publisherID uuid.UUID) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&db_models.PublisherSubscription{}).
		Where("publisher_id = ? AND is_active = ?", publisherID, true).
		Count(&count).Error
	return count, err
}
