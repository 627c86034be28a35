package services

import (
	"context"

	"github.com/google/uuid"

	"yournews/internal/models/db_models"
	"yournews/internal/models/response_models"
	"yournews/internal/repositories"
	"yournews/pkg/utils"
)

const overviewArticleLimit = 10

type SubscriptionServiceInterface interface {
	SubscribeJournalist(ctx context.Context, readerID uuid.UUID, role db_models.Role, journalistID uuid.UUID) (repositories.SubscribeOutcome, error)
	UnsubscribeJournalist(ctx context.Context, readerID uuid.UUID, role db_models.Role, journalistID uuid.UUID) (repositories.SubscribeOutcome, error)
	SubscribePublisher(ctx context.Context, readerID uuid.UUID, role db_models.Role, publisherID uuid.UUID) (repositories.SubscribeOutcome, error)
	UnsubscribePublisher(ctx context.Context, readerID uuid.UUID, role db_models.Role, publisherID uuid.UUID) (repositories.SubscribeOutcome, error)
	Overview(ctx context.Context, readerID uuid.UUID, role db_models.Role) (*response_models.SubscriptionOverview, error)
}

type SubscriptionService struct {
	subscriptionRepo repositories.SubscriptionRepository
	profileRepo      repositories.ProfileRepository
	articleRepo      repositories.ArticleRepository
}

func NewSubscriptionService(
	subscriptionRepo repositories.SubscriptionRepository,
	profileRepo repositories.ProfileRepository,
	articleRepo repositories.ArticleRepository,
) SubscriptionServiceInterface {
	return &SubscriptionService{
		subscriptionRepo: subscriptionRepo,
		profileRepo:      profileRepo,
		articleRepo:      articleRepo,
	}
}

func (s *SubscriptionService) SubscribeJournalist(ctx context.Context, readerID uuid.UUID, role db_models.Role, journalistID uuid.UUID) (repositories.SubscribeOutcome, error) {
	if role != db_models.RoleReader {
		return "", utils.ErrReadersOnly
	}

	journalist, err := s.profileRepo.FindJournalistByID(ctx, journalistID)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if journalist == nil {
		return "", utils.ErrNotFound
	}

	outcome, err := s.subscriptionRepo.UpsertJournalistSubscription(ctx, readerID, journalistID)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	return outcome, nil
}

func (s *SubscriptionService) UnsubscribeJournalist(ctx context.Context, readerID uuid.UUID, role db_models.Role, journalistID uuid.UUID) (repositories.SubscribeOutcome, error) {
	if role != db_models.RoleReader {
		return "", utils.ErrReadersOnly
	}

	outcome, err := s.subscriptionRepo.DeactivateJournalistSubscription(ctx, readerID, journalistID)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	return outcome, nil
}

func (s *SubscriptionService) SubscribePublisher(ctx context.Context, readerID uuid.UUID, role db_models.Role, publisherID uuid.UUID) (repositories.SubscribeOutcome, error) {
	if role != db_models.RoleReader {
		return "", utils.ErrReadersOnly
	}

	publisher, err := s.profileRepo.FindPublisherByID(ctx, publisherID)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if publisher == nil {
		return "", utils.ErrNotFound
	}

	outcome, err := s.subscriptionRepo.UpsertPublisherSubscription(ctx, readerID, publisherID)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	return outcome, nil
}

func (s *SubscriptionService) UnsubscribePublisher(ctx context.Context, readerID uuid.UUID, role db_models.Role, publisherID uuid.UUID) (repositories.SubscribeOutcome, error) {
	if role != db_models.RoleReader {
		return "", utils.ErrReadersOnly
	}

	outcome, err := s.subscriptionRepo.DeactivatePublisherSubscription(ctx, readerID, publisherID)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	return outcome, nil
}

// Overview returns the reader's active subscriptions and the newest articles
// those subscriptions unlock.
func (s *SubscriptionService) Overview(ctx context.Context, readerID uuid.UUID, role db_models.Role) (*response_models.SubscriptionOverview, error) {
	if role != db_models.RoleReader {
		return nil, utils.ErrReadersOnly
	}

	journalistSubs, publisherSubs, err := s.subscriptionRepo.ListActiveByReader(ctx, readerID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	overview := &response_models.SubscriptionOverview{
		JournalistSubscriptions: make([]response_models.JournalistSubscriptionItem, 0, len(journalistSubs)),
		PublisherSubscriptions:  make([]response_models.PublisherSubscriptionItem, 0, len(publisherSubs)),
		RecentArticles:          []response_models.ArticleListItem{},
		TotalSubscriptions:      len(journalistSubs) + len(publisherSubs),
	}

	journalistIDs := make([]uuid.UUID, 0, len(journalistSubs))
	for i := range journalistSubs {
		sub := &journalistSubs[i]
		journalistIDs = append(journalistIDs, sub.JournalistID)
		overview.JournalistSubscriptions = append(overview.JournalistSubscriptions, response_models.JournalistSubscriptionItem{
			JournalistID:   sub.JournalistID.String(),
			JournalistName: sub.Journalist.User.FullName(),
			PublisherName:  sub.Journalist.Publisher.Name,
			SubscribedAt:   sub.CreatedAt,
		})
	}

	publisherIDs := make([]uuid.UUID, 0, len(publisherSubs))
	for i := range publisherSubs {
		sub := &publisherSubs[i]
		publisherIDs = append(publisherIDs, sub.PublisherID)
		overview.PublisherSubscriptions = append(overview.PublisherSubscriptions, response_models.PublisherSubscriptionItem{
			PublisherID:   sub.PublisherID.String(),
			PublisherName: sub.Publisher.Name,
			SubscribedAt:  sub.CreatedAt,
		})
	}

	if len(journalistIDs) > 0 || len(publisherIDs) > 0 {
		articles, _, err := s.articleRepo.ListApprovedForReader(ctx, journalistIDs, publisherIDs, 1, overviewArticleLimit)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		overview.RecentArticles = toArticleListItems(articles)
	}

	return overview, nil
}
