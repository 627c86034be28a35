package services

import (
	"context"

	"github.com/google/uuid"

	"yournews/internal/models/db_models"
	"yournews/internal/models/request_models"
	"yournews/internal/models/response_models"
	"yournews/internal/repositories"
	"yournews/pkg/utils"
)

type NewsletterServiceInterface interface {
	ListVisible(ctx context.Context, viewerID uuid.UUID, role db_models.Role, page, pageSize int) ([]response_models.NewsletterListItem, int64, error)
	GetDetail(ctx context.Context, viewerID uuid.UUID, role db_models.Role, newsletterID uuid.UUID) (*response_models.NewsletterResponse, error)
	Create(ctx context.Context, userID uuid.UUID, request request_models.NewsletterCreateRequest) (*response_models.NewsletterResponse, error)
	Update(ctx context.Context, userID uuid.UUID, role db_models.Role, newsletterID uuid.UUID, request request_models.NewsletterUpdateRequest) (*response_models.NewsletterResponse, error)
	Delete(ctx context.Context, userID uuid.UUID, role db_models.Role, newsletterID uuid.UUID) error
}

// Newsletters skip editorial review: they publish immediately and fan out to
// subscribers on creation.
type NewsletterService struct {
	newsletterRepo   repositories.NewsletterRepository
	profileRepo      repositories.ProfileRepository
	subscriptionRepo repositories.SubscriptionRepository
	notifier         NotifierService
}

func NewNewsletterService(
	newsletterRepo repositories.NewsletterRepository,
	profileRepo repositories.ProfileRepository,
	subscriptionRepo repositories.SubscriptionRepository,
	notifier NotifierService,
) NewsletterServiceInterface {
	return &NewsletterService{
		newsletterRepo:   newsletterRepo,
		profileRepo:      profileRepo,
		subscriptionRepo: subscriptionRepo,
		notifier:         notifier,
	}
}

func (s *NewsletterService) ListVisible(ctx context.Context, viewerID uuid.UUID, role db_models.Role, page, pageSize int) ([]response_models.NewsletterListItem, int64, error) {
	var (
		newsletters []db_models.Newsletter
		count       int64
		err         error
	)

	if role == db_models.RoleReader {
		journalistIDs, subErr := s.subscriptionRepo.ActiveJournalistIDs(ctx, viewerID)
		if subErr != nil {
			return nil, 0, utils.ErrDatabaseError
		}
		publisherIDs, subErr := s.subscriptionRepo.ActivePublisherIDs(ctx, viewerID)
		if subErr != nil {
			return nil, 0, utils.ErrDatabaseError
		}
		newsletters, count, err = s.newsletterRepo.ListForReader(ctx, journalistIDs, publisherIDs, page, pageSize)
	} else {
		newsletters, count, err = s.newsletterRepo.ListAll(ctx, page, pageSize)
	}
	if err != nil {
		return nil, 0, utils.ErrDatabaseError
	}

	return toNewsletterListItems(newsletters), count, nil
}

// GetDetail applies the same visibility rule as the list: readers only see
// newsletters from journalists or publishers they actively subscribe to.
// Anything outside that set reads as absent, not forbidden.
func (s *NewsletterService) GetDetail(ctx context.Context, viewerID uuid.UUID, role db_models.Role, newsletterID uuid.UUID) (*response_models.NewsletterResponse, error) {
	newsletter, err := s.newsletterRepo.FindByID(ctx, newsletterID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if newsletter == nil {
		return nil, utils.ErrNotFound
	}

	if role == db_models.RoleReader {
		subscribed, err := s.subscriptionRepo.HasActiveJournalistSubscription(ctx, viewerID, newsletter.JournalistID)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if !subscribed {
			subscribed, err = s.subscriptionRepo.HasActivePublisherSubscription(ctx, viewerID, newsletter.PublisherID)
			if err != nil {
				return nil, utils.ErrDatabaseError
			}
		}
		if !subscribed {
			return nil, utils.ErrNotFound
		}
	}

	resp := toNewsletterResponse(newsletter)
	return &resp, nil
}

func (s *NewsletterService) Create(ctx context.Context, userID uuid.UUID, request request_models.NewsletterCreateRequest) (*response_models.NewsletterResponse, error) {
	journalist, err := s.profileRepo.FindJournalistByUserID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if journalist == nil {
		return nil, utils.ErrJournalistRequired
	}

	title, content, err := validateContent(request.Title, request.Content)
	if err != nil {
		return nil, err
	}

	newsletter := &db_models.Newsletter{
		Title:        title,
		Content:      content,
		JournalistID: journalist.ID,
		PublisherID:  journalist.PublisherID,
	}
	if err := s.newsletterRepo.Insert(ctx, newsletter); err != nil {
		return nil, utils.ErrDatabaseError
	}

	created, err := s.newsletterRepo.FindByID(ctx, newsletter.ID)
	if err != nil || created == nil {
		return nil, utils.ErrDatabaseError
	}

	s.notifier.FanOutNewsletter(ctx, created)

	resp := toNewsletterResponse(created)
	return &resp, nil
}

func (s *NewsletterService) Update(ctx context.Context, userID uuid.UUID, role db_models.Role, newsletterID uuid.UUID, request request_models.NewsletterUpdateRequest) (*response_models.NewsletterResponse, error) {
	newsletter, err := s.loadOwned(ctx, userID, role, newsletterID)
	if err != nil {
		return nil, err
	}

	title, content, err := validateContent(request.Title, request.Content)
	if err != nil {
		return nil, err
	}

	newsletter.Title = title
	newsletter.Content = content
	if err := s.newsletterRepo.Save(ctx, newsletter); err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := toNewsletterResponse(newsletter)
	return &resp, nil
}

func (s *NewsletterService) Delete(ctx context.Context, userID uuid.UUID, role db_models.Role, newsletterID uuid.UUID) error {
	newsletter, err := s.loadOwned(ctx, userID, role, newsletterID)
	if err != nil {
		return err
	}
	if err := s.newsletterRepo.Delete(ctx, newsletter.ID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *NewsletterService) loadOwned(ctx context.Context, userID uuid.UUID, role db_models.Role, newsletterID uuid.UUID) (*db_models.Newsletter, error) {
	newsletter, err := s.newsletterRepo.FindByID(ctx, newsletterID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if newsletter == nil {
		return nil, utils.ErrNotFound
	}

	switch role {
	case db_models.RoleEditor:
		editor, err := s.profileRepo.FindEditorByUserID(ctx, userID)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if editor == nil || editor.PublisherID != newsletter.PublisherID {
			return nil, utils.ErrWrongPublisher
		}
	case db_models.RoleJournalist:
		journalist, err := s.profileRepo.FindJournalistByUserID(ctx, userID)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if journalist == nil || journalist.ID != newsletter.JournalistID {
			return nil, utils.ErrPermissionDenied
		}
	default:
		return nil, utils.ErrPermissionDenied
	}
	return newsletter, nil
}

func toNewsletterListItems(newsletters []db_models.Newsletter) []response_models.NewsletterListItem {
	items := make([]response_models.NewsletterListItem, 0, len(newsletters))
	for i := range newsletters {
		n := &newsletters[i]
		items = append(items, response_models.NewsletterListItem{
			ID:             n.ID.String(),
			Title:          n.Title,
			JournalistName: n.Journalist.User.FullName(),
			PublisherName:  n.Publisher.Name,
			CreatedAt:      n.CreatedAt,
		})
	}
	return items
}

func toNewsletterResponse(n *db_models.Newsletter) response_models.NewsletterResponse {
	return response_models.NewsletterResponse{
		ID:      n.ID.String(),
		Title:   n.Title,
		Content: n.Content,
		Journalist: response_models.JournalistMinimal{
			ID:            n.JournalistID.String(),
			Name:          n.Journalist.User.FullName(),
			Username:      n.Journalist.User.Username,
			PublisherName: n.Publisher.Name,
		},
		Publisher: response_models.PublisherMinimal{
			ID:   n.PublisherID.String(),
			Name: n.Publisher.Name,
		},
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}
