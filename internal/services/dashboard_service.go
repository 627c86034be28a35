package services

import (
	"context"

	"github.com/google/uuid"

	"yournews/internal/models/db_models"
	"yournews/internal/models/response_models"
	"yournews/internal/repositories"
	"yournews/pkg/utils"
)

type DashboardServiceInterface interface {
	EditorDashboard(ctx context.Context, userID uuid.UUID) (*response_models.EditorDashboard, error)
	JournalistDashboard(ctx context.Context, userID uuid.UUID) (*response_models.JournalistDashboard, error)
	PublisherDashboard(ctx context.Context, userID uuid.UUID) (*response_models.PublisherDashboard, error)
}

type DashboardService struct {
	dashboardRepo    repositories.DashboardRepository
	profileRepo      repositories.ProfileRepository
	newsletterRepo   repositories.NewsletterRepository
	subscriptionRepo repositories.SubscriptionRepository
}

func NewDashboardService(
	dashboardRepo repositories.DashboardRepository,
	profileRepo repositories.ProfileRepository,
	newsletterRepo repositories.NewsletterRepository,
	subscriptionRepo repositories.SubscriptionRepository,
) DashboardServiceInterface {
	return &DashboardService{
		dashboardRepo:    dashboardRepo,
		profileRepo:      profileRepo,
		newsletterRepo:   newsletterRepo,
		subscriptionRepo: subscriptionRepo,
	}
}

// EditorDashboard shows every article of the editor's publisher, grouped by
// review status.
func (s *DashboardService) EditorDashboard(ctx context.Context, userID uuid.UUID) (*response_models.EditorDashboard, error) {
	editor, err := s.profileRepo.FindEditorByUserID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if editor == nil {
		return nil, utils.ErrEditorRequired
	}

	publisher, err := s.profileRepo.FindPublisherByID(ctx, editor.PublisherID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if publisher == nil {
		return nil, utils.ErrNotFound
	}

	articles, err := s.dashboardRepo.ArticlesByPublisher(ctx, editor.PublisherID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	pending, approved, rejected := splitByStatus(articles)
	return &response_models.EditorDashboard{
		PublisherName:    publisher.Name,
		PendingArticles:  pending,
		ApprovedArticles: approved,
		RejectedArticles: rejected,
		TotalCount:       len(articles),
		PendingCount:     len(pending),
		ApprovedCount:    len(approved),
		RejectedCount:    len(rejected),
	}, nil
}

func (s *DashboardService) JournalistDashboard(ctx context.Context, userID uuid.UUID) (*response_models.JournalistDashboard, error) {
	journalist, err := s.profileRepo.FindJournalistByUserID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if journalist == nil {
		return nil, utils.ErrJournalistRequired
	}

	articles, err := s.dashboardRepo.ArticlesByJournalist(ctx, journalist.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	newsletters, err := s.newsletterRepo.ListByJournalist(ctx, journalist.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	pending, approved, rejected := splitByStatus(articles)
	return &response_models.JournalistDashboard{
		PendingArticles:  pending,
		ApprovedArticles: approved,
		RejectedArticles: rejected,
		Newsletters:      toNewsletterListItems(newsletters),
		TotalCount:       len(articles),
		NewsletterCount:  len(newsletters),
	}, nil
}

// PublisherDashboard aggregates the whole house: roster, per-journalist
// output and subscriber counts.
func (s *DashboardService) PublisherDashboard(ctx context.Context, userID uuid.UUID) (*response_models.PublisherDashboard, error) {
	publisher, err := s.profileRepo.FindPublisherByUserID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if publisher == nil {
		return nil, utils.ErrPublisherRequired
	}

	editors, err := s.profileRepo.ListEditorsByPublisher(ctx, publisher.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	journalists, err := s.profileRepo.ListJournalistsByPublisher(ctx, publisher.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	countRows, err := s.dashboardRepo.JournalistContentCounts(ctx, publisher.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	countsByID := make(map[string]repositories.JournalistCountsRow, len(countRows))
	for _, row := range countRows {
		countsByID[row.JournalistID] = row
	}

	statusCounts, err := s.dashboardRepo.ArticleStatusCountsByPublisher(ctx, publisher.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	dashboard := &response_models.PublisherDashboard{
		PublisherName:   publisher.Name,
		Editors:         make([]response_models.EditorItem, 0, len(editors)),
		Journalists:     make([]response_models.JournalistStats, 0, len(journalists)),
		EditorCount:     len(editors),
		JournalistCount: len(journalists),
	}

	for i := range editors {
		e := &editors[i]
		dashboard.Editors = append(dashboard.Editors, response_models.EditorItem{
			ID:       e.ID.String(),
			Name:     e.User.FullName(),
			Username: e.User.Username,
		})
	}

	for i := range journalists {
		j := &journalists[i]
		counts := countsByID[j.ID.String()]

		newsletters, err := s.newsletterRepo.ListByJournalist(ctx, j.ID)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		subscribers, err := s.subscriptionRepo.CountActiveByJournalist(ctx, j.ID)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}

		dashboard.Journalists = append(dashboard.Journalists, response_models.JournalistStats{
			ID:               j.ID.String(),
			Name:             j.User.FullName(),
			Username:         j.User.Username,
			ArticleCount:     counts.Articles,
			PendingArticles:  counts.PendingArticles,
			ApprovedArticles: counts.ApprovedArticles,
			RejectedArticles: counts.RejectedArticles,
			NewsletterCount:  int64(len(newsletters)),
			SubscriberCount:  subscribers,
		})
	}

	dashboard.PendingArticles = statusCounts[db_models.ArticlePending]
	dashboard.ApprovedArticles = statusCounts[db_models.ArticleApproved]
	dashboard.RejectedArticles = statusCounts[db_models.ArticleRejected]
	dashboard.TotalArticles = dashboard.PendingArticles + dashboard.ApprovedArticles + dashboard.RejectedArticles

	dashboard.PublisherSubscriberCount, err = s.subscriptionRepo.CountActiveByPublisher(ctx, publisher.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	dashboard.TotalNewsletters, err = s.dashboardRepo.CountNewslettersByPublisher(ctx, publisher.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return dashboard, nil
}

func splitByStatus(articles []db_models.Article) (pending, approved, rejected []response_models.ArticleListItem) {
	pending = []response_models.ArticleListItem{}
	approved = []response_models.ArticleListItem{}
	rejected = []response_models.ArticleListItem{}
	for i := range articles {
		item := toArticleListItems(articles[i : i+1])[0]
		switch articles[i].Status {
		case db_models.ArticleApproved:
			approved = append(approved, item)
		case db_models.ArticleRejected:
			rejected = append(rejected, item)
		default:
			pending = append(pending, item)
		}
	}
	return pending, approved, rejected
}
