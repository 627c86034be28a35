package services

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"yournews/internal/models/db_models"
	"yournews/internal/models/request_models"
	"yournews/internal/models/response_models"
	"yournews/internal/repositories"
	"yournews/pkg/utils"
)

const maxTitleLength = 255

type ArticleServiceInterface interface {
	ListVisible(ctx context.Context, viewerID uuid.UUID, role db_models.Role, page, pageSize int) ([]response_models.ArticleListItem, int64, error)
	GetDetail(ctx context.Context, viewerID uuid.UUID, role db_models.Role, articleID uuid.UUID) (*response_models.ArticleResponse, error)
	Create(ctx context.Context, userID uuid.UUID, request request_models.ArticleCreateRequest) (*response_models.ArticleResponse, error)
	Update(ctx context.Context, userID uuid.UUID, role db_models.Role, articleID uuid.UUID, request request_models.ArticleUpdateRequest) (*response_models.ArticleResponse, error)
	Delete(ctx context.Context, userID uuid.UUID, role db_models.Role, articleID uuid.UUID) error
	ByJournalist(ctx context.Context, viewerID uuid.UUID, role db_models.Role, journalistID uuid.UUID) ([]response_models.ArticleListItem, error)
	ByPublisher(ctx context.Context, viewerID uuid.UUID, role db_models.Role, publisherID uuid.UUID) ([]response_models.ArticleListItem, error)
	Approve(ctx context.Context, editorUserID, articleID uuid.UUID) error
	Reject(ctx context.Context, editorUserID, articleID uuid.UUID) error
}

type ArticleService struct {
	articleRepo      repositories.ArticleRepository
	profileRepo      repositories.ProfileRepository
	subscriptionRepo repositories.SubscriptionRepository
	notifier         NotifierService
}

func NewArticleService(
	articleRepo repositories.ArticleRepository,
	profileRepo repositories.ProfileRepository,
	subscriptionRepo repositories.SubscriptionRepository,
	notifier NotifierService,
) ArticleServiceInterface {
	return &ArticleService{
		articleRepo:      articleRepo,
		profileRepo:      profileRepo,
		subscriptionRepo: subscriptionRepo,
		notifier:         notifier,
	}
}

// ListVisible pages through approved articles. Readers only see articles by
// journalists or publishers they actively subscribe to; a reader with no
// subscriptions gets an empty page.
func (s *ArticleService) ListVisible(ctx context.Context, viewerID uuid.UUID, role db_models.Role, page, pageSize int) ([]response_models.ArticleListItem, int64, error) {
	var (
		articles []db_models.Article
		count    int64
		err      error
	)

	if role == db_models.RoleReader {
		journalistIDs, publisherIDs, subErr := s.activeSubscriptionIDs(ctx, viewerID)
		if subErr != nil {
			return nil, 0, utils.ErrDatabaseError
		}
		articles, count, err = s.articleRepo.ListApprovedForReader(ctx, journalistIDs, publisherIDs, page, pageSize)
	} else {
		articles, count, err = s.articleRepo.ListApproved(ctx, page, pageSize)
	}
	if err != nil {
		return nil, 0, utils.ErrDatabaseError
	}

	return toArticleListItems(articles), count, nil
}

// GetDetail returns one article. Editors and journalists see any status;
// everyone else only sees approved articles.
func (s *ArticleService) GetDetail(ctx context.Context, viewerID uuid.UUID, role db_models.Role, articleID uuid.UUID) (*response_models.ArticleResponse, error) {
	article, err := s.articleRepo.FindByID(ctx, articleID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if article == nil {
		return nil, utils.ErrNotFound
	}

	if article.Status != db_models.ArticleApproved &&
		role != db_models.RoleEditor && role != db_models.RoleJournalist {
		return nil, utils.ErrNotFound
	}

	resp := toArticleResponse(article)
	return &resp, nil
}

func (s *ArticleService) Create(ctx context.Context, userID uuid.UUID, request request_models.ArticleCreateRequest) (*response_models.ArticleResponse, error) {
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

	// Status is always pending on submission; only an editor moves it.
	article := &db_models.Article{
		Title:        title,
		Content:      content,
		JournalistID: journalist.ID,
		PublisherID:  journalist.PublisherID,
		Status:       db_models.ArticlePending,
	}
	if err := s.articleRepo.Insert(ctx, article); err != nil {
		return nil, utils.ErrDatabaseError
	}

	created, err := s.articleRepo.FindByID(ctx, article.ID)
	if err != nil || created == nil {
		return nil, utils.ErrDatabaseError
	}
	resp := toArticleResponse(created)
	return &resp, nil
}

func (s *ArticleService) Update(ctx context.Context, userID uuid.UUID, role db_models.Role, articleID uuid.UUID, request request_models.ArticleUpdateRequest) (*response_models.ArticleResponse, error) {
	article, err := s.loadOwned(ctx, userID, role, articleID)
	if err != nil {
		return nil, err
	}

	title, content, err := validateContent(request.Title, request.Content)
	if err != nil {
		return nil, err
	}

	article.Title = title
	article.Content = content
	if err := s.articleRepo.Save(ctx, article); err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := toArticleResponse(article)
	return &resp, nil
}

func (s *ArticleService) Delete(ctx context.Context, userID uuid.UUID, role db_models.Role, articleID uuid.UUID) error {
	article, err := s.loadOwned(ctx, userID, role, articleID)
	if err != nil {
		return err
	}
	if err := s.articleRepo.Delete(ctx, article.ID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

// loadOwned fetches the article and checks write access: editors may touch
// any article of their publisher, journalists only their own.
func (s *ArticleService) loadOwned(ctx context.Context, userID uuid.UUID, role db_models.Role, articleID uuid.UUID) (*db_models.Article, error) {
	article, err := s.articleRepo.FindByID(ctx, articleID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if article == nil {
		return nil, utils.ErrNotFound
	}

	switch role {
	case db_models.RoleEditor:
		editor, err := s.profileRepo.FindEditorByUserID(ctx, userID)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if editor == nil || editor.PublisherID != article.PublisherID {
			return nil, utils.ErrWrongPublisher
		}
	case db_models.RoleJournalist:
		journalist, err := s.profileRepo.FindJournalistByUserID(ctx, userID)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if journalist == nil || journalist.ID != article.JournalistID {
			return nil, utils.ErrPermissionDenied
		}
	default:
		return nil, utils.ErrPermissionDenied
	}
	return article, nil
}

// ByJournalist lists a single journalist's approved articles. Readers must
// hold an active subscription to that journalist; an unknown id simply yields
// an empty list for everyone else.
func (s *ArticleService) ByJournalist(ctx context.Context, viewerID uuid.UUID, role db_models.Role, journalistID uuid.UUID) ([]response_models.ArticleListItem, error) {
	if role == db_models.RoleReader {
		subscribed, err := s.subscriptionRepo.HasActiveJournalistSubscription(ctx, viewerID, journalistID)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if !subscribed {
			return nil, utils.ErrNotSubscribed
		}
	}

	articles, err := s.articleRepo.ListApprovedByJournalist(ctx, journalistID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toArticleListItems(articles), nil
}

func (s *ArticleService) ByPublisher(ctx context.Context, viewerID uuid.UUID, role db_models.Role, publisherID uuid.UUID) ([]response_models.ArticleListItem, error) {
	if role == db_models.RoleReader {
		subscribed, err := s.subscriptionRepo.HasActivePublisherSubscription(ctx, viewerID, publisherID)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if !subscribed {
			return nil, utils.ErrNotSubscribed
		}
	}

	articles, err := s.articleRepo.ListApprovedByPublisher(ctx, publisherID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toArticleListItems(articles), nil
}

func (s *ArticleService) Approve(ctx context.Context, editorUserID, articleID uuid.UUID) error {
	article, err := s.review(ctx, editorUserID, articleID, db_models.ArticleApproved)
	if err != nil {
		return err
	}

	s.notifier.NotifyArticleStatus(ctx, article)
	s.notifier.FanOutArticle(ctx, article)
	return nil
}

func (s *ArticleService) Reject(ctx context.Context, editorUserID, articleID uuid.UUID) error {
	article, err := s.review(ctx, editorUserID, articleID, db_models.ArticleRejected)
	if err != nil {
		return err
	}

	s.notifier.NotifyArticleStatus(ctx, article)
	return nil
}

func (s *ArticleService) review(ctx context.Context, editorUserID, articleID uuid.UUID, status db_models.ArticleStatus) (*db_models.Article, error) {
	editor, err := s.profileRepo.FindEditorByUserID(ctx, editorUserID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if editor == nil {
		return nil, utils.ErrEditorRequired
	}

	article, err := s.articleRepo.FindByID(ctx, articleID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if article == nil {
		return nil, utils.ErrNotFound
	}
	if article.PublisherID != editor.PublisherID {
		return nil, utils.ErrWrongPublisher
	}

	if err := s.articleRepo.UpdateStatus(ctx, articleID, status); err != nil {
		return nil, utils.ErrDatabaseError
	}
	article.Status = status
	return article, nil
}

func (s *ArticleService) activeSubscriptionIDs(ctx context.Context, readerID uuid.UUID) ([]uuid.UUID, []uuid.UUID, error) {
	journalistIDs, err := s.subscriptionRepo.ActiveJournalistIDs(ctx, readerID)
	if err != nil {
		return nil, nil, err
	}
	publisherIDs, err := s.subscriptionRepo.ActivePublisherIDs(ctx, readerID)
	if err != nil {
		return nil, nil, err
	}
	return journalistIDs, publisherIDs, nil
}

func validateContent(title, content string) (string, string, error) {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)
	if title == "" {
		return "", "", utils.ErrEmptyTitle
	}
	if utf8.RuneCountInString(title) > maxTitleLength {
		return "", "", utils.ErrTitleTooLong
	}
	if content == "" {
		return "", "", utils.ErrEmptyContent
	}
	return title, content, nil
}

func toArticleListItems(articles []db_models.Article) []response_models.ArticleListItem {
	items := make([]response_models.ArticleListItem, 0, len(articles))
	for i := range articles {
		a := &articles[i]
		items = append(items, response_models.ArticleListItem{
			ID:             a.ID.String(),
			Title:          a.Title,
			JournalistName: a.Journalist.User.FullName(),
			PublisherName:  a.Publisher.Name,
			CreatedAt:      a.CreatedAt,
		})
	}
	return items
}

func toArticleResponse(a *db_models.Article) response_models.ArticleResponse {
	return response_models.ArticleResponse{
		ID:      a.ID.String(),
		Title:   a.Title,
		Content: a.Content,
		Journalist: response_models.JournalistMinimal{
			ID:            a.JournalistID.String(),
			Name:          a.Journalist.User.FullName(),
			Username:      a.Journalist.User.Username,
			PublisherName: a.Publisher.Name,
		},
		Publisher: response_models.PublisherMinimal{
			ID:   a.PublisherID.String(),
			Name: a.Publisher.Name,
		},
		Status:    string(a.Status),
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}
