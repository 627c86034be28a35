package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"yournews/internal/infra"
	"yournews/internal/models/db_models"
	"yournews/internal/repositories"
	"yournews/pkg/utils"
)

// recordingMailer captures outgoing mail instead of talking SMTP.
type recordingMailer struct {
	mu   sync.Mutex
	sent []sentMail
	fail bool
}

type sentMail struct {
	To      string
	Subject string
	Body    string
}

func (m *recordingMailer) Send(to, subject, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return errors.New("smtp unavailable")
	}
	m.sent = append(m.sent, sentMail{To: to, Subject: subject, Body: body})
	return nil
}

func (m *recordingMailer) sentTo(address string) []sentMail {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []sentMail
	for _, s := range m.sent {
		if s.To == address {
			out = append(out, s)
		}
	}
	return out
}

// recordingPoster captures tweets.
type recordingPoster struct {
	mu     sync.Mutex
	tweets []string
}

func (p *recordingPoster) PostTweet(_ context.Context, text string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.tweets = append(p.tweets, text)
	return nil
}

type testEnv struct {
	db     *gorm.DB
	mailer *recordingMailer
	poster *recordingPoster

	userRepo         repositories.UserRepository
	profileRepo      repositories.ProfileRepository
	articleRepo      repositories.ArticleRepository
	newsletterRepo   repositories.NewsletterRepository
	subscriptionRepo repositories.SubscriptionRepository
	applicationRepo  repositories.ApplicationRepository
	tokenRepo        repositories.ResetTokenRepository
	notificationRepo repositories.NotificationRepository
	dashboardRepo    repositories.DashboardRepository

	notifier NotifierService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("opening sqlite: %v", err)
	}
	if err := infra.Migrate(db); err != nil {
		t.Fatalf("migrating schema: %v", err)
	}

	env := &testEnv{
		db:     db,
		mailer: &recordingMailer{},
		poster: &recordingPoster{},

		userRepo:         repositories.NewUserRepository(db),
		profileRepo:      repositories.NewProfileRepository(db),
		articleRepo:      repositories.NewArticleRepository(db),
		newsletterRepo:   repositories.NewNewsletterRepository(db),
		subscriptionRepo: repositories.NewSubscriptionRepository(db),
		applicationRepo:  repositories.NewApplicationRepository(db),
		tokenRepo:        repositories.NewResetTokenRepository(db),
		notificationRepo: repositories.NewNotificationRepository(db),
		dashboardRepo:    repositories.NewDashboardRepository(db),
	}
	env.notifier = NewNotifierService(env.subscriptionRepo, env.notificationRepo, env.mailer, env.poster)
	return env
}

func (e *testEnv) accountService() AccountServiceInterface {
	return NewAccountService(e.userRepo, e.tokenRepo, e.notifier, "http://localhost:8080")
}

func (e *testEnv) applicationService() ApplicationServiceInterface {
	return NewApplicationService(e.db, e.applicationRepo, e.notifier)
}

func (e *testEnv) articleService() ArticleServiceInterface {
	return NewArticleService(e.articleRepo, e.profileRepo, e.subscriptionRepo, e.notifier)
}

func (e *testEnv) newsletterService() NewsletterServiceInterface {
	return NewNewsletterService(e.newsletterRepo, e.profileRepo, e.subscriptionRepo, e.notifier)
}

func (e *testEnv) subscriptionService() SubscriptionServiceInterface {
	return NewSubscriptionService(e.subscriptionRepo, e.profileRepo, e.articleRepo)
}

func (e *testEnv) dashboardService() DashboardServiceInterface {
	return NewDashboardService(e.dashboardRepo, e.profileRepo, e.newsletterRepo, e.subscriptionRepo)
}

// ---- fixtures ----

func (e *testEnv) createUser(t *testing.T, username string, role db_models.Role) *db_models.User {
	t.Helper()
	hash, err := utils.HashPassword("password123")
	if err != nil {
		t.Fatalf("hashing password: %v", err)
	}
	user := &db_models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: hash,
		Role:         role,
	}
	if err := e.db.Create(user).Error; err != nil {
		t.Fatalf("creating user %s: %v", username, err)
	}
	return user
}

func (e *testEnv) createPublisher(t *testing.T, name string) (*db_models.User, *db_models.Publisher) {
	t.Helper()
	user := e.createUser(t, name+"_owner", db_models.RolePublisher)
	publisher := &db_models.Publisher{UserID: user.ID, Name: name}
	if err := e.db.Create(publisher).Error; err != nil {
		t.Fatalf("creating publisher %s: %v", name, err)
	}
	return user, publisher
}

func (e *testEnv) createJournalist(t *testing.T, username string, publisher *db_models.Publisher) (*db_models.User, *db_models.Journalist) {
	t.Helper()
	user := e.createUser(t, username, db_models.RoleJournalist)
	journalist := &db_models.Journalist{UserID: user.ID, PublisherID: publisher.ID}
	if err := e.db.Create(journalist).Error; err != nil {
		t.Fatalf("creating journalist %s: %v", username, err)
	}
	return user, journalist
}

func (e *testEnv) createEditor(t *testing.T, username string, publisher *db_models.Publisher) (*db_models.User, *db_models.Editor) {
	t.Helper()
	user := e.createUser(t, username, db_models.RoleEditor)
	editor := &db_models.Editor{UserID: user.ID, PublisherID: publisher.ID}
	if err := e.db.Create(editor).Error; err != nil {
		t.Fatalf("creating editor %s: %v", username, err)
	}
	return user, editor
}

func (e *testEnv) createArticle(t *testing.T, journalist *db_models.Journalist, title string, status db_models.ArticleStatus) *db_models.Article {
	t.Helper()
	article := &db_models.Article{
		Title:        title,
		Content:      "content of " + title,
		JournalistID: journalist.ID,
		PublisherID:  journalist.PublisherID,
		Status:       status,
	}
	if err := e.db.Create(article).Error; err != nil {
		t.Fatalf("creating article %s: %v", title, err)
	}
	return article
}

func (e *testEnv) createNewsletter(t *testing.T, journalist *db_models.Journalist, title string) *db_models.Newsletter {
	t.Helper()
	newsletter := &db_models.Newsletter{
		Title:        title,
		Content:      "content of " + title,
		JournalistID: journalist.ID,
		PublisherID:  journalist.PublisherID,
	}
	if err := e.db.Create(newsletter).Error; err != nil {
		t.Fatalf("creating newsletter %s: %v", title, err)
	}
	return newsletter
}

func (e *testEnv) subscribeToJournalist(t *testing.T, reader *db_models.User, journalist *db_models.Journalist) {
	t.Helper()
	if _, err := e.subscriptionRepo.UpsertJournalistSubscription(context.Background(), reader.ID, journalist.ID); err != nil {
		t.Fatalf("subscribing to journalist: %v", err)
	}
}

func (e *testEnv) subscribeToPublisher(t *testing.T, reader *db_models.User, publisher *db_models.Publisher) {
	t.Helper()
	if _, err := e.subscriptionRepo.UpsertPublisherSubscription(context.Background(), reader.ID, publisher.ID); err != nil {
		t.Fatalf("subscribing to publisher: %v", err)
	}
}
