package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"yournews/internal/models/db_models"
	"yournews/internal/models/request_models"
	"yournews/pkg/utils"
)

func TestCreateArticleForcesPending(t *testing.T) {
	env := newTestEnv(t)
	svc := env.articleService()
	_, publisher := env.createPublisher(t, "Herald")
	user, _ := env.createJournalist(t, "hank", publisher)

	resp, err := svc.Create(context.Background(), user.ID, request_models.ArticleCreateRequest{
		Title:   "  Breaking news  ",
		Content: "  something happened  ",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if resp.Status != "pending" {
		t.Errorf("status = %s, want pending", resp.Status)
	}
	if resp.Title != "Breaking news" {
		t.Errorf("title not trimmed: %q", resp.Title)
	}
	if resp.Publisher.Name != "Herald" {
		t.Errorf("publisher = %q, want Herald", resp.Publisher.Name)
	}
}

func TestCreateArticleValidation(t *testing.T) {
	env := newTestEnv(t)
	svc := env.articleService()
	_, publisher := env.createPublisher(t, "Herald")
	user, _ := env.createJournalist(t, "hank", publisher)

	_, err := svc.Create(context.Background(), user.ID, request_models.ArticleCreateRequest{
		Title:   "   ",
		Content: "body",
	})
	if !errors.Is(err, utils.ErrEmptyTitle) {
		t.Errorf("blank title: got %v, want ErrEmptyTitle", err)
	}

	_, err = svc.Create(context.Background(), user.ID, request_models.ArticleCreateRequest{
		Title:   strings.Repeat("x", 256),
		Content: "body",
	})
	if !errors.Is(err, utils.ErrTitleTooLong) {
		t.Errorf("long title: got %v, want ErrTitleTooLong", err)
	}

	_, err = svc.Create(context.Background(), user.ID, request_models.ArticleCreateRequest{
		Title:   "fine",
		Content: "   ",
	})
	if !errors.Is(err, utils.ErrEmptyContent) {
		t.Errorf("blank content: got %v, want ErrEmptyContent", err)
	}
}

func TestCreateArticleRequiresJournalistProfile(t *testing.T) {
	env := newTestEnv(t)
	svc := env.articleService()
	reader := env.createUser(t, "rita", db_models.RoleReader)

	_, err := svc.Create(context.Background(), reader.ID, request_models.ArticleCreateRequest{
		Title:   "not allowed",
		Content: "body",
	})
	if !errors.Is(err, utils.ErrJournalistRequired) {
		t.Errorf("reader create: got %v, want ErrJournalistRequired", err)
	}
}

func TestReaderListRequiresSubscriptions(t *testing.T) {
	env := newTestEnv(t)
	svc := env.articleService()
	_, publisher := env.createPublisher(t, "Herald")
	_, journalist := env.createJournalist(t, "hank", publisher)
	env.createArticle(t, journalist, "visible to subscribers", db_models.ArticleApproved)

	reader := env.createUser(t, "rita", db_models.RoleReader)

	items, count, err := svc.ListVisible(context.Background(), reader.ID, db_models.RoleReader, 1, 20)
	if err != nil {
		t.Fatalf("ListVisible: %v", err)
	}
	if count != 0 || len(items) != 0 {
		t.Errorf("reader without subscriptions sees %d articles, want 0", count)
	}

	env.subscribeToJournalist(t, reader, journalist)

	items, count, err = svc.ListVisible(context.Background(), reader.ID, db_models.RoleReader, 1, 20)
	if err != nil {
		t.Fatalf("ListVisible: %v", err)
	}
	if count != 1 || len(items) != 1 {
		t.Fatalf("subscribed reader sees %d articles, want 1", count)
	}
	if items[0].Title != "visible to subscribers" {
		t.Errorf("unexpected article %q", items[0].Title)
	}
}

func TestListNeverShowsUnapprovedToReaders(t *testing.T) {
	env := newTestEnv(t)
	svc := env.articleService()
	_, publisher := env.createPublisher(t, "Herald")
	_, journalist := env.createJournalist(t, "hank", publisher)
	env.createArticle(t, journalist, "pending piece", db_models.ArticlePending)
	env.createArticle(t, journalist, "rejected piece", db_models.ArticleRejected)
	env.createArticle(t, journalist, "approved piece", db_models.ArticleApproved)

	reader := env.createUser(t, "rita", db_models.RoleReader)
	env.subscribeToPublisher(t, reader, publisher)

	items, count, err := svc.ListVisible(context.Background(), reader.ID, db_models.RoleReader, 1, 20)
	if err != nil {
		t.Fatalf("ListVisible: %v", err)
	}
	if count != 1 || len(items) != 1 || items[0].Title != "approved piece" {
		t.Errorf("reader sees %v (count %d), want only the approved piece", items, count)
	}
}

func TestDualSubscriptionListsArticleOnce(t *testing.T) {
	env := newTestEnv(t)
	svc := env.articleService()
	_, publisher := env.createPublisher(t, "Herald")
	_, journalist := env.createJournalist(t, "hank", publisher)
	env.createArticle(t, journalist, "popular piece", db_models.ArticleApproved)

	reader := env.createUser(t, "rita", db_models.RoleReader)
	env.subscribeToJournalist(t, reader, journalist)
	env.subscribeToPublisher(t, reader, publisher)

	items, count, err := svc.ListVisible(context.Background(), reader.ID, db_models.RoleReader, 1, 20)
	if err != nil {
		t.Fatalf("ListVisible: %v", err)
	}
	if count != 1 || len(items) != 1 {
		t.Errorf("article matched through both subscriptions appears %d times, want 1", len(items))
	}
}

func TestNonReadersSeeAllApproved(t *testing.T) {
	env := newTestEnv(t)
	svc := env.articleService()
	_, publisher := env.createPublisher(t, "Herald")
	_, journalist := env.createJournalist(t, "hank", publisher)
	env.createArticle(t, journalist, "approved piece", db_models.ArticleApproved)

	editorUser, _ := env.createEditor(t, "ed", publisher)

	_, count, err := svc.ListVisible(context.Background(), editorUser.ID, db_models.RoleEditor, 1, 20)
	if err != nil {
		t.Fatalf("ListVisible: %v", err)
	}
	if count != 1 {
		t.Errorf("editor sees %d articles, want 1", count)
	}
}

func TestDetailStatusGate(t *testing.T) {
	env := newTestEnv(t)
	svc := env.articleService()
	_, publisher := env.createPublisher(t, "Herald")
	journalistUser, journalist := env.createJournalist(t, "hank", publisher)
	pending := env.createArticle(t, journalist, "pending piece", db_models.ArticlePending)

	reader := env.createUser(t, "rita", db_models.RoleReader)

	_, err := svc.GetDetail(context.Background(), reader.ID, db_models.RoleReader, pending.ID)
	if !errors.Is(err, utils.ErrNotFound) {
		t.Errorf("reader fetching pending article: got %v, want ErrNotFound", err)
	}

	if _, err := svc.GetDetail(context.Background(), journalistUser.ID, db_models.RoleJournalist, pending.ID); err != nil {
		t.Errorf("journalist fetching pending article: %v", err)
	}
}

func TestApproveFansOutWithDedup(t *testing.T) {
	env := newTestEnv(t)
	svc := env.articleService()
	_, publisher := env.createPublisher(t, "Herald")
	journalistUser, journalist := env.createJournalist(t, "hank", publisher)
	editorUser, _ := env.createEditor(t, "ed", publisher)

	// alice subscribes to both the journalist and the publisher; bob only to
	// the publisher.
	alice := env.createUser(t, "alice", db_models.RoleReader)
	bob := env.createUser(t, "bob", db_models.RoleReader)
	env.subscribeToJournalist(t, alice, journalist)
	env.subscribeToPublisher(t, alice, publisher)
	env.subscribeToPublisher(t, bob, publisher)

	article := env.createArticle(t, journalist, "big story", db_models.ArticlePending)

	if err := svc.Approve(context.Background(), editorUser.ID, article.ID); err != nil {
		t.Fatalf("Approve: %v", err)
	}

	var reloaded db_models.Article
	if err := env.db.First(&reloaded, "id = ?", article.ID).Error; err != nil {
		t.Fatalf("reloading article: %v", err)
	}
	if reloaded.Status != db_models.ArticleApproved {
		t.Errorf("status = %s, want approved", reloaded.Status)
	}

	// One status mail to the author, one fan-out mail per subscriber.
	if mails := env.mailer.sentTo(journalistUser.Email); len(mails) != 1 {
		t.Errorf("author mails = %d, want 1", len(mails))
	}
	if mails := env.mailer.sentTo(alice.Email); len(mails) != 1 {
		t.Errorf("alice mails = %d, want 1 despite dual subscription", len(mails))
	}
	if mails := env.mailer.sentTo(bob.Email); len(mails) != 1 {
		t.Errorf("bob mails = %d, want 1", len(mails))
	}

	if len(env.poster.tweets) != 1 || !strings.Contains(env.poster.tweets[0], "big story") {
		t.Errorf("tweets = %v, want one mentioning the title", env.poster.tweets)
	}

	// Delivery log covers every mail.
	var logged int64
	env.db.Model(&db_models.NotificationLog{}).Count(&logged)
	if logged != 3 {
		t.Errorf("notification log rows = %d, want 3", logged)
	}
}

func TestApproveRequiresSamePublisher(t *testing.T) {
	env := newTestEnv(t)
	svc := env.articleService()
	_, publisher := env.createPublisher(t, "Herald")
	_, otherPublisher := env.createPublisher(t, "Gazette")
	_, journalist := env.createJournalist(t, "hank", publisher)
	outsideEditor, _ := env.createEditor(t, "outsider", otherPublisher)

	article := env.createArticle(t, journalist, "big story", db_models.ArticlePending)

	err := svc.Approve(context.Background(), outsideEditor.ID, article.ID)
	if !errors.Is(err, utils.ErrWrongPublisher) {
		t.Errorf("cross-publisher approve: got %v, want ErrWrongPublisher", err)
	}

	var reloaded db_models.Article
	if err := env.db.First(&reloaded, "id = ?", article.ID).Error; err != nil {
		t.Fatalf("reloading article: %v", err)
	}
	if reloaded.Status != db_models.ArticlePending {
		t.Errorf("status changed to %s, want pending", reloaded.Status)
	}
}

func TestRejectNotifiesAuthorOnly(t *testing.T) {
	env := newTestEnv(t)
	svc := env.articleService()
	_, publisher := env.createPublisher(t, "Herald")
	journalistUser, journalist := env.createJournalist(t, "hank", publisher)
	editorUser, _ := env.createEditor(t, "ed", publisher)

	reader := env.createUser(t, "rita", db_models.RoleReader)
	env.subscribeToPublisher(t, reader, publisher)

	article := env.createArticle(t, journalist, "weak story", db_models.ArticlePending)

	if err := svc.Reject(context.Background(), editorUser.ID, article.ID); err != nil {
		t.Fatalf("Reject: %v", err)
	}

	if mails := env.mailer.sentTo(journalistUser.Email); len(mails) != 1 {
		t.Errorf("author mails = %d, want 1", len(mails))
	}
	if mails := env.mailer.sentTo(reader.Email); len(mails) != 0 {
		t.Errorf("subscriber got %d mails on rejection, want 0", len(mails))
	}
	if len(env.poster.tweets) != 0 {
		t.Errorf("tweets on rejection = %v, want none", env.poster.tweets)
	}
}

func TestByJournalistGatedForReaders(t *testing.T) {
	env := newTestEnv(t)
	svc := env.articleService()
	_, publisher := env.createPublisher(t, "Herald")
	_, journalist := env.createJournalist(t, "hank", publisher)
	env.createArticle(t, journalist, "approved piece", db_models.ArticleApproved)

	reader := env.createUser(t, "rita", db_models.RoleReader)

	_, err := svc.ByJournalist(context.Background(), reader.ID, db_models.RoleReader, journalist.ID)
	if !errors.Is(err, utils.ErrNotSubscribed) {
		t.Errorf("unsubscribed reader: got %v, want ErrNotSubscribed", err)
	}

	env.subscribeToJournalist(t, reader, journalist)

	items, err := svc.ByJournalist(context.Background(), reader.ID, db_models.RoleReader, journalist.ID)
	if err != nil {
		t.Fatalf("ByJournalist after subscribing: %v", err)
	}
	if len(items) != 1 {
		t.Errorf("items = %d, want 1", len(items))
	}

	// Unknown target: reader holds no subscription to it, so permission error.
	_, err = svc.ByJournalist(context.Background(), reader.ID, db_models.RoleReader, uuid.New())
	if !errors.Is(err, utils.ErrNotSubscribed) {
		t.Errorf("unknown journalist as reader: got %v, want ErrNotSubscribed", err)
	}

	// Non-readers get an empty list rather than an error.
	journalistUser, _ := env.createJournalist(t, "visitor", publisher)
	items, err = svc.ByJournalist(context.Background(), journalistUser.ID, db_models.RoleJournalist, uuid.New())
	if err != nil {
		t.Fatalf("unknown journalist as journalist: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("items for unknown journalist = %d, want 0", len(items))
	}
}

func TestUpdateOwnership(t *testing.T) {
	env := newTestEnv(t)
	svc := env.articleService()
	_, publisher := env.createPublisher(t, "Herald")
	_, journalist := env.createJournalist(t, "hank", publisher)
	otherUser, _ := env.createJournalist(t, "nina", publisher)

	article := env.createArticle(t, journalist, "draft", db_models.ArticlePending)

	_, err := svc.Update(context.Background(), otherUser.ID, db_models.RoleJournalist, article.ID, request_models.ArticleUpdateRequest{
		Title:   "hijacked",
		Content: "body",
	})
	if !errors.Is(err, utils.ErrPermissionDenied) {
		t.Errorf("foreign journalist update: got %v, want ErrPermissionDenied", err)
	}
}
