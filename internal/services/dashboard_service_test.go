package services

import (
	"context"
	"errors"
	"testing"

	"yournews/internal/models/db_models"
	"yournews/pkg/utils"
)

func TestEditorDashboardGroupsByStatus(t *testing.T) {
	env := newTestEnv(t)
	svc := env.dashboardService()
	_, publisher := env.createPublisher(t, "Herald")
	_, journalist := env.createJournalist(t, "hank", publisher)
	editorUser, _ := env.createEditor(t, "ed", publisher)

	env.createArticle(t, journalist, "p1", db_models.ArticlePending)
	env.createArticle(t, journalist, "p2", db_models.ArticlePending)
	env.createArticle(t, journalist, "a1", db_models.ArticleApproved)
	env.createArticle(t, journalist, "r1", db_models.ArticleRejected)

	// Another publisher's article must not leak in.
	_, otherPublisher := env.createPublisher(t, "Gazette")
	_, otherJournalist := env.createJournalist(t, "nina", otherPublisher)
	env.createArticle(t, otherJournalist, "foreign", db_models.ArticlePending)

	dashboard, err := svc.EditorDashboard(context.Background(), editorUser.ID)
	if err != nil {
		t.Fatalf("EditorDashboard: %v", err)
	}
	if dashboard.PublisherName != "Herald" {
		t.Errorf("publisher name = %q", dashboard.PublisherName)
	}
	if dashboard.TotalCount != 4 || dashboard.PendingCount != 2 ||
		dashboard.ApprovedCount != 1 || dashboard.RejectedCount != 1 {
		t.Errorf("counts = total %d / pending %d / approved %d / rejected %d, want 4/2/1/1",
			dashboard.TotalCount, dashboard.PendingCount, dashboard.ApprovedCount, dashboard.RejectedCount)
	}
}

func TestEditorDashboardRequiresProfile(t *testing.T) {
	env := newTestEnv(t)
	svc := env.dashboardService()
	reader := env.createUser(t, "rita", db_models.RoleReader)

	_, err := svc.EditorDashboard(context.Background(), reader.ID)
	if !errors.Is(err, utils.ErrEditorRequired) {
		t.Errorf("got %v, want ErrEditorRequired", err)
	}
}

func TestJournalistDashboard(t *testing.T) {
	env := newTestEnv(t)
	svc := env.dashboardService()
	_, publisher := env.createPublisher(t, "Herald")
	journalistUser, journalist := env.createJournalist(t, "hank", publisher)

	env.createArticle(t, journalist, "mine pending", db_models.ArticlePending)
	env.createArticle(t, journalist, "mine approved", db_models.ArticleApproved)
	env.createNewsletter(t, journalist, "mine letter")

	dashboard, err := svc.JournalistDashboard(context.Background(), journalistUser.ID)
	if err != nil {
		t.Fatalf("JournalistDashboard: %v", err)
	}
	if dashboard.TotalCount != 2 || dashboard.NewsletterCount != 1 {
		t.Errorf("totals = %d articles / %d newsletters, want 2/1",
			dashboard.TotalCount, dashboard.NewsletterCount)
	}
	if len(dashboard.PendingArticles) != 1 || len(dashboard.ApprovedArticles) != 1 {
		t.Errorf("grouping wrong: pending %d approved %d",
			len(dashboard.PendingArticles), len(dashboard.ApprovedArticles))
	}
}

func TestPublisherDashboardAggregates(t *testing.T) {
	env := newTestEnv(t)
	svc := env.dashboardService()
	ownerUser, publisher := env.createPublisher(t, "Herald")
	_, journalist := env.createJournalist(t, "hank", publisher)
	env.createEditor(t, "ed", publisher)

	env.createArticle(t, journalist, "a1", db_models.ArticleApproved)
	env.createArticle(t, journalist, "a2", db_models.ArticlePending)
	env.createNewsletter(t, journalist, "letter")

	reader := env.createUser(t, "rita", db_models.RoleReader)
	env.subscribeToJournalist(t, reader, journalist)
	env.subscribeToPublisher(t, reader, publisher)

	dashboard, err := svc.PublisherDashboard(context.Background(), ownerUser.ID)
	if err != nil {
		t.Fatalf("PublisherDashboard: %v", err)
	}
	if dashboard.EditorCount != 1 || dashboard.JournalistCount != 1 {
		t.Errorf("roster = %d editors / %d journalists, want 1/1",
			dashboard.EditorCount, dashboard.JournalistCount)
	}
	if dashboard.TotalArticles != 2 || dashboard.PendingArticles != 1 || dashboard.ApprovedArticles != 1 {
		t.Errorf("article totals = %d/%d pending/%d approved, want 2/1/1",
			dashboard.TotalArticles, dashboard.PendingArticles, dashboard.ApprovedArticles)
	}
	if dashboard.TotalNewsletters != 1 {
		t.Errorf("newsletters = %d, want 1", dashboard.TotalNewsletters)
	}
	if dashboard.PublisherSubscriberCount != 1 {
		t.Errorf("publisher subscribers = %d, want 1", dashboard.PublisherSubscriberCount)
	}
	if len(dashboard.Journalists) != 1 {
		t.Fatalf("journalist stats rows = %d, want 1", len(dashboard.Journalists))
	}
	stats := dashboard.Journalists[0]
	if stats.ArticleCount != 2 || stats.SubscriberCount != 1 || stats.NewsletterCount != 1 {
		t.Errorf("journalist stats = %+v", stats)
	}
}

func TestPublisherDashboardRequiresProfile(t *testing.T) {
	env := newTestEnv(t)
	svc := env.dashboardService()
	reader := env.createUser(t, "rita", db_models.RoleReader)

	_, err := svc.PublisherDashboard(context.Background(), reader.ID)
	if !errors.Is(err, utils.ErrPublisherRequired) {
		t.Errorf("got %v, want ErrPublisherRequired", err)
	}
}
