package services

import (
	"context"
	"errors"
	"testing"

	"yournews/internal/models/db_models"
	"yournews/internal/repositories"
	"yournews/pkg/utils"
)

func TestSubscribeToggleKeepsOneRow(t *testing.T) {
	env := newTestEnv(t)
	svc := env.subscriptionService()
	_, publisher := env.createPublisher(t, "Herald")
	_, journalist := env.createJournalist(t, "hank", publisher)
	reader := env.createUser(t, "rita", db_models.RoleReader)

	ctx := context.Background()

	outcome, err := svc.SubscribeJournalist(ctx, reader.ID, db_models.RoleReader, journalist.ID)
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	if outcome != repositories.OutcomeSubscribed {
		t.Errorf("first subscribe outcome = %s, want subscribed", outcome)
	}

	outcome, err = svc.SubscribeJournalist(ctx, reader.ID, db_models.RoleReader, journalist.ID)
	if err != nil {
		t.Fatalf("repeat subscribe: %v", err)
	}
	if outcome != repositories.OutcomeAlreadySubscribed {
		t.Errorf("repeat subscribe outcome = %s, want already_subscribed", outcome)
	}

	var rows int64
	env.db.Model(&db_models.JournalistSubscription{}).
		Where("reader_id = ? AND journalist_id = ?", reader.ID, journalist.ID).
		Count(&rows)
	if rows != 1 {
		t.Errorf("subscription rows = %d, want 1", rows)
	}
}

func TestUnsubscribeAndResubscribe(t *testing.T) {
	env := newTestEnv(t)
	svc := env.subscriptionService()
	_, publisher := env.createPublisher(t, "Herald")
	reader := env.createUser(t, "rita", db_models.RoleReader)

	ctx := context.Background()

	// Unsubscribing without a subscription is a recorded no-op.
	outcome, err := svc.UnsubscribePublisher(ctx, reader.ID, db_models.RoleReader, publisher.ID)
	if err != nil {
		t.Fatalf("unsubscribe: %v", err)
	}
	if outcome != repositories.OutcomeNotSubscribed {
		t.Errorf("outcome = %s, want not_subscribed", outcome)
	}

	if _, err := svc.SubscribePublisher(ctx, reader.ID, db_models.RoleReader, publisher.ID); err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	outcome, err = svc.UnsubscribePublisher(ctx, reader.ID, db_models.RoleReader, publisher.ID)
	if err != nil {
		t.Fatalf("unsubscribe: %v", err)
	}
	if outcome != repositories.OutcomeUnsubscribed {
		t.Errorf("outcome = %s, want unsubscribed", outcome)
	}

	// Re-subscribing reactivates the same row.
	outcome, err = svc.SubscribePublisher(ctx, reader.ID, db_models.RoleReader, publisher.ID)
	if err != nil {
		t.Fatalf("resubscribe: %v", err)
	}
	if outcome != repositories.OutcomeResubscribed {
		t.Errorf("outcome = %s, want resubscribed", outcome)
	}

	var rows int64
	env.db.Model(&db_models.PublisherSubscription{}).
		Where("reader_id = ? AND publisher_id = ?", reader.ID, publisher.ID).
		Count(&rows)
	if rows != 1 {
		t.Errorf("subscription rows = %d, want 1", rows)
	}
}

func TestSubscriptionReadersOnly(t *testing.T) {
	env := newTestEnv(t)
	svc := env.subscriptionService()
	_, publisher := env.createPublisher(t, "Herald")
	_, journalist := env.createJournalist(t, "hank", publisher)
	editorUser, _ := env.createEditor(t, "ed", publisher)

	_, err := svc.SubscribeJournalist(context.Background(), editorUser.ID, db_models.RoleEditor, journalist.ID)
	if !errors.Is(err, utils.ErrReadersOnly) {
		t.Errorf("editor subscribe: got %v, want ErrReadersOnly", err)
	}

	_, err = svc.Overview(context.Background(), editorUser.ID, db_models.RoleEditor)
	if !errors.Is(err, utils.ErrReadersOnly) {
		t.Errorf("editor overview: got %v, want ErrReadersOnly", err)
	}
}

func TestOverviewListsSubscriptionsAndRecentArticles(t *testing.T) {
	env := newTestEnv(t)
	svc := env.subscriptionService()
	_, publisher := env.createPublisher(t, "Herald")
	_, journalist := env.createJournalist(t, "hank", publisher)
	_, otherPublisher := env.createPublisher(t, "Gazette")
	_, otherJournalist := env.createJournalist(t, "nina", otherPublisher)

	env.createArticle(t, journalist, "herald story", db_models.ArticleApproved)
	env.createArticle(t, otherJournalist, "gazette story", db_models.ArticleApproved)

	reader := env.createUser(t, "rita", db_models.RoleReader)
	env.subscribeToJournalist(t, reader, journalist)

	overview, err := svc.Overview(context.Background(), reader.ID, db_models.RoleReader)
	if err != nil {
		t.Fatalf("Overview: %v", err)
	}
	if overview.TotalSubscriptions != 1 {
		t.Errorf("total subscriptions = %d, want 1", overview.TotalSubscriptions)
	}
	if len(overview.JournalistSubscriptions) != 1 {
		t.Fatalf("journalist subscriptions = %d, want 1", len(overview.JournalistSubscriptions))
	}
	if overview.JournalistSubscriptions[0].PublisherName != "Herald" {
		t.Errorf("publisher name = %q, want Herald", overview.JournalistSubscriptions[0].PublisherName)
	}
	if len(overview.RecentArticles) != 1 || overview.RecentArticles[0].Title != "herald story" {
		t.Errorf("recent articles = %+v, want only the herald story", overview.RecentArticles)
	}
}

func TestOverviewEmptyWithoutSubscriptions(t *testing.T) {
	env := newTestEnv(t)
	svc := env.subscriptionService()
	reader := env.createUser(t, "rita", db_models.RoleReader)

	overview, err := svc.Overview(context.Background(), reader.ID, db_models.RoleReader)
	if err != nil {
		t.Fatalf("Overview: %v", err)
	}
	if overview.TotalSubscriptions != 0 || len(overview.RecentArticles) != 0 {
		t.Errorf("overview not empty: %+v", overview)
	}
}
