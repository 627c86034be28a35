package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"gorm.io/datatypes"

	"yournews/internal/models/db_models"
	"yournews/internal/repositories"
)

// NotifierService fans out emails and tweets after content or role events.
// Every delivery is best-effort: failures are logged and recorded, never
// bubbled up to the caller.
type NotifierService interface {
	NotifyRoleDecision(ctx context.Context, user *db_models.User, role db_models.Role, approved bool)
	NotifyArticleStatus(ctx context.Context, article *db_models.Article)
	FanOutArticle(ctx context.Context, article *db_models.Article)
	FanOutNewsletter(ctx context.Context, newsletter *db_models.Newsletter)
	NotifyPasswordReset(ctx context.Context, user *db_models.User, resetURL string)
}

type notifierService struct {
	subscriptionRepo repositories.SubscriptionRepository
	notificationRepo repositories.NotificationRepository
	mail             IMailService
	tweeter          TweetPoster
}

func NewNotifierService(
	subscriptionRepo repositories.SubscriptionRepository,
	notificationRepo repositories.NotificationRepository,
	mail IMailService,
	tweeter TweetPoster,
) NotifierService {
	return &notifierService{
		subscriptionRepo: subscriptionRepo,
		notificationRepo: notificationRepo,
		mail:             mail,
		tweeter:          tweeter,
	}
}

func (n *notifierService) NotifyRoleDecision(ctx context.Context, user *db_models.User, role db_models.Role, approved bool) {
	var subject, body, kind string
	if approved {
		subject, body = buildRoleApprovedEmail(user, role)
		kind = db_models.NotifyRoleApproved
	} else {
		subject, body = buildRoleRejectedEmail(user, role)
		kind = db_models.NotifyRoleRejected
	}
	n.deliver(ctx, kind, user.Email, subject, body, map[string]any{
		"user_id": user.ID.String(),
		"role":    string(role),
	})
}

func (n *notifierService) NotifyArticleStatus(ctx context.Context, article *db_models.Article) {
	author := article.Journalist.User
	subject, body := buildArticleStatusEmail(author.Username, article)
	n.deliver(ctx, db_models.NotifyArticleStatus, author.Email, subject, body, map[string]any{
		"article_id": article.ID.String(),
		"status":     string(article.Status),
	})
}

func (n *notifierService) FanOutArticle(ctx context.Context, article *db_models.Article) {
	subscribers, err := n.subscriptionRepo.ListActiveSubscribers(ctx, article.JournalistID, article.PublisherID)
	if err != nil {
		log.Printf("article fan-out: listing subscribers failed: %v", err)
		subscribers = nil
	}

	for _, sub := range dedupByEmail(subscribers) {
		subject, body := buildNewArticleEmail(sub.Username, article)
		n.deliver(ctx, db_models.NotifyArticleFanout, sub.Email, subject, body, map[string]any{
			"article_id": article.ID.String(),
		})
	}

	tweet := fmt.Sprintf("New article published: %s\nBy: %s", article.Title, article.Journalist.User.FullName())
	if err := n.tweeter.PostTweet(ctx, tweet); err != nil {
		log.Printf("article fan-out: tweet failed for %s: %v", article.ID, err)
	}
}

func (n *notifierService) FanOutNewsletter(ctx context.Context, newsletter *db_models.Newsletter) {
	owner := newsletter.Journalist.User
	subject, body := buildNewsletterConfirmationEmail(owner.Username, newsletter)
	n.deliver(ctx, db_models.NotifyNewsletterOwner, owner.Email, subject, body, map[string]any{
		"newsletter_id": newsletter.ID.String(),
	})

	subscribers, err := n.subscriptionRepo.ListActiveSubscribers(ctx, newsletter.JournalistID, newsletter.PublisherID)
	if err != nil {
		log.Printf("newsletter fan-out: listing subscribers failed: %v", err)
		return
	}

	for _, sub := range dedupByEmail(subscribers) {
		if sub.Email == owner.Email {
			continue
		}
		subject, body := buildNewNewsletterEmail(sub.Username, newsletter)
		n.deliver(ctx, db_models.NotifyNewsletterFanout, sub.Email, subject, body, map[string]any{
			"newsletter_id": newsletter.ID.String(),
		})
	}
}

func (n *notifierService) NotifyPasswordReset(ctx context.Context, user *db_models.User, resetURL string) {
	subject, body := buildPasswordResetEmail(user, resetURL)
	n.deliver(ctx, db_models.NotifyPasswordReset, user.Email, subject, body, map[string]any{
		"user_id": user.ID.String(),
	})
}

// deliver sends one email and records the outcome.
func (n *notifierService) deliver(ctx context.Context, kind, recipient, subject, body string, payload map[string]any) {
	sendErr := n.mail.Send(recipient, subject, body)
	if sendErr != nil {
		log.Printf("notification %s to %s failed: %v", kind, recipient, sendErr)
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		raw = []byte("{}")
	}
	entry := &db_models.NotificationLog{
		Kind:      kind,
		Recipient: recipient,
		Subject:   subject,
		Payload:   datatypes.JSON(raw),
		Delivered: sendErr == nil,
	}
	if err := n.notificationRepo.Insert(ctx, entry); err != nil {
		log.Printf("recording notification %s to %s failed: %v", kind, recipient, err)
	}
}

// dedupByEmail keeps the first row per email address, preserving order. A
// reader subscribed to both the journalist and the publisher gets one email.
func dedupByEmail(rows []repositories.SubscriberRow) []repositories.SubscriberRow {
	seen := make(map[string]struct{}, len(rows))
	out := make([]repositories.SubscriberRow, 0, len(rows))
	for _, row := range rows {
		if _, ok := seen[row.Email]; ok {
			continue
		}
		seen[row.Email] = struct{}{}
		out = append(out, row)
	}
	return out
}
