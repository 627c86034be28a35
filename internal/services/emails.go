package services

import (
	"fmt"
	"strings"

	"yournews/internal/models/db_models"
)

// Email builders. Each returns the subject and plain body; the mail service
// wraps them in its templates.

func buildPasswordResetEmail(user *db_models.User, resetURL string) (string, string) {
	subject := "Password Reset"
	body := fmt.Sprintf(
		"Hi %s,\nHere is a link to reset your password: %s",
		user.Username, resetURL,
	)
	return subject, body
}

func buildRoleApprovedEmail(user *db_models.User, role db_models.Role) (string, string) {
	subject := "Your role application was approved"
	body := fmt.Sprintf(
		"Hi %s,\n\nCongratulations! Your application for the role '%s' has been approved.\n"+
			"You can now log in and start using your new permissions.",
		user.Username, role,
	)
	return subject, body
}

func buildRoleRejectedEmail(user *db_models.User, role db_models.Role) (string, string) {
	subject := "Your role application was rejected"
	body := fmt.Sprintf(
		"Hi %s,\n\nWe're sorry to inform you that your application for the role '%s' has been rejected.\n"+
			"Feel free to apply again in the future.",
		user.Username, role,
	)
	return subject, body
}

func buildArticleStatusEmail(username string, article *db_models.Article) (string, string) {
	subject := fmt.Sprintf("Your Article '%s' has been %s", article.Title, capitalize(string(article.Status)))
	body := fmt.Sprintf(
		"Hi %s,\n\nYour article titled '%s' has been %s by the editor.\n\n"+
			"Thank you for contributing to YourNews!",
		username, article.Title, article.Status,
	)
	return subject, body
}

func buildNewArticleEmail(subscriberUsername string, article *db_models.Article) (string, string) {
	subject := fmt.Sprintf("New Article: %s", article.Title)
	body := fmt.Sprintf(
		"Hi %s,\n\nA new article has been published by %s!\n\n"+
			"Title: %s\nPublisher: %s\n\n"+
			"Read the full article at YourNews.\n\n"+
			"Best regards,\nThe YourNews Team",
		subscriberUsername, article.Journalist.User.FullName(), article.Title, article.Publisher.Name,
	)
	return subject, body
}

func buildNewNewsletterEmail(subscriberUsername string, newsletter *db_models.Newsletter) (string, string) {
	preview := newsletter.Content
	if len(preview) > 200 {
		preview = preview[:200] + "..."
	}
	subject := fmt.Sprintf("New Newsletter: %s", newsletter.Title)
	body := fmt.Sprintf(
		"Hi %s,\n\nA new newsletter has been published by %s!\n\n"+
			"Title: %s\nPublisher: %s\n\n"+
			"Content Preview:\n%s\n\n"+
			"Read the full newsletter at YourNews.\n\n"+
			"Best regards,\nThe YourNews Team",
		subscriberUsername, newsletter.Journalist.User.FullName(), newsletter.Title, newsletter.Publisher.Name, preview,
	)
	return subject, body
}

func buildNewsletterConfirmationEmail(username string, newsletter *db_models.Newsletter) (string, string) {
	subject := fmt.Sprintf("Newsletter Published: %s", newsletter.Title)
	body := fmt.Sprintf(
		"Hi %s,\n\nYour newsletter '%s' has been successfully published!\n\n"+
			"Your newsletter is now live and visible to all subscribers.\n\n"+
			"Thank you for contributing to YourNews!\n\n"+
			"Best regards,\nThe YourNews Team",
		username, newsletter.Title,
	)
	return subject, body
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
