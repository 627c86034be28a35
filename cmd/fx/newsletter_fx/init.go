package newsletter_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"yournews/internal/repositories"
	"yournews/internal/services"
)

var Module = fx.Provide(
	provideNewsletterService, provideNewsletterRepo)

func provideNewsletterRepo(db *gorm.DB) repositories.NewsletterRepository {
	return repositories.NewNewsletterRepository(db)
}

func provideNewsletterService(
	newsletterRepo repositories.NewsletterRepository,
	profileRepo repositories.ProfileRepository,
	subscriptionRepo repositories.SubscriptionRepository,
	notifier services.NotifierService,
) services.NewsletterServiceInterface {
	return services.NewNewsletterService(newsletterRepo, profileRepo, subscriptionRepo, notifier)
}
