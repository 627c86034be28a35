package subscription_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"yournews/internal/repositories"
	"yournews/internal/services"
)

var Module = fx.Provide(
	provideSubscriptionService, provideSubscriptionRepo)

func provideSubscriptionRepo(db *gorm.DB) repositories.SubscriptionRepository {
	return repositories.NewSubscriptionRepository(db)
}

func provideSubscriptionService(
	subscriptionRepo repositories.SubscriptionRepository,
	profileRepo repositories.ProfileRepository,
	articleRepo repositories.ArticleRepository,
) services.SubscriptionServiceInterface {
	return services.NewSubscriptionService(subscriptionRepo, profileRepo, articleRepo)
}
