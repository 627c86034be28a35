package article_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"yournews/internal/repositories"
	"yournews/internal/services"
)

var Module = fx.Provide(
	provideArticleService, provideArticleRepo)

func provideArticleRepo(db *gorm.DB) repositories.ArticleRepository {
	return repositories.NewArticleRepository(db)
}

func provideArticleService(
	articleRepo repositories.ArticleRepository,
	profileRepo repositories.ProfileRepository,
	subscriptionRepo repositories.SubscriptionRepository,
	notifier services.NotifierService,
) services.ArticleServiceInterface {
	return services.NewArticleService(articleRepo, profileRepo, subscriptionRepo, notifier)
}
