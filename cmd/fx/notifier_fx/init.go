package notifier_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"yournews/internal/repositories"
	"yournews/internal/services"
)

var Module = fx.Provide(
	provideNotifierService, provideNotificationRepo)

func provideNotificationRepo(db *gorm.DB) repositories.NotificationRepository {
	return repositories.NewNotificationRepository(db)
}

func provideNotifierService(
	subscriptionRepo repositories.SubscriptionRepository,
	notificationRepo repositories.NotificationRepository,
	mailService services.IMailService,
	tweeter services.TweetPoster,
) services.NotifierService {
	return services.NewNotifierService(subscriptionRepo, notificationRepo, mailService, tweeter)
}
