package dashboard_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"yournews/internal/repositories"
	"yournews/internal/services"
)

var Module = fx.Provide(
	provideDashboardService, provideDashboardRepo)

func provideDashboardRepo(db *gorm.DB) repositories.DashboardRepository {
	return repositories.NewDashboardRepository(db)
}

func provideDashboardService(
	dashboardRepo repositories.DashboardRepository,
	profileRepo repositories.ProfileRepository,
	newsletterRepo repositories.NewsletterRepository,
	subscriptionRepo repositories.SubscriptionRepository,
) services.DashboardServiceInterface {
	return services.NewDashboardService(dashboardRepo, profileRepo, newsletterRepo, subscriptionRepo)
}
