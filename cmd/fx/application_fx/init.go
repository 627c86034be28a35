package application_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"yournews/internal/repositories"
	"yournews/internal/services"
)

var Module = fx.Provide(
	provideApplicationService, provideApplicationRepo)

func provideApplicationRepo(db *gorm.DB) repositories.ApplicationRepository {
	return repositories.NewApplicationRepository(db)
}

func provideApplicationService(
	db *gorm.DB,
	applicationRepo repositories.ApplicationRepository,
	notifier services.NotifierService,
) services.ApplicationServiceInterface {
	return services.NewApplicationService(db, applicationRepo, notifier)
}
