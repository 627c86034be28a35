package account_fx

import (
	"os"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"yournews/internal/repositories"
	"yournews/internal/services"
)

var Module = fx.Provide(
	provideAccountService, provideUserRepo, provideResetTokenRepo)

func provideUserRepo(db *gorm.DB) repositories.UserRepository {
	return repositories.NewUserRepository(db)
}

func provideResetTokenRepo(db *gorm.DB) repositories.ResetTokenRepository {
	return repositories.NewResetTokenRepository(db)
}

func provideAccountService(
	userRepo repositories.UserRepository,
	tokenRepo repositories.ResetTokenRepository,
	notifier services.NotifierService,
) services.AccountServiceInterface {
	return services.NewAccountService(userRepo, tokenRepo, notifier, os.Getenv("APP_BASE_URL"))
}
