package profile_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"yournews/internal/repositories"
	"yournews/internal/services"
)

var Module = fx.Provide(
	provideProfileRepo, provideDirectoryService)

func provideProfileRepo(db *gorm.DB) repositories.ProfileRepository {
	return repositories.NewProfileRepository(db)
}

func provideDirectoryService(profileRepo repositories.ProfileRepository) services.DirectoryServiceInterface {
	return services.NewDirectoryService(profileRepo)
}
