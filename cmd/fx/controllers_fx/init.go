package controllers_fx

import (
	"go.uber.org/fx"

	"yournews/internal/api/controllers"
)

var Module = fx.Provide(
	controllers.NewAccountController,
	controllers.NewApplicationController,
	controllers.NewArticleController,
	controllers.NewNewsletterController,
	controllers.NewSubscriptionController,
	controllers.NewDirectoryController,
	controllers.NewDashboardController,
)
