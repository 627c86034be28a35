package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"yournews/cmd/fx/account_fx"
	"yournews/cmd/fx/application_fx"
	"yournews/cmd/fx/article_fx"
	"yournews/cmd/fx/controllers_fx"
	"yournews/cmd/fx/dashboard_fx"
	"yournews/cmd/fx/db_fx"
	"yournews/cmd/fx/mail_fx"
	"yournews/cmd/fx/newsletter_fx"
	"yournews/cmd/fx/notifier_fx"
	"yournews/cmd/fx/profile_fx"
	"yournews/cmd/fx/subscription_fx"
	"yournews/cmd/fx/twitter_fx"
	"yournews/internal/api/controllers"
	"yournews/internal/infra"
	"yournews/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	app := fx.New(
		db_fx.Module,
		mail_fx.Module,
		twitter_fx.Module,
		notifier_fx.Module,
		account_fx.Module,
		profile_fx.Module,
		application_fx.Module,
		article_fx.Module,
		newsletter_fx.Module,
		subscription_fx.Module,
		dashboard_fx.Module,
		controllers_fx.Module,

		fx.Invoke(MigrateSchema),
		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func MigrateSchema(db *gorm.DB) {
	if err := infra.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate schema: %v", err)
	}
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, db *gorm.DB) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			infra.ClosePostgresql(db)
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	applicationController *controllers.ApplicationController,
	articleController *controllers.ArticleController,
	newsletterController *controllers.NewsletterController,
	subscriptionController *controllers.SubscriptionController,
	directoryController *controllers.DirectoryController,
	dashboardController *controllers.DashboardController,
) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r,
		accountController,
		applicationController,
		articleController,
		newsletterController,
		subscriptionController,
		directoryController,
		dashboardController,
	)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	applicationController *controllers.ApplicationController,
	articleController *controllers.ArticleController,
	newsletterController *controllers.NewsletterController,
	subscriptionController *controllers.SubscriptionController,
	directoryController *controllers.DirectoryController,
	dashboardController *controllers.DashboardController,
) {

	accounts := r.Group("/accounts")
	accounts.POST("/register", accountController.Register)
	accounts.POST("/login", accountController.Login)
	accounts.POST("/forgot-password", accountController.ForgotPassword)
	accounts.POST("/reset-password", accountController.ResetPassword)

	authed := r.Group("/")
	authed.Use(middleware.JWTAuthMiddleware())

	applications := authed.Group("/applications")
	applications.POST("", applicationController.Submit)
	applications.GET("/mine", applicationController.ListMine)
	applications.GET("", middleware.StaffMiddleware(), applicationController.ListAll)
	applications.POST("/:id/approve", middleware.StaffMiddleware(), applicationController.Approve)
	applications.POST("/:id/reject", middleware.StaffMiddleware(), applicationController.Reject)

	articles := authed.Group("/articles")
	articles.GET("", articleController.List)
	articles.POST("", articleController.Create)
	articles.GET("/by_journalist", articleController.ByJournalist)
	articles.GET("/by_publisher", articleController.ByPublisher)
	articles.GET("/:id", articleController.Detail)
	articles.PUT("/:id", articleController.Update)
	articles.DELETE("/:id", articleController.Delete)
	articles.POST("/:id/approve", articleController.Approve)
	articles.POST("/:id/reject", articleController.Reject)

	newsletters := authed.Group("/newsletters")
	newsletters.GET("", newsletterController.List)
	newsletters.POST("", newsletterController.Create)
	newsletters.GET("/:id", newsletterController.Detail)
	newsletters.PUT("/:id", newsletterController.Update)
	newsletters.DELETE("/:id", newsletterController.Delete)

	journalists := authed.Group("/journalists")
	journalists.GET("", directoryController.Journalists)
	journalists.POST("/:id/subscribe", subscriptionController.SubscribeJournalist)
	journalists.POST("/:id/unsubscribe", subscriptionController.UnsubscribeJournalist)

	publishers := authed.Group("/publishers")
	publishers.GET("", directoryController.Publishers)
	publishers.POST("/:id/subscribe", subscriptionController.SubscribePublisher)
	publishers.POST("/:id/unsubscribe", subscriptionController.UnsubscribePublisher)

	authed.GET("/subscriptions", subscriptionController.Overview)

	dashboards := authed.Group("/dashboards")
	dashboards.GET("/editor", dashboardController.Editor)
	dashboards.GET("/journalist", dashboardController.Journalist)
	dashboards.GET("/publisher", dashboardController.Publisher)
}
