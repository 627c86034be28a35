package infra

import (
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"yournews/internal/models/db_models"
)

func InitPostgresql() *gorm.DB {
	dsn := os.Getenv("POSTGRES_URL")

	connectionPool, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Printf("Error connecting to database: %v", err)
		log.Fatal("Error connecting to database")
	}

	return connectionPool
}

// Migrate keeps the schema in sync with the entity set.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&db_models.User{},
		&db_models.Publisher{},
		&db_models.Editor{},
		&db_models.Journalist{},
		&db_models.Article{},
		&db_models.Newsletter{},
		&db_models.JournalistSubscription{},
		&db_models.PublisherSubscription{},
		&db_models.RoleApplication{},
		&db_models.ResetToken{},
		&db_models.NotificationLog{},
	)
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting database instance: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	} else {
		log.Println("PostgreSQL database connection closed successfully")
	}
}
