package config

import (
	"fmt"
	"log"
	"os"

	"restaurant-cms/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// BootstrapAdmin holds the seed credentials used when the users table is
// empty on startup. This is the only remnant of the demo login mode: the
// credential itself is never compared at login time, it just creates the
// first admin account.
type BootstrapAdmin struct {
	Username string
	Email    string
	Password string
}

func GetBootstrapAdmin() BootstrapAdmin {
	return BootstrapAdmin{
		Username: getEnv("ADMIN_USERNAME", "admin"),
		Email:    getEnv("ADMIN_EMAIL", "admin@bellavista.example"),
		Password: getEnv("ADMIN_PASSWORD", "change-me-on-first-login"),
	}
}

func InitDB() *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_USER", "postgres"),
		getEnv("DB_PASSWORD", "postgres"),
		getEnv("DB_NAME", "restaurant_cms"),
		getEnv("DB_SSLMODE", "disable"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	log.Println("Database connected and migrated")
	return db
}

// Migrate runs the schema migration for all models.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Review{},
		&models.ContactMessage{},
		&models.ContentDocument{},
	)
}
