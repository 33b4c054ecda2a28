package database

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	config "github.com/kipkoech44/study_quiz/configs"
	"github.com/kipkoech44/study_quiz/models"
	"github.com/kipkoech44/study_quiz/utils"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// ConnectDB opens the relational store. With DATABASE_URL set it talks to
// postgres; otherwise it falls back to a local sqlite file, which is the
// development default.
func ConnectDB() *gorm.DB {
	var dialector gorm.Dialector
	if dsn := config.Config("DATABASE_URL"); dsn != "" {
		dialector = postgres.Open(dsn)
	} else {
		path := config.ConfigOr("QUIZ_DB_PATH", "db/database.sqlite")
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			log.Fatalf("🔥 Failed to create database directory: %v", err)
		}
		dialector = sqlite.Open(path)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	if err != nil {
		log.Fatalf("🔥 Failed to connect to database: %v", err)
	}

	fmt.Println("✅ Database connected successfully")
	return db
}

// Migrate brings the schema up to date. DB_RESET=drop first drops every
// table, matching the old destructive sync; only meant for dev/demo runs.
func Migrate(db *gorm.DB) {
	tables := []interface{}{
		&models.User{},
		&models.Question{},
		&models.Answer{},
		&models.UserData{},
		&models.Material{},
	}

	if config.Config("DB_RESET") == "drop" {
		log.Println("DB_RESET=drop set, dropping all tables before migrating")
		if err := db.Migrator().DropTable(tables...); err != nil {
			log.Fatalf("🔥 Failed to drop tables: %v", err)
		}
	}

	if err := db.AutoMigrate(tables...); err != nil {
		log.Fatalf("🔥 Failed to migrate database: %v", err)
	}
	fmt.Println("✅ Database migration successful")
}

// SeedAdmin creates the admin account used by the protected /api/v1 admin
// routes, if it does not exist yet.
func SeedAdmin(db *gorm.DB) {
	adminEmail := config.Config("ADMIN_EMAIL")
	adminPassword := config.Config("ADMIN_PASSWORD")
	if adminEmail == "" || adminPassword == "" {
		log.Println("ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin seed")
		return
	}

	var count int64
	if err := db.Model(&models.User{}).Where("email = ?", adminEmail).Count(&count).Error; err != nil {
		log.Fatalf("🔥 Failed to check for admin user: %v", err)
		return
	}
	if count > 0 {
		log.Println("Admin user already exists.")
		return
	}

	hashedPassword, err := utils.HashPassword(adminPassword)
	if err != nil {
		log.Fatalf("🔥 Failed to hash admin password: %v", err)
		return
	}

	adminUser := models.User{
		Email:          adminEmail,
		FirstName:      config.ConfigOr("ADMIN_FIRST_NAME", "Quiz"),
		LastName:       config.ConfigOr("ADMIN_LAST_NAME", "Admin"),
		HashedPassword: hashedPassword,
		Role:           "admin",
	}
	if err := db.Create(&adminUser).Error; err != nil {
		log.Fatalf("🔥 Failed to seed admin user: %v", err)
		return
	}

	log.Println("✅ Admin user seeded successfully")
}
