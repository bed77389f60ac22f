package database

import (
	"fmt"
	"log"
	"os"
	"strings"

	"prestige-backend/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Connect opens the database named by DATABASE_URL. A "sqlite:" prefix selects a
// local SQLite file for development; anything else is handed to the postgres driver.
func Connect() (*gorm.DB, error) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "host=localhost user=postgres password=postgres dbname=prestige_motors port=5432 sslmode=disable"
	}

	if path, ok := strings.CutPrefix(dsn, "sqlite:"); ok {
		return OpenSQLite(path)
	}

	// Heroku-style URLs use the legacy scheme.
	if strings.HasPrefix(dsn, "postgres://") {
		dsn = "postgresql://" + strings.TrimPrefix(dsn, "postgres://")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	return db, nil
}

// OpenSQLite opens a SQLite database and creates the schema.
func OpenSQLite(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	// In-memory databases are per connection.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

func Migrate(db *gorm.DB) error {
	// The model tags use postgres defaults such as gen_random_uuid(), which SQLite
	// cannot AutoMigrate.
	if db.Dialector.Name() == "sqlite" {
		return createSQLiteTables(db)
	}

	// Ensure PostgreSQL has gen_random_uuid() available (pgcrypto extension).
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto;`).Error; err != nil {
		return fmt.Errorf("failed to enable pgcrypto extension: %w", err)
	}

	return db.AutoMigrate(
		&models.User{},
		&models.Car{},
		&models.CarImage{},
		&models.Inquiry{},
		&models.Favorite{},
		&models.CartItem{},
	)
}

// CreateDefaultAdmin creates the administrator account when no user holds the
// configured username or email.
func CreateDefaultAdmin(db *gorm.DB) error {
	adminUsername := os.Getenv("ADMIN_USERNAME")
	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPassword := os.Getenv("ADMIN_PASSWORD")

	if adminUsername == "" {
		adminUsername = "admin"
	}
	if adminEmail == "" {
		adminEmail = "admin@prestigemotors.com"
	}
	if adminPassword == "" {
		adminPassword = "admin123"
		log.Println("WARNING: ADMIN_PASSWORD not set - default admin uses the built-in password")
	}

	var count int64
	if err := db.Model(&models.User{}).
		Where("username = ? OR email = ?", adminUsername, adminEmail).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.User{
		Username:     adminUsername,
		Email:        adminEmail,
		PasswordHash: string(hashedPassword),
		FullName:     "Admin User",
		IsAdmin:      true,
	}

	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	log.Printf("Default admin created: %s", adminEmail)
	return nil
}
