package database

import (
	"fmt"
	"log"
	"time"

	"github.com/dreamseak/bibprojekt2/pkg/config"
	"github.com/dreamseak/bibprojekt2/pkg/models"
	"github.com/dreamseak/bibprojekt2/pkg/retry"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Init opens the configured storage backend and migrates the schema.
// DB_DRIVER selects the backend: "sqlite" (default, file at DB_PATH)
// or "postgres" (DSN assembled from DB_HOST/DB_PORT/DB_USER/
// DB_PASSWORD/DB_NAME). The service logic is identical either way;
// only the dialector differs.
func Init() (*gorm.DB, error) {
	driver := config.GetEnv("DB_DRIVER", "sqlite")

	var dialector gorm.Dialector
	switch driver {
	case "postgres":
		host := config.GetEnv("DB_HOST", "postgres")
		port := config.GetEnv("DB_PORT", "5432")
		user := config.GetEnv("DB_USER", "program")
		password := config.GetEnv("DB_PASSWORD", "test")
		dbname := config.GetEnv("DB_NAME", "bibprojekt")

		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
			host, user, password, dbname, port)
		log.Printf("Connecting to postgres database: %s@%s:%s/%s", user, host, port, dbname)
		dialector = postgres.Open(dsn)
	case "sqlite":
		path := config.GetEnv("DB_PATH", "bibprojekt.db")
		log.Printf("Opening sqlite database: %s", path)
		dialector = sqlite.Open(path)
	default:
		return nil, fmt.Errorf("unknown DB_DRIVER %q", driver)
	}

	var db *gorm.DB
	attempts := config.GetEnvInt("DB_CONNECT_ATTEMPTS", 10)
	err := retry.Do("database connection", attempts, 5*time.Second, func() error {
		var openErr error
		db, openErr = gorm.Open(dialector, &gorm.Config{TranslateError: true})
		return openErr
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("database migration failed: %w", err)
	}

	log.Println("Database connection established successfully")
	return db, nil
}

// Migrate creates or updates the tables for all three collections.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.Account{}, &models.Announcement{}, &models.Loan{})
}
