package database

import (
	"database/sql"
	"log"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/supporthub/ai-support-bot-be/internal/models"
)

// DB wraps both GORM and sql.DB handles over the SQLite file.
type DB struct {
	*sql.DB
	GORM *gorm.DB
}

// NewDB opens the SQLite database with WAL mode enabled and runs
// auto-migration for the application models.
func NewDB(dbFile string) *DB {
	if dbFile == "" {
		log.Fatal("❌ DB_FILE is empty")
	}

	// WAL keeps concurrent readers consistent while ingestion appends.
	dsn := dbFile + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"
	gormDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatalf("❌ Failed to open database: %v", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		log.Fatalf("❌ Failed to get sql.DB: %v", err)
	}

	// Connection pool settings
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(60 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		log.Fatalf("❌ Failed to ping database: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&models.Client{},
		&models.FAQ{},
		&models.AnalyticsEvent{},
		&models.WelcomeMessage{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("❌ Failed to auto-migrate: %v", err)
	}

	log.Println("✅ Database connected (SQLite)!")
	return &DB{
		DB:   sqlDB,
		GORM: gormDB,
	}
}

func (db *DB) Close() error {
	log.Println("🔌 Closing database connection...")
	return db.DB.Close()
}
