package config

import (
	"fmt"
	"log"
	"time"

	"gymdesk/internal/adapters/persistence/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB is the global database instance
var DB *gorm.DB

// ConnectDatabase opens the SQLite database file
func ConnectDatabase(cfg *Config) (*gorm.DB, error) {
	dsn := buildDSN(cfg.Database)

	// Configure GORM logger based on mode
	var gormLogger logger.Interface
	if cfg.IsDev() {
		gormLogger = logger.Default.LogMode(logger.Info)
	} else {
		gormLogger = logger.Default.LogMode(logger.Error)
	}

	// Open connection
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:                 gormLogger,
		SkipDefaultTransaction: true, // Better performance
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying sql.DB for connection pool settings
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// SQLite allows a single writer; one open connection keeps every
	// operation serialized the way the desktop front end expects.
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetConnMaxLifetime(time.Hour)

	// Test connection
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// Set global DB instance
	DB = db

	log.Printf("✅ Database connected successfully [%s]", cfg.Database.Path)

	return db, nil
}

// buildDSN returns the database connection string.
// _foreign_keys=on enables the payments→members cascade constraint,
// which SQLite leaves off by default.
func buildDSN(d DatabaseConfig) string {
	return fmt.Sprintf("%s?_foreign_keys=on", d.Path)
}

// CloseDatabase closes the database connection
func CloseDatabase() error {
	if DB == nil {
		return nil
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}

// HealthCheck checks if database is healthy
func HealthCheck() error {
	if DB == nil {
		return fmt.Errorf("database not initialized")
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}

	return sqlDB.Ping()
}

// ResetDatabase drops all three tables, recreates the schema and
// reapplies the seed data. Destructive and irreversible; exposed only
// in dev mode for development and testing.
func ResetDatabase(db *gorm.DB) error {
	log.Println("🛑 Resetting database...")

	// Drop order respects the payments→members foreign key
	if err := db.Migrator().DropTable(&models.Payment{}, &models.Member{}, &models.User{}); err != nil {
		return fmt.Errorf("failed to drop tables: %w", err)
	}

	if err := models.AutoMigrate(db); err != nil {
		return fmt.Errorf("failed to recreate schema: %w", err)
	}

	if err := NewSeeder(db).Run(); err != nil {
		return fmt.Errorf("failed to reseed: %w", err)
	}

	log.Println("✅ Database reset complete")
	return nil
}
