package database

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/sharath018/event-registration-backend/config"
	"github.com/sharath018/event-registration-backend/internal/event"
	"github.com/sharath018/event-registration-backend/internal/registration"
)

// Connect opens the postgres pool described by cfg.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	gormLogger := logger.Default.LogMode(logger.Warn)
	if !cfg.IsProduction() {
		gormLogger = logger.Default.LogMode(logger.Info)
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger:  gormLogger,
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", cfg.RedactedDSN(), err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	log.Info().Str("dsn", cfg.RedactedDSN()).Msg("✅ Connected to database")
	return db, nil
}

// Migrate creates or updates the events and registrations tables.
func Migrate(db *gorm.DB) error {
	log.Info().Msg("🔄 Running database migrations...")
	if err := db.AutoMigrate(&event.Event{}, &registration.Registration{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	log.Info().Msg("✅ Database migrations completed")
	return nil
}
