package store

import (
	"errors"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/stajdefterim/backend/internal/config"
	"github.com/stajdefterim/backend/internal/models"
)

// ErrNotFound is returned when a query resolves no row.
var ErrNotFound = errors.New("record not found")

// Open creates the GORM connection and runs migrations.
// PostgreSQL is used when a DSN is configured, SQLite otherwise.
func Open(cfg config.DatabaseConfig) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}

	if cfg.DSN != "" {
		db, err = gorm.Open(postgres.Open(cfg.DSN), gormConfig)
	} else {
		db, err = gorm.Open(sqlite.Open(cfg.SQLitePath), gormConfig)
	}
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Internship{},
		&models.Task{},
		&models.Note{},
		&models.DailyProgress{},
		&models.VoiceNote{},
		&models.Reminder{},
		&models.NotificationSettings{},
	); err != nil {
		return nil, err
	}

	return db, nil
}

func asNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
