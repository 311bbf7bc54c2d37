// Package infra wires the persistence engine.
package infra

import (
	"errors"
	"time"

	"github.com/Forgos-ynov/Vault-API/pkg/config"
	"github.com/Forgos-ynov/Vault-API/pkg/domain"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDBConnection opens the postgres connection described by cfg. Query
// logging follows the app environment.
func NewDBConnection(cfg *config.DB, appEnv string) (*gorm.DB, error) {
	if cfg == nil || cfg.Url == "" {
		return nil, errors.New("DATABASE_URL is not set")
	}

	logMode := logger.Silent
	if appEnv == "development" {
		logMode = logger.Info
	}

	connection, err := gorm.Open(postgres.Open(cfg.Url), &gorm.Config{
		Logger:                 logger.Default.LogMode(logMode),
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := connection.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(1 * time.Hour)

	return connection, nil
}

// Migrate creates or updates the schema for every persisted record.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.BookletPercent{},
		&domain.CurrentAccount{},
		&domain.Booklet{},
		&domain.User{},
		&domain.Picture{},
	)
}
