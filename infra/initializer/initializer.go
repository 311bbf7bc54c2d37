// Package initializer wires configuration, logging, persistence, caching
// and the business services into one dependency graph.
package initializer

import (
	"fmt"
	"log/slog"

	"github.com/Forgos-ynov/Vault-API/infra"
	infracache "github.com/Forgos-ynov/Vault-API/infra/cache"
	infrarepo "github.com/Forgos-ynov/Vault-API/infra/repository"
	"github.com/Forgos-ynov/Vault-API/infra/storage"
	"github.com/Forgos-ynov/Vault-API/pkg/cache"
	"github.com/Forgos-ynov/Vault-API/pkg/config"
	authsvc "github.com/Forgos-ynov/Vault-API/pkg/service/auth"
	bookletsvc "github.com/Forgos-ynov/Vault-API/pkg/service/booklet"
	percentsvc "github.com/Forgos-ynov/Vault-API/pkg/service/bookletpercent"
	accountsvc "github.com/Forgos-ynov/Vault-API/pkg/service/currentaccount"
	picturesvc "github.com/Forgos-ynov/Vault-API/pkg/service/picture"
	usersvc "github.com/Forgos-ynov/Vault-API/pkg/service/user"
	"gorm.io/gorm"
)

// Dependencies holds everything the server needs at startup.
type Dependencies struct {
	Logger *slog.Logger
	DB     *gorm.DB
	Cache  cache.TagCache

	Auth           *authsvc.Service
	Booklet        *bookletsvc.Service
	BookletPercent *percentsvc.Service
	CurrentAccount *accountsvc.Service
	User           *usersvc.Service
	Picture        *picturesvc.Service
}

// InitializeDependencies builds the full graph from config. The cache
// backend is selected here so the services only ever see the interface.
func InitializeDependencies(cfg *config.App) (*Dependencies, error) {
	logger := setupLogger(cfg.Log)

	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := infra.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	tagCache, err := newTagCache(cfg, logger)
	if err != nil {
		return nil, err
	}

	store, err := storage.NewPictureStore(cfg.Upload)
	if err != nil {
		return nil, fmt.Errorf("failed to create picture store: %w", err)
	}

	booklets := infrarepo.NewBookletRepository(db)
	percents := infrarepo.NewBookletPercentRepository(db)
	accounts := infrarepo.NewCurrentAccountRepository(db)
	users := infrarepo.NewUserRepository(db)
	pictures := infrarepo.NewPictureRepository(db)

	return &Dependencies{
		Logger:         logger,
		DB:             db,
		Cache:          tagCache,
		Auth:           authsvc.New(users, cfg.Jwt, logger),
		Booklet:        bookletsvc.New(booklets, percents, accounts, tagCache, logger),
		BookletPercent: percentsvc.New(percents, tagCache, logger),
		CurrentAccount: accountsvc.New(accounts, tagCache, logger),
		User:           usersvc.New(users, accounts, tagCache, logger),
		Picture:        picturesvc.New(pictures, store, logger),
	}, nil
}

func newTagCache(cfg *config.App, logger *slog.Logger) (cache.TagCache, error) {
	switch cfg.Cache.Backend {
	case "redis":
		c, err := infracache.NewRedisTagCache(cfg.Redis, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		return c, nil
	default:
		return infracache.NewMemoryTagCache(logger), nil
	}
}
