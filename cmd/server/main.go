package main

import (
	"fmt"

	"github.com/Forgos-ynov/Vault-API/infra/initializer"
	"github.com/Forgos-ynov/Vault-API/pkg/config"
	"github.com/Forgos-ynov/Vault-API/webapi"
	"github.com/charmbracelet/log"
)

// @title Vault API
// @version 1.0.0
// @description Banking ledger API: users, current accounts, savings booklets and interest tiers
// @host localhost:3000
// @BasePath /
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description "Enter your Bearer token in the format: `Bearer {token}`"
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	deps, err := initializer.InitializeDependencies(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	app := webapi.NewApp(cfg, webapi.Services{
		Auth:           deps.Auth,
		Booklet:        deps.Booklet,
		BookletPercent: deps.BookletPercent,
		CurrentAccount: deps.CurrentAccount,
		User:           deps.User,
		Picture:        deps.Picture,
	})

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	deps.Logger.Info("starting server",
		"env", cfg.Env,
		"address", addr,
		"scheme", cfg.Server.Scheme,
	)
	return app.Listen(addr)
}
