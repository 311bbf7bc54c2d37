// Package webapi assembles the Fiber application.
package webapi

import (
	"github.com/Forgos-ynov/Vault-API/pkg/config"
	authsvc "github.com/Forgos-ynov/Vault-API/pkg/service/auth"
	bookletsvc "github.com/Forgos-ynov/Vault-API/pkg/service/booklet"
	percentsvc "github.com/Forgos-ynov/Vault-API/pkg/service/bookletpercent"
	accountsvc "github.com/Forgos-ynov/Vault-API/pkg/service/currentaccount"
	picturesvc "github.com/Forgos-ynov/Vault-API/pkg/service/picture"
	usersvc "github.com/Forgos-ynov/Vault-API/pkg/service/user"
	"github.com/Forgos-ynov/Vault-API/webapi/auth"
	"github.com/Forgos-ynov/Vault-API/webapi/booklet"
	"github.com/Forgos-ynov/Vault-API/webapi/bookletpercent"
	"github.com/Forgos-ynov/Vault-API/webapi/common"
	"github.com/Forgos-ynov/Vault-API/webapi/currentaccount"
	"github.com/Forgos-ynov/Vault-API/webapi/picture"
	"github.com/Forgos-ynov/Vault-API/webapi/user"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// Services groups the wired business services the routes depend on.
type Services struct {
	Auth           *authsvc.Service
	Booklet        *bookletsvc.Service
	BookletPercent *percentsvc.Service
	CurrentAccount *accountsvc.Service
	User           *usersvc.Service
	Picture        *picturesvc.Service
}

// NewApp builds the Fiber application: rate limiting, panic recovery,
// static picture serving and the per-entity routes.
func NewApp(cfg *config.App, svcs Services) *fiber.App {
	app := fiber.New(fiber.Config{
		JSONEncoder: json.Marshal,
		JSONDecoder: json.Unmarshal,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			status := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				status = e.Code
			}
			return common.ErrorResponseJSON(c, status, "Internal Server Error", err.Error())
		},
	})

	app.Use(limiter.New(limiter.Config{
		Max:        cfg.RateLimit.MaxRequests,
		Expiration: cfg.RateLimit.Window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return common.ErrorResponseJSON(c, fiber.StatusTooManyRequests, "Too Many Requests", "Rate limit exceeded")
		},
	}))
	app.Use(recover.New())

	app.Static(cfg.Upload.PublicPath, cfg.Upload.Dir)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Vault API is up")
	})

	auth.Routes(app, svcs.Auth)
	booklet.Routes(app, svcs.Booklet, cfg.Jwt)
	bookletpercent.Routes(app, svcs.BookletPercent, cfg.Jwt)
	currentaccount.Routes(app, svcs.CurrentAccount, cfg.Jwt)
	user.Routes(app, svcs.User, cfg.Jwt)
	picture.Routes(app, svcs.Picture, cfg.Jwt)

	return app
}
