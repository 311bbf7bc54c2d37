// Package testutils builds a fully wired Fiber app over in-memory
// repositories for handler tests.
package testutils

import (
	"io"
	"log/slog"
	"testing"
	"time"

	infracache "github.com/Forgos-ynov/Vault-API/infra/cache"
	"github.com/Forgos-ynov/Vault-API/infra/storage"
	"github.com/Forgos-ynov/Vault-API/internal/fake"
	"github.com/Forgos-ynov/Vault-API/pkg/config"
	authsvc "github.com/Forgos-ynov/Vault-API/pkg/service/auth"
	bookletsvc "github.com/Forgos-ynov/Vault-API/pkg/service/booklet"
	percentsvc "github.com/Forgos-ynov/Vault-API/pkg/service/bookletpercent"
	accountsvc "github.com/Forgos-ynov/Vault-API/pkg/service/currentaccount"
	picturesvc "github.com/Forgos-ynov/Vault-API/pkg/service/picture"
	usersvc "github.com/Forgos-ynov/Vault-API/pkg/service/user"
	"github.com/Forgos-ynov/Vault-API/webapi"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

// TestSecret signs the tokens used by handler tests.
const TestSecret = "test-secret"

// Fixtures exposes the app and the repositories behind it for seeding.
type Fixtures struct {
	App      *fiber.App
	Booklets *fake.BookletRepo
	Percents *fake.PercentRepo
	Accounts *fake.AccountRepo
	Users    *fake.UserRepo
	Pictures *fake.PictureRepo
}

// NewTestApp wires the services over in-memory repositories and a memory
// cache, with a rate limit high enough to stay invisible.
func NewTestApp(t *testing.T) *Fixtures {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	booklets := fake.NewBookletRepo()
	percents := fake.NewPercentRepo()
	accounts := fake.NewAccountRepo()
	users := fake.NewUserRepo()
	pictures := fake.NewPictureRepo()
	tagCache := infracache.NewMemoryTagCache(logger)

	upload := &config.Upload{Dir: t.TempDir(), PublicPath: "/assets/pictures"}
	store, err := storage.NewPictureStore(upload)
	require.NoError(t, err)

	cfg := &config.App{
		Env:       "test",
		Jwt:       &config.Jwt{Secret: TestSecret, Expiry: time.Hour},
		RateLimit: &config.RateLimit{MaxRequests: 10000, Window: time.Minute},
		Upload:    upload,
	}

	app := webapi.NewApp(cfg, webapi.Services{
		Auth:           authsvc.New(users, cfg.Jwt, logger),
		Booklet:        bookletsvc.New(booklets, percents, accounts, tagCache, logger),
		BookletPercent: percentsvc.New(percents, tagCache, logger),
		CurrentAccount: accountsvc.New(accounts, tagCache, logger),
		User:           usersvc.New(users, accounts, tagCache, logger),
		Picture:        picturesvc.New(pictures, store, logger),
	})

	return &Fixtures{
		App:      app,
		Booklets: booklets,
		Percents: percents,
		Accounts: accounts,
		Users:    users,
		Pictures: pictures,
	}
}

// Token signs a bearer token carrying the given roles.
func Token(t *testing.T, roles ...string) string {
	t.Helper()
	token := jwt.New(jwt.SigningMethodHS256)
	claims := token.Claims.(jwt.MapClaims)
	claims["user_id"] = "1"
	claims["username"] = "tester"
	claims["roles"] = roles
	claims["exp"] = time.Now().Add(time.Hour).Unix()
	signed, err := token.SignedString([]byte(TestSecret))
	require.NoError(t, err)
	return signed
}
