package user_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	infracache "github.com/Forgos-ynov/Vault-API/infra/cache"
	"github.com/Forgos-ynov/Vault-API/internal/fake"
	"github.com/Forgos-ynov/Vault-API/pkg/cache"
	"github.com/Forgos-ynov/Vault-API/pkg/domain"
	usersvc "github.com/Forgos-ynov/Vault-API/pkg/service/user"
	"github.com/Forgos-ynov/Vault-API/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type env struct {
	svc      *usersvc.Service
	users    *fake.UserRepo
	accounts *fake.AccountRepo
	cache    cache.TagCache
}

func newEnv() env {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	users := fake.NewUserRepo()
	accounts := fake.NewAccountRepo()
	tagCache := infracache.NewMemoryTagCache(logger)
	return env{
		svc:      usersvc.New(users, accounts, tagCache, logger),
		users:    users,
		accounts: accounts,
		cache:    tagCache,
	}
}

func seedAccount(t *testing.T, e env) uint {
	t.Helper()
	ca := &domain.CurrentAccount{Name: "Main", Money: 100, Status: true, CreatedAt: time.Now().UTC()}
	require.NoError(t, e.accounts.Save(context.Background(), ca))
	return ca.ID
}

func TestCreate_HashesPassword(t *testing.T) {
	e := newEnv()
	accountID := seedAccount(t, e)

	u, violations, err := e.svc.Create(context.Background(), usersvc.CreateInput{
		Username:         "alice",
		Password:         "s3cret",
		IDCurrentAccount: &accountID,
	})
	require.NoError(t, err)
	require.Empty(t, violations)
	require.NotNil(t, u)

	assert.NotEqual(t, "s3cret", u.Password)
	assert.True(t, utils.CheckPasswordHash("s3cret", u.Password))
	assert.True(t, u.Status)
}

func TestCreate_EmptyPasswordRejected(t *testing.T) {
	e := newEnv()
	accountID := seedAccount(t, e)

	u, violations, err := e.svc.Create(context.Background(), usersvc.CreateInput{
		Username:         "alice",
		IDCurrentAccount: &accountID,
	})
	require.NoError(t, err)
	assert.Nil(t, u)
	require.NotEmpty(t, violations)

	var fields []string
	for _, v := range violations {
		fields = append(fields, v.Field)
	}
	assert.Contains(t, fields, "Password")
}

func TestCreate_DanglingAccountRejected(t *testing.T) {
	e := newEnv()

	missing := uint(404)
	u, violations, err := e.svc.Create(context.Background(), usersvc.CreateInput{
		Username:         "alice",
		Password:         "s3cret",
		IDCurrentAccount: &missing,
	})
	require.NoError(t, err)
	assert.Nil(t, u)

	found := false
	for _, v := range violations {
		if v.Field == "idCurrentAccount" {
			found = true
			assert.Equal(t, "required relationship missing", v.Message)
		}
	}
	assert.True(t, found)

	stored, err := e.users.FindAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestMutation_InvalidatesUserAndAccountTags(t *testing.T) {
	e := newEnv()
	accountID := seedAccount(t, e)

	userKey := "probe-user"
	accountKey := "probe-account"
	seed := func(key, tag string) {
		_, err := e.cache.GetOrPopulate(context.Background(), key, tag, func(ctx context.Context) (string, error) {
			return "stale", nil
		})
		require.NoError(t, err)
	}
	fresh := func(key, tag string) string {
		out, err := e.cache.GetOrPopulate(context.Background(), key, tag, func(ctx context.Context) (string, error) {
			return "fresh", nil
		})
		require.NoError(t, err)
		return out
	}

	seed(userKey, cache.TagUser)
	seed(accountKey, cache.TagCurrentAccount)

	_, violations, err := e.svc.Create(context.Background(), usersvc.CreateInput{
		Username:         "alice",
		Password:         "s3cret",
		IDCurrentAccount: &accountID,
	})
	require.NoError(t, err)
	require.Empty(t, violations)

	assert.Equal(t, "fresh", fresh(userKey, cache.TagUser))
	assert.Equal(t, "fresh", fresh(accountKey, cache.TagCurrentAccount))
}

func TestFilterByMinimumWealth(t *testing.T) {
	e := newEnv()
	accountID := seedAccount(t, e)

	for name, total := range map[string]float64{"poor": 10, "rich": 150} {
		u, violations, err := e.svc.Create(context.Background(), usersvc.CreateInput{
			Username:         name,
			Password:         "s3cret",
			IDCurrentAccount: &accountID,
		})
		require.NoError(t, err)
		require.Empty(t, violations)
		e.users.Totals[u.ID] = total
	}

	body, err := e.svc.FilterByMinimumWealth(context.Background(), 100)
	require.NoError(t, err)
	assert.Contains(t, body, "rich")
	assert.NotContains(t, body, "poor")
}

func TestUpdate_RehashesProvidedPassword(t *testing.T) {
	e := newEnv()
	accountID := seedAccount(t, e)

	u, _, err := e.svc.Create(context.Background(), usersvc.CreateInput{
		Username:         "alice",
		Password:         "old",
		IDCurrentAccount: &accountID,
	})
	require.NoError(t, err)

	newPassword := "new"
	updated, violations, err := e.svc.Update(context.Background(), u.ID, usersvc.UpdateInput{Password: &newPassword})
	require.NoError(t, err)
	require.Empty(t, violations)
	assert.True(t, utils.CheckPasswordHash("new", updated.Password))
	assert.False(t, utils.CheckPasswordHash("old", updated.Password))
	assert.Equal(t, "alice", updated.Username)
}

func TestTurnOff_HidesUserFromActivatedReads(t *testing.T) {
	e := newEnv()
	accountID := seedAccount(t, e)

	u, _, err := e.svc.Create(context.Background(), usersvc.CreateInput{
		Username:         "alice",
		Password:         "s3cret",
		IDCurrentAccount: &accountID,
	})
	require.NoError(t, err)

	require.NoError(t, e.svc.TurnOff(context.Background(), u.ID))

	_, err = e.svc.GetCached(context.Background(), u.ID)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	stored, err := e.users.FindByID(context.Background(), u.ID)
	require.NoError(t, err)
	require.NotNil(t, stored, "soft delete keeps the row")
	assert.False(t, stored.Status)
}
