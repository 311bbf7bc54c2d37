package currentaccount_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	infracache "github.com/Forgos-ynov/Vault-API/infra/cache"
	"github.com/Forgos-ynov/Vault-API/internal/fake"
	"github.com/Forgos-ynov/Vault-API/pkg/domain"
	accountsvc "github.com/Forgos-ynov/Vault-API/pkg/service/currentaccount"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService() (*accountsvc.Service, *fake.AccountRepo) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	accounts := fake.NewAccountRepo()
	return accountsvc.New(accounts, infracache.NewMemoryTagCache(logger), logger), accounts
}

func TestCreate_PersistsActivatedAccount(t *testing.T) {
	svc, accounts := newService()

	ca, violations, err := svc.Create(context.Background(), accountsvc.CreateInput{Name: "Main", Money: 100})
	require.NoError(t, err)
	require.Empty(t, violations)
	assert.True(t, ca.Status)
	assert.False(t, ca.CreatedAt.IsZero())

	stored, err := accounts.FindActivated(context.Background(), ca.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, 100.0, stored.Money)
}

func TestCreate_ShortNameRejected(t *testing.T) {
	svc, accounts := newService()

	ca, violations, err := svc.Create(context.Background(), accountsvc.CreateInput{Name: "x", Money: 1})
	require.NoError(t, err)
	assert.Nil(t, ca)
	require.NotEmpty(t, violations)
	assert.Equal(t, "name", violations[0].Field)

	stored, err := accounts.FindAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestTurnOff_HidesAccountFromCachedReads(t *testing.T) {
	svc, _ := newService()

	ca, _, err := svc.Create(context.Background(), accountsvc.CreateInput{Name: "Main", Money: 100})
	require.NoError(t, err)

	body, err := svc.ListCached(context.Background())
	require.NoError(t, err)
	assert.Contains(t, body, "Main")

	require.NoError(t, svc.TurnOff(context.Background(), ca.ID))

	body, err = svc.ListCached(context.Background())
	require.NoError(t, err)
	assert.NotContains(t, body, "Main")

	_, err = svc.GetCached(context.Background(), ca.ID)
	assert.ErrorIs(t, err, domain.ErrCurrentAccountNotFound)
}
