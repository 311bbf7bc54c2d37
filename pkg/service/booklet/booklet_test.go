package booklet_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	infracache "github.com/Forgos-ynov/Vault-API/infra/cache"
	"github.com/Forgos-ynov/Vault-API/internal/fake"
	"github.com/Forgos-ynov/Vault-API/pkg/domain"
	bookletsvc "github.com/Forgos-ynov/Vault-API/pkg/service/booklet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type env struct {
	svc      *bookletsvc.Service
	booklets *fake.BookletRepo
	percents *fake.PercentRepo
	accounts *fake.AccountRepo
}

func newEnv() env {
	logger := testLogger()
	booklets := fake.NewBookletRepo()
	percents := fake.NewPercentRepo()
	accounts := fake.NewAccountRepo()
	tagCache := infracache.NewMemoryTagCache(logger)
	return env{
		svc:      bookletsvc.New(booklets, percents, accounts, tagCache, logger),
		booklets: booklets,
		percents: percents,
		accounts: accounts,
	}
}

func seedRelations(t *testing.T, e env) (percentID, accountID uint) {
	t.Helper()
	bp := &domain.BookletPercent{Percent: 1.5, Status: true}
	require.NoError(t, e.percents.Save(context.Background(), bp))
	ca := &domain.CurrentAccount{Name: "Main", Money: 100, Status: true, CreatedAt: time.Now().UTC()}
	require.NoError(t, e.accounts.Save(context.Background(), ca))
	return bp.ID, ca.ID
}

func TestCreate_PersistsActivatedBooklet(t *testing.T) {
	e := newEnv()
	percentID, accountID := seedRelations(t, e)

	b, violations, err := e.svc.Create(context.Background(), bookletsvc.CreateInput{
		Name:             "Savings",
		Money:            50,
		IDBookletPercent: &percentID,
		IDCurrentAccount: &accountID,
	})
	require.NoError(t, err)
	require.Empty(t, violations)
	require.NotNil(t, b)

	assert.True(t, b.Status)
	require.NotNil(t, b.BookletPercentID)
	assert.Equal(t, percentID, *b.BookletPercentID)
	require.NotNil(t, b.CurrentAccountID)
	assert.Equal(t, accountID, *b.CurrentAccountID)

	stored, err := e.booklets.FindAllActivated(context.Background())
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "Savings", stored[0].Name)
}

func TestCreate_DanglingPercentRejected(t *testing.T) {
	e := newEnv()
	_, accountID := seedRelations(t, e)

	missing := uint(999)
	b, violations, err := e.svc.Create(context.Background(), bookletsvc.CreateInput{
		Name:             "Savings",
		Money:            50,
		IDBookletPercent: &missing,
		IDCurrentAccount: &accountID,
	})
	require.NoError(t, err)
	assert.Nil(t, b)
	require.NotEmpty(t, violations)

	var fields []string
	for _, v := range violations {
		fields = append(fields, v.Field)
		if v.Field == "idBookletPercent" {
			assert.Equal(t, "required relationship missing", v.Message)
		}
	}
	assert.Contains(t, fields, "idBookletPercent")

	stored, err := e.booklets.FindAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, stored, "rejected booklet must not be persisted")
}

func TestCreate_NegativeMoneyRejected(t *testing.T) {
	e := newEnv()
	percentID, accountID := seedRelations(t, e)

	_, violations, err := e.svc.Create(context.Background(), bookletsvc.CreateInput{
		Name:             "Savings",
		Money:            -1,
		IDBookletPercent: &percentID,
		IDCurrentAccount: &accountID,
	})
	require.NoError(t, err)
	require.NotEmpty(t, violations)
	assert.Equal(t, "money", violations[0].Field)
}

func TestListCached_ServesFromCacheUntilInvalidated(t *testing.T) {
	e := newEnv()
	percentID, accountID := seedRelations(t, e)

	b, violations, err := e.svc.Create(context.Background(), bookletsvc.CreateInput{
		Name:             "Savings",
		Money:            50,
		IDBookletPercent: &percentID,
		IDCurrentAccount: &accountID,
	})
	require.NoError(t, err)
	require.Empty(t, violations)

	first, err := e.svc.ListCached(context.Background())
	require.NoError(t, err)
	assert.Contains(t, first, "Savings")

	// A write behind the service's back stays invisible: the list is
	// served from the cache.
	sneaky := &domain.Booklet{
		Name: "Hidden", Money: 1, Status: true, CreatedAt: time.Now().UTC(),
		BookletPercentID: &percentID, CurrentAccountID: &accountID,
	}
	require.NoError(t, e.booklets.Save(context.Background(), sneaky))

	second, err := e.svc.ListCached(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// A mutation through the service invalidates the tag and the next
	// read repopulates.
	require.NoError(t, e.svc.TurnOff(context.Background(), b.ID))

	third, err := e.svc.ListCached(context.Background())
	require.NoError(t, err)
	assert.NotContains(t, third, "Savings")
	assert.Contains(t, third, "Hidden")
}

func TestGetCached_AbsentAnswersNotFound(t *testing.T) {
	e := newEnv()

	_, err := e.svc.GetCached(context.Background(), 42)
	assert.ErrorIs(t, err, domain.ErrBookletNotFound)
}

func TestGetCached_TurnedOffAnswersNotFound(t *testing.T) {
	e := newEnv()
	percentID, accountID := seedRelations(t, e)

	b, _, err := e.svc.Create(context.Background(), bookletsvc.CreateInput{
		Name:             "Savings",
		Money:            50,
		IDBookletPercent: &percentID,
		IDCurrentAccount: &accountID,
	})
	require.NoError(t, err)
	require.NoError(t, e.svc.TurnOff(context.Background(), b.ID))

	_, err = e.svc.GetCached(context.Background(), b.ID)
	assert.ErrorIs(t, err, domain.ErrBookletNotFound)
}

func TestUpdate_MergesProvidedFields(t *testing.T) {
	e := newEnv()
	percentID, accountID := seedRelations(t, e)

	b, _, err := e.svc.Create(context.Background(), bookletsvc.CreateInput{
		Name:             "Savings",
		Money:            50,
		IDBookletPercent: &percentID,
		IDCurrentAccount: &accountID,
	})
	require.NoError(t, err)

	name := "Rainy day"
	updated, violations, err := e.svc.Update(context.Background(), b.ID, bookletsvc.UpdateInput{Name: &name})
	require.NoError(t, err)
	require.Empty(t, violations)
	assert.Equal(t, "Rainy day", updated.Name)
	assert.Equal(t, 50.0, updated.Money, "omitted field keeps its value")
	require.NotNil(t, updated.BookletPercentID)
	assert.Equal(t, percentID, *updated.BookletPercentID)
}

func TestUpdate_AbsentAnswersNotFound(t *testing.T) {
	e := newEnv()

	name := "x"
	_, _, err := e.svc.Update(context.Background(), 7, bookletsvc.UpdateInput{Name: &name})
	assert.ErrorIs(t, err, domain.ErrBookletNotFound)
}

func TestListBetweenDates_BoundsInclusive(t *testing.T) {
	e := newEnv()
	percentID, accountID := seedRelations(t, e)

	day := time.Date(2023, 5, 10, 12, 0, 0, 0, time.UTC)
	for i, name := range []string{"before", "inside", "after"} {
		b := &domain.Booklet{
			Name: name, Money: 1, Status: true,
			CreatedAt:        day.AddDate(0, 0, (i-1)*10),
			BookletPercentID: &percentID,
			CurrentAccountID: &accountID,
		}
		require.NoError(t, e.booklets.Save(context.Background(), b))
	}

	body, err := e.svc.ListBetweenDates(context.Background(), day, day)
	require.NoError(t, err)
	assert.Contains(t, body, "inside")
	assert.NotContains(t, body, "before")
	assert.NotContains(t, body, "after")
}

func TestDelete_RemovesRow(t *testing.T) {
	e := newEnv()
	percentID, accountID := seedRelations(t, e)

	b, _, err := e.svc.Create(context.Background(), bookletsvc.CreateInput{
		Name:             "Savings",
		Money:            50,
		IDBookletPercent: &percentID,
		IDCurrentAccount: &accountID,
	})
	require.NoError(t, err)

	require.NoError(t, e.svc.Delete(context.Background(), b.ID))

	stored, err := e.booklets.FindByID(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Nil(t, stored)

	assert.ErrorIs(t, e.svc.Delete(context.Background(), b.ID), domain.ErrBookletNotFound)
}
