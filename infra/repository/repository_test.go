package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Forgos-ynov/Vault-API/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	mockDb, mock, err := sqlmock.New()
	require.NoError(t, err)
	dialector := postgres.New(postgres.Config{
		Conn:       mockDb,
		DriverName: "postgres",
	})
	db, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func bookletRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "name", "money", "status", "created_at",
		"booklet_percent_id", "current_account_id",
	})
}

func TestBookletRepository_FindAllActivated_FiltersOnStatus(t *testing.T) {
	db, mock := newMockDB(t)
	repo := bookletRepository{db: db}

	mock.ExpectQuery(`SELECT \* FROM "booklets" WHERE status = \$1`).
		WithArgs(true).
		WillReturnRows(bookletRows().
			AddRow(1, "Savings", 50.0, true, time.Now(), nil, nil).
			AddRow(2, "Holidays", 20.0, true, time.Now(), nil, nil))

	booklets, err := repo.FindAllActivated(context.Background())
	require.NoError(t, err)
	require.Len(t, booklets, 2)
	assert.Equal(t, "Savings", booklets[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookletRepository_FindActivated_AbsentReturnsNil(t *testing.T) {
	db, mock := newMockDB(t)
	repo := bookletRepository{db: db}

	mock.ExpectQuery(`SELECT \* FROM "booklets" WHERE status = \$1 AND id = \$2`).
		WillReturnRows(bookletRows())

	b, err := repo.FindActivated(context.Background(), 42)
	require.NoError(t, err)
	assert.Nil(t, b)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookletRepository_FindBetweenDates_InclusiveBounds(t *testing.T) {
	db, mock := newMockDB(t)
	repo := bookletRepository{db: db}

	mock.ExpectQuery(`SELECT \* FROM "booklets" WHERE created_at >= \$1 AND created_at <= \$2`).
		WillReturnRows(bookletRows().
			AddRow(1, "Savings", 50.0, true, time.Now(), nil, nil))

	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)
	booklets, err := repo.FindBetweenDates(context.Background(), start, end)
	require.NoError(t, err)
	require.Len(t, booklets, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookletRepository_FindWithPagination(t *testing.T) {
	db, mock := newMockDB(t)
	repo := bookletRepository{db: db}

	mock.ExpectQuery(`SELECT \* FROM "booklets" LIMIT`).
		WillReturnRows(bookletRows().
			AddRow(6, "Page two", 1.0, true, time.Now(), nil, nil))

	booklets, err := repo.FindWithPagination(context.Background(), 2, 5)
	require.NoError(t, err)
	require.Len(t, booklets, 1)
	assert.Equal(t, uint(6), booklets[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookletRepository_QueryErrorPropagates(t *testing.T) {
	db, mock := newMockDB(t)
	repo := bookletRepository{db: db}

	mock.ExpectQuery(`SELECT \* FROM "booklets"`).
		WillReturnError(errors.New("connection reset"))

	_, err := repo.FindAllActivated(context.Background())
	require.Error(t, err)
}

func TestBookletPercentRepository_Save_Insert(t *testing.T) {
	db, mock := newMockDB(t)
	repo := bookletPercentRepository{db: db}

	mock.ExpectQuery(`INSERT INTO "booklet_percents" (.+) RETURNING "id"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	bp := &domain.BookletPercent{Percent: 1.5, Status: true}
	require.NoError(t, repo.Save(context.Background(), bp))
	assert.Equal(t, uint(1), bp.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookletPercentRepository_Save_ErrorPropagates(t *testing.T) {
	db, mock := newMockDB(t)
	repo := bookletPercentRepository{db: db}

	mock.ExpectQuery(`INSERT INTO "booklet_percents"`).
		WillReturnError(errors.New("insert error"))

	bp := &domain.BookletPercent{Percent: 1.5, Status: true}
	require.Error(t, repo.Save(context.Background(), bp))
}

func TestUserRepository_TotalMoney(t *testing.T) {
	db, mock := newMockDB(t)
	repo := userRepository{db: db}

	mock.ExpectQuery(`SELECT ca.money \+ COALESCE\(SUM\(b.money\), 0\)`).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow(150.0))

	total, err := repo.TotalMoney(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 150.0, total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCurrentAccountRepository_FindActivated_AbsentReturnsNil(t *testing.T) {
	db, mock := newMockDB(t)
	repo := currentAccountRepository{db: db}

	mock.ExpectQuery(`SELECT \* FROM "current_accounts" WHERE status = \$1 AND id = \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "money", "status", "created_at"}))

	ca, err := repo.FindActivated(context.Background(), 3)
	require.NoError(t, err)
	assert.Nil(t, ca)
	assert.NoError(t, mock.ExpectationsWereMet())
}
