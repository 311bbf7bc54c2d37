package booklet_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Forgos-ynov/Vault-API/pkg/domain"
	"github.com/Forgos-ynov/Vault-API/webapi/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedRelations(t *testing.T, f *testutils.Fixtures) (percentID, accountID uint) {
	t.Helper()
	bp := &domain.BookletPercent{Percent: 1.5, Status: true}
	require.NoError(t, f.Percents.Save(context.Background(), bp))
	ca := &domain.CurrentAccount{Name: "Main", Money: 100, Status: true, CreatedAt: time.Now().UTC()}
	require.NoError(t, f.Accounts.Save(context.Background(), ca))
	return bp.ID, ca.ID
}

func seedBooklet(t *testing.T, f *testutils.Fixtures, name string, percentID, accountID uint) *domain.Booklet {
	t.Helper()
	b := &domain.Booklet{
		Name: name, Money: 50, Status: true, CreatedAt: time.Now().UTC(),
		BookletPercentID: &percentID, CurrentAccountID: &accountID,
	}
	require.NoError(t, f.Booklets.Save(context.Background(), b))
	return b
}

func TestListBooklets_RequiresToken(t *testing.T) {
	f := testutils.NewTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/booklets", nil)
	resp, err := f.App.Test(req)
	require.NoError(t, err)
	assert.NotEqual(t, http.StatusOK, resp.StatusCode)
}

func TestListBooklets_ReturnsActivatedOnly(t *testing.T) {
	f := testutils.NewTestApp(t)
	percentID, accountID := seedRelations(t, f)
	seedBooklet(t, f, "Visible", percentID, accountID)
	off := seedBooklet(t, f, "Invisible", percentID, accountID)
	off.Status = false
	require.NoError(t, f.Booklets.Save(context.Background(), off))

	req := httptest.NewRequest(http.MethodGet, "/api/booklets", nil)
	req.Header.Set("Authorization", "Bearer "+testutils.Token(t, domain.RoleUser))
	resp, err := f.App.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "Visible")
	assert.NotContains(t, string(body), "Invisible")
	assert.NotContains(t, string(body), `"status"`, "status flag never leaves the API")
}

func TestGetBooklet_AbsentAnswersNoContent(t *testing.T) {
	f := testutils.NewTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/booklets/42", nil)
	req.Header.Set("Authorization", "Bearer "+testutils.Token(t, domain.RoleUser))
	resp, err := f.App.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestCreateBooklet_RequiresAdminRole(t *testing.T) {
	f := testutils.NewTestApp(t)
	seedRelations(t, f)

	req := httptest.NewRequest(http.MethodPost, "/api/booklets",
		strings.NewReader(`{"name":"Savings","money":50,"idBookletPercent":1,"idCurrentAccount":1}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+testutils.Token(t, domain.RoleUser))
	resp, err := f.App.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestCreateBooklet_AdminCreates(t *testing.T) {
	f := testutils.NewTestApp(t)
	seedRelations(t, f)

	req := httptest.NewRequest(http.MethodPost, "/api/booklets",
		strings.NewReader(`{"name":"Savings","money":50,"idBookletPercent":1,"idCurrentAccount":1}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+testutils.Token(t, domain.RoleUser, domain.RoleAdmin))
	resp, err := f.App.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "/api/booklets/1", resp.Header.Get("Location"))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"name":"Savings"`)
}

func TestCreateBooklet_DanglingRelationRejected(t *testing.T) {
	f := testutils.NewTestApp(t)
	seedRelations(t, f)

	req := httptest.NewRequest(http.MethodPost, "/api/booklets",
		strings.NewReader(`{"name":"Savings","money":50,"idBookletPercent":999,"idCurrentAccount":1}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+testutils.Token(t, domain.RoleUser, domain.RoleAdmin))
	resp, err := f.App.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "required relationship missing")

	stored, err := f.Booklets.FindAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestTurnOffBooklet_SoftDeletes(t *testing.T) {
	f := testutils.NewTestApp(t)
	percentID, accountID := seedRelations(t, f)
	b := seedBooklet(t, f, "Savings", percentID, accountID)

	req := httptest.NewRequest(http.MethodDelete, "/api/booklets/1", nil)
	req.Header.Set("Authorization", "Bearer "+testutils.Token(t, domain.RoleUser, domain.RoleAdmin))
	resp, err := f.App.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	stored, err := f.Booklets.FindByID(context.Background(), b.ID)
	require.NoError(t, err)
	require.NotNil(t, stored, "soft delete keeps the row")
	assert.False(t, stored.Status)
}

func TestDeleteBookletForce_RemovesRow(t *testing.T) {
	f := testutils.NewTestApp(t)
	percentID, accountID := seedRelations(t, f)
	b := seedBooklet(t, f, "Savings", percentID, accountID)

	req := httptest.NewRequest(http.MethodDelete, "/api/booklets/1/force", nil)
	req.Header.Set("Authorization", "Bearer "+testutils.Token(t, domain.RoleUser, domain.RoleAdmin))
	resp, err := f.App.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	stored, err := f.Booklets.FindByID(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Nil(t, stored)
}

func TestListBookletsBetweenDates(t *testing.T) {
	f := testutils.NewTestApp(t)
	percentID, accountID := seedRelations(t, f)

	day := time.Date(2023, 5, 10, 12, 0, 0, 0, time.UTC)
	inside := seedBooklet(t, f, "Inside", percentID, accountID)
	inside.CreatedAt = day
	require.NoError(t, f.Booklets.Save(context.Background(), inside))
	outside := seedBooklet(t, f, "Outside", percentID, accountID)
	outside.CreatedAt = day.AddDate(0, 2, 0)
	require.NoError(t, f.Booklets.Save(context.Background(), outside))

	req := httptest.NewRequest(http.MethodGet, "/api/booklets/betweenDates?start=2023-05-01&end=2023-05-31", nil)
	req.Header.Set("Authorization", "Bearer "+testutils.Token(t, domain.RoleUser))
	resp, err := f.App.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "Inside")
	assert.NotContains(t, string(body), "Outside")

	req = httptest.NewRequest(http.MethodGet, "/api/booklets/betweenDates?start=oops&end=2023-05-31", nil)
	req.Header.Set("Authorization", "Bearer "+testutils.Token(t, domain.RoleUser))
	resp, err = f.App.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
