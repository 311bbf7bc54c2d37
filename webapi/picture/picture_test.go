package picture_test

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Forgos-ynov/Vault-API/pkg/domain"
	"github.com/Forgos-ynov/Vault-API/webapi/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func multipartUpload(t *testing.T, fieldName, fileName string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile(fieldName, fileName)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func TestUploadPicture_CreatesMetadata(t *testing.T) {
	f := testutils.NewTestApp(t)

	body, contentType := multipartUpload(t, "picture", "cat.png", []byte("png-bytes"))
	req := httptest.NewRequest(http.MethodPost, "/api/pictures", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+testutils.Token(t, domain.RoleUser))
	resp, err := f.App.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "/api/pictures/1", resp.Header.Get("Location"))

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"realName":"cat.png"`)
	assert.Contains(t, string(raw), "/assets/pictures/")
}

func TestUploadPicture_MissingFileRejected(t *testing.T) {
	f := testutils.NewTestApp(t)

	body, contentType := multipartUpload(t, "other", "cat.png", []byte("png-bytes"))
	req := httptest.NewRequest(http.MethodPost, "/api/pictures", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+testutils.Token(t, domain.RoleUser))
	resp, err := f.App.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetPicture_AbsentAnswersNoContent(t *testing.T) {
	f := testutils.NewTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/pictures/5", nil)
	req.Header.Set("Authorization", "Bearer "+testutils.Token(t, domain.RoleUser))
	resp, err := f.App.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}
