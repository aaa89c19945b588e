package controllers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvidal-dev/ArtisanCart/config"
	"github.com/mvidal-dev/ArtisanCart/middleware"
	"github.com/mvidal-dev/ArtisanCart/models"
)

func uploadRouter(t *testing.T) *gin.Engine {
	t.Helper()
	config.App = &config.Config{UploadDir: t.TempDir()}

	router := gin.New()
	router.GET("/uploads/products", ListProductImages)
	router.POST("/uploads/products", authMW(), middleware.PermissionMiddleware(models.PermEditProducts), UploadProductImage)
	return router
}

func multipartImage(t *testing.T, field, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return &buf, writer.FormDataContentType()
}

func TestUploadProductImage(t *testing.T) {
	db := setupTestDB(t)
	_, token := createTestUser(t, db, "admin@example.com", models.RoleAdmin, models.Permissions{})
	router := uploadRouter(t)

	body, contentType := multipartImage(t, "image", "photo.jpg", []byte("fake image bytes"))
	req := httptest.NewRequest(http.MethodPost, "/uploads/products", body)
	req.Header.Set("Content-Type", contentType)
	w := performAuthed(router, req, token)
	require.Equal(t, http.StatusCreated, w.Code)

	respBody := decodeBody(t, w)
	data := respBody["data"].(map[string]interface{})
	url := data["url"].(string)
	assert.Contains(t, url, "/uploads/products/")
	assert.Equal(t, ".jpg", filepath.Ext(url))

	stored, err := os.ReadDir(config.App.UploadDir)
	require.NoError(t, err)
	require.Len(t, stored, 1)

	// The stored file shows up in the listing
	w = performAuthed(router, httptest.NewRequest(http.MethodGet, "/uploads/products", nil), "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), stored[0].Name())
}

func TestUploadProductImageRejectsBadExtension(t *testing.T) {
	db := setupTestDB(t)
	_, token := createTestUser(t, db, "admin@example.com", models.RoleAdmin, models.Permissions{})
	router := uploadRouter(t)

	body, contentType := multipartImage(t, "image", "script.exe", []byte("nope"))
	req := httptest.NewRequest(http.MethodPost, "/uploads/products", body)
	req.Header.Set("Content-Type", contentType)
	w := performAuthed(router, req, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListProductImagesMissingDir(t *testing.T) {
	setupTestDB(t)
	config.App = &config.Config{UploadDir: filepath.Join(t.TempDir(), "does-not-exist")}

	router := gin.New()
	router.GET("/uploads/products", ListProductImages)

	w := performAuthed(router, httptest.NewRequest(http.MethodGet, "/uploads/products", nil), "")
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	data := body["data"].(map[string]interface{})
	assert.Empty(t, data["images"])
}
