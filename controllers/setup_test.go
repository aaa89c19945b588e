package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/mvidal-dev/ArtisanCart/config"
	"github.com/mvidal-dev/ArtisanCart/middleware"
	"github.com/mvidal-dev/ArtisanCart/models"
	"github.com/mvidal-dev/ArtisanCart/utils"
)

// setupTestDB wires an isolated in-memory database into the global handle
// used by the handlers. Each test gets its own database keyed by test name.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gin.SetMode(gin.TestMode)
	os.Setenv("JWT_SECRET", "test-secret")

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, config.MigrateModels(db))

	config.DB = db
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email, role string, perms models.Permissions) (models.User, string) {
	t.Helper()

	hash, err := utils.HashPassword("secret-password")
	require.NoError(t, err)

	user := models.User{
		Email:       email,
		Password:    hash,
		FirstName:   "Test",
		Role:        role,
		Permissions: perms,
		IsActive:    true,
	}
	require.NoError(t, db.Create(&user).Error)

	token, err := utils.GenerateToken(&user)
	require.NoError(t, err)
	return user, token
}

func jsonRequest(method, path string, body interface{}) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func performAuthed(router *gin.Engine, req *http.Request, token string) *httptest.ResponseRecorder {
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

// authMW is a shorthand used when building per-test routers
func authMW() gin.HandlerFunc {
	return middleware.AuthMiddleware()
}

func pathForUser(id uint, suffix string) string {
	return fmt.Sprintf("/users/%d/%s", id, suffix)
}
