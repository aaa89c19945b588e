package controllers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvidal-dev/ArtisanCart/config"
	"github.com/mvidal-dev/ArtisanCart/middleware"
	"github.com/mvidal-dev/ArtisanCart/models"
)

func userAdminRouter() *gin.Engine {
	router := gin.New()
	users := router.Group("/users")
	users.Use(authMW(), middleware.PermissionMiddleware(models.PermManageUsers))
	{
		users.GET("", GetUsers)
		users.GET("/:id", GetUserByID)
		users.PATCH("/:id/toggle", ToggleUserStatus)
		users.DELETE("/:id", DeleteUser)
	}
	return router
}

func boolPtr(b bool) *bool { return &b }

func TestToggleUserStatus(t *testing.T) {
	db := setupTestDB(t)
	admin, adminToken := createTestUser(t, db, "admin@example.com", models.RoleAdmin, models.Permissions{})
	employee, _ := createTestUser(t, db, "staff@example.com", models.RoleEmployee, models.Permissions{})
	router := userAdminRouter()

	w := performAuthed(router, jsonRequest(http.MethodPatch, pathForUser(employee.ID, "toggle"), ToggleUserStatusRequest{IsActive: boolPtr(false)}), adminToken)
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.User
	require.NoError(t, db.First(&updated, employee.ID).Error)
	assert.False(t, updated.IsActive)

	// Admin accounts cannot be deactivated
	w = performAuthed(router, jsonRequest(http.MethodPatch, pathForUser(admin.ID, "toggle"), ToggleUserStatusRequest{IsActive: boolPtr(false)}), adminToken)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeactivatedUserLocksOut(t *testing.T) {
	db := setupTestDB(t)
	employee, employeeToken := createTestUser(t, db, "staff@example.com", models.RoleEmployee, models.Permissions{CanViewOrders: true})
	require.NoError(t, db.Model(&employee).Update("is_active", false).Error)

	router := gin.New()
	router.GET("/orders", authMW(), middleware.PermissionMiddleware(models.PermViewOrders), ListOrders)

	// The token is still cryptographically valid but the account is off
	w := performAuthed(router, jsonRequest(http.MethodGet, "/orders", nil), employeeToken)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestDeleteUserBlockedForAdmins(t *testing.T) {
	db := setupTestDB(t)
	admin, adminToken := createTestUser(t, db, "admin@example.com", models.RoleAdmin, models.Permissions{})
	employee, _ := createTestUser(t, db, "staff@example.com", models.RoleEmployee, models.Permissions{})
	router := userAdminRouter()

	w := performAuthed(router, jsonRequest(http.MethodDelete, fmt.Sprintf("/users/%d", admin.ID), nil), adminToken)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = performAuthed(router, jsonRequest(http.MethodDelete, fmt.Sprintf("/users/%d", employee.ID), nil), adminToken)
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Where("id = ?", employee.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestGetUsersOmitsPasswordHashes(t *testing.T) {
	db := setupTestDB(t)
	_, adminToken := createTestUser(t, db, "admin@example.com", models.RoleAdmin, models.Permissions{})
	createTestUser(t, db, "customer@example.com", models.RoleCustomer, models.Permissions{})
	router := userAdminRouter()

	w := performAuthed(router, jsonRequest(http.MethodGet, "/users", nil), adminToken)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "customer@example.com")
	assert.NotContains(t, w.Body.String(), "$2a$")
}

func TestEnsureAdminUser(t *testing.T) {
	db := setupTestDB(t)

	cfg := &config.Config{AdminEmail: "root@example.com", AdminPassword: "bootstrap-secret"}
	require.NoError(t, EnsureAdminUser(cfg))

	var admin models.User
	require.NoError(t, db.Where("email = ?", "root@example.com").First(&admin).Error)
	assert.Equal(t, models.RoleAdmin, admin.Role)

	// Re-running the seed never duplicates the account
	require.NoError(t, EnsureAdminUser(cfg))
	var count int64
	require.NoError(t, db.Model(&models.User{}).Where("email = ?", "root@example.com").Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestEnsureAdminUserSkipsWhenUnconfigured(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, EnsureAdminUser(&config.Config{}))

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.Zero(t, count)
}
