package controllers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mvidal-dev/ArtisanCart/config"
	"github.com/mvidal-dev/ArtisanCart/models"
	"github.com/mvidal-dev/ArtisanCart/utils"
)

// GetUsers lists every account, newest first
func GetUsers(c *gin.Context) {
	utils.LogInfo("GetUsers called")

	var users []models.User
	if err := config.DB.Order("created_at DESC").Find(&users).Error; err != nil {
		utils.LogError("Failed to fetch users: %v", err)
		utils.InternalServerError(c, "Failed to fetch users", nil)
		return
	}

	responses := make([]userResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, toUserResponse(user))
	}

	utils.Success(c, "Users loaded", gin.H{"users": responses})
}

// GetUserByID returns a single account
func GetUserByID(c *gin.Context) {
	user, ok := findUserParam(c)
	if !ok {
		return
	}
	utils.Success(c, "User loaded", gin.H{"user": toUserResponse(user)})
}

// UpdatePermissionsRequest carries the full replacement permission set
type UpdatePermissionsRequest struct {
	Permissions models.Permissions `json:"permissions"`
}

// UpdateUserPermissions replaces an employee's permission flags. Admin
// accounts are immutable here; their role grants everything already.
func UpdateUserPermissions(c *gin.Context) {
	utils.LogInfo("UpdateUserPermissions called")

	user, ok := findUserParam(c)
	if !ok {
		return
	}

	if user.IsAdmin() {
		utils.LogError("Attempt to edit permissions of admin %d", user.ID)
		utils.BadRequest(c, "Admin permissions cannot be modified", nil)
		return
	}

	var req UpdatePermissionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid permissions payload for user %d: %v", user.ID, err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	if err := config.DB.Model(&user).Update("permissions", req.Permissions).Error; err != nil {
		utils.LogError("Failed to update permissions for user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to update permissions", nil)
		return
	}

	utils.LogInfo("Permissions updated for user %d", user.ID)
	utils.Success(c, "Permissions updated successfully", nil)
}

// ToggleUserStatusRequest carries the target active flag
type ToggleUserStatusRequest struct {
	IsActive *bool `json:"isActive" binding:"required"`
}

// ToggleUserStatus activates or deactivates a non-admin account. A
// deactivated account is refused at the auth gate on its next request.
func ToggleUserStatus(c *gin.Context) {
	utils.LogInfo("ToggleUserStatus called")

	user, ok := findUserParam(c)
	if !ok {
		return
	}

	if user.IsAdmin() {
		utils.LogError("Attempt to deactivate admin %d", user.ID)
		utils.BadRequest(c, "Administrators cannot be deactivated", nil)
		return
	}

	var req ToggleUserStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid toggle payload for user %d: %v", user.ID, err)
		utils.BadRequest(c, "isActive is required", err.Error())
		return
	}

	if err := config.DB.Model(&user).Update("is_active", *req.IsActive).Error; err != nil {
		utils.LogError("Failed to toggle user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to update user", nil)
		return
	}

	message := "User deactivated successfully"
	if *req.IsActive {
		message = "User activated successfully"
	}
	utils.Success(c, message, nil)
}

// DeleteUser removes a non-admin account. Admin rows are never deleted.
func DeleteUser(c *gin.Context) {
	utils.LogInfo("DeleteUser called")

	user, ok := findUserParam(c)
	if !ok {
		return
	}

	if user.IsAdmin() {
		utils.LogError("Attempt to delete admin %d", user.ID)
		utils.BadRequest(c, "Administrators cannot be deleted", nil)
		return
	}

	if err := config.DB.Delete(&user).Error; err != nil {
		utils.LogError("Failed to delete user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to delete user", nil)
		return
	}

	utils.LogInfo("User %d deleted", user.ID)
	utils.Success(c, "User deleted successfully", nil)
}

// EnsureAdminUser seeds the administrator account from the environment on
// startup. Safe to call repeatedly.
func EnsureAdminUser(cfg *config.Config) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		utils.LogInfo("Admin seed credentials not configured, skipping")
		return nil
	}

	hashed, err := utils.HashPassword(cfg.AdminPassword)
	if err != nil {
		return err
	}

	admin := models.User{
		Email:       cfg.AdminEmail,
		Password:    hashed,
		FirstName:   "Admin",
		Role:        models.RoleAdmin,
		IsActive:    true,
		LastLoginAt: time.Now(),
	}
	return config.DB.Where(models.User{Email: cfg.AdminEmail}).FirstOrCreate(&admin).Error
}

func findUserParam(c *gin.Context) (models.User, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid user ID", nil)
		return models.User{}, false
	}

	var user models.User
	if err := config.DB.First(&user, id).Error; err != nil {
		utils.NotFound(c, "User not found")
		return models.User{}, false
	}
	return user, true
}
