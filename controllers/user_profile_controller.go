package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/mvidal-dev/ArtisanCart/config"
	"github.com/mvidal-dev/ArtisanCart/utils"
)

// UpdateProfileRequest represents editable profile fields
type UpdateProfileRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	Gender    string `json:"gender"`
}

// UpdateProfile updates the authenticated user's contact fields
func UpdateProfile(c *gin.Context) {
	utils.LogInfo("UpdateProfile called")

	user, ok := requestUser(c)
	if !ok {
		utils.Unauthorized(c, "Not authenticated")
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid profile payload for user %d: %v", user.ID, err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	updates := map[string]interface{}{}
	if req.FirstName != "" {
		updates["first_name"] = req.FirstName
	}
	if req.LastName != "" {
		updates["last_name"] = req.LastName
	}
	if req.Phone != "" {
		updates["phone"] = req.Phone
	}
	if req.Gender != "" {
		updates["gender"] = req.Gender
	}

	if len(updates) > 0 {
		if err := config.DB.Model(&user).Updates(updates).Error; err != nil {
			utils.LogError("Failed to update profile for user %d: %v", user.ID, err)
			utils.InternalServerError(c, "Failed to update profile", nil)
			return
		}
	}

	utils.LogInfo("Profile updated for user %d", user.ID)
	utils.Success(c, "Profile updated successfully", gin.H{"user": toUserResponse(user)})
}

// ChangePasswordRequest represents the password change payload
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=8"`
}

// ChangePassword verifies the current password and stores a new hash
func ChangePassword(c *gin.Context) {
	utils.LogInfo("ChangePassword called")

	user, ok := requestUser(c)
	if !ok {
		utils.Unauthorized(c, "Not authenticated")
		return
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid password payload for user %d: %v", user.ID, err)
		utils.BadRequest(c, "Current and new password are required", err.Error())
		return
	}

	if !utils.CheckPassword(req.CurrentPassword, user.Password) {
		utils.LogError("Wrong current password for user %d", user.ID)
		utils.BadRequest(c, "Current password is incorrect", nil)
		return
	}

	hashed, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		utils.LogError("Failed to hash new password for user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to change password", nil)
		return
	}

	if err := config.DB.Model(&user).Update("password", hashed).Error; err != nil {
		utils.LogError("Failed to store new password for user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to change password", nil)
		return
	}

	utils.LogInfo("Password changed for user %d", user.ID)
	utils.Success(c, "Password changed successfully", nil)
}
