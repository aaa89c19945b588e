package controllers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mvidal-dev/ArtisanCart/config"
	"github.com/mvidal-dev/ArtisanCart/models"
	"github.com/mvidal-dev/ArtisanCart/utils"
)

// RegisterRequest represents the registration payload
type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Phone     string `json:"phone"`
	Gender    string `json:"gender"`
}

// Register creates a customer account and issues a token
func Register(c *gin.Context) {
	utils.LogInfo("Register called")

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid registration payload: %v", err)
		utils.BadRequest(c, "Email, password, first name and last name are required", err.Error())
		return
	}

	var existing models.User
	if err := config.DB.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		utils.LogError("Registration with already registered email: %s", req.Email)
		utils.BadRequest(c, "This email is already registered", nil)
		return
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		utils.LogError("Failed to hash password: %v", err)
		utils.InternalServerError(c, "Failed to register user", nil)
		return
	}

	user := models.User{
		Email:     req.Email,
		Password:  hashed,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Gender:    req.Gender,
		Role:      models.RoleCustomer,
		IsActive:  true,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		utils.LogError("Failed to create user %s: %v", req.Email, err)
		utils.InternalServerError(c, "Failed to register user", nil)
		return
	}

	token, err := utils.GenerateToken(&user)
	if err != nil {
		utils.LogError("Failed to generate token for user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to register user", nil)
		return
	}

	// Welcome email must not block or fail the registration.
	go func(email, name string) {
		if err := utils.SendWelcomeEmail(email, name); err != nil {
			utils.LogError("Failed to send welcome email to %s: %v", email, err)
		}
	}(user.Email, user.FirstName)

	utils.LogInfo("User %d registered successfully", user.ID)
	utils.Created(c, "User registered successfully", gin.H{
		"token": token,
		"user":  toUserResponse(user),
	})
}

// LoginRequest represents the login payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login verifies credentials and issues a token
func Login(c *gin.Context) {
	utils.LogInfo("Login called")

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid login payload: %v", err)
		utils.BadRequest(c, "Email and password are required", err.Error())
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		utils.LogError("Login failed, unknown email: %s", req.Email)
		utils.Unauthorized(c, "Invalid credentials")
		return
	}

	if !utils.CheckPassword(req.Password, user.Password) {
		utils.LogError("Login failed, wrong password for user %d", user.ID)
		utils.Unauthorized(c, "Invalid credentials")
		return
	}

	if !user.IsActive {
		utils.LogError("Login attempt for deactivated user %d", user.ID)
		utils.Forbidden(c, "Account is deactivated")
		return
	}

	token, err := utils.GenerateToken(&user)
	if err != nil {
		utils.LogError("Failed to generate token for user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to log in", nil)
		return
	}

	config.DB.Model(&user).Update("last_login_at", time.Now())

	utils.LogInfo("User %d logged in", user.ID)
	utils.Success(c, "Login successful", gin.H{
		"token": token,
		"user":  toUserResponse(user),
	})
}

// Logout acknowledges the logout; tokens are stateless so the client simply
// discards its copy.
func Logout(c *gin.Context) {
	utils.Success(c, "Logout successful", nil)
}

// GetProfile returns the authenticated user
func GetProfile(c *gin.Context) {
	user, ok := requestUser(c)
	if !ok {
		utils.Unauthorized(c, "Not authenticated")
		return
	}
	utils.Success(c, "Profile loaded", gin.H{"user": toUserResponse(user)})
}
