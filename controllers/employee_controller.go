package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/mvidal-dev/ArtisanCart/config"
	"github.com/mvidal-dev/ArtisanCart/models"
	"github.com/mvidal-dev/ArtisanCart/utils"
)

// CreateEmployeeRequest represents the admin payload for creating an employee
type CreateEmployeeRequest struct {
	Email       string             `json:"email" binding:"required,email"`
	FirstName   string             `json:"firstName" binding:"required"`
	LastName    string             `json:"lastName" binding:"required"`
	Phone       string             `json:"phone"`
	Permissions models.Permissions `json:"permissions"`
}

// CreateEmployee creates an employee account with a generated temporary
// password and emails the credentials. Admin only.
func CreateEmployee(c *gin.Context) {
	utils.LogInfo("CreateEmployee called")

	var req CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid employee payload: %v", err)
		utils.BadRequest(c, "Email, first name and last name are required", err.Error())
		return
	}

	var existing models.User
	if err := config.DB.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		utils.LogError("Employee email already registered: %s", req.Email)
		utils.BadRequest(c, "This email is already registered", nil)
		return
	}

	tempPassword, err := utils.GenerateRandomPassword()
	if err != nil {
		utils.LogError("Failed to generate temporary password: %v", err)
		utils.InternalServerError(c, "Failed to create employee", nil)
		return
	}

	hashed, err := utils.HashPassword(tempPassword)
	if err != nil {
		utils.LogError("Failed to hash temporary password: %v", err)
		utils.InternalServerError(c, "Failed to create employee", nil)
		return
	}

	employee := models.User{
		Email:       req.Email,
		Password:    hashed,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Phone:       req.Phone,
		Role:        models.RoleEmployee,
		Permissions: req.Permissions,
		IsActive:    true,
	}
	if err := config.DB.Create(&employee).Error; err != nil {
		utils.LogError("Failed to create employee %s: %v", req.Email, err)
		utils.InternalServerError(c, "Failed to create employee", nil)
		return
	}

	// Credentials email is best-effort; the account exists either way.
	go func(email, name, password string) {
		if err := utils.SendEmployeeCredentials(email, name, password); err != nil {
			utils.LogError("Failed to send credentials to %s: %v", email, err)
		}
	}(employee.Email, employee.FirstName, tempPassword)

	utils.LogInfo("Employee %d created", employee.ID)
	utils.Created(c, "Employee created successfully", gin.H{"user": toUserResponse(employee)})
}
