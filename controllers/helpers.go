package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/mvidal-dev/ArtisanCart/models"
)

// requestUser returns the authenticated user set by the auth middleware.
func requestUser(c *gin.Context) (models.User, bool) {
	val, exists := c.Get("user")
	if !exists {
		return models.User{}, false
	}
	user, ok := val.(models.User)
	return user, ok
}

// requestUserID returns the authenticated user's id, or nil for guests.
func requestUserID(c *gin.Context) *uint {
	user, ok := requestUser(c)
	if !ok {
		return nil
	}
	id := user.ID
	return &id
}

// canViewAnyOrder reports whether the user may read orders they do not own.
func canViewAnyOrder(user models.User) bool {
	return user.IsAdmin() || user.Permissions.Has(models.PermViewOrders)
}

type userResponse struct {
	ID          uint               `json:"id"`
	Email       string             `json:"email"`
	FirstName   string             `json:"first_name"`
	LastName    string             `json:"last_name"`
	Phone       string             `json:"phone,omitempty"`
	Gender      string             `json:"gender,omitempty"`
	Role        string             `json:"role"`
	Permissions models.Permissions `json:"permissions"`
	IsActive    bool               `json:"is_active"`
}

func toUserResponse(user models.User) userResponse {
	return userResponse{
		ID:          user.ID,
		Email:       user.Email,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		Phone:       user.Phone,
		Gender:      user.Gender,
		Role:        user.Role,
		Permissions: user.Permissions,
		IsActive:    user.IsActive,
	}
}
