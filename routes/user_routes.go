package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/mvidal-dev/ArtisanCart/controllers"
	"github.com/mvidal-dev/ArtisanCart/middleware"
	"github.com/mvidal-dev/ArtisanCart/models"
)

// initUserRoutes initializes staff and customer management routes
func initUserRoutes(router *gin.RouterGroup) {
	users := router.Group("/users")
	users.Use(middleware.AuthMiddleware(), middleware.PermissionMiddleware(models.PermManageUsers))
	{
		users.GET("", controllers.GetUsers)
		users.GET("/:id", controllers.GetUserByID)
		users.PUT("/:id/permissions", controllers.UpdateUserPermissions)
		users.PATCH("/:id/toggle", controllers.ToggleUserStatus)
		users.DELETE("/:id", controllers.DeleteUser)
	}
}
