package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/mvidal-dev/ArtisanCart/controllers"
	"github.com/mvidal-dev/ArtisanCart/middleware"
)

// initAuthRoutes initializes authentication and account routes
func initAuthRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)

		auth.Use(middleware.AuthMiddleware())
		{
			auth.POST("/logout", controllers.Logout)
			auth.GET("/profile", controllers.GetProfile)
			auth.PUT("/profile", controllers.UpdateProfile)
			auth.PUT("/change-password", controllers.ChangePassword)
			auth.POST("/create-employee", middleware.AdminMiddleware(), controllers.CreateEmployee)
		}
	}
}
