package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/mvidal-dev/ArtisanCart/controllers"
	"github.com/mvidal-dev/ArtisanCart/middleware"
)

// initNewsletterRoutes initializes newsletter routes
func initNewsletterRoutes(router *gin.RouterGroup) {
	newsletter := router.Group("/newsletter")
	{
		newsletter.POST("/subscribe", controllers.Subscribe)
		newsletter.POST("/unsubscribe", controllers.Unsubscribe)
		newsletter.GET("", middleware.AuthMiddleware(), middleware.AdminMiddleware(), controllers.ListSubscribers)
	}
}
