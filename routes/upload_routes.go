package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/mvidal-dev/ArtisanCart/controllers"
	"github.com/mvidal-dev/ArtisanCart/middleware"
	"github.com/mvidal-dev/ArtisanCart/models"
)

// initUploadRoutes initializes product image upload routes
func initUploadRoutes(router *gin.RouterGroup) {
	uploads := router.Group("/uploads")
	{
		uploads.GET("/products", controllers.ListProductImages)
		uploads.POST("/products", middleware.AuthMiddleware(), middleware.PermissionMiddleware(models.PermEditProducts), controllers.UploadProductImage)
	}
}
