package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/mvidal-dev/ArtisanCart/controllers"
	"github.com/mvidal-dev/ArtisanCart/middleware"
	"github.com/mvidal-dev/ArtisanCart/models"
)

// initProductRoutes initializes catalog routes. Reads are public; writes sit
// behind product permissions.
func initProductRoutes(router *gin.RouterGroup) {
	products := router.Group("/products")
	{
		products.GET("", controllers.GetProducts)
		products.GET("/handle/:handle", controllers.GetProductByHandle)
		products.GET("/:id", controllers.GetProductByID)

		products.POST("", middleware.AuthMiddleware(), middleware.PermissionMiddleware(models.PermEditProducts), controllers.CreateProduct)
		products.PUT("/:id", middleware.AuthMiddleware(), middleware.PermissionMiddleware(models.PermEditProducts), controllers.UpdateProduct)
		products.DELETE("/:id", middleware.AuthMiddleware(), middleware.PermissionMiddleware(models.PermDeleteProducts), controllers.DeleteProduct)
	}
}
