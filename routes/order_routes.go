package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/mvidal-dev/ArtisanCart/controllers"
	"github.com/mvidal-dev/ArtisanCart/middleware"
	"github.com/mvidal-dev/ArtisanCart/models"
)

// initOrderRoutes initializes checkout and fulfilment routes
func initOrderRoutes(router *gin.RouterGroup) {
	orders := router.Group("/orders")
	{
		orders.POST("", middleware.OptionalAuthMiddleware(), controllers.CreateOrder)

		orders.GET("/user", middleware.AuthMiddleware(), controllers.ListUserOrders)
		orders.GET("", middleware.AuthMiddleware(), middleware.PermissionMiddleware(models.PermViewOrders), controllers.ListOrders)
		orders.GET("/export", middleware.AuthMiddleware(), middleware.PermissionMiddleware(models.PermViewAnalytics), controllers.ExportOrdersExcel)
		orders.GET("/:id", middleware.AuthMiddleware(), controllers.GetOrderDetails)
		orders.GET("/:id/invoice", middleware.AuthMiddleware(), controllers.DownloadInvoice)
		orders.PATCH("/:id/status", middleware.AuthMiddleware(), middleware.PermissionMiddleware(models.PermEditOrders), controllers.UpdateOrderStatus)
	}
}
