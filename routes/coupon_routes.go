package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/mvidal-dev/ArtisanCart/controllers"
	"github.com/mvidal-dev/ArtisanCart/middleware"
	"github.com/mvidal-dev/ArtisanCart/models"
)

// initCouponRoutes initializes coupon routes. Validation and code lookup stay
// public for the storefront checkout; management requires coupon permissions.
func initCouponRoutes(router *gin.RouterGroup) {
	coupons := router.Group("/coupons")
	{
		coupons.POST("/validate", controllers.ValidateCoupon)

		coupons.GET("", middleware.AuthMiddleware(), middleware.PermissionMiddleware(models.PermViewAnalytics), controllers.ListCoupons)
		coupons.POST("", middleware.AuthMiddleware(), middleware.PermissionMiddleware(models.PermCreateCoupons), controllers.CreateCoupon)
		coupons.PUT("/:id", middleware.AuthMiddleware(), middleware.PermissionMiddleware(models.PermEditCoupons), controllers.UpdateCoupon)
		coupons.PATCH("/:id/toggle", middleware.AuthMiddleware(), middleware.PermissionMiddleware(models.PermEditCoupons), controllers.ToggleCoupon)
		coupons.DELETE("/:id", middleware.AuthMiddleware(), middleware.PermissionMiddleware(models.PermDeleteCoupons), controllers.DeleteCoupon)

		coupons.GET("/:code", controllers.GetCouponByCode)
	}
}
