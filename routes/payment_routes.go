package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/mvidal-dev/ArtisanCart/controllers"
	"github.com/mvidal-dev/ArtisanCart/middleware"
)

// initPaymentRoutes initializes card payment routes. The webhook stays outside
// any auth gate; it authenticates with the Stripe signature instead.
func initPaymentRoutes(router *gin.RouterGroup) {
	payments := router.Group("/payments")
	{
		payments.POST("/create-payment-intent", middleware.OptionalAuthMiddleware(), controllers.CreatePaymentIntent)
		payments.POST("/confirm-payment", middleware.OptionalAuthMiddleware(), controllers.ConfirmPayment)
		payments.GET("/status/:paymentIntentId", controllers.GetPaymentStatus)
		payments.POST("/webhook", controllers.HandleStripeWebhook)
	}
}
