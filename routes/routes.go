package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mvidal-dev/ArtisanCart/config"
	"github.com/mvidal-dev/ArtisanCart/utils"
)

// SetupRouter initializes and returns the Gin router with all routes.
// Middleware is attached before any route registration so every handler
// runs behind it.
func SetupRouter(cfg *config.Config) *gin.Engine {
	router := gin.New()

	router.Use(utils.RequestIDMiddleware())
	router.Use(utils.LoggerMiddleware())
	router.Use(utils.RecoveryMiddleware())
	router.Use(utils.CORSMiddleware(cfg.FrontendURL))
	router.Use(utils.SecurityHeadersMiddleware())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "artisancart-api",
		})
	})

	// Uploaded product images are served as static files
	router.Static("/uploads", "public/uploads")

	api := router.Group("/api")
	{
		initAuthRoutes(api)
		initProductRoutes(api)
		initCouponRoutes(api)
		initOrderRoutes(api)
		initPaymentRoutes(api)
		initUserRoutes(api)
		initNewsletterRoutes(api)
		initUploadRoutes(api)
	}

	return router
}
