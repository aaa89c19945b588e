package main

import (
	"log"

	"github.com/stripe/stripe-go/v76"

	"github.com/mvidal-dev/ArtisanCart/config"
	"github.com/mvidal-dev/ArtisanCart/controllers"
	"github.com/mvidal-dev/ArtisanCart/routes"
	"github.com/mvidal-dev/ArtisanCart/utils"
)

func main() {
	if err := utils.InitLogger(); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	utils.LogInfo("Starting ArtisanCart API")

	cfg, err := config.LoadConfig()
	if err != nil {
		utils.LogError("Failed to load configuration: %v", err)
		log.Fatalf("Failed to load configuration: %v", err)
	}

	config.InitDB()
	utils.LogInfo("Database initialized")

	stripe.Key = cfg.StripeSecretKey

	if err := controllers.EnsureAdminUser(cfg); err != nil {
		utils.LogError("Failed to seed admin user: %v", err)
		log.Fatalf("Failed to seed admin user: %v", err)
	}

	router := routes.SetupRouter(cfg)

	utils.LogInfo("Listening on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		utils.LogError("Server exited: %v", err)
		log.Fatalf("Server exited: %v", err)
	}
}
