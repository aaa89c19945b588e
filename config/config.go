package config

import (
	"os"

	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

var DB *gorm.DB

// App is the loaded application configuration, set by LoadConfig
var App *Config

// Config holds all configuration for the application
type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	JWTSecret string

	StripeSecretKey     string
	StripeWebhookSecret string

	SMTPHost     string
	SMTPPort     string
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string

	AdminEmail    string
	AdminPassword string

	FrontendURL string
	UploadDir   string
	Port        string
	Env         string
}

// LoadConfig loads configuration from environment variables. A missing .env
// file is not an error; deployed environments inject variables directly.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	config := &Config{
		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     os.Getenv("DB_PORT"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),

		JWTSecret: os.Getenv("JWT_SECRET"),

		StripeSecretKey:     os.Getenv("STRIPE_SECRET_KEY"),
		StripeWebhookSecret: os.Getenv("STRIPE_WEBHOOK_SECRET"),

		SMTPHost:     os.Getenv("SMTP_HOST"),
		SMTPPort:     os.Getenv("SMTP_PORT"),
		SMTPUsername: os.Getenv("SMTP_USERNAME"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),
		SMTPFrom:     os.Getenv("SMTP_FROM"),

		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),

		FrontendURL: os.Getenv("FRONTEND_URL"),
		UploadDir:   os.Getenv("UPLOAD_DIR"),
		Port:        os.Getenv("PORT"),
		Env:         os.Getenv("ENV"),
	}

	if config.FrontendURL == "" {
		config.FrontendURL = "http://localhost:3000"
	}
	if config.UploadDir == "" {
		config.UploadDir = "public/uploads/products"
	}
	if config.Port == "" {
		config.Port = "8080"
	}

	App = config
	return config, nil
}

// Current returns the loaded configuration, loading it on first use
func Current() *Config {
	if App == nil {
		App, _ = LoadConfig()
	}
	return App
}
