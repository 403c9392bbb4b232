package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds application configuration loaded from environment variables.
type Config struct {
	SpannerDB        string
	HTTPPort         string
	LogLevel         string
	Currency         string
	CourierSurcharge string // flat delivery fee, decimal string, e.g. "7.99"
	StripeAPIKey     string
	StorageBucket    string
}

// Load reads configuration from a .env file (when present) and the environment,
// applying local-development defaults for anything unset.
func Load() Config {
	// Missing .env is fine; deployed environments use real env vars.
	_ = godotenv.Load()

	return Config{
		SpannerDB:        getEnv("SPANNER_DATABASE", "projects/test-project/instances/dev-instance/databases/repair-shop-db"),
		HTTPPort:         getEnv("HTTP_PORT", "8080"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		Currency:         getEnv("CURRENCY", "usd"),
		CourierSurcharge: getEnv("COURIER_SURCHARGE", "7.99"),
		StripeAPIKey:     os.Getenv("STRIPE_API_KEY"),
		StorageBucket:    getEnv("STORAGE_BUCKET", "repair-shop-media"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
