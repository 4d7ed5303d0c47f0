package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         string
	JWTSecret    string
	DemoMode     bool
	MongoURI     string
	DBName       string
	ResendAPIKey string
	FromEmail    string
}

// Load reads configuration from the environment. A .env file is loaded
// first if present (ignored in production — env vars set directly).
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:         getEnv("PORT", "8080"),
		JWTSecret:    getEnv("JWT_SECRET", ""),
		DemoMode:     getEnv("DEMO_MODE", "true") == "true",
		MongoURI:     getEnv("MONGODB_URI", ""),
		DBName:       getEnv("DB_NAME", "teampulse"),
		ResendAPIKey: getEnv("RESEND_API_KEY", ""),
		FromEmail:    getEnv("FROM_EMAIL", ""),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
