package configs

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env       string
	DBSource  string
	Port      string
	JWTSecret string
	JWTTTL    time.Duration
}

func LoadConfig() *Config {
	// .env is optional; env vars win either way.
	_ = godotenv.Load()

	return &Config{
		Env:       getEnv("APP_ENV", "development"),
		DBSource:  getEnv("DB_SOURCE", "restaurant.db"),
		Port:      getEnv("PORT", "8000"),
		JWTSecret: getEnv("JWT_SECRET", "changeme"),
		JWTTTL:    24 * time.Hour,
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
