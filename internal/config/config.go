package config

import (
	"os"
	"time"

	"github.com/mkobayashi/todo-web-api/internal/constants"
)

type Config struct {
	DBDriver         string
	DBHost           string
	DBPort           string
	DBUser           string
	DBPassword       string
	DBName           string
	JWTSecret        string
	JWTIssuer        string
	JWTAudience      string
	TokenTTL         time.Duration
	PriorityCacheTTL time.Duration
	GinMode          string
	Port             string
	StaticDir        string
}

func Load() *Config {
	return &Config{
		DBDriver:         getEnv("DB_DRIVER", "mysql"),
		DBHost:           getEnv("DB_HOST", "localhost"),
		DBPort:           getEnv("DB_PORT", "3306"),
		DBUser:           getEnv("DB_USER", "todouser"),
		DBPassword:       getEnv("DB_PASSWORD", "todopassword"),
		DBName:           getEnv("DB_NAME", "todo"),
		JWTSecret:        getEnv("JWT_SECRET", "default-secret-key-change-me"),
		JWTIssuer:        getEnv("JWT_ISSUER", "todo-web-api"),
		JWTAudience:      getEnv("JWT_AUDIENCE", "todo-web-client"),
		TokenTTL:         getDurationEnv("TOKEN_TTL", constants.DefaultTokenTTL),
		PriorityCacheTTL: getDurationEnv("PRIORITY_CACHE_TTL", constants.DefaultPriorityCacheTTL),
		GinMode:          getEnv("GIN_MODE", "debug"),
		Port:             getEnv("PORT", "8080"),
		StaticDir:        getEnv("STATIC_DIR", "./wwwroot"),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		return defaultValue
	}
	return d
}
