package config

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

type AWSConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
}

type TablesConfig struct {
	Users  string
	Events string
	Files  string
}

type Config struct {
	Port          string
	Environment   string
	LogLevel      string
	JWTSecret     string
	JWTExpiresIn  time.Duration
	AdminUsername string
	AdminPassword string
	AWS           AWSConfig
	Tables        TablesConfig
	CorsConfig    cors.Options
}

// Load builds the process configuration once at startup. Values come from
// the environment, optionally seeded from an .env file.
func Load() *Config {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		log.Println("No", envFile, "file found")
	}

	return &Config{
		Port:          getEnv("PORT", "8080"),
		Environment:   getEnv("ENV", "development"),
		LogLevel:      getEnv("LOG_LEVEL", "debug"),
		JWTSecret:     getEnv("JWT_SECRET", "default_jwt_secret"),
		JWTExpiresIn:  getDuration("JWT_EXPIRES_IN", 7*24*time.Hour),
		AdminUsername: getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "admin"),
		AWS: AWSConfig{
			Region:          getEnv("AWS_REGION", "eu-central-1"),
			AccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", ""),
			SecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
		},
		Tables: TablesConfig{
			Users:  getEnv("USERS_TABLE", "Users"),
			Events: getEnv("EVENTS_TABLE", "Events"),
			Files:  getEnv("FILES_TABLE", "Files"),
		},
		CorsConfig: CorsConfig(),
	}
}

// Gets the env by key or fallbacks
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return d
}

func CorsConfig() cors.Options {
	return cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
	}
}
