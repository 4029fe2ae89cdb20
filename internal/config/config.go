package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server  ServerConfig
	Session SessionConfig
	API     APIConfig
}

type ServerConfig struct {
	Port string
	Host string
	Env  string

	// CORSOrigins lists the frontend origins granted credentialed access.
	// The "*" default reflects any origin but without credentials.
	CORSOrigins []string
}

type SessionConfig struct {
	Secret string
}

// APIConfig describes the remote ticketing API this server fronts.
// An empty BaseURL switches every service to its in-memory mock.
type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

func Load() (*Config, error) {
	// Load .env files if they exist (try .env.local first, then .env)
	_ = godotenv.Load(".env.local")
	_ = godotenv.Load(".env")

	config := &Config{
		Server: ServerConfig{
			Port:        getEnv("PORT", "8080"),
			Host:        getEnv("HOST", "localhost"),
			Env:         getEnv("ENV", "development"),
			CORSOrigins: getEnvAsSlice("CORS_ALLOWED_ORIGINS", []string{"*"}),
		},
		Session: SessionConfig{
			Secret: getEnv("SESSION_SECRET", "your-secret-key-change-in-production"),
		},
		API: APIConfig{
			BaseURL: getEnv("TICKETING_API_URL", ""),
			Timeout: time.Duration(getEnvAsInt("TICKETING_API_TIMEOUT_SECONDS", 30)) * time.Second,
		},
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
