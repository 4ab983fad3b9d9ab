// Package config provides application configuration loaded from environment
// variables, with an optional .env file for local development.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration. Load it once at startup.
type Config struct {
	// ServerPort is the HTTP listen port.
	ServerPort string

	// DebugMode toggles gin's debug mode.
	DebugMode bool

	// LogLevel is a logrus level name ("debug", "info", "warn", "error").
	LogLevel string

	// UploadRateLimit is the sustained upload rate in requests per second.
	UploadRateLimit float64

	// UploadBurst is the upload rate limiter burst size.
	UploadBurst int
}

// Load reads configuration from the environment. A missing .env file is not
// an error.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		DebugMode:       getEnvBool("DEBUGMODE", true),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		UploadRateLimit: getEnvFloat("UPLOAD_RATE_LIMIT", 5),
		UploadBurst:     getEnvInt("UPLOAD_BURST", 10),
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvFloat(key string, defaultValue float64) float64 {
	value, err := strconv.ParseFloat(getEnv(key, ""), 64)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}
