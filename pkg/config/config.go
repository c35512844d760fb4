package config

import (
	"os"
	"strconv"
)

// Version is reported by GET /api/version.
const Version = "0.0.1"

// GetEnv returns the value of the environment variable key, or
// defaultValue when it is unset or empty.
func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// GetEnvInt parses the environment variable key as an integer, falling
// back to defaultValue when unset or malformed.
func GetEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

// ListenAddr is the address the HTTP server binds to.
func ListenAddr() string {
	return ":" + GetEnv("PORT", "8080")
}
