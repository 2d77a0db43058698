package config

import (
	"log"
	"os"
	"strconv"
	"strings"
)

// Config holds application configuration loaded from environment variables.
// Provide sane defaults for local development.
type Config struct {
	AppName string
	Env     string // development, staging, production
	Port    string
	GinMode string

	// MongoDB
	MongoURL     string
	DatabaseName string

	// Gemini
	GeminiAPIKey string // empty means model features are disabled
	GeminiModel  string

	// CORS
	CORSAllowedOrigins string // comma-separated

	// HTTP access log toggle (Gin logger)
	HTTPLogEnabled bool
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getbool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			log.Printf("invalid boolean for %s: %v, using default %v", key, err, def)
			return def
		}
		return b
	}
	return def
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		AppName: getenv("APP_NAME", "pablo-api"),
		Env:     getenv("ENVIRONMENT", "development"),
		Port:    getenv("PORT", "8000"),
		GinMode: getenv("GIN_MODE", "release"),

		MongoURL:     getenv("MONGODB_URL", "mongodb://localhost:27017"),
		DatabaseName: getenv("DATABASE_NAME", "pablo"),

		GeminiAPIKey: getenv("GEMINI_API_KEY", ""),
		GeminiModel:  getenv("GEMINI_MODEL", "gemini-2.0-flash"),

		CORSAllowedOrigins: getenv("CORS_ORIGINS", "http://localhost:5173,http://localhost:3000"),

		HTTPLogEnabled: getbool("HTTP_LOG_ENABLED", false),
	}
}

// GeminiEnabled reports whether a model credential is configured.
// An absent credential disables generation and validation instead of failing startup.
func (c *Config) GeminiEnabled() bool {
	return c.GeminiAPIKey != ""
}

// CORSOrigins returns the allowed origins as slice
func (c *Config) CORSOrigins() []string {
	parts := strings.Split(c.CORSAllowedOrigins, ",")
	res := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			res = append(res, p)
		}
	}
	return res
}
