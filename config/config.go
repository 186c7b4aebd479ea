package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from
// environment variables or a .env file.
//
// Example ENV equivalent:
//
//	SERVER_PORT=8080
//	POLYGON_BASE_URL=https://api.polygon.io
//	POLYGON_API_KEY=pk_xxx
//	HTTP_TIMEOUT_SECONDS=15
type Config struct {
	Server  ServerConfig  // HTTP server configuration
	Polygon PolygonConfig // Market-data provider settings
}

// ServerConfig holds HTTP server settings such as the port to listen on.
type ServerConfig struct {
	Port string // The TCP port the HTTP server will listen on (e.g., "8080")
}

// PolygonConfig defines how to reach the market-data provider.
//
// Fields:
//   - BaseURL: scheme and host of the aggregates API.
//   - APIKey: server-side default credential; callers may override it
//     per request with the X-Polygon-Key header, so it may be empty.
//   - Timeout: per-request timeout on the outbound HTTP client.
type PolygonConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and read by the rest of the
// application instead of re-reading environment variables.
var AppConfig Config

// LoadConfig initializes the global AppConfig.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Fatal exit:
//   - If required variables are missing, validateConfig() terminates
//     the app with a descriptive log message.
func LoadConfig() {
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("POLYGON_BASE_URL", "https://api.polygon.io")
	viper.SetDefault("POLYGON_API_KEY", "")
	viper.SetDefault("HTTP_TIMEOUT_SECONDS", 15)

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	viper.AutomaticEnv()

	AppConfig = Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
		},
		Polygon: PolygonConfig{
			BaseURL: viper.GetString("POLYGON_BASE_URL"),
			APIKey:  viper.GetString("POLYGON_API_KEY"),
			Timeout: time.Duration(viper.GetInt("HTTP_TIMEOUT_SECONDS")) * time.Second,
		},
	}

	validateConfig()
}

// validateConfig ensures required variables are present and terminates
// the application if they are missing. The API key is intentionally
// not required here since requests may carry their own credential.
func validateConfig() {
	var missing []string

	if AppConfig.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if AppConfig.Polygon.BaseURL == "" {
		missing = append(missing, "POLYGON_BASE_URL")
	}
	if AppConfig.Polygon.Timeout <= 0 {
		missing = append(missing, "HTTP_TIMEOUT_SECONDS")
	}

	if len(missing) > 0 {
		log.Fatalf("missing required environment variables: %v\n", missing)
	}
}
