// Package config provides application configuration management.
// It loads configuration from environment variables with sensible defaults.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Data source modes.
const (
	DataSourceRemote   = "remote"
	DataSourceDatabase = "database"
)

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig
	Remote     RemoteConfig
	DataSource DataSourceConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	JWT        JWTConfig
	Email      EmailConfig
	CORS       CORSConfig
	Display    DisplayConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Environment  string
}

// RemoteConfig holds the expense service API configuration.
type RemoteConfig struct {
	BaseURL string
	Timeout time.Duration
}

// DataSourceConfig selects where expenses, categories and budgets are read from.
type DataSourceConfig struct {
	Mode string
}

// UsesDatabase reports whether reads go straight to the expense service database.
func (c DataSourceConfig) UsesDatabase() bool {
	return c.Mode == DataSourceDatabase
}

// DatabaseConfig holds PostgreSQL configuration. An empty URL disables the
// database entirely.
type DatabaseConfig struct {
	URL             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// RedisConfig holds Redis configuration.
type RedisConfig struct {
	URL      string
	Enabled  bool
	CacheTTL time.Duration
}

// JWTConfig holds bearer token configuration. Signatures are checked only
// when Verify is set.
type JWTConfig struct {
	Secret string
	Verify bool
}

// Verifies reports whether token signatures are actually checked.
func (c JWTConfig) Verifies() bool {
	return c.Verify && c.Secret != ""
}

// EmailConfig holds email service configuration.
type EmailConfig struct {
	ResendAPIKey  string
	FromName      string
	FromEmail     string
	AppBaseURL    string
	AlertsEnabled bool
	WorkerEnabled bool
	PollInterval  time.Duration
	BatchSize     int
	QueueCapacity int
}

// CanSendAlerts reports whether budget alerts can be delivered.
func (c EmailConfig) CanSendAlerts() bool {
	return c.AlertsEnabled && c.ResendAPIKey != ""
}

// CORSConfig holds the browser origins allowed to call the gateway.
type CORSConfig struct {
	AllowedOrigins []string
}

// DisplayConfig controls how money is formatted in responses.
type DisplayConfig struct {
	Currency string
	Locale   string
}

// Load loads configuration from environment variables.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Host:         getEnv("SERVER_HOST", "0.0.0.0"),
			Port:         getEnvAsInt("SERVER_PORT", 8080),
			ReadTimeout:  getEnvAsDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getEnvAsDuration("SERVER_WRITE_TIMEOUT", 15*time.Second),
			Environment:  getEnv("ENV", "development"),
		},
		Remote: RemoteConfig{
			BaseURL: strings.TrimRight(getEnv("REMOTE_API_URL", "http://localhost:3000/api"), "/"),
			Timeout: getEnvAsDuration("REMOTE_API_TIMEOUT", 15*time.Second),
		},
		DataSource: DataSourceConfig{
			Mode: strings.ToLower(getEnv("DATA_SOURCE", DataSourceRemote)),
		},
		Database: DatabaseConfig{
			URL:             getEnv("DATABASE_URL", ""),
			MaxOpenConns:    getEnvAsInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getEnvAsInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getEnvAsDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),
		},
		Redis: RedisConfig{
			URL:      getEnv("REDIS_URL", "redis://localhost:6379/0"),
			Enabled:  getEnvAsBool("REDIS_ENABLED", false),
			CacheTTL: getEnvAsDuration("CACHE_TTL", 30*time.Second),
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", ""),
			Verify: getEnvAsBool("JWT_VERIFY", false),
		},
		Email: EmailConfig{
			ResendAPIKey:  getEnv("RESEND_API_KEY", ""),
			FromName:      getEnv("RESEND_FROM_NAME", "Expense Tracker"),
			FromEmail:     getEnv("RESEND_FROM_EMAIL", "onboarding@resend.dev"),
			AppBaseURL:    getEnv("APP_BASE_URL", "http://localhost:5173"),
			AlertsEnabled: getEnvAsBool("EMAIL_ALERTS_ENABLED", false),
			WorkerEnabled: getEnvAsBool("EMAIL_WORKER_ENABLED", true),
			PollInterval:  getEnvAsDuration("EMAIL_WORKER_POLL_INTERVAL", 5*time.Second),
			BatchSize:     getEnvAsInt("EMAIL_WORKER_BATCH_SIZE", 10),
			QueueCapacity: getEnvAsInt("EMAIL_QUEUE_CAPACITY", 100),
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:5173"}),
		},
		Display: DisplayConfig{
			Currency: strings.ToUpper(getEnv("DISPLAY_CURRENCY", "USD")),
			Locale:   getEnv("DISPLAY_LOCALE", "en-US"),
		},
	}
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return defaultValue
	}
	return items
}
