package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Store backends
const (
	StoreBackendDynamoDB = "dynamodb"
	StoreBackendSQLite   = "sqlite"
)

// Config holds all configuration for the application
type Config struct {
	Environment string
	Port        string
	Store       StoreConfig
	Identity    IdentityConfig
	Auth        AuthConfig
	RateLimit   RateLimitConfig
}

// StoreConfig holds record store configuration
type StoreConfig struct {
	Backend        string // "dynamodb" or "sqlite"
	OrdersTable    string
	UsersTable     string
	Region         string
	Endpoint       string // optional local DynamoDB endpoint override
	SQLitePath     string
	MigrationsPath string
}

// IdentityConfig holds identity provider configuration
type IdentityConfig struct {
	UserPoolID string
}

// AuthConfig holds dev-server authentication configuration
type AuthConfig struct {
	JWTSecret   string
	ExpiryHours int
}

// RateLimitConfig holds dev-server rate limiting configuration
type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	// Set up Viper
	viper.AutomaticEnv()
	viper.SetDefault("PORT", "8081")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("STORE_BACKEND", StoreBackendSQLite)
	viper.SetDefault("ORDERS_TABLE", "orders")
	viper.SetDefault("USERS_TABLE", "users")
	viper.SetDefault("SQLITE_PATH", "./data/registration.db")
	viper.SetDefault("MIGRATIONS_PATH", "./migrations")
	viper.SetDefault("JWT_EXPIRY_HOURS", 24)
	viper.SetDefault("RATE_LIMIT_RPS", 10.0)
	viper.SetDefault("RATE_LIMIT_BURST", 20)

	config := &Config{
		Environment: viper.GetString("ENVIRONMENT"),
		Port:        viper.GetString("PORT"),
		Store: StoreConfig{
			Backend:        viper.GetString("STORE_BACKEND"),
			OrdersTable:    viper.GetString("ORDERS_TABLE"),
			UsersTable:     viper.GetString("USERS_TABLE"),
			Region:         viper.GetString("AWS_REGION"),
			Endpoint:       viper.GetString("DYNAMODB_ENDPOINT"),
			SQLitePath:     viper.GetString("SQLITE_PATH"),
			MigrationsPath: viper.GetString("MIGRATIONS_PATH"),
		},
		Identity: IdentityConfig{
			UserPoolID: viper.GetString("USER_POOL_ID"),
		},
		Auth: AuthConfig{
			JWTSecret:   viper.GetString("JWT_SECRET"),
			ExpiryHours: viper.GetInt("JWT_EXPIRY_HOURS"),
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: viper.GetFloat64("RATE_LIMIT_RPS"),
			Burst:             viper.GetInt("RATE_LIMIT_BURST"),
		},
	}

	return config, nil
}

// GetEnv gets an environment variable with a fallback value
func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// GetEnvAsInt gets an environment variable as integer with a fallback value
func GetEnvAsInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// GetEnvAsBool gets an environment variable as boolean with a fallback value
func GetEnvAsBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}
