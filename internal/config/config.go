package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// DBTypeMemory selects the in-process record store instead of a database.
const DBTypeMemory = "memory"

// Config holds all application configuration
type Config struct {
	// Server configuration
	Port string

	// Database configuration
	DBType            string // memory, sqlite, mysql, mariadb, postgres, sqlserver
	DBHost            string
	DBPort            string
	DBDatabase        string
	DBUser            string
	DBPassword        string
	DBConnectionLimit int

	// Auth configuration. AuthRequired=false serves the open,
	// single-tenant variant: no session gate, no ownership scoping.
	AuthRequired      bool
	SessionExpiration time.Duration

	// CORS allowed origins, comma-separated. "*" is wide open and
	// dev-only: credentials with a wildcard origin never ship.
	CORSOrigins string
}

// Load loads configuration from the environment, reading a .env file first
// when one is present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:              getEnv("PORT", "8000"),
		DBType:            getEnv("DB_TYPE", "sqlite"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "3306"),
		DBDatabase:        getEnv("DB_DATABASE", "jobtrack.db"),
		DBUser:            getEnv("DB_USER", ""),
		DBPassword:        getEnv("DB_PASSWORD", ""),
		DBConnectionLimit: getEnvAsInt("DB_CONNECTION_LIMIT", 5),
		AuthRequired:      getEnvAsBool("AUTH_REQUIRED", true),
		SessionExpiration: time.Duration(getEnvAsInt("SESSION_EXPIRATION_HOURS", 24)) * time.Hour,
		CORSOrigins:       getEnv("CORS_ORIGINS", "*"),
	}

	// Validate required fields
	switch cfg.DBType {
	case DBTypeMemory:
		// nothing external to configure
	case "sqlite":
		if cfg.DBDatabase == "" {
			return nil, fmt.Errorf("DB_DATABASE is required")
		}
	case "mysql", "mariadb", "postgres", "postgresql", "sqlserver", "mssql":
		if cfg.DBDatabase == "" {
			return nil, fmt.Errorf("DB_DATABASE is required")
		}
		if cfg.DBUser == "" {
			return nil, fmt.Errorf("DB_USER is required")
		}
	default:
		return nil, fmt.Errorf("unsupported database type: %s", cfg.DBType)
	}

	return cfg, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsBool gets an environment variable as a bool or returns a default value
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
