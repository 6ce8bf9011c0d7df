package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for the application.
type Config struct {
	// Server configuration
	ServerPort   string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	// Database configuration
	DBHost              string
	DBPort              int
	DBUser              string
	DBPassword          string
	DBName              string
	DBSSLMode           string
	DBMaxConns          int32
	DBMinConns          int32
	DBMaxConnLifetime   time.Duration
	DBMaxConnIdleTime   time.Duration
	DBHealthCheckPeriod time.Duration

	// Schema migrations
	MigrationsDir string
	RunMigrations bool

	// Import pipeline bounds
	ImportChunkSize       int
	ImportExistsBatchSize int
	ImportMaxErrors       int
	ImportMaxUploadBytes  int64

	// Logging configuration
	LogLevel string
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		ServerPort:            getEnv("SERVER_PORT", "8080"),
		ReadTimeout:           getEnvDuration("HTTP_READ_TIMEOUT", 2*time.Minute),
		WriteTimeout:          getEnvDuration("HTTP_WRITE_TIMEOUT", 10*time.Minute),
		IdleTimeout:           getEnvDuration("HTTP_IDLE_TIMEOUT", 120*time.Second),
		DBHost:                getEnv("DB_HOST", "localhost"),
		DBPort:                getEnvInt("DB_PORT", 5432),
		DBUser:                getEnv("DB_USER", "postgres"),
		DBPassword:            getEnv("DB_PASSWORD", "postgres"),
		DBName:                getEnv("DB_NAME", "hydromon"),
		DBSSLMode:             getEnv("DB_SSL_MODE", "disable"),
		DBMaxConns:            int32(getEnvInt("DB_MAX_CONNS", 25)),
		DBMinConns:            int32(getEnvInt("DB_MIN_CONNS", 5)),
		DBMaxConnLifetime:     getEnvDuration("DB_MAX_CONN_LIFETIME", time.Hour),
		DBMaxConnIdleTime:     getEnvDuration("DB_MAX_CONN_IDLE_TIME", 30*time.Minute),
		DBHealthCheckPeriod:   getEnvDuration("DB_HEALTH_CHECK_PERIOD", time.Minute),
		MigrationsDir:         getEnv("MIGRATIONS_DIR", "./migrations"),
		RunMigrations:         getEnvBool("RUN_MIGRATIONS", true),
		ImportChunkSize:       getEnvInt("IMPORT_CHUNK_SIZE", 5000),
		ImportExistsBatchSize: getEnvInt("IMPORT_EXISTS_BATCH_SIZE", 500),
		ImportMaxErrors:       getEnvInt("IMPORT_MAX_ERRORS", 100),
		ImportMaxUploadBytes:  getEnvInt64("IMPORT_MAX_UPLOAD_BYTES", 100<<20),
		LogLevel:              getEnv("LOG_LEVEL", "info"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate validates the configuration.
func (c *Config) validate() error {
	if c.ServerPort == "" {
		return fmt.Errorf("SERVER_PORT is required")
	}
	if c.DBHost == "" {
		return fmt.Errorf("DB_HOST is required")
	}
	if c.DBUser == "" {
		return fmt.Errorf("DB_USER is required")
	}
	if c.DBName == "" {
		return fmt.Errorf("DB_NAME is required")
	}
	if c.ImportChunkSize < 1 {
		return fmt.Errorf("IMPORT_CHUNK_SIZE must be at least 1")
	}
	if c.ImportExistsBatchSize < 1 || c.ImportExistsBatchSize > 500 {
		return fmt.Errorf("IMPORT_EXISTS_BATCH_SIZE must be between 1 and 500")
	}
	if c.ImportMaxErrors < 1 {
		return fmt.Errorf("IMPORT_MAX_ERRORS must be at least 1")
	}
	if c.ImportMaxUploadBytes < 1 {
		return fmt.Errorf("IMPORT_MAX_UPLOAD_BYTES must be at least 1")
	}
	if c.RunMigrations && c.MigrationsDir == "" {
		return fmt.Errorf("MIGRATIONS_DIR is required when RUN_MIGRATIONS is set")
	}
	return nil
}

// getEnv gets an environment variable with a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an environment variable as int with a default value.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvInt64 gets an environment variable as int64 with a default value.
func getEnvInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvBool gets an environment variable as bool with a default value.
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvDuration gets an environment variable as duration with a default value.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
