package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort string
	ServerHost string

	// Database configuration
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Redis configuration
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	RedisURL      string

	// JWT configuration
	JWTSecret string
}

// LoadConfig creates a new Config instance with values from environment
// variables or Docker secrets, depending on the environment.
func LoadConfig() (*Config, error) {
	env := GetEnvironment()
	cfg := &Config{}

	switch env {
	case CI:
		loadCIConfig(cfg)
	case Development, Test:
		loadDevConfig(cfg)
	case Production:
		loadProdConfig(cfg)
	default:
		return nil, fmt.Errorf("unknown environment: %s", env)
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// loadCIConfig loads configuration for CI using ONLY environment variables
func loadCIConfig(cfg *Config) {
	cfg.ServerPort = getenvDefault("SERVER_PORT", "8080")
	cfg.ServerHost = getenvDefault("SERVER_HOST", "0.0.0.0")
	cfg.DBHost = os.Getenv("DB_HOST")
	cfg.DBPort = os.Getenv("DB_PORT")
	cfg.DBUser = os.Getenv("DB_USER")
	cfg.DBPassword = os.Getenv("DB_PASSWORD")
	cfg.DBName = os.Getenv("DB_NAME")
	cfg.DBSSLMode = getenvDefault("DB_SSL_MODE", "disable")
	cfg.RedisHost = os.Getenv("REDIS_HOST")
	cfg.RedisPort = os.Getenv("REDIS_PORT")
	cfg.RedisPassword = os.Getenv("REDIS_PASSWORD")
	cfg.RedisURL = os.Getenv("REDIS_URL")
	cfg.RedisDB = 0
	cfg.JWTSecret = os.Getenv("JWT_SECRET")
}

// loadDevConfig loads configuration for local development and tests.
// Environment variables win; Docker secrets are the fallback for the
// sensitive values so a compose setup works without exporting them.
func loadDevConfig(cfg *Config) {
	cfg.ServerPort = getenvDefault("SERVER_PORT", "8080")
	cfg.ServerHost = getenvDefault("SERVER_HOST", "localhost")
	cfg.DBHost = getenvDefault("DB_HOST", "localhost")
	cfg.DBPort = getenvDefault("DB_PORT", "5432")
	cfg.DBUser = getenvDefault("DB_USER", "cookly")
	cfg.DBName = getenvDefault("DB_NAME", "cookly")
	cfg.DBSSLMode = getenvDefault("DB_SSL_MODE", "disable")
	cfg.RedisHost = getenvDefault("REDIS_HOST", "localhost")
	cfg.RedisPort = getenvDefault("REDIS_PORT", "6379")
	cfg.RedisURL = os.Getenv("REDIS_URL")
	cfg.RedisDB = 0

	cfg.DBPassword = settingOrSecret("DB_PASSWORD", "db_password")
	cfg.RedisPassword = settingOrSecret("REDIS_PASSWORD", "redis_password")
	cfg.JWTSecret = settingOrSecret("JWT_SECRET", "jwt_secret")
}

// loadProdConfig loads configuration for production using ONLY Docker secrets
func loadProdConfig(cfg *Config) {
	cfg.ServerPort = readSecret("server_port")
	cfg.ServerHost = readSecret("server_host")
	cfg.DBHost = readSecret("db_host")
	cfg.DBPort = readSecret("db_port")
	cfg.DBUser = readSecret("db_user")
	cfg.DBPassword = readSecret("db_password")
	cfg.DBName = readSecret("db_name")
	cfg.DBSSLMode = readSecret("db_ssl_mode")
	cfg.RedisHost = readSecret("redis_host")
	cfg.RedisPort = readSecret("redis_port")
	cfg.RedisPassword = readSecret("redis_password")
	cfg.RedisURL = readSecret("redis_url")
	cfg.RedisDB = 0
	cfg.JWTSecret = readSecret("jwt_secret")
}

func getenvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// settingOrSecret prefers the environment variable and falls back to the
// Docker secret of the same meaning.
func settingOrSecret(envVar, secretName string) string {
	if v := os.Getenv(envVar); v != "" {
		return v
	}
	return readSecret(secretName)
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	if data, err := os.ReadFile(filepath.Join(secretsDir, name)); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}
