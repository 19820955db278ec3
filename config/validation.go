package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks that every value the server cannot run without
// is present. The JWT secret is mandatory everywhere; connection
// details only in environments that talk to real services.
func ValidateConfig(cfg *Config) error {
	var errors []string

	if cfg.JWTSecret == "" {
		errors = append(errors, "JWT secret is required")
	}

	env := GetEnvironment()
	if env == Production || env == CI {
		required := map[string]string{
			"server port":       cfg.ServerPort,
			"database host":     cfg.DBHost,
			"database port":     cfg.DBPort,
			"database user":     cfg.DBUser,
			"database password": cfg.DBPassword,
			"database name":     cfg.DBName,
		}
		for field, value := range required {
			if value == "" {
				errors = append(errors, fmt.Sprintf("%s is required", field))
			}
		}
		if cfg.RedisURL == "" && (cfg.RedisHost == "" || cfg.RedisPort == "") {
			errors = append(errors, "redis address is required")
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n%s", strings.Join(errors, "\n"))
	}

	return nil
}
