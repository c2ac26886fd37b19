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

// ValidateConfig checks that the values required to run the service are
// present. Redis and S3 are optional; the service degrades without them.
func ValidateConfig(cfg *Config) error {
	var missing []string

	required := map[string]string{
		"DB_HOST":    cfg.DBHost,
		"DB_PORT":    cfg.DBPort,
		"DB_USER":    cfg.DBUser,
		"DB_NAME":    cfg.DBName,
		"JWT_SECRET": cfg.JWTSecret,
	}
	for name, value := range required {
		if value == "" {
			missing = append(missing, name)
		}
	}

	if len(missing) > 0 {
		return ValidationError{
			Field:   strings.Join(missing, ", "),
			Message: "required configuration is missing",
		}
	}
	return nil
}
