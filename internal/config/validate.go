package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Database.DSN) == "" {
		return errors.New("database.dsn is required")
	}
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.SessionTTL <= 0 {
		return fmt.Errorf("auth.session_ttl must be > 0 (got %v)", c.Auth.SessionTTL)
	}
	if c.Auth.BcryptCost < 4 || c.Auth.BcryptCost > 31 {
		return fmt.Errorf("auth.bcrypt_cost must be in [4, 31] (got %d)", c.Auth.BcryptCost)
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in [1, 65535] (got %d)", c.Server.Port)
	}

	if err := c.Export.validate(); err != nil {
		return fmt.Errorf("export: %w", err)
	}

	if c.RateLimit.LoginPerMinute <= 0 {
		return fmt.Errorf("rate_limit.login_per_minute must be > 0 (got %d)", c.RateLimit.LoginPerMinute)
	}

	return nil
}

func (e *ExportConfig) validate() error {
	if e.MaxRows <= 0 {
		return fmt.Errorf("max_rows must be > 0 (got %d)", e.MaxRows)
	}
	switch strings.ToLower(e.DefaultFormat) {
	case "csv", "xlsx":
		e.DefaultFormat = strings.ToLower(e.DefaultFormat)
	default:
		return fmt.Errorf("default_format must be csv or xlsx (got %q)", e.DefaultFormat)
	}
	return nil
}
