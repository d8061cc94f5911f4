package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if err := validatePath("graphql.path", c.GraphQL.Path); err != nil {
		return err
	}
	if err := validatePath("graphql.playground_path", c.GraphQL.PlaygroundPath); err != nil {
		return err
	}
	if c.GraphQL.Path == c.GraphQL.PlaygroundPath {
		return fmt.Errorf("graphql.path and graphql.playground_path must differ (both %q)", c.GraphQL.Path)
	}

	if strings.TrimSpace(c.Static.Dir) == "" {
		return fmt.Errorf("static.dir must not be empty")
	}

	if c.RateLimit.Enabled {
		if c.RateLimit.RequestsPerMinute <= 0 {
			return fmt.Errorf("rate_limit.requests_per_minute must be > 0 (got %d)", c.RateLimit.RequestsPerMinute)
		}
		if c.RateLimit.CleanupInterval <= 0 {
			return fmt.Errorf("rate_limit.cleanup_interval must be > 0 (got %v)", c.RateLimit.CleanupInterval)
		}
	}

	return nil
}

func validatePath(name, path string) error {
	if !strings.HasPrefix(path, "/") {
		return fmt.Errorf("%s must start with / (got %q)", name, path)
	}
	if strings.ContainsAny(path, " \t") {
		return fmt.Errorf("%s must not contain whitespace (got %q)", name, path)
	}
	return nil
}
