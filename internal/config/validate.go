package config

import (
	"fmt"
	"strings"
)

const maxPort = 65535

// Validate performs range checks on the loaded configuration.
// Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > maxPort {
		return fmt.Errorf("server.port must be in [1, %d] (got %d)", maxPort, c.Server.Port)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("server.shutdown_timeout must be > 0 (got %s)", c.Server.ShutdownTimeout)
	}

	if err := c.Log.validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}

	if c.Limits.MaxInputBytes <= 0 {
		return fmt.Errorf("limits.max_input_bytes must be > 0 (got %d)", c.Limits.MaxInputBytes)
	}
	if c.CLI.Workers <= 0 {
		return fmt.Errorf("cli.workers must be > 0 (got %d)", c.CLI.Workers)
	}

	return nil
}

func (l *LogConfig) validate() error {
	l.Level = strings.ToLower(strings.TrimSpace(l.Level))
	switch l.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("level must be one of debug, info, warn, error (got %q)", l.Level)
	}

	l.Format = strings.ToLower(strings.TrimSpace(l.Format))
	switch l.Format {
	case "json", "console":
	default:
		return fmt.Errorf("format must be json or console (got %q)", l.Format)
	}
	return nil
}
