package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeYAML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const validYAML = `
server:
  host: "0.0.0.0"
  port: 9090
  read_timeout: "5s"
  write_timeout: "15s"
  idle_timeout: "30s"
  shutdown_timeout: "3s"

log:
  level: "debug"
  format: "console"

limits:
  max_input_bytes: 1024

cli:
  workers: 8
`

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(PathEnv, "")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 4096, cfg.Limits.MaxInputBytes)
	assert.Equal(t, 4, cfg.CLI.Workers)
	assert.Equal(t, "127.0.0.1:8080", cfg.Server.Addr())
}

func TestLoad_ValidYAML(t *testing.T) {
	path := writeYAML(t, validYAML)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 15*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, 30*time.Second, cfg.Server.IdleTimeout)
	assert.Equal(t, 3*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, 1024, cfg.Limits.MaxInputBytes)
	assert.Equal(t, 8, cfg.CLI.Workers)
}

func TestLoad_PathFromEnv(t *testing.T) {
	t.Setenv(PathEnv, writeYAML(t, validYAML))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
}

func TestLoad_EnvOverridesYAML(t *testing.T) {
	path := writeYAML(t, validYAML)
	t.Setenv("VNNUM_SERVER_PORT", "7070")
	t.Setenv("VNNUM_LOG_LEVEL", "warn")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, 8, cfg.CLI.Workers)
}

func TestLoad_PartialYAMLKeepsDefaults(t *testing.T) {
	path := writeYAML(t, "cli:\n  workers: 2\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.CLI.Workers)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 4096, cfg.Limits.MaxInputBytes)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeYAML(t, "server: [unterminated")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config: read")
}

func TestLoad_ValidationError(t *testing.T) {
	t.Setenv(PathEnv, "")
	t.Setenv("VNNUM_CLI_WORKERS", "0")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cli.workers")
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Server: ServerConfig{Host: "localhost", Port: 8080, ShutdownTimeout: time.Second},
			Log:    LogConfig{Level: "info", Format: "json"},
			Limits: LimitsConfig{MaxInputBytes: 4096},
			CLI:    CLIConfig{Workers: 1},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"port zero", func(c *Config) { c.Server.Port = 0 }, "server.port"},
		{"port too large", func(c *Config) { c.Server.Port = 70000 }, "server.port"},
		{"no shutdown timeout", func(c *Config) { c.Server.ShutdownTimeout = 0 }, "shutdown_timeout"},
		{"bad level", func(c *Config) { c.Log.Level = "verbose" }, "level"},
		{"bad format", func(c *Config) { c.Log.Format = "xml" }, "format"},
		{"level normalized", func(c *Config) { c.Log.Level = " WARN " }, ""},
		{"zero input limit", func(c *Config) { c.Limits.MaxInputBytes = 0 }, "max_input_bytes"},
		{"negative workers", func(c *Config) { c.CLI.Workers = -1 }, "cli.workers"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
