// Package config loads service and CLI configuration from YAML, environment
// variables and defaults.
package config

import (
	"net"
	"strconv"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Log    LogConfig    `yaml:"log"`
	Limits LimitsConfig `yaml:"limits"`
	CLI    CLIConfig    `yaml:"cli"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"VNNUM_SERVER_HOST"             env-default:"127.0.0.1"`
	Port            int           `yaml:"port"             env:"VNNUM_SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"VNNUM_SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"VNNUM_SERVER_WRITE_TIMEOUT"    env-default:"10s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"VNNUM_SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"VNNUM_SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// Addr returns the host:port listen address.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"VNNUM_LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"VNNUM_LOG_FORMAT" env-default:"json"`
}

// LimitsConfig bounds the size of untrusted input.
type LimitsConfig struct {
	MaxInputBytes int `yaml:"max_input_bytes" env:"VNNUM_MAX_INPUT_BYTES" env-default:"4096"`
}

// CLIConfig holds settings for the command-line batch mode.
type CLIConfig struct {
	Workers int `yaml:"workers" env:"VNNUM_CLI_WORKERS" env-default:"4"`
}
