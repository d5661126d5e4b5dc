package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/oshokin/statebox/internal/logger"
)

// Config holds settings shared by the statebox binaries.
// Every field can be overridden with a STATEBOX_* environment variable.
type Config struct {
	// ServerAddress is the gRPC address of the counter server.
	ServerAddress string `yaml:"server_addr" env:"SERVER_ADDR"`
	// Timeout bounds network operations and RPC calls.
	Timeout time.Duration `yaml:"timeout" env:"TIMEOUT"`
	// LogLevel is the minimum level of the global logger.
	LogLevel string `yaml:"log_level" env:"LOG_LEVEL"`
	// DispatchLogLevel is the minimum level of per-action dispatch logs.
	DispatchLogLevel string `yaml:"dispatch_log_level" env:"DISPATCH_LOG_LEVEL"`
	// AsyncDelay is how long an increment_async waits before its increment.
	// Zero, including an explicit 0s, selects DefaultAsyncDelay; use a small
	// positive value such as 1ms for near-immediate follow-ups.
	AsyncDelay time.Duration `yaml:"async_delay" env:"ASYNC_DELAY"`
	// RecentActions is how many recent dispatches the server keeps for its
	// shutdown summary. Zero disables the recording.
	RecentActions int `yaml:"recent_actions" env:"RECENT_ACTIONS"`
	// InitialCount is the counter value the server starts with.
	InitialCount int64 `yaml:"initial_count" env:"INITIAL_COUNT"`
}

const (
	// DefaultConfigFilename is the default settings file name.
	DefaultConfigFilename = "statebox-settings.yaml"

	// DefaultTimeout is the default duration for network operations.
	DefaultTimeout = 5 * time.Second

	// DefaultAsyncDelay is the default delay of increment_async follow-ups.
	DefaultAsyncDelay = time.Second

	// DefaultLogLevel is used when no level is configured.
	DefaultLogLevel = "info"

	// DefaultFilePermissions is the permission used for written settings files.
	DefaultFilePermissions = 0o600

	// EnvPrefix prefixes every environment override.
	EnvPrefix = "STATEBOX_"
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// errServerAddressRequired is returned when the server address is missing.
	errServerAddressRequired = errors.New("server address must be provided")
	// errNegativeAsyncDelay is returned for a negative async delay.
	errNegativeAsyncDelay = errors.New("async delay must not be negative")
	// errNegativeRecentActions is returned for a negative recent actions limit.
	errNegativeRecentActions = errors.New("recent actions must not be negative")
)

// Load reads configuration from path, applies environment overrides and
// validates the result. A missing file is not an error when the environment
// supplies the server address.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFilename
	}

	var cfg Config

	contents, err := os.ReadFile(filepath.Clean(path))
	switch {
	case err == nil:
		if err = yaml.Unmarshal(contents, &cfg); err != nil {
			return nil, fmt.Errorf("unmarshal settings: %w", err)
		}
	case errors.Is(err, os.ErrNotExist):
		// Rely on the environment.
	default:
		return nil, fmt.Errorf("read settings: %w", err)
	}

	if err = ApplyEnv(&cfg); err != nil {
		return nil, err
	}

	if err = Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// ApplyEnv overrides fields of cfg with the STATEBOX_* variables that are set.
func ApplyEnv(cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	//nolint:exhaustruct // Remaining env options keep their defaults.
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse environment: %w", err)
	}

	return nil
}

// Save writes cfg to path in YAML.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultConfigFilename
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate checks required fields and fills in defaults.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if cfg.ServerAddress == "" {
		return errServerAddressRequired
	}

	if _, err := net.ResolveTCPAddr("tcp", cfg.ServerAddress); err != nil {
		return fmt.Errorf("invalid server address: %w", err)
	}

	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	switch {
	case cfg.AsyncDelay < 0:
		return errNegativeAsyncDelay
	case cfg.AsyncDelay == 0:
		cfg.AsyncDelay = DefaultAsyncDelay
	}

	if cfg.RecentActions < 0 {
		return errNegativeRecentActions
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}

	if _, ok := logger.ParseLogLevel(cfg.LogLevel); !ok {
		return fmt.Errorf("invalid log level %q", cfg.LogLevel)
	}

	if cfg.DispatchLogLevel == "" {
		cfg.DispatchLogLevel = cfg.LogLevel
	}

	if _, ok := logger.ParseLogLevel(cfg.DispatchLogLevel); !ok {
		return fmt.Errorf("invalid dispatch log level %q", cfg.DispatchLogLevel)
	}

	return nil
}
