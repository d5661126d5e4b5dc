package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestValidate checks required fields, formats and defaults.
func TestValidate(t *testing.T) {
	t.Parallel()

	// Missing address.
	require.Error(t, Validate(new(Config)))

	// Bad address.
	require.Error(t, Validate(&Config{ServerAddress: "bad:address"}))

	// Negative delay.
	require.Error(t, Validate(&Config{ServerAddress: "127.0.0.1:0", AsyncDelay: -time.Second}))

	// Negative recent actions.
	require.Error(t, Validate(&Config{ServerAddress: "127.0.0.1:0", RecentActions: -1}))

	// Unknown log level.
	require.Error(t, Validate(&Config{ServerAddress: "127.0.0.1:0", LogLevel: "loud"}))

	// Defaults.
	cfg := &Config{ServerAddress: "127.0.0.1:0", LogLevel: "debug"}
	require.NoError(t, Validate(cfg))
	require.Equal(t, DefaultTimeout, cfg.Timeout)
	require.Equal(t, DefaultAsyncDelay, cfg.AsyncDelay)
	require.Equal(t, "debug", cfg.DispatchLogLevel)
}

// TestSaveLoadRoundtrip ensures settings are persisted and loaded back correctly.
func TestSaveLoadRoundtrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "settings.yaml")

	cfg := &Config{
		ServerAddress: "127.0.0.1:50051",
		AsyncDelay:    250 * time.Millisecond,
		InitialCount:  -4,
	}

	require.NoError(t, Save(path, cfg))

	_, err := os.Stat(path)
	require.NoError(t, err)

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, cfg.ServerAddress, loaded.ServerAddress)
	require.Equal(t, cfg.AsyncDelay, loaded.AsyncDelay)
	require.Equal(t, cfg.InitialCount, loaded.InitialCount)
	require.Equal(t, DefaultLogLevel, loaded.LogLevel)
}

// TestLoad_ZeroAsyncDelaySelectsDefault checks that an explicit zero delay in the file means the default.
func TestLoad_ZeroAsyncDelaySelectsDefault(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "settings.yaml")
	contents := "server_addr: 127.0.0.1:50051\nasync_delay: 0s\nrecent_actions: 3\n"

	require.NoError(t, os.WriteFile(path, []byte(contents), DefaultFilePermissions))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, DefaultAsyncDelay, loaded.AsyncDelay)
	require.Equal(t, 3, loaded.RecentActions)
}

// TestSave_Nil ensures a nil configuration is rejected.
func TestSave_Nil(t *testing.T) {
	t.Parallel()

	require.Error(t, Save(filepath.Join(t.TempDir(), "x.yaml"), nil))
}

// TestLoad_EnvOverrides verifies environment variables override the file and replace a missing one.
//
//nolint:paralleltest // t.Setenv forbids t.Parallel.
func TestLoad_EnvOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")

	require.NoError(t, Save(path, &Config{ServerAddress: "127.0.0.1:50051", InitialCount: 1}))

	t.Setenv("STATEBOX_INITIAL_COUNT", "10")
	t.Setenv("STATEBOX_ASYNC_DELAY", "2s")

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "127.0.0.1:50051", loaded.ServerAddress)
	require.EqualValues(t, 10, loaded.InitialCount)
	require.Equal(t, 2*time.Second, loaded.AsyncDelay)

	// No file at all: the environment must provide the address.
	missing := filepath.Join(dir, "missing.yaml")

	_, err = Load(missing)
	require.Error(t, err)

	t.Setenv("STATEBOX_SERVER_ADDR", "127.0.0.1:6000")

	loaded, err = Load(missing)
	require.NoError(t, err)
	require.Equal(t, "127.0.0.1:6000", loaded.ServerAddress)
}
