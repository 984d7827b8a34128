package ranger_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/trailmap"
	"github.com/xy-planning-network/trailmap/http/routepath"
	"github.com/xy-planning-network/trailmap/logger"
	"github.com/xy-planning-network/trailmap/ranger"
)

func writeConfig(t *testing.T, src string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "trailmap.toml")
	require.Nil(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

func TestConfigFinalizeDefaults(t *testing.T) {
	// Arrange
	cfg := new(ranger.Config)

	// Act
	err := cfg.Finalize()

	// Assert
	require.Nil(t, err)
	require.Equal(t, trailmap.Development, cfg.Env())
	require.Equal(t, ranger.DefaultHost, cfg.Server.Host)
	require.Equal(t, ranger.DefaultPort, cfg.Server.Port)
	require.True(t, *cfg.Routes.AutoTags)
	require.Equal(t, routepath.StripSegment, cfg.StripMode())
	require.Equal(t, logger.LogLevelInfo, cfg.LogLevel())
	require.Equal(t, "http://localhost:3000", cfg.URL().String())

	idle, read, write := cfg.Server.Durations()
	require.Equal(t, ranger.DefaultServerIdleTimeout, idle)
	require.Equal(t, ranger.DefaultServerReadTimeout, read)
	require.Equal(t, ranger.DefaultServerWriteTimeout, write)
}

func TestLoadConfig(t *testing.T) {
	// Arrange
	path := writeConfig(t, `
environment = "testing"

[server]
port = ":8080"
read_timeout = "1s"
rate_limit = 5.0

[routes]
dir = "api"
auto_tags = false
strip_mode = "text"

[logging]
level = "debug"
`)
	t.Setenv(ranger.ConfigEnvVar, path)
	t.Setenv("PORT", ":9000")
	t.Setenv("ROUTES_VERBOSE", "true")

	// Act
	cfg, err := ranger.LoadConfig("")
	require.Nil(t, err)
	require.Equal(t, ":8080", cfg.Server.Port)

	err = cfg.Finalize()

	// Assert
	require.Nil(t, err)
	require.Equal(t, trailmap.Testing, cfg.Env())
	require.Equal(t, ":9000", cfg.Server.Port)
	require.Equal(t, "api", cfg.Routes.Dir)
	require.False(t, *cfg.Routes.AutoTags)
	require.True(t, cfg.Routes.Verbose)
	require.Equal(t, routepath.StripText, cfg.StripMode())
	require.Equal(t, logger.LogLevelDebug, cfg.LogLevel())

	_, read, _ := cfg.Server.Durations()
	require.Equal(t, time.Second, read)
	require.Equal(t, 5.0, cfg.Server.RateLimit)
	require.Equal(t, ranger.DefaultServerRateBurst, cfg.Server.RateBurst)
}

func TestLoadConfigMissing(t *testing.T) {
	t.Run("Default", func(t *testing.T) {
		t.Setenv(ranger.ConfigEnvVar, "")

		cfg, err := ranger.LoadConfig("")

		require.Nil(t, err)
		require.Equal(t, new(ranger.Config), cfg)
	})

	t.Run("Explicit", func(t *testing.T) {
		cfg, err := ranger.LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))

		require.Nil(t, cfg)
		require.True(t, errors.Is(err, trailmap.ErrNotExist))
	})

	t.Run("From-Env", func(t *testing.T) {
		t.Setenv(ranger.ConfigEnvVar, filepath.Join(t.TempDir(), "nope.toml"))

		cfg, err := ranger.LoadConfig("")

		require.Nil(t, cfg)
		require.True(t, errors.Is(err, trailmap.ErrNotExist))
	})
}

func TestConfigInvalid(t *testing.T) {
	for _, tc := range []struct {
		name string
		src  string
	}{
		{"Environment", `environment = "nope"`},
		{"Timeout", "[server]\nidle_timeout = \"soon\""},
		{"Base-URL", "[server]\nbase_url = \"not a url\""},
		{"Strip-Mode", "[routes]\nstrip_mode = \"prefix\""},
		{"Log-Level", "[logging]\nlevel = \"LOUD\""},
		{"Rate-Limit", "[server]\nrate_limit = -1.0"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			cfg, err := ranger.LoadConfig(writeConfig(t, tc.src))
			require.Nil(t, err)

			// Act
			err = cfg.Finalize()

			// Assert
			require.True(t, errors.Is(err, trailmap.ErrNotValid), err)
		})
	}

	t.Run("TOML", func(t *testing.T) {
		cfg, err := ranger.LoadConfig(writeConfig(t, "[server"))

		require.Nil(t, cfg)
		require.True(t, errors.Is(err, trailmap.ErrNotValid))
	})
}

func TestConfigMerge(t *testing.T) {
	// Arrange
	on := true
	cfg := &ranger.Config{
		Environment: "DEVELOPMENT",
		Server:      ranger.ServerConfig{Host: "localhost", Port: ":3000"},
		Routes:      ranger.RoutesConfig{Dir: "api"},
	}
	overlay := &ranger.Config{
		Environment: "STAGING",
		Server:      ranger.ServerConfig{Port: ":4000"},
		Routes:      ranger.RoutesConfig{AutoTags: &on, Verbose: true},
		Logging:     ranger.LoggingConfig{Level: "WARN"},
	}

	// Act
	cfg.Merge(overlay)
	on = false

	// Assert
	require.Equal(t, "STAGING", cfg.Environment)
	require.Equal(t, "localhost", cfg.Server.Host)
	require.Equal(t, ":4000", cfg.Server.Port)
	require.Equal(t, "api", cfg.Routes.Dir)
	require.True(t, *cfg.Routes.AutoTags)
	require.True(t, cfg.Routes.Verbose)
	require.Equal(t, "WARN", cfg.Logging.Level)
}

func TestConfigURL(t *testing.T) {
	cfg := &ranger.Config{Server: ranger.ServerConfig{BaseURL: "https://example.com/app"}}
	require.Nil(t, cfg.Finalize())
	require.Equal(t, "https://example.com/app", cfg.URL().String())
}
