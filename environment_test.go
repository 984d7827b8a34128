package trailmap_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/trailmap"
	"github.com/xy-planning-network/trailmap/logger"
)

func TestEnvironmentValid(t *testing.T) {
	for _, tc := range []struct {
		name  string
		env   trailmap.Environment
		valid bool
	}{
		{"Zero-Value", "", false},
		{"Lowercase", "development", false},
		{"Development", trailmap.Development, true},
		{"Production", trailmap.Production, true},
		{"Testing", trailmap.Testing, true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.env.Valid()
			if tc.valid {
				require.Nil(t, err)
				return
			}

			require.ErrorIs(t, err, trailmap.ErrNotValid)
		})
	}
}

func TestEnvironmentReportsPanics(t *testing.T) {
	require.False(t, trailmap.Development.ReportsPanics())
	require.False(t, trailmap.Testing.ReportsPanics())
	require.True(t, trailmap.Staging.ReportsPanics())
	require.True(t, trailmap.Production.ReportsPanics())
}

func TestEnvVarOrBool(t *testing.T) {
	for _, tc := range []struct {
		name     string
		val      string
		def      bool
		expected bool
	}{
		{"Unset", "", true, true},
		{"True", "TRUE", false, true},
		{"False", "false", true, false},
		{"Garbage", "yes", false, false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			t.Setenv("TRAILMAP_TEST_BOOL", tc.val)

			// Act
			actual := trailmap.EnvVarOrBool("TRAILMAP_TEST_BOOL", tc.def)

			// Assert
			require.Equal(t, tc.expected, actual)
		})
	}
}

func TestEnvVarOrDuration(t *testing.T) {
	// Arrange
	t.Setenv("TRAILMAP_TEST_DURATION", "not-a-duration")

	// Act + Assert
	require.Equal(t, time.Second, trailmap.EnvVarOrDuration("TRAILMAP_TEST_DURATION", time.Second))

	// Arrange
	t.Setenv("TRAILMAP_TEST_DURATION", "90s")

	// Act + Assert
	require.Equal(t, 90*time.Second, trailmap.EnvVarOrDuration("TRAILMAP_TEST_DURATION", time.Second))
}

func TestEnvVarOrEnv(t *testing.T) {
	// Arrange
	t.Setenv("TRAILMAP_TEST_ENV", "staging")

	// Act + Assert
	require.Equal(t, trailmap.Staging, trailmap.EnvVarOrEnv("TRAILMAP_TEST_ENV", trailmap.Development))

	// Arrange
	t.Setenv("TRAILMAP_TEST_ENV", "moon")

	// Act + Assert
	require.Equal(t, trailmap.Development, trailmap.EnvVarOrEnv("TRAILMAP_TEST_ENV", trailmap.Development))
}

func TestEnvVarOrFloat(t *testing.T) {
	t.Setenv("TRAILMAP_TEST_FLOAT", "2.5")
	require.Equal(t, 2.5, trailmap.EnvVarOrFloat("TRAILMAP_TEST_FLOAT", 1))

	t.Setenv("TRAILMAP_TEST_FLOAT", "fast")
	require.Equal(t, 1.0, trailmap.EnvVarOrFloat("TRAILMAP_TEST_FLOAT", 1))
}

func TestEnvVarOrInt(t *testing.T) {
	t.Setenv("TRAILMAP_TEST_INT", "3000")
	require.Equal(t, 3000, trailmap.EnvVarOrInt("TRAILMAP_TEST_INT", 1))

	t.Setenv("TRAILMAP_TEST_INT", "three")
	require.Equal(t, 1, trailmap.EnvVarOrInt("TRAILMAP_TEST_INT", 1))
}

func TestEnvVarOrLogLevel(t *testing.T) {
	for _, tc := range []struct {
		name     string
		val      string
		expected logger.LogLevel
	}{
		{"Unset", "", logger.LogLevelInfo},
		{"Debug", "DEBUG", logger.LogLevelDebug},
		{"Lowercase-Warn", "warn", logger.LogLevelWarn},
		{"Unknown", "LOUD", logger.LogLevelInfo},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("TRAILMAP_TEST_LOG_LEVEL", tc.val)
			require.Equal(t, tc.expected, trailmap.EnvVarOrLogLevel("TRAILMAP_TEST_LOG_LEVEL", logger.LogLevelInfo))
		})
	}
}

func TestEnvVarOrString(t *testing.T) {
	t.Setenv("TRAILMAP_TEST_STRING", "")
	require.Equal(t, "def", trailmap.EnvVarOrString("TRAILMAP_TEST_STRING", "def"))

	t.Setenv("TRAILMAP_TEST_STRING", "api")
	require.Equal(t, "api", trailmap.EnvVarOrString("TRAILMAP_TEST_STRING", "def"))
}

func TestEnvVarOrURL(t *testing.T) {
	// Arrange + Act
	actual := trailmap.EnvVarOrURL("TRAILMAP_TEST_URL", "not a url")

	// Assert
	require.Nil(t, actual)

	// Arrange
	t.Setenv("TRAILMAP_TEST_URL", "")

	// Act
	actual = trailmap.EnvVarOrURL("TRAILMAP_TEST_URL", "http://localhost:3000/ignored")

	// Assert
	require.Equal(t, "http://localhost:3000/", actual.String())

	// Arrange
	t.Setenv("TRAILMAP_TEST_URL", "https://example.com:8080")

	// Act
	actual = trailmap.EnvVarOrURL("TRAILMAP_TEST_URL", "http://localhost:3000")

	// Assert
	require.Equal(t, "8080", actual.Port())
}
