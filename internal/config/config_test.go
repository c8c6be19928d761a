package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/coachpad/matchtime/internal/platform/logging"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, EnvDev, cfg.AppEnv)
	require.Equal(t, ":8080", cfg.HTTPAddr)
	require.Equal(t, 15*time.Second, cfg.ReadTimeout)
	require.Equal(t, 15*time.Second, cfg.WriteTimeout)
	require.Equal(t, logging.LevelInfo, cfg.LogLevel)
	require.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	require.True(t, cfg.SeedDemoData)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "prod")
	t.Setenv("APP_HTTP_ADDR", ":9999")
	t.Setenv("APP_HTTP_READ_TIMEOUT_SEC", "30")
	t.Setenv("APP_LOG_LEVEL", "debug")
	t.Setenv("APP_CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("DB_URL", "postgres://localhost/matchtime")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, EnvProd, cfg.AppEnv)
	require.Equal(t, ":9999", cfg.HTTPAddr)
	require.Equal(t, 30*time.Second, cfg.ReadTimeout)
	require.Equal(t, logging.LevelDebug, cfg.LogLevel)
	require.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	require.Equal(t, "postgres://localhost/matchtime", cfg.DBURL)
	require.False(t, cfg.SeedDemoData)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Run("invalid env", func(t *testing.T) {
		t.Setenv("APP_ENV", "sandbox")
		_, err := Load()
		require.Error(t, err)
	})

	t.Run("non-positive timeout", func(t *testing.T) {
		t.Setenv("APP_HTTP_READ_TIMEOUT_SEC", "0")
		_, err := Load()
		require.Error(t, err)
	})

	t.Run("unparseable timeout", func(t *testing.T) {
		t.Setenv("APP_HTTP_WRITE_TIMEOUT_SEC", "soon")
		_, err := Load()
		require.Error(t, err)
	})
}
