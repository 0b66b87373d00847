package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/boardcamp")
	t.Setenv("APP_PORT", "")
	t.Setenv("PORT", "")
	t.Setenv("DB_MAX_CONNS", "")
	t.Setenv("DB_CONNECT_TIMEOUT", "")

	cfg := Load()
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, "postgres://u:p@localhost:5432/boardcamp", cfg.DatabaseURL)
	require.Equal(t, int32(8), cfg.DBMaxConns)
	require.Equal(t, 5*time.Second, cfg.DBConnectTimeout)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://x")
	t.Setenv("APP_PORT", "")
	t.Setenv("PORT", "4000")
	t.Setenv("APP_ENV", "prod")
	t.Setenv("DB_MAX_CONNS", "20")
	t.Setenv("DB_MIN_CONNS", "oops")
	t.Setenv("DB_CONNECT_TIMEOUT", "2s")

	cfg := Load()
	require.Equal(t, "4000", cfg.Port)
	require.Equal(t, "prod", cfg.Env)
	require.Equal(t, int32(20), cfg.DBMaxConns)
	require.Equal(t, int32(2), cfg.DBMinConns)
	require.Equal(t, 2*time.Second, cfg.DBConnectTimeout)
}

func TestLoad_MissingDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	require.Panics(t, func() { Load() })
}
