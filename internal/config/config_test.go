package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"TOKO_DB_PATH", "TOKO_SERVER_URL", "TOKO_HTTP_TIMEOUT", "TOKO_LOG_LEVEL"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	require.Equal(t, "toko2025.db", cfg.DatabasePath)
	require.Equal(t, "http://192.168.1.2:3000", cfg.ServerURL)
	require.Equal(t, 30*time.Second, cfg.HTTPTimeout)
	require.Equal(t, "info", cfg.LogLevel)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("TOKO_DB_PATH", "/tmp/kasir.db")
	t.Setenv("TOKO_SERVER_URL", "https://toko.example.com")
	t.Setenv("TOKO_HTTP_TIMEOUT", "5")
	t.Setenv("TOKO_LOG_LEVEL", "debug")

	cfg := Load()
	require.Equal(t, "/tmp/kasir.db", cfg.DatabasePath)
	require.Equal(t, "https://toko.example.com", cfg.ServerURL)
	require.Equal(t, 5*time.Second, cfg.HTTPTimeout)
	require.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadRejectsBadTimeout(t *testing.T) {
	t.Setenv("TOKO_HTTP_TIMEOUT", "banana")
	require.Equal(t, 30*time.Second, Load().HTTPTimeout)

	t.Setenv("TOKO_HTTP_TIMEOUT", "-4")
	require.Equal(t, 30*time.Second, Load().HTTPTimeout)
}
