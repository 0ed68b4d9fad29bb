package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds process-level settings. User-changeable settings (active
// server URL, network type, default printer) live in the preferences store.
type Config struct {
	DatabasePath string
	ServerURL    string
	HTTPTimeout  time.Duration
	LogLevel     string
}

// Load reads configuration from environment variables with reasonable defaults.
func Load() Config {
	dbPath := os.Getenv("TOKO_DB_PATH")
	if dbPath == "" {
		dbPath = filepath.Join(".", "toko2025.db")
	}

	serverURL := os.Getenv("TOKO_SERVER_URL")
	if serverURL == "" {
		serverURL = "http://192.168.1.2:3000"
	}

	timeout := 30 * time.Second
	if raw := os.Getenv("TOKO_HTTP_TIMEOUT"); raw != "" {
		secs, err := strconv.Atoi(raw)
		if err != nil || secs <= 0 {
			log.Printf("invalid TOKO_HTTP_TIMEOUT value %q, defaulting to 30s", raw)
		} else {
			timeout = time.Duration(secs) * time.Second
		}
	}

	level := os.Getenv("TOKO_LOG_LEVEL")
	if level == "" {
		level = "info"
	}

	return Config{
		DatabasePath: dbPath,
		ServerURL:    serverURL,
		HTTPTimeout:  timeout,
		LogLevel:     level,
	}
}
