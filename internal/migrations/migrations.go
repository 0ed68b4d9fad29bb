package migrations

import (
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Run creates the local cache schema: the two synced reference tables,
// their sync bookkeeping, and the preferences key-value store.
func Run(db *sqlx.DB) error {
	schema := []string{
		`CREATE TABLE IF NOT EXISTS kategori (
            id_kategori INTEGER PRIMARY KEY,
            nama_kategori TEXT NOT NULL,
            jumlah INTEGER NOT NULL DEFAULT 0
        );`,
		`CREATE TABLE IF NOT EXISTS merk (
            id_merk INTEGER PRIMARY KEY,
            nama_merk TEXT NOT NULL,
            aktif INTEGER NOT NULL DEFAULT 1,
            jumlah INTEGER NOT NULL DEFAULT 0
        );`,
		`CREATE TABLE IF NOT EXISTS sync_status (
            id INTEGER PRIMARY KEY AUTOINCREMENT,
            table_name TEXT NOT NULL UNIQUE,
            last_sync DATETIME,
            is_initialized INTEGER NOT NULL DEFAULT 0
        );`,
		`CREATE TABLE IF NOT EXISTS preferences (
            key TEXT PRIMARY KEY,
            value TEXT NOT NULL
        );`,
	}

	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}
