package migrations

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/samcodingcoach/toko2025/internal/database"
)

func TestRunIsIdempotent(t *testing.T) {
	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, Run(db))
	require.NoError(t, Run(db), "re-running migrations must not fail")

	for _, table := range []string{"kategori", "merk", "sync_status", "preferences"} {
		var name string
		err := db.Get(&name, `SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table)
		require.NoError(t, err, "table %s missing", table)
	}
}
