package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"

	"github.com/samcodingcoach/toko2025/internal/api"
)

// Table names tracked in sync_status.
const (
	TableCategories = "kategori"
	TableBrands     = "merk"
)

// Syncer pulls the reference tables from the server into the cache. Each
// table syncs at most once; after that reads are local until a forced
// refresh.
type Syncer struct {
	db     *sqlx.DB
	client *api.Client
	store  *Store
	log    logrus.FieldLogger
}

// NewSyncer builds a Syncer over the shared database and API client.
func NewSyncer(db *sqlx.DB, client *api.Client, log logrus.FieldLogger) *Syncer {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Syncer{db: db, client: client, store: NewStore(db), log: log}
}

// SyncAll brings both reference tables up. Used at startup; already
// initialized tables cost one local read each.
func (s *Syncer) SyncAll(ctx context.Context) error {
	if err := s.SyncCategories(ctx); err != nil {
		return err
	}
	return s.SyncBrands(ctx)
}

// SyncCategories replaces the kategori table from the server unless it has
// already been initialized. A fetch or write failure leaves the previous
// rows untouched.
func (s *Syncer) SyncCategories(ctx context.Context) error {
	done, err := s.store.Initialized(ctx, TableCategories)
	if err != nil {
		return err
	}
	if done {
		return nil
	}

	rows, err := s.client.Categories(ctx)
	if err != nil {
		return fmt.Errorf("fetch categories: %w", err)
	}

	err = s.replace(ctx, TableCategories, func(tx *sqlx.Tx) error {
		for _, r := range rows {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO kategori (id_kategori, nama_kategori, jumlah) VALUES (?, ?, ?)`,
				r.ID, r.Name, r.ProductCount)
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.log.WithField("rows", len(rows)).Info("kategori synced")
	return nil
}

// SyncBrands replaces the merk table from the server unless it has already
// been initialized. Rows arriving without an active flag are stored as
// active so a server that omits the column does not blank the filter menu.
func (s *Syncer) SyncBrands(ctx context.Context) error {
	done, err := s.store.Initialized(ctx, TableBrands)
	if err != nil {
		return err
	}
	if done {
		return nil
	}

	rows, err := s.client.Brands(ctx)
	if err != nil {
		return fmt.Errorf("fetch brands: %w", err)
	}

	err = s.replace(ctx, TableBrands, func(tx *sqlx.Tx) error {
		for _, r := range rows {
			active := r.Active
			if active == 0 {
				active = 1
			}
			_, err := tx.ExecContext(ctx,
				`INSERT INTO merk (id_merk, nama_merk, aktif, jumlah) VALUES (?, ?, ?, ?)`,
				r.ID, r.Name, active, r.ProductCount)
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.log.WithField("rows", len(rows)).Info("merk synced")
	return nil
}

// ForceRefresh drops the initialized flag and resyncs. With no arguments it
// refreshes both tables; otherwise only the named ones.
func (s *Syncer) ForceRefresh(ctx context.Context, tables ...string) error {
	if len(tables) == 0 {
		tables = []string{TableCategories, TableBrands}
	}
	for _, table := range tables {
		_, err := s.db.ExecContext(ctx,
			`UPDATE sync_status SET is_initialized = 0 WHERE table_name = ?`, table)
		if err != nil {
			return err
		}
		switch table {
		case TableCategories:
			if err := s.SyncCategories(ctx); err != nil {
				return err
			}
		case TableBrands:
			if err := s.SyncBrands(ctx); err != nil {
				return err
			}
		default:
			return fmt.Errorf("unknown sync table %q", table)
		}
	}
	return nil
}

// replace runs a delete-and-insert of one table plus its sync_status mark in
// a single transaction.
func (s *Syncer) replace(ctx context.Context, table string, insert func(*sqlx.Tx) error) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM `+table); err != nil {
		return fmt.Errorf("clear %s: %w", table, err)
	}
	if err := insert(tx); err != nil {
		return fmt.Errorf("fill %s: %w", table, err)
	}
	_, err = tx.ExecContext(ctx,
		`INSERT INTO sync_status (table_name, last_sync, is_initialized) VALUES (?, ?, 1)
		 ON CONFLICT(table_name) DO UPDATE SET last_sync = excluded.last_sync, is_initialized = 1`,
		table, time.Now())
	if err != nil {
		return fmt.Errorf("mark %s synced: %w", table, err)
	}
	return tx.Commit()
}
