// Package catalog keeps the reference tables (kategori, merk) in the local
// SQLite cache and syncs them lazily from the server.
package catalog

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/samcodingcoach/toko2025/domain"
)

// Store reads the cached reference tables.
type Store struct {
	db *sqlx.DB
}

// NewStore wraps the local database.
func NewStore(db *sqlx.DB) *Store {
	return &Store{db: db}
}

// Categories lists all cached categories ordered by name.
func (s *Store) Categories(ctx context.Context) ([]domain.Category, error) {
	var rows []domain.Category
	err := s.db.SelectContext(ctx, &rows,
		`SELECT id_kategori, nama_kategori, jumlah FROM kategori ORDER BY nama_kategori`)
	return rows, err
}

// CategoryByID looks one category up. A miss returns sql.ErrNoRows.
func (s *Store) CategoryByID(ctx context.Context, id int64) (domain.Category, error) {
	var row domain.Category
	err := s.db.GetContext(ctx, &row,
		`SELECT id_kategori, nama_kategori, jumlah FROM kategori WHERE id_kategori = ?`, id)
	return row, err
}

// Brands lists active cached brands. When no row carries the active flag the
// filter would hide everything, so it falls back to the full table.
func (s *Store) Brands(ctx context.Context) ([]domain.Brand, error) {
	var rows []domain.Brand
	err := s.db.SelectContext(ctx, &rows,
		`SELECT id_merk, nama_merk, aktif, jumlah FROM merk WHERE aktif = 1 ORDER BY nama_merk`)
	if err != nil {
		return nil, err
	}
	if len(rows) > 0 {
		return rows, nil
	}
	err = s.db.SelectContext(ctx, &rows,
		`SELECT id_merk, nama_merk, aktif, jumlah FROM merk ORDER BY nama_merk`)
	return rows, err
}

// BrandByID looks one brand up regardless of its active flag.
func (s *Store) BrandByID(ctx context.Context, id int64) (domain.Brand, error) {
	var row domain.Brand
	err := s.db.GetContext(ctx, &row,
		`SELECT id_merk, nama_merk, aktif, jumlah FROM merk WHERE id_merk = ?`, id)
	return row, err
}

// Initialized reports whether the named table has completed its first sync.
func (s *Store) Initialized(ctx context.Context, table string) (bool, error) {
	var flag bool
	err := s.db.GetContext(ctx, &flag,
		`SELECT is_initialized FROM sync_status WHERE table_name = ?`, table)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	return flag, err
}

// LastSync reports when the named table was last replaced. The zero time
// means never.
func (s *Store) LastSync(ctx context.Context, table string) (time.Time, error) {
	var ts sql.NullTime
	err := s.db.GetContext(ctx, &ts,
		`SELECT last_sync FROM sync_status WHERE table_name = ?`, table)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, err
	}
	if !ts.Valid {
		return time.Time{}, nil
	}
	return ts.Time, nil
}
