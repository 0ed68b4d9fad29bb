package prefs

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/jmoiron/sqlx"
)

// Store is the persisted key-value settings store backed by the local
// SQLite database. Getters fall back to the supplied default on any miss
// or read failure, mirroring platform preference APIs.
type Store struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Get(key, def string) string {
	var value string
	err := s.db.Get(&value, `SELECT value FROM preferences WHERE key = ?`, key)
	if err != nil {
		return def
	}
	return value
}

func (s *Store) GetInt(key string, def int64) int64 {
	raw := s.Get(key, "")
	if raw == "" {
		return def
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return def
	}
	return n
}

func (s *Store) GetBool(key string, def bool) bool {
	raw := s.Get(key, "")
	if raw == "" {
		return def
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return def
	}
	return b
}

func (s *Store) Set(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO preferences (key, value) VALUES (?, ?)
         ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	if err != nil {
		return fmt.Errorf("set preference %s: %w", key, err)
	}
	return nil
}

func (s *Store) SetInt(key string, value int64) error {
	return s.Set(key, strconv.FormatInt(value, 10))
}

func (s *Store) SetBool(key string, value bool) error {
	return s.Set(key, strconv.FormatBool(value))
}

func (s *Store) Delete(key string) error {
	_, err := s.db.Exec(`DELETE FROM preferences WHERE key = ?`, key)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("delete preference %s: %w", key, err)
	}
	return nil
}
