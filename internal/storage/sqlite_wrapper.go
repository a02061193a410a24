package storage

import (
	"database/sql"
	"errors"

	"github.com/julianstephens/ecolog/internal/models"
	"github.com/julianstephens/ecolog/internal/storage/sqlite"
)

// SQLiteStore adapts sqlite.Store to Provider
type SQLiteStore struct {
	store *sqlite.Store
}

// NewSQLiteStore creates a new SQLite store
func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{store: sqlite.NewStore(path)}
}

// Lifecycle methods
func (s *SQLiteStore) Init() error           { return s.store.Init() }
func (s *SQLiteStore) Load() error           { return s.store.Load() }
func (s *SQLiteStore) Close() error          { return s.store.Close() }
func (s *SQLiteStore) GetConfigPath() string { return s.store.GetConfigPath() }
func (s *SQLiteStore) GetDB() *sql.DB        { return s.store.GetDB() }

// SchemaVersion reports the applied and latest known schema versions
func (s *SQLiteStore) SchemaVersion() (int, int, error) { return s.store.SchemaVersion() }

func (s *SQLiteStore) Get(key string) ([]byte, error) {
	v, err := s.store.Get(key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return v, err
}

func (s *SQLiteStore) Set(key string, value []byte) error { return s.store.Set(key, value) }
func (s *SQLiteStore) Keys() ([]string, error)             { return s.store.Keys() }

// Save journal
func (s *SQLiteStore) AppendSave(rec models.SaveRecord) error { return s.store.AppendSave(rec) }
func (s *SQLiteStore) ListSaves(limit int) ([]models.SaveRecord, error) {
	return s.store.ListSaves(limit)
}
