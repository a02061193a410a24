package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	apperrors "github.com/julianstephens/ecolog/internal/errors"
	"github.com/julianstephens/ecolog/internal/models"
)

// Store is the on-disk layout of a JSON-backed store
type Store struct {
	Version int                        `json:"version"`
	Entries map[string]json.RawMessage `json:"entries"`
	Saves   []models.SaveRecord        `json:"saves"`
}

type JSONStore struct {
	path  string
	store *Store
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.store = &Store{
		Version: 1,
		Entries: make(map[string]json.RawMessage),
		Saves:   []models.SaveRecord{},
	}

	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w at %s", apperrors.ErrNotInitialized, s.path)
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.store = &Store{}
	if err := json.Unmarshal(data, s.store); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	if s.store.Entries == nil {
		s.store.Entries = make(map[string]json.RawMessage)
	}
	// hand-edited files may be indented
	for key, raw := range s.store.Entries {
		var buf bytes.Buffer
		if err := json.Compact(&buf, raw); err != nil {
			return fmt.Errorf("failed to parse storage entry %s: %w", key, err)
		}
		s.store.Entries[key] = json.RawMessage(buf.Bytes())
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.Marshal(s.store)
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	// temp file + rename keeps the previous contents intact on failure
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) Get(key string) ([]byte, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	raw, ok := s.store.Entries[key]
	if !ok {
		return nil, ErrNotFound
	}
	return []byte(raw), nil
}

// Set stores value in compact form, which is how it is written to disk and
// returned after a reload. Values that are not valid JSON are rejected since
// the file itself is JSON.
func (s *JSONStore) Set(key string, value []byte) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, value); err != nil {
		return fmt.Errorf("value for %s is not valid JSON: %w", key, err)
	}

	s.store.Entries[key] = json.RawMessage(buf.Bytes())
	return s.save()
}

func (s *JSONStore) AppendSave(rec models.SaveRecord) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	s.store.Saves = append(s.store.Saves, rec)
	return s.save()
}

func (s *JSONStore) ListSaves(limit int) ([]models.SaveRecord, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	return newestFirst(s.store.Saves, limit), nil
}

// GetConfigPath returns the path to the underlying storage file.
//
// Concurrency note:
//   - JSONStore is not safe for concurrent use by multiple goroutines without external
//     synchronization.
//   - Running multiple ecolog processes against the same file at the same time is not
//     supported; the last writer wins.
func (s *JSONStore) GetConfigPath() string {
	return s.path
}
