package storage

import (
	"sort"
	"sync"

	"github.com/julianstephens/ecolog/internal/models"
)

// MemoryStore keeps everything in process memory. Used by tests and for
// dry runs.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string][]byte
	saves   []models.SaveRecord
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string][]byte)}
}

func (s *MemoryStore) Init() error  { return nil }
func (s *MemoryStore) Load() error  { return nil }
func (s *MemoryStore) Close() error { return nil }

func (s *MemoryStore) Get(key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.entries[key]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

func (s *MemoryStore) Keys() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.entries))
	for k := range s.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

func (s *MemoryStore) Set(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := make([]byte, len(value))
	copy(v, value)
	s.entries[key] = v
	return nil
}

func (s *MemoryStore) AppendSave(rec models.SaveRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.saves = append(s.saves, rec)
	return nil
}

func (s *MemoryStore) ListSaves(limit int) ([]models.SaveRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return newestFirst(s.saves, limit), nil
}

func (s *MemoryStore) GetConfigPath() string {
	return ":memory:"
}

// newestFirst returns a copy of saves ordered by SavedAt descending. A
// non-positive limit returns everything.
func newestFirst(saves []models.SaveRecord, limit int) []models.SaveRecord {
	out := make([]models.SaveRecord, len(saves))
	copy(out, saves)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].SavedAt.After(out[j].SavedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
