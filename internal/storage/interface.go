package storage

import (
	"errors"

	"github.com/julianstephens/ecolog/internal/models"
)

// ErrNotFound is returned by Get when a key has never been set
var ErrNotFound = errors.New("key not found")

// Provider is a small key-value store holding JSON documents, plus the
// append-only save journal.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Entries
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error

	// Save journal, newest first
	AppendSave(models.SaveRecord) error
	ListSaves(limit int) ([]models.SaveRecord, error)

	// Utils
	GetConfigPath() string
}

// KeyLister is implemented by stores that can enumerate their keys
type KeyLister interface {
	Keys() ([]string, error)
}
