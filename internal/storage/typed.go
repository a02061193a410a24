package storage

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/julianstephens/ecolog/internal/logger"
)

// GetOr decodes the JSON value stored under key. A missing key, a read
// failure, or a value that does not decode all yield fallback.
func GetOr[T any](p Provider, key string, fallback T) T {
	raw, err := p.Get(key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			logger.Warn("Failed to read store entry, using default", "key", key, "error", err)
		}
		return fallback
	}

	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		logger.Warn("Stored entry is corrupt, using default", "key", key, "error", err)
		return fallback
	}
	return v
}

// Put encodes value as JSON and stores it under key
func Put[T any](p Provider, key string, value T) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := p.Set(key, raw); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}
