package sqlite

import (
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
)

// Get returns the raw value for key, or sql.ErrNoRows when absent
func (s *Store) Get(key string) ([]byte, error) {
	var value string
	err := s.qb.Select("value").
		From("kv").
		Where(sq.Eq{"key": key}).
		RunWith(s.db).
		QueryRow().
		Scan(&value)
	if err != nil {
		return nil, err
	}
	return []byte(value), nil
}

func (s *Store) Set(key string, value []byte) error {
	_, err := s.qb.Insert("kv").
		Columns("key", "value", "updated_at").
		Values(key, string(value), time.Now().UTC().Format(time.RFC3339)).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		RunWith(s.db).
		Exec()
	if err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	return nil
}

// Keys lists every stored key
func (s *Store) Keys() ([]string, error) {
	rows, err := s.qb.Select("key").From("kv").OrderBy("key").RunWith(s.db).Query()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}
