package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/julianstephens/ecolog/internal/models"
	"github.com/julianstephens/ecolog/internal/storage"
)

func (s *Store) Get(key string) ([]byte, error) {
	var value string
	err := s.qb.Select("value").
		From("kv").
		Where(sq.Eq{"key": key}).
		RunWith(s.db).
		QueryRow().
		Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", key, err)
	}
	return []byte(value), nil
}

func (s *Store) Set(key string, value []byte) error {
	_, err := s.qb.Insert("kv").
		Columns("key", "value", "updated_at").
		Values(key, string(value), time.Now().UTC()).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at").
		RunWith(s.db).
		Exec()
	if err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	return nil
}

func (s *Store) AppendSave(rec models.SaveRecord) error {
	_, err := s.qb.Insert("saves").
		Columns("id", "date", "score", "streak", "saved_at").
		Values(rec.ID, rec.Date, rec.Score, rec.Streak, rec.SavedAt.UTC()).
		RunWith(s.db).
		Exec()
	if err != nil {
		return fmt.Errorf("failed to record save: %w", err)
	}
	return nil
}

func (s *Store) ListSaves(limit int) ([]models.SaveRecord, error) {
	q := s.qb.Select("id", "date", "score", "streak", "saved_at").
		From("saves").
		OrderBy("saved_at DESC")
	if limit > 0 {
		q = q.Limit(uint64(limit))
	}

	rows, err := q.RunWith(s.db).Query()
	if err != nil {
		return nil, fmt.Errorf("failed to list saves: %w", err)
	}
	defer rows.Close()

	var out []models.SaveRecord
	for rows.Next() {
		var rec models.SaveRecord
		if err := rows.Scan(&rec.ID, &rec.Date, &rec.Score, &rec.Streak, &rec.SavedAt); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

var _ storage.Provider = (*Store)(nil)
