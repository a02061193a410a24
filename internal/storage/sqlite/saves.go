package sqlite

import (
	"fmt"
	"time"

	"github.com/julianstephens/ecolog/internal/models"
)

// savedAtLayout is fixed-width so text ordering matches time ordering
const savedAtLayout = "2006-01-02T15:04:05.000000000Z07:00"

func (s *Store) AppendSave(rec models.SaveRecord) error {
	_, err := s.qb.Insert("saves").
		Columns("id", "date", "score", "streak", "saved_at").
		Values(rec.ID, rec.Date, rec.Score, rec.Streak, rec.SavedAt.UTC().Format(savedAtLayout)).
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
		var savedAt string
		if err := rows.Scan(&rec.ID, &rec.Date, &rec.Score, &rec.Streak, &savedAt); err != nil {
			return nil, err
		}
		rec.SavedAt, err = time.Parse(savedAtLayout, savedAt)
		if err != nil {
			return nil, fmt.Errorf("invalid saved_at for save %s: %w", rec.ID, err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
