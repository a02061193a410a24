package models

import (
	"fmt"
	"time"
)

// StreakMeta is the persisted singleton describing trend state
type StreakMeta struct {
	PrevScore      float64 `json:"prevScore"`
	LastScore      float64 `json:"lastScore"`
	Streak         int     `json:"streak"`
	LastLoggedDate *string `json:"lastLoggedDate"`
}

// DefaultStreakMeta is the fallback used before the first save
func DefaultStreakMeta() StreakMeta {
	return StreakMeta{}
}

// Badge is a catalog entry with derived progress. Not persisted.
type Badge struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Required    int    `json:"required"`
	Progress    int    `json:"progress"`
	Unlocked    bool   `json:"unlocked"`
}

// DisplayProgress renders progress as "have/need", capped at need
func (b Badge) DisplayProgress() string {
	have := b.Progress
	if have > b.Required {
		have = b.Required
	}
	return fmt.Sprintf("%d/%d", have, b.Required)
}

// SaveRecord is one entry of the append-only save journal
type SaveRecord struct {
	ID      string    `json:"id"`
	Date    string    `json:"date"`
	Score   float64   `json:"score"`
	Streak  int       `json:"streak"`
	SavedAt time.Time `json:"saved_at"`
}
