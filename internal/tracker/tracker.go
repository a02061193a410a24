package tracker

import (
	"fmt"
	"time"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"

	"github.com/julianstephens/ecolog/internal/catalog"
	"github.com/julianstephens/ecolog/internal/constants"
	"github.com/julianstephens/ecolog/internal/ecoscore"
	"github.com/julianstephens/ecolog/internal/logger"
	"github.com/julianstephens/ecolog/internal/models"
	"github.com/julianstephens/ecolog/internal/storage"
)

// Clock supplies the current instant
type Clock func() time.Time

// Tracker ties the scoring engine to a store. It reads both entries fresh on
// every call; there is no cache to invalidate.
type Tracker struct {
	Store    storage.Provider
	Catalog  *catalog.Catalog
	Clock    Clock
	Location *time.Location
}

// New builds a Tracker with the wall clock and local timezone
func New(store storage.Provider, cat *catalog.Catalog) *Tracker {
	if cat == nil {
		cat = catalog.Default()
	}
	return &Tracker{
		Store:    store,
		Catalog:  cat,
		Clock:    time.Now,
		Location: time.Local,
	}
}

// Today is the local calendar date
func (t *Tracker) Today() civil.Date {
	clock := t.Clock
	if clock == nil {
		clock = time.Now
	}
	return ecoscore.Today(clock(), t.Location)
}

// State reads both persisted entries, falling back to empty defaults
func (t *Tracker) State() ecoscore.State {
	return ecoscore.State{
		Logs: storage.GetOr(t.Store, constants.LogKey, models.Logs{}),
		Meta: storage.GetOr(t.Store, constants.MetaKey, models.DefaultStreakMeta()),
	}
}

// SaveResult is what a save produced
type SaveResult struct {
	Date  string
	Daily ecoscore.Daily
	Meta  models.StreakMeta
}

// SaveToday computes and records today's selections
func (t *Tracker) SaveToday(sel ecoscore.Selections) (SaveResult, error) {
	return t.SaveOn(t.Today(), sel)
}

// SaveOn computes and records selections for day. The streak is advanced as
// if day were today, so backfilling an earlier date resets it.
func (t *Tracker) SaveOn(day civil.Date, sel ecoscore.Selections) (SaveResult, error) {
	daily := ecoscore.ComputeDaily(sel)
	next := ecoscore.Save(t.State(), day, daily)

	if err := storage.Put(t.Store, constants.LogKey, next.Logs); err != nil {
		return SaveResult{}, err
	}
	if err := storage.Put(t.Store, constants.MetaKey, next.Meta); err != nil {
		return SaveResult{}, err
	}

	key := ecoscore.Key(day)
	rec := models.SaveRecord{
		ID:      uuid.NewString(),
		Date:    key,
		Score:   daily.Score,
		Streak:  next.Meta.Streak,
		SavedAt: t.now().UTC(),
	}
	if err := t.Store.AppendSave(rec); err != nil {
		// the day itself is already saved
		logger.Warn("Failed to record save in journal", "date", key, "error", err)
	}

	logger.Debug("Saved day", "date", key, "score", daily.Score, "streak", next.Meta.Streak)

	return SaveResult{Date: key, Daily: daily, Meta: next.Meta}, nil
}

// SaveNames resolves catalog names and saves them for day
func (t *Tracker) SaveNames(day civil.Date, toggles []string, transport string, acHours float64) (SaveResult, error) {
	sel, err := t.Catalog.Resolve(toggles, transport, acHours)
	if err != nil {
		return SaveResult{}, err
	}
	return t.SaveOn(day, sel)
}

// Prefill recovers today's log form state
func (t *Tracker) Prefill() catalog.Prefill {
	log, ok := t.State().Logs.Get(ecoscore.Key(t.Today()))
	if !ok {
		return catalog.Prefill{}
	}
	return t.Catalog.Restore(log)
}

// History lists the most recent saves
func (t *Tracker) History(limit int) ([]models.SaveRecord, error) {
	saves, err := t.Store.ListSaves(limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}
	return saves, nil
}

func (t *Tracker) now() time.Time {
	if t.Clock == nil {
		return time.Now()
	}
	return t.Clock()
}
