package models

import "sort"

// Category is one of the fixed action groupings used for aggregation
type Category string

const (
	CategoryFood      Category = "Food"
	CategoryTransport Category = "Transport"
	CategoryEnergy    Category = "Energy"
	CategoryWaste     Category = "Waste"
)

// Categories returns every category in display order
func Categories() []Category {
	return []Category{CategoryFood, CategoryTransport, CategoryEnergy, CategoryWaste}
}

// Valid reports whether c is one of the known categories
func (c Category) Valid() bool {
	switch c {
	case CategoryFood, CategoryTransport, CategoryEnergy, CategoryWaste:
		return true
	}
	return false
}

// Action is a single selectable or computed behavior for a day.
// The JSON keys (cat, emoji) are the persisted layout.
type Action struct {
	Name     string   `json:"name" validate:"required"`
	Category Category `json:"cat" validate:"required,oneof=Food Transport Energy Waste"`
	Points   float64  `json:"points"`
	Icon     string   `json:"emoji" validate:"required"`
}

// DailyLog is the persisted record for one calendar date
type DailyLog struct {
	Actions []Action `json:"actions"`
	Score   float64  `json:"score"`
	ACHours float64  `json:"acHours"`
}

// Logs is the full history keyed by YYYY-MM-DD
type Logs map[string]DailyLog

// Dates returns the logged dates in ascending order
func (l Logs) Dates() []string {
	dates := make([]string, 0, len(l))
	for d := range l {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	return dates
}

// Get returns the log for date and whether one exists
func (l Logs) Get(date string) (DailyLog, bool) {
	if l == nil {
		return DailyLog{}, false
	}
	log, ok := l[date]
	return log, ok
}

// Clone returns a shallow copy of the map; DailyLog values are copied, action
// slices are shared.
func (l Logs) Clone() Logs {
	out := make(Logs, len(l))
	for k, v := range l {
		out[k] = v
	}
	return out
}
