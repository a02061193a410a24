package models

// DayScore is one point of the weekly series
type DayScore struct {
	Date  string  `json:"date"`
	Score float64 `json:"score"`
}

// ActionTotal is an action grouped by (icon, name, category) with points summed
type ActionTotal struct {
	Name     string   `json:"name"`
	Category Category `json:"cat"`
	Icon     string   `json:"emoji"`
	Points   float64  `json:"points"`
}

// WeeklySummary is the aggregate over a 7-day window ending at a reference date
type WeeklySummary struct {
	Scores         []DayScore           `json:"scores"`
	Total          float64              `json:"total"`
	Average        float64              `json:"average"`
	Best           float64              `json:"best"`
	CategoryTotals map[Category]float64 `json:"categoryTotals"`
	TopPositive    []ActionTotal        `json:"topPositive"`
	TopNegative    []ActionTotal        `json:"topNegative"`
}

// BadgeSummary is the headline row of the badges page
type BadgeSummary struct {
	Earned     int `json:"earned"`
	LoggedDays int `json:"loggedDays"`
	Streak     int `json:"streak"`
}
