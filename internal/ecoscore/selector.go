package ecoscore

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/julianstephens/ecolog/internal/constants"
	"github.com/julianstephens/ecolog/internal/models"
)

const acIcon = "❄️"

// Selections is the raw input for one day
type Selections struct {
	Toggles   []models.Action
	Transport *models.Action
	ACHours   float64
}

// Daily is the computed result for one day
type Daily struct {
	Actions []models.Action
	Score   float64
	ACHours float64
}

// ComputeDaily collects the chosen actions and sums their points.
// The score is not clamped and may be negative.
func ComputeDaily(sel Selections) Daily {
	actions := make([]models.Action, 0, len(sel.Toggles)+2)
	actions = append(actions, sel.Toggles...)

	if sel.Transport != nil {
		actions = append(actions, *sel.Transport)
	}

	hours := sanitizeHours(sel.ACHours)
	if hours > 0 {
		actions = append(actions, ACAction(hours))
	}

	var score float64
	for _, a := range actions {
		score += a.Points
	}

	return Daily{
		Actions: actions,
		Score:   score,
		ACHours: hours,
	}
}

// ACAction synthesizes the energy penalty for hours of A/C use
func ACAction(hours float64) models.Action {
	return models.Action{
		Name:     fmt.Sprintf("Used A/C (%sh)", FormatNumber(hours)),
		Category: models.CategoryEnergy,
		Points:   hours * constants.ACRatePerHour,
		Icon:     acIcon,
	}
}

// ParseACHours reads a user-entered hours value. Malformed, non-finite,
// negative and overflowing input all read as zero.
func ParseACHours(raw string) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	h, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return sanitizeHours(h)
}

func sanitizeHours(h float64) float64 {
	if math.IsNaN(h) || math.IsInf(h, 0) || h < 0 {
		return 0
	}
	// the penalty must stay finite to be stored
	if math.IsInf(h*constants.ACRatePerHour, 0) {
		return 0
	}
	return h
}

// FormatNumber renders f with the shortest decimal representation (3, 1.5, -12.25)
func FormatNumber(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "0"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
