package ecoscore

import (
	"math"
	"sort"

	"github.com/julianstephens/ecolog/internal/constants"
	"github.com/julianstephens/ecolog/internal/models"
)

// Band is the home ring color state
type Band string

const (
	BandLow  Band = "low"
	BandMid  Band = "mid"
	BandHigh Band = "high"
)

// ScoreLabel describes a daily score in one word
func ScoreLabel(score float64) string {
	switch {
	case score > constants.GreatScoreThreshold:
		return "Great"
	case score > constants.OkayScoreThreshold:
		return "Okay"
	default:
		return "Needs Work"
	}
}

// ScoreBand picks the ring color
func ScoreBand(score float64) Band {
	switch {
	case score <= constants.OkayScoreThreshold:
		return BandLow
	case score <= constants.GreatScoreThreshold:
		return BandMid
	default:
		return BandHigh
	}
}

// RingFill is the ring fill percentage, min(|score|, 100)
func RingFill(score float64) float64 {
	if math.IsNaN(score) {
		return 0
	}
	return math.Min(math.Abs(score), constants.RingMax)
}

// ScoreChange is today's score minus the score before the most recent save
func ScoreChange(todayScore float64, meta models.StreakMeta) float64 {
	return todayScore - meta.PrevScore
}

// FormatSigned prefixes non-negative values with "+"
func FormatSigned(f float64) string {
	if f >= 0 {
		return "+" + FormatNumber(f)
	}
	return FormatNumber(f)
}

// Highlights picks the day's top two positive actions followed by its most
// negative one. Actions are not grouped.
func Highlights(actions []models.Action) []models.Action {
	var pos, neg []models.Action
	for _, a := range actions {
		switch {
		case a.Points > 0:
			pos = append(pos, a)
		case a.Points < 0:
			neg = append(neg, a)
		}
	}
	sort.SliceStable(pos, func(i, j int) bool { return pos[i].Points > pos[j].Points })
	sort.SliceStable(neg, func(i, j int) bool { return neg[i].Points < neg[j].Points })

	if len(pos) > constants.HighlightPositiveCount {
		pos = pos[:constants.HighlightPositiveCount]
	}
	if len(neg) > constants.HighlightNegativeCount {
		neg = neg[:constants.HighlightNegativeCount]
	}

	out := make([]models.Action, 0, len(pos)+len(neg))
	out = append(out, pos...)
	return append(out, neg...)
}

// ChartScale is the largest absolute score in the window, never below 1
func ChartScale(scores []models.DayScore) float64 {
	scale := 1.0
	for _, s := range scores {
		if v := math.Abs(s.Score); !math.IsNaN(v) && !math.IsInf(v, 0) && v > scale {
			scale = v
		}
	}
	return scale
}

// BarLength scales |score| to at most width cells
func BarLength(score, scale float64, width int) int {
	if width <= 0 || scale <= 0 || math.IsNaN(score) || math.IsInf(score, 0) {
		return 0
	}
	n := int(math.Round(math.Abs(score) / scale * float64(width)))
	if n > width {
		n = width
	}
	return n
}
