package ecoscore

import (
	"math"
	"sort"

	"cloud.google.com/go/civil"

	"github.com/julianstephens/ecolog/internal/constants"
	"github.com/julianstephens/ecolog/internal/models"
)

// AggregateWeek summarizes the 7 days ending at ref. Missing days count as
// zero with no actions.
func AggregateWeek(logs models.Logs, ref civil.Date) models.WeeklySummary {
	days := Window(ref, constants.WeekDays)

	summary := models.WeeklySummary{
		Scores:         make([]models.DayScore, 0, len(days)),
		CategoryTotals: make(map[models.Category]float64, len(models.Categories())),
	}
	for _, c := range models.Categories() {
		summary.CategoryTotals[c] = 0
	}

	var actions []models.Action
	for i, d := range days {
		log, _ := logs.Get(Key(d))
		summary.Scores = append(summary.Scores, models.DayScore{Date: Key(d), Score: log.Score})
		summary.Total += log.Score
		if i == 0 || log.Score > summary.Best {
			summary.Best = log.Score
		}
		actions = append(actions, log.Actions...)
	}
	summary.Average = summary.Total / float64(len(days))

	for _, a := range actions {
		if a.Category.Valid() {
			summary.CategoryTotals[a.Category] += a.Points
		}
	}

	grouped := GroupActions(actions)
	summary.TopPositive = topPositive(grouped, constants.TopImpactCount)
	summary.TopNegative = topNegative(grouped, constants.TopImpactCount)

	return summary
}

type groupKey struct {
	icon, name string
	cat        models.Category
}

// GroupActions merges actions with identical (icon, name, category), summing
// points. Groups keep first-encounter order.
func GroupActions(actions []models.Action) []models.ActionTotal {
	index := make(map[groupKey]int)
	out := make([]models.ActionTotal, 0, len(actions))
	for _, a := range actions {
		k := groupKey{icon: a.Icon, name: a.Name, cat: a.Category}
		if i, ok := index[k]; ok {
			out[i].Points += a.Points
			continue
		}
		index[k] = len(out)
		out = append(out, models.ActionTotal{
			Name:     a.Name,
			Category: a.Category,
			Icon:     a.Icon,
			Points:   a.Points,
		})
	}
	return out
}

func topPositive(totals []models.ActionTotal, n int) []models.ActionTotal {
	out := make([]models.ActionTotal, 0, n)
	for _, t := range totals {
		if t.Points > 0 {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Points > out[j].Points })
	if len(out) > n {
		out = out[:n]
	}
	return out
}

func topNegative(totals []models.ActionTotal, n int) []models.ActionTotal {
	out := make([]models.ActionTotal, 0, n)
	for _, t := range totals {
		if t.Points < 0 {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Points < out[j].Points })
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// Round rounds half away from zero for display. Non-finite values become 0.
func Round(x float64) int64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	return int64(math.Round(x))
}
