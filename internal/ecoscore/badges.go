package ecoscore

import (
	"github.com/julianstephens/ecolog/internal/constants"
	"github.com/julianstephens/ecolog/internal/models"
)

type progressSource int

const (
	sourceHit50 progressSource = iota
	sourceDays
	sourceStreak
)

type badgeDef struct {
	icon, name, desc string
	need             int
	source           progressSource
}

var badgeCatalog = []badgeDef{
	{"🌟", "EcoScore 50", "Reach a daily EcoScore of 50 or higher.", 1, sourceHit50},
	{"✅", "First Log", "Log your first day.", 1, sourceDays},
	{"📅", "Consistency", "Log 5 days total.", 5, sourceDays},
	{"🏆", "Eco Habit Builder", "Log 10 days total.", 10, sourceDays},
	{"🔥", "3-Day Streak", "Keep a 3 day streak.", 3, sourceStreak},
	{"🔥", "7-Day Streak", "Keep a 7 day streak.", 7, sourceStreak},
}

// EvaluateBadges derives the badge catalog state from the full history
func EvaluateBadges(logs models.Logs, meta models.StreakMeta) []models.Badge {
	days := len(logs)
	hit50 := 0
	for _, log := range logs {
		if log.Score >= constants.EcoScoreBadgeThreshold {
			hit50 = 1
			break
		}
	}

	badges := make([]models.Badge, 0, len(badgeCatalog))
	for _, def := range badgeCatalog {
		var have int
		switch def.source {
		case sourceHit50:
			have = hit50
		case sourceDays:
			have = days
		case sourceStreak:
			have = meta.Streak
		}
		badges = append(badges, models.Badge{
			Name:        def.name,
			Description: def.desc,
			Icon:        def.icon,
			Required:    def.need,
			Progress:    have,
			Unlocked:    have >= def.need,
		})
	}
	return badges
}

// SummarizeBadges computes the badges page headline
func SummarizeBadges(badges []models.Badge, logs models.Logs, meta models.StreakMeta) models.BadgeSummary {
	earned := 0
	for _, b := range badges {
		if b.Unlocked {
			earned++
		}
	}
	return models.BadgeSummary{
		Earned:     earned,
		LoggedDays: len(logs),
		Streak:     meta.Streak,
	}
}
