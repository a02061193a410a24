package ecoscore

import (
	"cloud.google.com/go/civil"

	"github.com/julianstephens/ecolog/internal/models"
)

// UpdateStreak applies one save on today with score to meta and returns the
// new meta. The day check is a calendar-day difference, so DST changes do not
// break a streak.
func UpdateStreak(meta models.StreakMeta, today civil.Date, score float64) models.StreakMeta {
	next := meta
	key := Key(today)

	switch {
	case meta.LastLoggedDate != nil && *meta.LastLoggedDate == key:
		// same day re-save
	case isDayBefore(meta.LastLoggedDate, today):
		next.Streak = meta.Streak + 1
	default:
		next.Streak = 1
	}

	next.PrevScore = meta.LastScore
	next.LastScore = score
	next.LastLoggedDate = &key
	return next
}

func isDayBefore(last *string, today civil.Date) bool {
	if last == nil {
		return false
	}
	d, ok := ParseKey(*last)
	if !ok {
		return false
	}
	return today.DaysSince(d) == 1
}
