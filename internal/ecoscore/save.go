package ecoscore

import (
	"cloud.google.com/go/civil"

	"github.com/julianstephens/ecolog/internal/models"
)

// State is a snapshot of both persisted entries
type State struct {
	Logs models.Logs
	Meta models.StreakMeta
}

// Save records daily under today, replacing any earlier log for that date,
// and advances the streak. The input state is left untouched.
func Save(state State, today civil.Date, daily Daily) State {
	logs := state.Logs.Clone()

	actions := make([]models.Action, len(daily.Actions))
	copy(actions, daily.Actions)

	logs[Key(today)] = models.DailyLog{
		Actions: actions,
		Score:   daily.Score,
		ACHours: daily.ACHours,
	}

	return State{
		Logs: logs,
		Meta: UpdateStreak(state.Meta, today, daily.Score),
	}
}
