package ecoscore

import (
	"testing"

	"github.com/julianstephens/ecolog/internal/models"
)

func action(name string, cat models.Category, points float64) models.Action {
	return models.Action{Name: name, Category: cat, Points: points, Icon: "•"}
}

func TestSave_Scenario(t *testing.T) {
	state := State{Logs: models.Logs{}, Meta: models.DefaultStreakMeta()}

	// day 1: +30
	day1 := ComputeDaily(Selections{Toggles: []models.Action{
		action("Vegetarian meal", models.CategoryFood, 10),
		action("Biked", models.CategoryTransport, 20),
	}})
	state = Save(state, date(t, "2026-03-01"), day1)
	if day1.Score != 30 || state.Meta.Streak != 1 {
		t.Fatalf("day 1: score=%v streak=%d, want 30 and 1", day1.Score, state.Meta.Streak)
	}

	// day 2: -10
	day2 := ComputeDaily(Selections{ACHours: 2})
	state = Save(state, date(t, "2026-03-02"), day2)
	if day2.Score != -10 || state.Meta.Streak != 2 || state.Meta.PrevScore != 30 {
		t.Fatalf("day 2: score=%v streak=%d prev=%v, want -10, 2, 30", day2.Score, state.Meta.Streak, state.Meta.PrevScore)
	}

	// day 4 after a gap: 60
	day4 := ComputeDaily(Selections{Toggles: []models.Action{
		action("Biked", models.CategoryTransport, 20),
		action("Solar", models.CategoryEnergy, 40),
	}})
	state = Save(state, date(t, "2026-03-04"), day4)
	if state.Meta.Streak != 1 {
		t.Errorf("day 4: streak=%d, want 1", state.Meta.Streak)
	}

	b := EvaluateBadges(state.Logs, state.Meta)
	if !badgeByName(t, b, "EcoScore 50").Unlocked {
		t.Error("EcoScore 50 should be unlocked after a 60 day")
	}
	if len(state.Logs) != 3 {
		t.Errorf("len(Logs) = %d, want 3", len(state.Logs))
	}
}

func TestSave_ReplacesSameDay(t *testing.T) {
	today := date(t, "2026-03-01")
	state := State{Logs: models.Logs{}}

	state = Save(state, today, ComputeDaily(Selections{ACHours: 1}))
	state = Save(state, today, ComputeDaily(Selections{Toggles: []models.Action{action("Biked", models.CategoryTransport, 15)}}))

	log, ok := state.Logs.Get("2026-03-01")
	if !ok || log.Score != 15 || len(log.Actions) != 1 {
		t.Errorf("log = %+v, want single Biked action scoring 15", log)
	}
	if state.Meta.PrevScore != -5 || state.Meta.LastScore != 15 || state.Meta.Streak != 1 {
		t.Errorf("meta = %+v", state.Meta)
	}
}

func TestSave_DoesNotMutateInput(t *testing.T) {
	orig := State{Logs: models.Logs{"2026-02-28": {Score: 3}}}

	next := Save(orig, date(t, "2026-03-01"), ComputeDaily(Selections{ACHours: 3}))

	if len(orig.Logs) != 1 {
		t.Errorf("input logs were modified: %v", orig.Logs)
	}
	if orig.Meta.LastLoggedDate != nil {
		t.Errorf("input meta was modified: %+v", orig.Meta)
	}
	if next.Logs["2026-03-01"].Score != -15 {
		t.Errorf("new log score = %v, want -15", next.Logs["2026-03-01"].Score)
	}
}

func TestSave_NilLogs(t *testing.T) {
	next := Save(State{}, date(t, "2026-03-01"), Daily{Score: 4})
	if _, ok := next.Logs.Get("2026-03-01"); !ok {
		t.Error("expected log to be written into a fresh map")
	}
}
