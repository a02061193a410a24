package tracker

import (
	"github.com/julianstephens/ecolog/internal/ecoscore"
	"github.com/julianstephens/ecolog/internal/models"
)

// HomeView is the data behind the home card
type HomeView struct {
	Date       string
	Logged     bool
	Score      float64
	Label      string
	Band       ecoscore.Band
	RingFill   float64
	Change     float64
	Streak     int
	Highlights []models.Action
}

// Home builds the home card for today
func (t *Tracker) Home() HomeView {
	state := t.State()
	key := ecoscore.Key(t.Today())
	log, ok := state.Logs.Get(key)

	return HomeView{
		Date:       key,
		Logged:     ok,
		Score:      log.Score,
		Label:      ecoscore.ScoreLabel(log.Score),
		Band:       ecoscore.ScoreBand(log.Score),
		RingFill:   ecoscore.RingFill(log.Score),
		Change:     ecoscore.ScoreChange(log.Score, state.Meta),
		Streak:     state.Meta.Streak,
		Highlights: ecoscore.Highlights(log.Actions),
	}
}

// Impact summarizes the week ending today
func (t *Tracker) Impact() models.WeeklySummary {
	return ecoscore.AggregateWeek(t.State().Logs, t.Today())
}

// BadgesView is the badges page
type BadgesView struct {
	Summary models.BadgeSummary
	Badges  []models.Badge
}

// Badges evaluates the badge catalog against the full history
func (t *Tracker) Badges() BadgesView {
	state := t.State()
	badges := ecoscore.EvaluateBadges(state.Logs, state.Meta)
	return BadgesView{
		Summary: ecoscore.SummarizeBadges(badges, state.Logs, state.Meta),
		Badges:  badges,
	}
}
