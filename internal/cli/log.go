package cli

import (
	"github.com/julianstephens/ecolog/internal/ecoscore"
)

type LogCmd struct {
	Action    []string `short:"a" sep:"none" help:"Eco action to record (repeatable). See 'ecolog actions'."`
	Transport string   `short:"t" help:"Transport option used today."`
	ACHours   string   `name:"ac-hours" help:"Hours of air conditioning used." default:"0"`
	Date      string   `help:"Day to log (YYYY-MM-DD). Defaults to today."`
}

func (c *LogCmd) Run(ctx *Context) error {
	day, err := ctx.parseDay(c.Date)
	if err != nil {
		return err
	}

	result, err := ctx.Tracker.SaveNames(day, c.Action, c.Transport, ecoscore.ParseACHours(c.ACHours))
	if err != nil {
		return err
	}

	ctx.printf("✓ Saved %s: EcoScore %s (%s)\n",
		result.Date, ecoscore.FormatNumber(result.Daily.Score), ecoscore.ScoreLabel(result.Daily.Score))
	for _, a := range result.Daily.Actions {
		ctx.printf("  %s %s (%s)  %s\n", a.Icon, a.Name, a.Category, ecoscore.FormatSigned(a.Points))
	}
	ctx.printf("Streak: %d day(s)\n", result.Meta.Streak)
	return nil
}
