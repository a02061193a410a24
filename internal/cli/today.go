package cli

import (
	"github.com/julianstephens/ecolog/internal/ecoscore"
)

type TodayCmd struct{}

func (c *TodayCmd) Run(ctx *Context) error {
	home := ctx.Tracker.Home()

	ctx.printf("EcoLog for %s\n\n", home.Date)
	ctx.printf("EcoScore: %s (%s)\n", ecoscore.FormatNumber(home.Score), home.Label)
	ctx.printf("Change:   %s\n", ecoscore.FormatSigned(home.Change))
	ctx.printf("Streak:   %d day(s)\n", home.Streak)
	ctx.println()

	if !home.Logged || len(home.Highlights) == 0 {
		ctx.println("No log yet. Run 'ecolog log' to record today.")
		return nil
	}

	ctx.println("Highlights:")
	for _, a := range home.Highlights {
		ctx.printf("  %s %s  %s\n", a.Icon, a.Name, ecoscore.FormatSigned(a.Points))
	}
	return nil
}
