package cli

import (
	"github.com/dustin/go-humanize"

	"github.com/julianstephens/ecolog/internal/ecoscore"
)

type HistoryCmd struct {
	Limit int `short:"n" help:"Number of saves to show (0 for all)." default:"10"`
}

func (c *HistoryCmd) Run(ctx *Context) error {
	saves, err := ctx.Tracker.History(c.Limit)
	if err != nil {
		return err
	}

	if len(saves) == 0 {
		ctx.println("No saves yet.")
		return nil
	}

	for _, s := range saves {
		ctx.printf("  %s  score %-6s streak %-3d %s\n",
			s.Date, ecoscore.FormatNumber(s.Score), s.Streak, humanize.Time(s.SavedAt))
	}
	return nil
}
