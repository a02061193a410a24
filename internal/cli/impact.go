package cli

import (
	"strings"

	"github.com/julianstephens/ecolog/internal/ecoscore"
	"github.com/julianstephens/ecolog/internal/models"
)

const chartWidth = 24

type ImpactCmd struct{}

func (c *ImpactCmd) Run(ctx *Context) error {
	week := ctx.Tracker.Impact()

	ctx.println("Last 7 days")
	ctx.printf("  Total: %d   Avg: %d   Best: %d\n\n",
		ecoscore.Round(week.Total), ecoscore.Round(week.Average), ecoscore.Round(week.Best))

	for _, line := range weekChart(week.Scores, chartWidth) {
		ctx.println(line)
	}
	ctx.println()

	ctx.println("By category")
	for _, cat := range models.Categories() {
		ctx.printf("  %-10s %d\n", cat, ecoscore.Round(week.CategoryTotals[cat]))
	}
	ctx.println()

	ctx.println("Top positive")
	printTotals(ctx, week.TopPositive, "No positives yet.")
	ctx.println()

	ctx.println("Top negative")
	printTotals(ctx, week.TopNegative, "No negatives yet.")
	return nil
}

func printTotals(ctx *Context, totals []models.ActionTotal, empty string) {
	if len(totals) == 0 {
		ctx.printf("  %s\n", empty)
		return
	}
	for _, t := range totals {
		sign := ""
		if t.Points >= 0 {
			sign = "+"
		}
		ctx.printf("  %s %-24s %s%d\n", t.Icon, t.Name, sign, ecoscore.Round(t.Points))
	}
}

// weekChart draws one horizontal bar per day. Negative days use a lighter
// fill.
func weekChart(scores []models.DayScore, width int) []string {
	scale := ecoscore.ChartScale(scores)
	lines := make([]string, 0, len(scores))
	for _, s := range scores {
		n := ecoscore.BarLength(s.Score, scale, width)
		fill := "█"
		if s.Score < 0 {
			fill = "░"
		}
		bar := strings.Repeat(fill, n) + strings.Repeat(" ", width-n)
		lines = append(lines, "  "+s.Date[5:]+" "+bar+" "+ecoscore.FormatNumber(s.Score))
	}
	return lines
}
