package cli

type BadgesCmd struct{}

func (c *BadgesCmd) Run(ctx *Context) error {
	view := ctx.Tracker.Badges()

	ctx.printf("Earned: %d   Days logged: %d   Streak: %d\n\n",
		view.Summary.Earned, view.Summary.LoggedDays, view.Summary.Streak)

	for _, b := range view.Badges {
		status := "Locked"
		if b.Unlocked {
			status = "Earned"
		}
		ctx.printf("  %s %-18s %-7s %s\n", b.Icon, b.Name, status, b.DisplayProgress())
		ctx.printf("     %s\n", b.Description)
	}
	return nil
}
