package cli

import (
	"github.com/julianstephens/ecolog/internal/ecoscore"
	"github.com/julianstephens/ecolog/internal/models"
)

type ActionsCmd struct{}

func (c *ActionsCmd) Run(ctx *Context) error {
	cat := ctx.Tracker.Catalog

	ctx.println("Actions (--action):")
	for _, a := range cat.Toggles {
		printAction(ctx, a)
	}
	ctx.println()

	ctx.println("Transport (--transport):")
	for _, a := range cat.Transport {
		printAction(ctx, a)
	}
	ctx.println()

	ctx.printf("A/C (--ac-hours): %s points per hour\n", ecoscore.FormatNumber(ecoscore.ACAction(1).Points))
	return nil
}

func printAction(ctx *Context, a models.Action) {
	ctx.printf("  %s %-28s %-9s %s\n", a.Icon, a.Name, a.Category, ecoscore.FormatSigned(a.Points))
}
