package tui

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/ecolog/internal/catalog"
	"github.com/julianstephens/ecolog/internal/ecoscore"
	"github.com/julianstephens/ecolog/internal/models"
)

// LogFormModel backs the log form fields
type LogFormModel struct {
	Toggles   []string
	Transport string
	ACHours   string
}

// newLogFormModel restores the form from a prefill
func newLogFormModel(p catalog.Prefill) *LogFormModel {
	fm := &LogFormModel{
		Toggles:   append([]string(nil), p.Toggles...),
		Transport: p.Transport,
	}
	if p.ACHours > 0 {
		fm.ACHours = ecoscore.FormatNumber(p.ACHours)
	}
	return fm
}

func optionLabel(a models.Action) string {
	return fmt.Sprintf("%s %s (%s)", a.Icon, a.Name, ecoscore.FormatSigned(a.Points))
}

// NewLogForm builds the daily log form over the catalog
func NewLogForm(cat *catalog.Catalog, fm *LogFormModel) *huh.Form {
	toggles := make([]huh.Option[string], 0, len(cat.Toggles))
	for _, a := range cat.Toggles {
		toggles = append(toggles, huh.NewOption(optionLabel(a), a.Name))
	}

	transport := []huh.Option[string]{huh.NewOption("None", "")}
	for _, a := range cat.Transport {
		transport = append(transport, huh.NewOption(optionLabel(a), a.Name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("What did you do today?").
				Options(toggles...).
				Value(&fm.Toggles),
			huh.NewSelect[string]().
				Title("How did you get around?").
				Options(transport...).
				Value(&fm.Transport),
			huh.NewInput().
				Title("A/C hours").
				Description(fmt.Sprintf("%s points per hour; invalid values count as 0",
					ecoscore.FormatNumber(ecoscore.ACAction(1).Points))).
				Placeholder("0").
				Value(&fm.ACHours),
		),
	).WithTheme(huh.ThemeDracula())
}
