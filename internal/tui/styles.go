package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/ecolog/internal/ecoscore"
)

var (
	activeTabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Background(lipgloss.Color("236")).
			Padding(0, 1).
			Bold(true)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240")).
				Padding(0, 1)

	docStyle = lipgloss.NewStyle().Margin(1, 2)

	scoreStyle = lipgloss.NewStyle().Bold(true)

	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	placeholderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240")).
				Italic(true)

	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true)

	dangerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// bandColors are the home ring colors
var bandColors = map[ecoscore.Band]string{
	ecoscore.BandLow:  "#E5484D",
	ecoscore.BandMid:  "#F5A524",
	ecoscore.BandHigh: "#30A46C",
}
