package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/ecolog/internal/constants"
	"github.com/julianstephens/ecolog/internal/ecoscore"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string

	switch m.state {
	case constants.StateHome:
		content = docStyle.Render(m.viewHome())
	case constants.StateLog:
		content = docStyle.Render(m.form.View())
	case constants.StateImpact:
		content = docStyle.Render(m.impactModel.View())
	case constants.StateBadges:
		content = docStyle.Render(m.badgesModel.View())
	case constants.StateLockWarning:
		content = m.viewLockWarning()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		content,
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range []string{"Home", "Log", "Impact", "Badges"} {
		if m.state == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewHome() string {
	h := m.home

	var b strings.Builder
	b.WriteString(mutedStyle.Render(h.Date) + "\n\n")
	fmt.Fprintf(&b, "%s  %s\n",
		scoreStyle.Foreground(lipgloss.Color(bandColors[h.Band])).Render(ecoscore.FormatNumber(h.Score)),
		h.Label)
	b.WriteString(m.rings[h.Band].ViewAs(h.RingFill/constants.RingMax) + "\n\n")
	fmt.Fprintf(&b, "%s %s   %s %d\n\n",
		mutedStyle.Render("Change"), ecoscore.FormatSigned(h.Change),
		mutedStyle.Render("Streak"), h.Streak)

	b.WriteString(scoreStyle.Render("Today's highlights") + "\n")
	if !h.Logged || len(h.Highlights) == 0 {
		b.WriteString(placeholderStyle.Render("No log yet. Press 'e' to log today.") + "\n")
	}
	for _, a := range h.Highlights {
		fmt.Fprintf(&b, "%s %-26s %s %s\n", a.Icon, a.Name, mutedStyle.Render(string(a.Category)), ecoscore.FormatSigned(a.Points))
	}

	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}
	return b.String()
}

func (m Model) viewLockWarning() string {
	return lipgloss.Place(m.width, max(m.height-4, 0),
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			warningStyle.Render(m.lockWarning),
			"",
			"Changes from both sessions may overwrite each other.",
			"",
			"Press any key to continue",
		),
	)
}
