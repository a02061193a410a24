package badges

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/ecolog/internal/models"
)

type Item struct {
	Badge models.Badge
}

func (i Item) Title() string {
	status := "Locked"
	if i.Badge.Unlocked {
		status = "Earned"
	}
	return fmt.Sprintf("%s %s · %s", i.Badge.Icon, i.Badge.Name, status)
}

func (i Item) Description() string {
	return fmt.Sprintf("%s (%s)", i.Badge.Description, i.Badge.DisplayProgress())
}

func (i Item) FilterValue() string { return i.Badge.Name }

type Model struct {
	list    list.Model
	summary models.BadgeSummary
}

func New(width, height int) Model {
	l := list.New(nil, list.NewDefaultDelegate(), width, height)
	l.Title = "Badges"
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	return Model{list: l}
}

func (m *Model) SetBadges(badges []models.Badge, summary models.BadgeSummary) {
	items := make([]list.Item, len(badges))
	for i, b := range badges {
		items[i] = Item{Badge: b}
	}
	m.list.SetItems(items)
	m.summary = summary
}

func (m *Model) SetSize(width, height int) {
	// leave room for the summary line
	m.list.SetSize(width, max(height-2, 0))
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	header := fmt.Sprintf("  Earned: %d   Days logged: %d   Streak: %d\n",
		m.summary.Earned, m.summary.LoggedDays, m.summary.Streak)
	return header + "\n" + m.list.View()
}
