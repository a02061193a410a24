package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/ecolog/internal/constants"
	"github.com/julianstephens/ecolog/internal/ecoscore"
	"github.com/julianstephens/ecolog/internal/tracker"
	"github.com/julianstephens/ecolog/internal/tui/components/badges"
	"github.com/julianstephens/ecolog/internal/tui/components/impact"
)

type SessionState = constants.SessionState

type Model struct {
	tracker     *tracker.Tracker
	state       SessionState
	keys        KeyMap
	help        help.Model
	home        tracker.HomeView
	rings       map[ecoscore.Band]progress.Model
	impactModel impact.Model
	badgesModel badges.Model
	form        *huh.Form
	logForm     *LogFormModel
	status      string
	lockWarning string
	quitting    bool
	width       int
	height      int
}

// NewModel builds the TUI. A non-empty lockWarning is shown before the home
// tab.
func NewModel(tr *tracker.Tracker, lockWarning string) Model {
	rings := make(map[ecoscore.Band]progress.Model, len(bandColors))
	for band, color := range bandColors {
		rings[band] = progress.New(
			progress.WithSolidFill(color),
			progress.WithoutPercentage(),
			progress.WithWidth(40),
		)
	}

	m := Model{
		tracker:     tr,
		state:       constants.StateHome,
		keys:        DefaultKeyMap(),
		help:        help.New(),
		rings:       rings,
		impactModel: impact.New(0, 0),
		badgesModel: badges.New(0, 0),
		lockWarning: lockWarning,
	}
	if lockWarning != "" {
		m.state = constants.StateLockWarning
	}

	m.refresh()
	return m
}

// refresh rereads everything from the store
func (m *Model) refresh() {
	m.home = m.tracker.Home()
	m.impactModel.SetSummary(m.tracker.Impact())
	view := m.tracker.Badges()
	m.badgesModel.SetBadges(view.Badges, view.Summary)
}

// openLogForm builds a fresh form prefilled from today's saved log
func (m *Model) openLogForm() tea.Cmd {
	m.logForm = newLogFormModel(m.tracker.Prefill())
	m.form = NewLogForm(m.tracker.Catalog, m.logForm)
	m.state = constants.StateLog
	m.status = ""
	return m.form.Init()
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	if m.state == constants.StateHome {
		keys = append(keys, m.keys.Log)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}
	navigation := []key.Binding{m.keys.Up, m.keys.Down, m.keys.Left, m.keys.Right}
	actions := []key.Binding{m.keys.Log, m.keys.Refresh}
	return [][]key.Binding{global, navigation, actions}
}

func (m Model) Init() tea.Cmd {
	return nil
}
