package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/ecolog/internal/constants"
	"github.com/julianstephens/ecolog/internal/ecoscore"
	"github.com/julianstephens/ecolog/internal/logger"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = size.Width
		m.height = size.Height
		m.help.Width = size.Width
		contentHeight := max(size.Height-6, 0)
		m.impactModel.SetSize(size.Width-4, contentHeight)
		m.badgesModel.SetSize(size.Width-4, contentHeight)
	}

	switch m.state {
	case constants.StateLockWarning:
		if _, ok := msg.(tea.KeyMsg); ok {
			m.state = constants.StateHome
		}
		return m, nil
	case constants.StateLog:
		return m.updateLogForm(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Tab), key.Matches(msg, m.keys.Right):
			return m, m.switchTab(1)
		case key.Matches(msg, m.keys.ShiftTab), key.Matches(msg, m.keys.Left):
			return m, m.switchTab(-1)
		case key.Matches(msg, m.keys.Log):
			return m, m.openLogForm()
		case key.Matches(msg, m.keys.Refresh):
			m.refresh()
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.state {
	case constants.StateImpact:
		m.impactModel, cmd = m.impactModel.Update(msg)
	case constants.StateBadges:
		m.badgesModel, cmd = m.badgesModel.Update(msg)
	}
	return m, cmd
}

// switchTab moves by delta tabs. Landing on the Log tab opens the form.
func (m *Model) switchTab(delta int) tea.Cmd {
	next := (int(m.state) + delta + constants.TabCount) % constants.TabCount
	if SessionState(next) == constants.StateLog {
		return m.openLogForm()
	}
	m.state = SessionState(next)
	return nil
}

func (m Model) updateLogForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = constants.StateHome
		return m, nil
	}

	var cmds []tea.Cmd
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	cmds = append(cmds, cmd)

	switch m.form.State {
	case huh.StateCompleted:
		m.saveLogForm()
		m.state = constants.StateHome
	case huh.StateAborted:
		m.state = constants.StateHome
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) saveLogForm() {
	fm := m.logForm
	result, err := m.tracker.SaveNames(m.tracker.Today(), fm.Toggles, fm.Transport, ecoscore.ParseACHours(fm.ACHours))
	if err != nil {
		logger.Error("Failed to save log", "error", err)
		m.status = dangerStyle.Render(fmt.Sprintf("Save failed: %v", err))
		return
	}

	m.refresh()
	m.status = statusStyle.Render(fmt.Sprintf("✓ Saved! EcoScore %s", ecoscore.FormatNumber(result.Daily.Score)))
}
