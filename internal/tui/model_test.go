package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/ecolog/internal/catalog"
	"github.com/julianstephens/ecolog/internal/constants"
	"github.com/julianstephens/ecolog/internal/storage"
	"github.com/julianstephens/ecolog/internal/tracker"
)

func setupTestModel(t *testing.T, lockWarning string) (Model, *tracker.Tracker) {
	t.Helper()
	tr := tracker.New(storage.NewMemoryStore(), catalog.Default())
	tr.Clock = func() time.Time { return time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC) }
	tr.Location = time.UTC

	m := NewModel(tr, lockWarning)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return updated.(Model), tr
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case "shift+tab":
			msg = tea.KeyMsg{Type: tea.KeyShiftTab}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		updated, _ := m.Update(msg)
		m = updated.(Model)
	}
	return m
}

func TestModel_HomeEmpty(t *testing.T) {
	m, _ := setupTestModel(t, "")

	if m.state != constants.StateHome {
		t.Fatalf("initial state = %v, want home", m.state)
	}
	view := m.View()
	for _, want := range []string{"Home", "2026-03-10", "Needs Work", "No log yet."} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestModel_TabCycling(t *testing.T) {
	m, _ := setupTestModel(t, "")

	m = press(t, m, "tab")
	if m.state != constants.StateLog || m.form == nil {
		t.Fatalf("tab from home should open the log form, state = %v", m.state)
	}

	m = press(t, m, "esc")
	if m.state != constants.StateHome {
		t.Fatalf("esc should return home, state = %v", m.state)
	}

	m = press(t, m, "shift+tab")
	if m.state != constants.StateBadges {
		t.Fatalf("shift+tab from home = %v, want badges", m.state)
	}
	if !strings.Contains(m.View(), "Earned: 0") {
		t.Error("badges view missing summary")
	}

	m = press(t, m, "h")
	if m.state != constants.StateImpact {
		t.Fatalf("h from badges = %v, want impact", m.state)
	}
	if !strings.Contains(m.View(), "No positives yet.") {
		t.Error("impact view missing placeholder")
	}
}

func TestModel_RefreshAfterExternalSave(t *testing.T) {
	m, tr := setupTestModel(t, "")

	if _, err := tr.SaveNames(tr.Today(), []string{"Composted", "Line-dried laundry"}, "Walked", 0); err != nil {
		t.Fatal(err)
	}

	m = press(t, m, "r")
	view := m.View()
	for _, want := range []string{"40", "Okay", "Walked", "+40"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q after refresh", want)
		}
	}
}

func TestModel_SaveLogForm(t *testing.T) {
	m, tr := setupTestModel(t, "")

	m = press(t, m, "e")
	if m.state != constants.StateLog {
		t.Fatalf("state = %v, want log", m.state)
	}

	m.logForm.Toggles = []string{"Vegetarian meal"}
	m.logForm.Transport = "Biked"
	m.logForm.ACHours = "1"
	m.saveLogForm()

	if !strings.Contains(m.status, "EcoScore 25") {
		t.Errorf("status = %q", m.status)
	}
	if got := tr.Home().Score; got != 25 {
		t.Errorf("saved score = %v, want 25", got)
	}

	// reopening prefills from the saved day
	m.openLogForm()
	if m.logForm.Transport != "Biked" || m.logForm.ACHours != "1" || len(m.logForm.Toggles) != 1 {
		t.Errorf("prefill = %+v", m.logForm)
	}
}

func TestModel_SaveLogFormUnknownAction(t *testing.T) {
	m, _ := setupTestModel(t, "")
	m = press(t, m, "e")

	m.logForm.Toggles = []string{"Not a thing"}
	m.saveLogForm()

	if !strings.Contains(m.status, "Save failed") {
		t.Errorf("status = %q", m.status)
	}
}

func TestModel_LockWarning(t *testing.T) {
	m, _ := setupTestModel(t, "Another ecolog session is running (pid 42)")

	if m.state != constants.StateLockWarning {
		t.Fatalf("state = %v, want lock warning", m.state)
	}
	if !strings.Contains(m.View(), "pid 42") {
		t.Error("view missing lock warning")
	}

	m = press(t, m, "x")
	if m.state != constants.StateHome {
		t.Errorf("any key should dismiss the warning, state = %v", m.state)
	}
}

func TestModel_Quit(t *testing.T) {
	m, _ := setupTestModel(t, "")

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	m = updated.(Model)
	if !m.quitting || cmd == nil {
		t.Fatal("q should quit")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}
