package impact

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/ecolog/internal/ecoscore"
	"github.com/julianstephens/ecolog/internal/models"
)

const chartWidth = 30

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Width(12)

	goodStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	badStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))

	placeholderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240")).
				Italic(true)
)

type Model struct {
	viewport viewport.Model
	Summary  *models.WeeklySummary
	width    int
	height   int
}

func New(width, height int) Model {
	return Model{viewport: viewport.New(width, height)}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.Summary == nil {
		return "No data yet."
	}
	return m.viewport.View()
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height
	m.Render()
}

func (m *Model) SetSummary(summary models.WeeklySummary) {
	m.Summary = &summary
	m.Render()
}

// Render rebuilds the viewport content from the current summary
func (m *Model) Render() {
	if m.Summary == nil {
		m.viewport.SetContent("")
		return
	}
	s := m.Summary

	var b strings.Builder
	b.WriteString(headerStyle.Render("Last 7 days") + "\n")
	fmt.Fprintf(&b, "%s%d\n", labelStyle.Render("Total"), ecoscore.Round(s.Total))
	fmt.Fprintf(&b, "%s%d\n", labelStyle.Render("Avg"), ecoscore.Round(s.Average))
	fmt.Fprintf(&b, "%s%d\n\n", labelStyle.Render("Best"), ecoscore.Round(s.Best))

	scale := ecoscore.ChartScale(s.Scores)
	for _, d := range s.Scores {
		n := ecoscore.BarLength(d.Score, scale, chartWidth)
		style := goodStyle
		if d.Score < 0 {
			style = badStyle
		}
		fmt.Fprintf(&b, "%s %s%s %s\n",
			labelStyle.Width(6).Render(d.Date[5:]),
			style.Render(strings.Repeat("█", n)),
			strings.Repeat(" ", chartWidth-n),
			ecoscore.FormatNumber(d.Score))
	}
	b.WriteString("\n")

	b.WriteString(headerStyle.Render("By category") + "\n")
	for _, cat := range models.Categories() {
		fmt.Fprintf(&b, "%s%d\n", labelStyle.Render(string(cat)), ecoscore.Round(s.CategoryTotals[cat]))
	}
	b.WriteString("\n")

	b.WriteString(headerStyle.Render("Top positive") + "\n")
	b.WriteString(renderTotals(s.TopPositive, "No positives yet."))
	b.WriteString("\n")
	b.WriteString(headerStyle.Render("Top negative") + "\n")
	b.WriteString(renderTotals(s.TopNegative, "No negatives yet."))

	m.viewport.SetContent(b.String())
}

func renderTotals(totals []models.ActionTotal, empty string) string {
	if len(totals) == 0 {
		return placeholderStyle.Render(empty) + "\n"
	}

	var b strings.Builder
	for _, t := range totals {
		delta := fmt.Sprintf("%d", ecoscore.Round(t.Points))
		style := badStyle
		if t.Points >= 0 {
			delta = "+" + delta
			style = goodStyle
		}
		fmt.Fprintf(&b, "%s %-26s %s\n", t.Icon, t.Name, style.Render(delta))
	}
	return b.String()
}
