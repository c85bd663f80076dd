package timeline

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/aurapulse/internal/analytics"
	"github.com/julianstephens/aurapulse/internal/models"
	"github.com/julianstephens/aurapulse/internal/validation"
)

var (
	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Width(18)

	stripStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212"))

	hoursStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true)

	conflictStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Italic(true)
)

const minStripWidth = 24

type Model struct {
	viewport  viewport.Model
	day       []models.Activity
	conflicts []validation.Conflict
	width     int
	height    int
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
	return m.viewport.View()
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height
	m.Render()
}

// SetDay replaces the rendered day.
func (m *Model) SetDay(day []models.Activity, conflicts []validation.Conflict) {
	m.day = day
	m.conflicts = conflicts
	m.Render()
}

func (m *Model) Render() {
	m.viewport.SetContent(Content(m.day, m.conflicts, m.width))
}

// Content renders the strip, the category breakdown and any conflicts.
func Content(day []models.Activity, conflicts []validation.Conflict, width int) string {
	if len(day) == 0 {
		return "No activities on this day."
	}

	stripWidth := width - 14
	if stripWidth < minStripWidth {
		stripWidth = minStripWidth
	}

	var b strings.Builder
	fmt.Fprintf(&b, "00:00 %s 24:00\n\n", stripStyle.Render(analytics.Strip(analytics.Timeline(day), stripWidth)))

	for _, ch := range analytics.Breakdown(day) {
		fmt.Fprintf(&b, "%s %s\n",
			labelStyle.Render(fmt.Sprintf("%c %s", analytics.CategoryMark(ch.Category), ch.Category)),
			hoursStyle.Render(fmt.Sprintf("%.2fh", ch.Hours)),
		)
	}
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Total"), hoursStyle.Render(fmt.Sprintf("%.2fh", analytics.TotalHours(day))))

	for _, c := range conflicts {
		fmt.Fprintf(&b, "\n%s", conflictStyle.Render("⚠ "+c.Description))
	}
	return b.String()
}
