package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateDay:
		content = lipgloss.JoinHorizontal(lipgloss.Top,
			docStyle.Render(m.activityList.View()),
			lipgloss.JoinVertical(lipgloss.Left, m.timeline.View(), m.viewSuggestions()),
		)
	case StateGoals:
		content = lipgloss.JoinHorizontal(lipgloss.Top,
			docStyle.Render(m.goalList.View()),
			m.viewSuggestions(),
		)
	case StateAddActivity, StateAddGoal:
		content = docStyle.Render(m.form.View())
	case StateConfirmDelete:
		content = m.viewConfirmDelete()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewHeader(),
		content,
		m.viewStatus(),
		m.help.View(m),
	)
}

func (m Model) viewHeader() string {
	var tabs []string
	for i, title := range []string{"Day", "Goals"} {
		if m.state == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	tabs = append(tabs, dateStyle.Render(m.sess.Date()))
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewStatus() string {
	var parts []string
	if m.estimating {
		parts = append(parts, m.spinner.View()+" estimating goal")
	}
	if m.status != "" {
		parts = append(parts, m.status)
	}
	return statusStyle.Render(strings.Join(parts, "  "))
}

func (m Model) viewSuggestions() string {
	var b strings.Builder
	b.WriteString(panelTitleStyle.Render("AI Insights"))
	b.WriteString("\n")

	st := m.sess.Suggestions().State()
	switch {
	case !m.aiEnabled:
		b.WriteString(warningStyle.Render("Disabled. Run 'aurapulse key set' to enable."))
	case st.Loading:
		b.WriteString(m.spinner.View() + " Analyzing your day...")
	case len(st.Suggestions) == 0:
		b.WriteString(statusStyle.Render("No suggestions yet. Press 'r' to refresh."))
	default:
		for i, s := range st.Suggestions {
			if i > 0 {
				b.WriteString("\n")
			}
			fmt.Fprintf(&b, "%s %s\n  %s\n", impactStyle(s.Impact).Render("["+string(s.Impact)+"]"), s.Title, s.Suggestion)
		}
	}

	width := m.width - m.width/2 - 4
	if width < 20 {
		width = 40
	}
	return panelStyle.Width(width).Render(strings.TrimRight(b.String(), "\n"))
}

func (m Model) viewConfirmDelete() string {
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render(fmt.Sprintf("Delete %q?", m.deleteTitle)),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}
