package goallist

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/aurapulse/internal/models"
)

type AddGoalMsg struct{}

type Item struct {
	Goal models.LongTermGoal
}

func (i Item) Title() string {
	return fmt.Sprintf("%s by %s", i.Goal.Title, i.Goal.Creator)
}

func (i Item) Description() string {
	return fmt.Sprintf("%s | %.0f%% of %.1fh | %d min/day until %s",
		i.Goal.Type, i.Goal.Progress()*100, i.Goal.EstimatedTotalHours,
		i.Goal.DailyRequirementMinutes, i.Goal.TargetDate)
}

func (i Item) FilterValue() string { return i.Goal.Title }

type Model struct {
	list list.Model
	add  key.Binding
}

func New(goals []models.LongTermGoal, width, height int) Model {
	l := list.New(toItems(goals), list.NewDefaultDelegate(), width, height)
	l.Title = "Goals"
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)

	add := key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "add goal"),
	)
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{add}
	}

	return Model{list: l, add: add}
}

func toItems(goals []models.LongTermGoal) []list.Item {
	items := make([]list.Item, len(goals))
	for i, g := range goals {
		items[i] = Item{Goal: g}
	}
	return items
}

func (m *Model) SetGoals(goals []models.LongTermGoal) {
	m.list.SetItems(toItems(goals))
}

func (m Model) Len() int {
	return len(m.list.Items())
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(msg, m.add) {
			return m, func() tea.Msg { return AddGoalMsg{} }
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 {
		return "\n  No goals yet.\n  Press 'a' to add a book or course."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
