package activitylist

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/aurapulse/internal/models"
	"github.com/julianstephens/aurapulse/internal/utils"
)

type AddActivityMsg struct{}

type DeleteActivityMsg struct {
	ID    string
	Title string
}

type Item struct {
	Activity models.Activity
}

func (i Item) Title() string {
	return fmt.Sprintf("%s-%s  %s", i.Activity.StartTime, i.Activity.EndTime, i.Activity.Title)
}

func (i Item) Description() string {
	mins := utils.DurationMinutes(i.Activity.StartTime, i.Activity.EndTime)
	desc := fmt.Sprintf("%s | %d min", i.Activity.Category, mins)
	if i.Activity.Description != "" {
		desc += " | " + i.Activity.Description
	}
	return desc
}

func (i Item) FilterValue() string { return i.Activity.Title }

type KeyMap struct {
	Add    key.Binding
	Delete key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(activities []models.Activity, width, height int) Model {
	l := list.New(toItems(activities), list.NewDefaultDelegate(), width, height)
	l.Title = "Activities"
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Delete}
	}

	return Model{list: l, keys: keys}
}

func toItems(activities []models.Activity) []list.Item {
	items := make([]list.Item, len(activities))
	for i, a := range activities {
		items[i] = Item{Activity: a}
	}
	return items
}

func (m *Model) SetActivities(activities []models.Activity) {
	m.list.SetItems(toItems(activities))
}

func (m Model) Len() int {
	return len(m.list.Items())
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Add):
			return m, func() tea.Msg { return AddActivityMsg{} }
		case key.Matches(msg, m.keys.Delete):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return DeleteActivityMsg{ID: i.Activity.ID, Title: i.Activity.Title} }
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 {
		return "\n  Nothing planned for this day.\n  Press 'a' to add an activity."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
