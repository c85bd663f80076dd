package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/aurapulse/internal/models"
	"github.com/julianstephens/aurapulse/internal/suggest"
	"github.com/julianstephens/aurapulse/internal/tracker"
	"github.com/julianstephens/aurapulse/internal/tui/components/activitylist"
	"github.com/julianstephens/aurapulse/internal/tui/components/goallist"
	"github.com/julianstephens/aurapulse/internal/tui/components/timeline"
)

type SessionState int

const (
	StateDay SessionState = iota
	StateGoals
	StateAddActivity
	StateAddGoal
	StateConfirmDelete
)

const tabCount = 2

// suggestionsMsg carries a finished advisor call back into the update loop.
type suggestionsMsg struct {
	result suggest.Result
}

// goalAddedMsg reports a goal planned off the update loop.
type goalAddedMsg struct {
	goal     models.LongTermGoal
	estimate models.Estimate
	err      error
}

type Model struct {
	sess      *tracker.Session
	aiEnabled bool

	state         SessionState
	previousState SessionState
	keys          KeyMap
	help          help.Model
	spinner       spinner.Model

	activityList activitylist.Model
	goalList     goallist.Model
	timeline     timeline.Model

	form         *huh.Form
	activityForm *ActivityFormModel
	goalForm     *GoalFormModel

	deleteID    string
	deleteTitle string
	estimating  bool
	status      string
	quitting    bool
	width       int
	height      int
}

func NewModel(sess *tracker.Session, aiEnabled bool) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = panelTitleStyle

	m := Model{
		sess:         sess,
		aiEnabled:    aiEnabled,
		state:        StateDay,
		keys:         DefaultKeyMap(),
		help:         help.New(),
		spinner:      sp,
		activityList: activitylist.New(nil, 0, 0),
		goalList:     goallist.New(nil, 0, 0),
		timeline:     timeline.New(0, 0),
	}
	m.reload()
	return m
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.state {
	case StateDay:
		keys = append(keys, m.keys.PrevDay, m.keys.NextDay, m.keys.Add, m.keys.Delete)
	case StateGoals:
		keys = append(keys, m.keys.Add)
	}
	if m.aiEnabled {
		keys = append(keys, m.keys.Refresh)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	return m.keys.FullHelp()
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.autoRefresh())
}

// reload pulls the selected day and all goals from the session into the views.
func (m *Model) reload() {
	day := m.sess.DayActivities()
	m.activityList.SetActivities(day)
	m.goalList.SetGoals(m.sess.Goals())

	result := m.sess.Conflicts()
	m.timeline.SetDay(day, result.Conflicts)
}

// autoRefresh records the current view and starts a refresh when the trigger
// fires.
func (m *Model) autoRefresh() tea.Cmd {
	if !m.sess.AutoRefreshDue() || !m.aiEnabled {
		return nil
	}
	return m.startRefresh()
}

// startRefresh flips the orchestrator into loading and runs the advisor call
// as a command. Returns nil when there is nothing to analyze.
func (m *Model) startRefresh() tea.Cmd {
	req, ok := m.sess.BeginRefresh()
	if !ok {
		return nil
	}
	orch := m.sess.Suggestions()
	return func() tea.Msg {
		return suggestionsMsg{result: orch.Run(context.Background(), req)}
	}
}

func (m *Model) planGoal(f GoalFormModel) tea.Cmd {
	sess := m.sess
	return func() tea.Msg {
		goal, est, err := sess.AddGoal(context.Background(), f.Title, f.Creator, f.Type)
		return goalAddedMsg{goal: goal, estimate: est, err: err}
	}
}
