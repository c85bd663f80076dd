package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/aurapulse/internal/logger"
	"github.com/julianstephens/aurapulse/internal/tracker"
	"github.com/julianstephens/aurapulse/internal/tui/components/activitylist"
	"github.com/julianstephens/aurapulse/internal/tui/components/goallist"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case suggestionsMsg:
		m.sess.Suggestions().Complete(msg.result)
		return m, nil

	case goalAddedMsg:
		m.estimating = false
		if msg.err != nil {
			m.status = "Could not add goal: " + msg.err.Error()
			return m, nil
		}
		m.status = fmt.Sprintf("Added %q: %.1fh (%s), %d min/day", msg.goal.Title, msg.estimate.Hours, msg.estimate.Info, msg.goal.DailyRequirementMinutes)
		m.reload()
		return m, m.autoRefresh()
	}

	switch m.state {
	case StateAddActivity, StateAddGoal:
		return m.updateForm(msg)
	case StateConfirmDelete:
		return m.updateConfirmDelete(msg)
	}

	switch msg := msg.(type) {
	case activitylist.AddActivityMsg:
		m.activityForm = newActivityFormModel()
		m.form = NewActivityForm(m.activityForm)
		m.previousState = m.state
		m.state = StateAddActivity
		return m, m.form.Init()

	case activitylist.DeleteActivityMsg:
		m.deleteID = msg.ID
		m.deleteTitle = msg.Title
		m.previousState = m.state
		m.state = StateConfirmDelete
		return m, nil

	case goallist.AddGoalMsg:
		if m.estimating {
			m.status = "Still estimating the previous goal..."
			return m, nil
		}
		m.goalForm = newGoalFormModel()
		m.form = NewGoalForm(m.goalForm)
		m.previousState = m.state
		m.state = StateAddGoal
		return m, m.form.Init()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Tab):
			m.state = (m.state + 1) % tabCount
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab):
			m.state = (m.state - 1 + tabCount) % tabCount
			return m, nil
		case key.Matches(msg, m.keys.PrevDay):
			return m.shiftDate(-1)
		case key.Matches(msg, m.keys.NextDay):
			return m.shiftDate(1)
		case key.Matches(msg, m.keys.Today):
			m.sess.SelectToday()
			m.status = ""
			m.reload()
			return m, m.autoRefresh()
		case key.Matches(msg, m.keys.Refresh):
			if !m.aiEnabled {
				m.status = "AI insights are disabled"
				return m, nil
			}
			cmd := m.startRefresh()
			if cmd == nil {
				m.status = "Add an activity or a goal to get insights"
			}
			return m, cmd
		}
	}

	var cmd tea.Cmd
	switch m.state {
	case StateDay:
		m.activityList, cmd = m.activityList.Update(msg)
	case StateGoals:
		m.goalList, cmd = m.goalList.Update(msg)
	}
	return m, cmd
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width

	h, v := docStyle.GetFrameSize()
	listWidth := width/2 - h
	listHeight := height - 6 - v
	if listHeight < 3 {
		listHeight = 3
	}
	m.activityList.SetSize(listWidth, listHeight)
	m.goalList.SetSize(listWidth, listHeight)
	m.timeline.SetSize(width-width/2-4, listHeight/2)
}

func (m Model) shiftDate(days int) (tea.Model, tea.Cmd) {
	if _, err := m.sess.ShiftDate(days); err != nil {
		m.status = err.Error()
		return m, nil
	}
	m.status = ""
	m.reload()
	return m, m.autoRefresh()
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = m.previousState
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
		if m.state == StateAddActivity {
			cmds = append(cmds, m.submitActivity())
		} else {
			m.estimating = true
			m.status = fmt.Sprintf("Estimating %q...", m.goalForm.Title)
			cmds = append(cmds, m.planGoal(*m.goalForm))
		}
		m.state = m.previousState
	case huh.StateAborted:
		m.state = m.previousState
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) submitActivity() tea.Cmd {
	f := m.activityForm
	a, err := m.sess.AddActivity(tracker.ActivityInput{
		Title:       f.Title,
		StartTime:   f.Start,
		EndTime:     f.End,
		Category:    f.Category,
		Description: f.Description,
	})
	if err != nil {
		m.status = "Could not add activity: " + err.Error()
		return nil
	}
	logger.Debug("Activity added from tui", "id", a.ID, "date", a.Date)
	m.status = fmt.Sprintf("Added %q %s-%s", a.Title, a.StartTime, a.EndTime)
	m.reload()
	return m.autoRefresh()
}

func (m Model) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Confirm):
		if m.sess.RemoveActivity(m.deleteID) {
			m.status = fmt.Sprintf("Deleted %q", m.deleteTitle)
		}
		m.deleteID, m.deleteTitle = "", ""
		m.state = m.previousState
		m.reload()
		return m, m.autoRefresh()
	case key.Matches(keyMsg, m.keys.Cancel):
		m.deleteID, m.deleteTitle = "", ""
		m.state = m.previousState
	}
	return m, nil
}
