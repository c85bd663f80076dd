package tui

import (
	"context"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/aurapulse/internal/models"
	"github.com/julianstephens/aurapulse/internal/storage"
	"github.com/julianstephens/aurapulse/internal/tracker"
	"github.com/julianstephens/aurapulse/internal/tui/components/activitylist"
	"github.com/julianstephens/aurapulse/internal/tui/components/goallist"
)

type fakeAdvisor struct {
	calls int
	out   []models.Suggestion
}

func (f *fakeAdvisor) Suggest(context.Context, []models.Activity, []models.LongTermGoal) ([]models.Suggestion, error) {
	f.calls++
	return f.out, nil
}

func newTestModel(t *testing.T, advisor *fakeAdvisor) (Model, *tracker.Session) {
	t.Helper()
	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "aurapulse.json"))
	if err := store.Init(); err != nil {
		t.Fatal(err)
	}
	cfg := tracker.Config{Records: store, Date: "2024-05-01"}
	if advisor != nil {
		cfg.Advisor = advisor
	}
	sess, err := tracker.Open(context.Background(), cfg)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(sess.Close)
	return NewModel(sess, advisor != nil), sess
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func addActivity(t *testing.T, sess *tracker.Session, title, start, end string) models.Activity {
	t.Helper()
	a, err := sess.AddActivity(tracker.ActivityInput{Title: title, StartTime: start, EndTime: end})
	if err != nil {
		t.Fatal(err)
	}
	return a
}

func TestTabsCycle(t *testing.T) {
	m, _ := newTestModel(t, nil)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.state != StateGoals {
		t.Fatalf("state after tab = %d", m.state)
	}
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.state != StateDay {
		t.Fatalf("state after second tab = %d", m.state)
	}
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.state != StateGoals {
		t.Fatalf("state after shift+tab = %d", m.state)
	}
}

func TestDateNavigation(t *testing.T) {
	m, sess := newTestModel(t, nil)
	addActivity(t, sess, "Deep work", "09:00", "10:00")
	m.reload()
	if m.activityList.Len() != 1 {
		t.Fatalf("day list has %d items", m.activityList.Len())
	}

	m, _ = update(t, m, runes("]"))
	if sess.Date() != "2024-05-02" {
		t.Fatalf("date = %s, want 2024-05-02", sess.Date())
	}
	if m.activityList.Len() != 0 {
		t.Errorf("next day should be empty, has %d", m.activityList.Len())
	}

	m, _ = update(t, m, runes("["))
	if sess.Date() != "2024-05-01" || m.activityList.Len() != 1 {
		t.Errorf("back on %s with %d items", sess.Date(), m.activityList.Len())
	}
}

func TestAutoRefreshFlow(t *testing.T) {
	advisor := &fakeAdvisor{out: []models.Suggestion{{Title: "Rest", Impact: models.ImpactLow, Suggestion: "Sleep earlier."}}}
	m, sess := newTestModel(t, advisor)

	if cmd := m.autoRefresh(); cmd != nil {
		t.Fatal("empty day should not trigger a refresh")
	}

	addActivity(t, sess, "Deep work", "09:00", "10:00")
	m.reload()
	if cmd := m.autoRefresh(); cmd != nil {
		t.Fatal("one activity should not trigger a refresh")
	}

	addActivity(t, sess, "Gym", "18:00", "19:00")
	m.reload()
	cmd := m.autoRefresh()
	if cmd == nil {
		t.Fatal("two activities should trigger a refresh")
	}
	if !sess.Suggestions().State().Loading {
		t.Error("expected loading while the refresh runs")
	}

	m, _ = update(t, m, cmd())
	st := sess.Suggestions().State()
	if st.Loading || len(st.Suggestions) != 1 || advisor.calls != 1 {
		t.Errorf("after completion: %+v, calls=%d", st, advisor.calls)
	}

	if cmd := m.autoRefresh(); cmd != nil {
		t.Error("unchanged view should not trigger again")
	}
}

func TestManualRefresh(t *testing.T) {
	advisor := &fakeAdvisor{}
	m, sess := newTestModel(t, advisor)

	m, cmd := update(t, m, runes("r"))
	if cmd != nil || m.status == "" {
		t.Fatalf("refresh with nothing to analyze: cmd=%v status=%q", cmd != nil, m.status)
	}

	addActivity(t, sess, "Deep work", "09:00", "10:00")
	m, cmd = update(t, m, runes("r"))
	if cmd == nil {
		t.Fatal("expected refresh command")
	}
	update(t, m, cmd())
	if advisor.calls != 1 {
		t.Errorf("advisor calls = %d", advisor.calls)
	}
}

func TestDeleteConfirm(t *testing.T) {
	m, sess := newTestModel(t, nil)
	a := addActivity(t, sess, "Deep work", "09:00", "10:00")
	m.reload()

	m, _ = update(t, m, activitylist.DeleteActivityMsg{ID: a.ID, Title: a.Title})
	if m.state != StateConfirmDelete {
		t.Fatalf("state = %d, want confirm", m.state)
	}

	m, _ = update(t, m, runes("n"))
	if m.state != StateDay || len(sess.DayActivities()) != 1 {
		t.Fatal("cancel should keep the activity")
	}

	m, _ = update(t, m, activitylist.DeleteActivityMsg{ID: a.ID, Title: a.Title})
	m, _ = update(t, m, runes("y"))
	if m.state != StateDay {
		t.Errorf("state = %d after confirm", m.state)
	}
	if len(sess.DayActivities()) != 0 || m.activityList.Len() != 0 {
		t.Error("activity should be removed")
	}
}

func TestFormsOpenAndEscape(t *testing.T) {
	m, _ := newTestModel(t, nil)

	m, _ = update(t, m, activitylist.AddActivityMsg{})
	if m.state != StateAddActivity || m.activityForm.Start != "09:00" || m.activityForm.Category != models.CategoryWork {
		t.Fatalf("unexpected form state %d %+v", m.state, m.activityForm)
	}
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.state != StateDay {
		t.Fatalf("esc should return to day, got %d", m.state)
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m, _ = update(t, m, goallist.AddGoalMsg{})
	if m.state != StateAddGoal || m.goalForm.Type != models.GoalTypeBook {
		t.Fatalf("unexpected goal form state %d", m.state)
	}
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.state != StateGoals {
		t.Fatalf("esc should return to goals, got %d", m.state)
	}
}

func TestGoalPlanned(t *testing.T) {
	m, sess := newTestModel(t, nil)
	m.estimating = true

	cmd := m.planGoal(GoalFormModel{Title: "Dune", Creator: "Frank Herbert", Type: models.GoalTypeBook})
	m, _ = update(t, m, cmd())

	if m.estimating {
		t.Error("estimating flag should clear")
	}
	goals := sess.Goals()
	if len(goals) != 1 || goals[0].EstimatedTotalHours != 10 {
		t.Fatalf("goals = %+v", goals)
	}
	if m.goalList.Len() != 1 {
		t.Errorf("goal list has %d items", m.goalList.Len())
	}
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t, nil)
	m, cmd := update(t, m, runes("q"))
	if !m.quitting || cmd == nil {
		t.Fatal("q should quit")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}
