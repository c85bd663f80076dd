package schedule

import (
	"testing"

	"github.com/julianstephens/aurapulse/internal/models"
)

func TestActivityStoreNotifies(t *testing.T) {
	s := NewActivityStore(nil)

	calls := 0
	unsubscribe := s.Subscribe(func() { calls++ })

	stored := s.Add(models.Activity{ID: "a", Date: "ignored", StartTime: "09:00"}, "2024-05-01")
	if stored.Date != "2024-05-01" {
		t.Errorf("stored date = %s", stored.Date)
	}
	if calls != 1 {
		t.Errorf("expected 1 notification after Add, got %d", calls)
	}

	if s.Remove("missing") {
		t.Error("Remove(missing) = true")
	}
	if calls != 1 {
		t.Errorf("Remove of a missing id must not notify, got %d calls", calls)
	}

	if !s.Remove("a") {
		t.Error("Remove(a) = false")
	}
	if calls != 2 {
		t.Errorf("expected 2 notifications, got %d", calls)
	}

	unsubscribe()
	s.Add(models.Activity{ID: "b"}, "2024-05-01")
	if calls != 2 {
		t.Errorf("unsubscribed listener still called (%d)", calls)
	}
}

func TestActivityStoreSnapshots(t *testing.T) {
	s := NewActivityStore([]models.Activity{{ID: "a", Date: "2024-05-01", StartTime: "10:00"}})

	before := s.All()
	s.Add(models.Activity{ID: "b", StartTime: "08:00"}, "2024-05-01")

	if len(before) != 1 {
		t.Errorf("earlier snapshot changed length to %d", len(before))
	}

	day := s.On("2024-05-01")
	if len(day) != 2 || day[0].ID != "b" {
		t.Errorf("On() = %v", day)
	}

	if _, ok := s.Get("b"); !ok {
		t.Error("Get(b) not found")
	}
	if s.Len() != 2 {
		t.Errorf("Len() = %d", s.Len())
	}
}

func TestReplaceDoesNotNotify(t *testing.T) {
	s := NewActivityStore(nil)
	g := NewGoalStore(nil)

	calls := 0
	s.Subscribe(func() { calls++ })
	g.Subscribe(func() { calls++ })

	s.Replace([]models.Activity{{ID: "a"}})
	g.Replace([]models.LongTermGoal{{ID: "g"}})

	if calls != 0 {
		t.Errorf("Replace notified %d times", calls)
	}
	if s.Len() != 1 || g.Len() != 1 {
		t.Error("Replace did not load collections")
	}
}

func TestGoalStoreAdd(t *testing.T) {
	g := NewGoalStore(nil)

	calls := 0
	g.Subscribe(func() { calls++ })

	goal := models.LongTermGoal{ID: "g1", EstimatedTotalHours: 12, DailyRequirementMinutes: 24}
	g.Add(goal)

	all := g.All()
	if len(all) != 1 || all[0] != goal {
		t.Errorf("All() = %v", all)
	}
	if calls != 1 {
		t.Errorf("expected 1 notification, got %d", calls)
	}
}
