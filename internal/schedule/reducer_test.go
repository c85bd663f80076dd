package schedule

import (
	"reflect"
	"testing"

	"github.com/julianstephens/aurapulse/internal/models"
)

func TestAddActivityOverwritesDate(t *testing.T) {
	in := models.Activity{ID: "a1", Date: "1999-12-31", Title: "Run", StartTime: "06:00", EndTime: "07:00"}

	all := AddActivity(nil, in, "2024-05-01")
	if len(all) != 1 {
		t.Fatalf("expected 1 activity, got %d", len(all))
	}
	if all[0].Date != "2024-05-01" {
		t.Errorf("Date = %s, want the selected date 2024-05-01", all[0].Date)
	}

	// An empty date in the submission is stamped the same way
	in.ID, in.Date = "a2", ""
	all = AddActivity(all, in, "2024-05-02")
	if all[1].Date != "2024-05-02" {
		t.Errorf("Date = %s, want 2024-05-02", all[1].Date)
	}
}

func TestAddActivityDoesNotMutateInput(t *testing.T) {
	base := make([]models.Activity, 1, 10) // spare capacity must not be shared
	base[0] = models.Activity{ID: "a1"}

	first := AddActivity(base, models.Activity{ID: "b"}, "2024-05-01")
	second := AddActivity(base, models.Activity{ID: "c"}, "2024-05-01")

	if first[1].ID != "b" || second[1].ID != "c" {
		t.Errorf("snapshots share backing storage: %v / %v", first, second)
	}
	if len(base) != 1 {
		t.Errorf("input length changed to %d", len(base))
	}
}

func TestRemoveActivity(t *testing.T) {
	all := []models.Activity{{ID: "a"}, {ID: "b"}, {ID: "c"}}

	next, removed := RemoveActivity(all, "b")
	if !removed {
		t.Fatal("expected removal")
	}
	if len(next) != 2 || next[0].ID != "a" || next[1].ID != "c" {
		t.Errorf("unexpected result %v", next)
	}
	if len(all) != 3 || all[1].ID != "b" {
		t.Errorf("input modified: %v", all)
	}
}

func TestRemoveActivityMissingID(t *testing.T) {
	all := []models.Activity{{ID: "a"}, {ID: "b"}}

	next, removed := RemoveActivity(all, "zzz")
	if removed {
		t.Error("removed = true for missing id")
	}
	if !reflect.DeepEqual(next, all) {
		t.Errorf("collection changed: %v", next)
	}
}

func TestActivitiesOn(t *testing.T) {
	all := []models.Activity{
		{ID: "1", Date: "2024-05-01", StartTime: "13:00"},
		{ID: "2", Date: "2024-05-02", StartTime: "08:00"},
		{ID: "3", Date: "2024-05-01", StartTime: "09:00"},
		{ID: "4", Date: "2024-05-01", StartTime: "13:00"},
		{ID: "5", Date: "2024-05-01", StartTime: "07:45"},
	}

	day := ActivitiesOn(all, "2024-05-01")

	var ids []string
	for _, a := range day {
		ids = append(ids, a.ID)
	}
	want := []string{"5", "3", "1", "4"}
	if !reflect.DeepEqual(ids, want) {
		t.Errorf("ActivitiesOn() order = %v, want %v", ids, want)
	}

	if got := ActivitiesOn(all, "2030-01-01"); len(got) != 0 {
		t.Errorf("expected empty day, got %v", got)
	}
}

func TestAddGoal(t *testing.T) {
	g := models.LongTermGoal{ID: "g", DailyRequirementMinutes: 24, TargetDate: "2024-06-01"}
	all := AddGoal(nil, g)
	if len(all) != 1 || !reflect.DeepEqual(all[0], g) {
		t.Errorf("AddGoal() = %v", all)
	}
}
