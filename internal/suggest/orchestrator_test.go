package suggest

import (
	"context"
	"errors"
	"testing"

	"github.com/julianstephens/aurapulse/internal/models"
)

type fakeAdvisor struct {
	out   []models.Suggestion
	err   error
	calls int
	got   []models.Activity
}

func (f *fakeAdvisor) Suggest(ctx context.Context, activities []models.Activity, goals []models.LongTermGoal) ([]models.Suggestion, error) {
	f.calls++
	f.got = activities
	return f.out, f.err
}

var (
	oneActivity = []models.Activity{{ID: "a", Date: "2024-05-01", Title: "Run", StartTime: "07:00", EndTime: "08:00"}}
	oneGoal     = []models.LongTermGoal{{ID: "g", Title: "Dune", Type: models.GoalTypeBook}}
	someAdvice  = []models.Suggestion{{Title: "Hydrate", Impact: models.ImpactLow, Suggestion: "Drink water"}}
)

func TestRefreshNoopWithoutData(t *testing.T) {
	adv := &fakeAdvisor{out: someAdvice}
	o := New(adv)

	if o.RefreshNow(context.Background(), nil, nil) {
		t.Error("RefreshNow() = true with no activities and no goals")
	}
	if adv.calls != 0 {
		t.Errorf("advisor called %d times", adv.calls)
	}
	st := o.State()
	if st.Loading || len(st.Suggestions) != 0 {
		t.Errorf("state changed: %+v", st)
	}
}

func TestRefreshSuccess(t *testing.T) {
	tests := []struct {
		name  string
		day   []models.Activity
		goals []models.LongTermGoal
	}{
		{name: "activity only", day: oneActivity},
		{name: "goal only", goals: oneGoal},
		{name: "both", day: oneActivity, goals: oneGoal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adv := &fakeAdvisor{out: someAdvice}
			o := New(adv)

			if !o.RefreshNow(context.Background(), tt.day, tt.goals) {
				t.Fatal("RefreshNow() = false")
			}
			st := o.State()
			if st.Loading {
				t.Error("still loading after completion")
			}
			if len(st.Suggestions) != 1 || st.Suggestions[0].Title != "Hydrate" {
				t.Errorf("Suggestions = %+v", st.Suggestions)
			}
		})
	}
}

func TestRefreshFailureClearsSuggestions(t *testing.T) {
	adv := &fakeAdvisor{out: someAdvice}
	o := New(adv)
	o.RefreshNow(context.Background(), oneActivity, nil)

	adv.out, adv.err = nil, errors.New("boom")
	o.RefreshNow(context.Background(), oneActivity, nil)

	st := o.State()
	if st.Loading {
		t.Error("Loading should be false after failure")
	}
	if st.Suggestions == nil || len(st.Suggestions) != 0 {
		t.Errorf("expected empty suggestions, got %#v", st.Suggestions)
	}
}

func TestLoadingLifecycle(t *testing.T) {
	adv := &fakeAdvisor{out: someAdvice}
	o := New(adv)

	req, ok := o.Begin(oneActivity, oneGoal)
	if !ok {
		t.Fatal("Begin() = false")
	}
	if !o.State().Loading {
		t.Error("Loading should be true after Begin")
	}

	res := o.Run(context.Background(), req)
	if !o.State().Loading {
		t.Error("Run must not touch state")
	}

	o.Complete(res)
	if o.State().Loading {
		t.Error("Loading should be false after Complete")
	}
}

func TestRequestIsSnapshot(t *testing.T) {
	o := New(&fakeAdvisor{})
	day := []models.Activity{{ID: "a", Title: "Before"}}

	req, _ := o.Begin(day, nil)
	day[0].Title = "After"

	if req.Activities[0].Title != "Before" {
		t.Error("request shares storage with the caller's slice")
	}
}

func TestLastCompletionWins(t *testing.T) {
	o := New(&fakeAdvisor{})

	first, _ := o.Begin(oneActivity, nil)
	second, _ := o.Begin(oneActivity, nil)

	newer := []models.Suggestion{{Title: "Newer", Impact: models.ImpactHigh, Suggestion: "x"}}
	older := []models.Suggestion{{Title: "Older", Impact: models.ImpactHigh, Suggestion: "y"}}

	o.Complete(Result{Seq: second.Seq, Suggestions: newer})
	if !o.Complete(Result{Seq: first.Seq, Suggestions: older}) {
		t.Fatal("relaxed mode must apply every completion")
	}

	st := o.State()
	if st.Suggestions[0].Title != "Older" {
		t.Errorf("expected the last landed completion to win, got %q", st.Suggestions[0].Title)
	}
	if st.Loading {
		t.Error("Loading should be cleared")
	}
}

func TestSequenceGuard(t *testing.T) {
	o := New(&fakeAdvisor{}, WithSequenceGuard())

	first, _ := o.Begin(oneActivity, nil)
	second, _ := o.Begin(oneActivity, nil)

	stale := []models.Suggestion{{Title: "Stale", Impact: models.ImpactLow, Suggestion: "x"}}
	fresh := []models.Suggestion{{Title: "Fresh", Impact: models.ImpactLow, Suggestion: "y"}}

	if o.Complete(Result{Seq: first.Seq, Suggestions: stale}) {
		t.Error("stale completion applied")
	}
	if !o.State().Loading {
		t.Error("a stale completion must not end loading")
	}

	if !o.Complete(Result{Seq: second.Seq, Suggestions: fresh}) {
		t.Fatal("newest completion rejected")
	}
	st := o.State()
	if st.Loading || st.Suggestions[0].Title != "Fresh" {
		t.Errorf("state = %+v", st)
	}
}

func TestNilAdvisor(t *testing.T) {
	o := New(nil)
	if !o.RefreshNow(context.Background(), oneActivity, nil) {
		t.Fatal("RefreshNow() = false")
	}
	if st := o.State(); st.Loading || len(st.Suggestions) != 0 {
		t.Errorf("state = %+v", st)
	}
}
