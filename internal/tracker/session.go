// Package tracker wires the schedule stores, persistence, goal planning and
// suggestions into one session around a selected date.
package tracker

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/aurapulse/internal/logger"
	"github.com/julianstephens/aurapulse/internal/models"
	"github.com/julianstephens/aurapulse/internal/persistence"
	"github.com/julianstephens/aurapulse/internal/schedule"
	"github.com/julianstephens/aurapulse/internal/suggest"
	"github.com/julianstephens/aurapulse/internal/utils"
	"github.com/julianstephens/aurapulse/internal/validation"
)

// Config holds the collaborators of a Session. Records is required; a nil
// Advisor or Estimator degrades to empty suggestions and fallback estimates.
type Config struct {
	Records   persistence.Records
	Advisor   suggest.Advisor
	Estimator schedule.Estimator

	// Date is the initially selected day, today when empty.
	Date string
	// Location decides what "today" is. Local time when nil.
	Location *time.Location

	SuggestOptions []suggest.Option
	PlannerOptions []schedule.PlannerOption
}

// ActivityInput is a user submission for a new activity.
type ActivityInput struct {
	Title       string
	StartTime   string
	EndTime     string
	Category    models.Category
	Description string
	GoalID      string
}

type Session struct {
	activities  *schedule.ActivityStore
	goals       *schedule.GoalStore
	planner     *schedule.GoalPlanner
	suggestions *suggest.Orchestrator
	validator   *validation.Validator
	detach      func()

	loc     *time.Location
	mu      sync.Mutex
	date    string
	trigger suggest.Trigger
	newID   func() string
}

// Open loads the persisted collections and attaches persistence to the stores.
func Open(ctx context.Context, cfg Config) (*Session, error) {
	date := cfg.Date
	if date == "" {
		date = utils.Today(cfg.Location)
	}
	if err := validation.ValidateDate(date); err != nil {
		return nil, err
	}

	bridge := persistence.NewBridge(cfg.Records)
	acts, goals := bridge.Load(ctx)
	logger.Debug("Session loaded", "activities", len(acts), "goals", len(goals), "date", date)

	s := &Session{
		activities:  schedule.NewActivityStore(acts),
		goals:       schedule.NewGoalStore(goals),
		planner:     schedule.NewGoalPlanner(cfg.Estimator, cfg.PlannerOptions...),
		suggestions: suggest.New(cfg.Advisor, cfg.SuggestOptions...),
		validator:   validation.New(),
		date:        date,
		loc:         cfg.Location,
		newID:       uuid.NewString,
	}
	s.detach = bridge.Attach(s.activities, s.goals)
	return s, nil
}

// Close stops persisting changes.
func (s *Session) Close() {
	if s.detach != nil {
		s.detach()
		s.detach = nil
	}
}

// Date returns the selected day.
func (s *Session) Date() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.date
}

// SelectDate changes the selected day.
func (s *Session) SelectDate(date string) error {
	if err := validation.ValidateDate(date); err != nil {
		return err
	}
	s.mu.Lock()
	s.date = date
	s.mu.Unlock()
	return nil
}

// SelectToday selects the current day and returns it.
func (s *Session) SelectToday() string {
	today := utils.Today(s.loc)
	s.mu.Lock()
	s.date = today
	s.mu.Unlock()
	return today
}

// ShiftDate moves the selected day by days (negative for earlier).
func (s *Session) ShiftDate(days int) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, err := utils.ShiftDate(s.date, days)
	if err != nil {
		return s.date, err
	}
	s.date = next
	return next, nil
}

// AddActivity validates in and stores it on the selected day.
func (s *Session) AddActivity(in ActivityInput) (models.Activity, error) {
	a := models.Activity{
		ID:          s.newID(),
		Title:       strings.TrimSpace(in.Title),
		StartTime:   strings.TrimSpace(in.StartTime),
		EndTime:     strings.TrimSpace(in.EndTime),
		Category:    in.Category,
		Description: strings.TrimSpace(in.Description),
		GoalID:      strings.TrimSpace(in.GoalID),
	}
	if a.Category == "" {
		a.Category = models.CategoryWork
	}
	if err := validation.ValidateActivity(a); err != nil {
		return models.Activity{}, err
	}
	return s.activities.Add(a, s.Date()), nil
}

// RemoveActivity deletes the activity with id. Unknown ids are ignored.
func (s *Session) RemoveActivity(id string) bool {
	return s.activities.Remove(id)
}

// AddGoal estimates and stores a new goal. Estimation failures fall back to a
// generic estimate; only invalid input is an error.
func (s *Session) AddGoal(ctx context.Context, title, creator string, goalType models.GoalType) (models.LongTermGoal, models.Estimate, error) {
	goal, est, err := s.planner.Plan(ctx, title, creator, goalType)
	if err != nil {
		return models.LongTermGoal{}, models.Estimate{}, err
	}
	s.goals.Add(goal)
	return goal, est, nil
}

// DayActivities returns the activities of the selected day ordered by start time.
func (s *Session) DayActivities() []models.Activity {
	return s.activities.On(s.Date())
}

// Activities returns every stored activity.
func (s *Session) Activities() []models.Activity {
	return s.activities.All()
}

// Goals returns every goal.
func (s *Session) Goals() []models.LongTermGoal {
	return s.goals.All()
}

// Conflicts reports overlaps on the selected day.
func (s *Session) Conflicts() validation.ValidationResult {
	return s.validator.ValidateDay(s.Date(), s.DayActivities(), s.Goals())
}

// Suggestions exposes the orchestrator so UI loops can drive refreshes
// in steps.
func (s *Session) Suggestions() *suggest.Orchestrator {
	return s.suggestions
}

// Refresh runs a manual suggestion refresh synchronously. It returns false
// when there is nothing to analyze.
func (s *Session) Refresh(ctx context.Context) bool {
	return s.suggestions.RefreshNow(ctx, s.DayActivities(), s.Goals())
}

// AutoRefreshDue records the current view and reports whether suggestions
// should refresh on their own.
func (s *Session) AutoRefreshDue() bool {
	day := s.DayActivities()
	goals := s.goals.Len()

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.trigger.Observe(s.date, len(day), goals)
}

// BeginRefresh starts a refresh for the selected day.
func (s *Session) BeginRefresh() (suggest.Request, bool) {
	return s.suggestions.Begin(s.DayActivities(), s.Goals())
}
