package validation

import (
	"fmt"
	"strings"

	"github.com/julianstephens/aurapulse/internal/constants"
	"github.com/julianstephens/aurapulse/internal/errors"
	"github.com/julianstephens/aurapulse/internal/models"
	"github.com/julianstephens/aurapulse/internal/utils"
)

// ConflictType represents the type of validation conflict
type ConflictType string

const (
	ConflictOverlappingActivities ConflictType = "overlapping_activities"
	ConflictOvercommitted         ConflictType = "overcommitted"
	ConflictMissingGoal           ConflictType = "missing_goal"
)

// Conflict represents a detected conflict in a day's activities
type Conflict struct {
	Type        ConflictType
	Description string
	Date        string   // YYYY-MM-DD format
	Items       []string // Activity titles involved
	TimeRange   string   // Human-readable time range (if applicable)
	ActivityIDs []string
}

// ValidationResult contains all detected conflicts
type ValidationResult struct {
	Conflicts []Conflict
}

// HasConflicts returns true if there are any conflicts
func (vr *ValidationResult) HasConflicts() bool {
	return len(vr.Conflicts) > 0
}

// FormatReport returns a human-readable report of all conflicts
func (vr *ValidationResult) FormatReport() string {
	if !vr.HasConflicts() {
		return "No conflicts detected."
	}

	var b strings.Builder
	b.WriteString("Conflicts detected:\n")
	for _, conflict := range vr.Conflicts {
		fmt.Fprintf(&b, "- %s\n", conflict.Description)
	}
	return b.String()
}

// ValidateActivity rejects a submission that cannot be stored. Date is checked
// only when set, since the store stamps the selected date on insert.
func ValidateActivity(a models.Activity) error {
	if strings.TrimSpace(a.Title) == "" {
		return errors.Invalid("title", "is required")
	}
	if !utils.ValidateTimeFormat(a.StartTime) {
		return errors.Invalid("startTime", "expected HH:MM, got %q", a.StartTime)
	}
	if !utils.ValidateTimeFormat(a.EndTime) {
		return errors.Invalid("endTime", "expected HH:MM, got %q", a.EndTime)
	}
	if !a.Category.Valid() {
		return errors.Invalid("category", "unknown category %q", a.Category)
	}
	if a.Date != "" {
		if err := ValidateDate(a.Date); err != nil {
			return err
		}
	}
	return nil
}

// ValidateGoalInput checks the user-entered fields of a goal before estimation.
func ValidateGoalInput(title, creator string, goalType models.GoalType) error {
	if strings.TrimSpace(title) == "" {
		return errors.Invalid("title", "is required")
	}
	if strings.TrimSpace(creator) == "" {
		return errors.Invalid("creator", "is required")
	}
	if !goalType.Valid() {
		return errors.Invalid("type", "must be %s or %s, got %q", models.GoalTypeBook, models.GoalTypeCourse, goalType)
	}
	return nil
}

// ValidateDate checks a YYYY-MM-DD date string.
func ValidateDate(date string) error {
	if !utils.ValidateDate(date) {
		return errors.Invalid("date", "expected YYYY-MM-DD, got %q", date)
	}
	return nil
}

// Validator checks a day's activities for conflicts. Conflicts are warnings;
// nothing in the store rejects overlapping activities.
type Validator struct{}

// New creates a new Validator
func New() *Validator {
	return &Validator{}
}

type span struct {
	start, end int
	activity   models.Activity
}

func spanOf(a models.Activity) span {
	start, _ := utils.ParseTimeToMinutes(a.StartTime)
	return span{start: start, end: start + utils.DurationMinutes(a.StartTime, a.EndTime), activity: a}
}

// overlaps compares two spans that may extend past midnight into the next day.
func overlaps(a, b span) bool {
	if a.start == a.end || b.start == b.end {
		return false
	}
	for _, shift := range []int{-constants.MinutesPerDay, 0, constants.MinutesPerDay} {
		if a.start < b.end+shift && b.start+shift < a.end {
			return true
		}
	}
	return false
}

// ValidateDay reports overlapping activities, a day booked beyond 24 hours and
// activities that reference unknown goals.
func (v *Validator) ValidateDay(date string, activities []models.Activity, goals []models.LongTermGoal) ValidationResult {
	var result ValidationResult

	spans := make([]span, 0, len(activities))
	total := 0
	for _, a := range activities {
		s := spanOf(a)
		spans = append(spans, s)
		total += s.end - s.start
	}

	for i := 0; i < len(spans); i++ {
		for j := i + 1; j < len(spans); j++ {
			if !overlaps(spans[i], spans[j]) {
				continue
			}
			a, b := spans[i].activity, spans[j].activity
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictOverlappingActivities,
				Description: fmt.Sprintf("%q (%s-%s) overlaps %q (%s-%s)", a.Title, a.StartTime, a.EndTime, b.Title, b.StartTime, b.EndTime),
				Date:        date,
				Items:       []string{a.Title, b.Title},
				TimeRange:   fmt.Sprintf("%s-%s", b.StartTime, b.EndTime),
				ActivityIDs: []string{a.ID, b.ID},
			})
		}
	}

	if total > constants.MinutesPerDay {
		result.Conflicts = append(result.Conflicts, Conflict{
			Type:        ConflictOvercommitted,
			Description: fmt.Sprintf("%d minutes booked on %s, more than a day holds", total, date),
			Date:        date,
		})
	}

	known := make(map[string]bool, len(goals))
	for _, g := range goals {
		known[g.ID] = true
	}
	for _, a := range activities {
		if a.GoalID != "" && !known[a.GoalID] {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictMissingGoal,
				Description: fmt.Sprintf("%q references unknown goal %s", a.Title, a.GoalID),
				Date:        date,
				Items:       []string{a.Title},
				ActivityIDs: []string{a.ID},
			})
		}
	}

	return result
}
