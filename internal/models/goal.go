package models

import (
	"math"
	"strings"
	"time"

	"github.com/julianstephens/aurapulse/internal/constants"
)

type GoalType string

const (
	GoalTypeBook   GoalType = "Book"
	GoalTypeCourse GoalType = "Course"
)

// Valid reports whether t is Book or Course.
func (t GoalType) Valid() bool {
	return t == GoalTypeBook || t == GoalTypeCourse
}

// ParseGoalType parses a goal type case-insensitively.
func ParseGoalType(s string) (GoalType, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "book":
		return GoalTypeBook, true
	case "course":
		return GoalTypeCourse, true
	}
	return "", false
}

// LongTermGoal is a book or course with a fixed daily pacing requirement.
// TargetDate and DailyRequirementMinutes are computed once at creation.
type LongTermGoal struct {
	ID                      string   `json:"id"`
	Title                   string   `json:"title"`
	Type                    GoalType `json:"type"`
	Creator                 string   `json:"creator"` // author or platform
	EstimatedTotalHours     float64  `json:"estimatedTotalHours"`
	CompletedHours          float64  `json:"completedHours"`
	TargetDate              string   `json:"targetDate"` // YYYY-MM-DD format
	DailyRequirementMinutes int      `json:"dailyRequirementMinutes"`
}

// Progress returns the completed fraction of the goal in [0,1].
func (g LongTermGoal) Progress() float64 {
	if g.EstimatedTotalHours <= 0 {
		return 0
	}
	p := g.CompletedHours / g.EstimatedTotalHours
	if p > 1 {
		return 1
	}
	return p
}

// DailyRequirement returns the minutes per day needed to finish totalHours
// within the goal horizon.
func DailyRequirement(totalHours float64) int {
	return int(math.Ceil(totalHours * 60 / constants.GoalHorizonDays))
}

// NewGoal builds a goal with its derived fields frozen relative to now.
func NewGoal(id, title, creator string, goalType GoalType, totalHours float64, now time.Time) LongTermGoal {
	return LongTermGoal{
		ID:                      id,
		Title:                   title,
		Type:                    goalType,
		Creator:                 creator,
		EstimatedTotalHours:     totalHours,
		CompletedHours:          0,
		TargetDate:              now.AddDate(0, 0, constants.GoalHorizonDays).Format(constants.DateFormat),
		DailyRequirementMinutes: DailyRequirement(totalHours),
	}
}
