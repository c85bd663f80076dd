package models

import "strings"

type Category string

const (
	CategoryWork      Category = "Work"
	CategoryHealth    Category = "Health & Fitness"
	CategoryLeisure   Category = "Leisure"
	CategoryEducation Category = "Education"
	CategoryChores    Category = "Chores"
	CategorySleep     Category = "Sleep"
	CategoryOther     Category = "Other"
)

var categories = []Category{
	CategoryWork,
	CategoryHealth,
	CategoryLeisure,
	CategoryEducation,
	CategoryChores,
	CategorySleep,
	CategoryOther,
}

var categoryAliases = map[string]Category{
	"work":      CategoryWork,
	"health":    CategoryHealth,
	"fitness":   CategoryHealth,
	"leisure":   CategoryLeisure,
	"education": CategoryEducation,
	"study":     CategoryEducation,
	"chores":    CategoryChores,
	"sleep":     CategorySleep,
	"other":     CategoryOther,
}

// Categories returns every category in display order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, known := range categories {
		if c == known {
			return true
		}
	}
	return false
}

// ParseCategory accepts either the stored value ("Health & Fitness") in any case,
// or a short alias such as "health".
func ParseCategory(s string) (Category, bool) {
	s = strings.TrimSpace(s)
	for _, known := range categories {
		if strings.EqualFold(s, string(known)) {
			return known, true
		}
	}
	c, ok := categoryAliases[strings.ToLower(s)]
	return c, ok
}

// Activity is a single time-boxed entry on a calendar day.
type Activity struct {
	ID          string   `json:"id"`
	Date        string   `json:"date"` // YYYY-MM-DD format
	Title       string   `json:"title"`
	StartTime   string   `json:"startTime"` // HH:MM format
	EndTime     string   `json:"endTime"`   // HH:MM format
	Category    Category `json:"category"`
	Description string   `json:"description,omitempty"`
	GoalID      string   `json:"goalId,omitempty"`
}
