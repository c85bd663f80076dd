// Package analytics derives display data for a day: where activities sit on
// the 24h strip and how the hours split across categories.
package analytics

import (
	"math"

	"github.com/julianstephens/aurapulse/internal/constants"
	"github.com/julianstephens/aurapulse/internal/models"
	"github.com/julianstephens/aurapulse/internal/utils"
)

// Placement positions one activity on a 24h strip. Left and Width are
// fractions of the day; an activity crossing midnight keeps its full width
// and may extend past 1.
type Placement struct {
	Activity models.Activity
	Left     float64
	Width    float64
}

// Timeline places every activity of a day on the strip, in input order.
func Timeline(day []models.Activity) []Placement {
	out := make([]Placement, 0, len(day))
	for _, a := range day {
		out = append(out, Placement{
			Activity: a,
			Left:     utils.DayFraction(a.StartTime),
			Width:    float64(utils.DurationMinutes(a.StartTime, a.EndTime)) / constants.MinutesPerDay,
		})
	}
	return out
}

// CategoryHours is the total time spent in one category.
type CategoryHours struct {
	Category models.Category
	Hours    float64
}

// Breakdown sums hours per category in canonical category order. Categories
// without time are omitted. Unknown categories are counted as Other.
func Breakdown(day []models.Activity) []CategoryHours {
	minutes := make(map[models.Category]int)
	for _, a := range day {
		c := a.Category
		if !c.Valid() {
			c = models.CategoryOther
		}
		minutes[c] += utils.DurationMinutes(a.StartTime, a.EndTime)
	}

	var out []CategoryHours
	for _, c := range models.Categories() {
		if m := minutes[c]; m > 0 {
			out = append(out, CategoryHours{Category: c, Hours: round2(float64(m) / 60)})
		}
	}
	return out
}

// TotalHours is the scheduled time of a day.
func TotalHours(day []models.Activity) float64 {
	total := 0
	for _, a := range day {
		total += utils.DurationMinutes(a.StartTime, a.EndTime)
	}
	return round2(float64(total) / 60)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
