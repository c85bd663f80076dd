package schedule

import (
	"sort"

	"github.com/julianstephens/aurapulse/internal/models"
)

// The functions in this file never modify their input slices. Each returns a
// fresh collection so earlier snapshots stay valid for their holders.

// AddActivity appends a to all, stamping it with selectedDate. Whatever date
// the submission carried is discarded.
func AddActivity(all []models.Activity, a models.Activity, selectedDate string) []models.Activity {
	a.Date = selectedDate
	next := make([]models.Activity, len(all), len(all)+1)
	copy(next, all)
	return append(next, a)
}

// RemoveActivity drops every activity with the given id. The second result is
// false when nothing matched, in which case the returned slice has the same elements.
func RemoveActivity(all []models.Activity, id string) ([]models.Activity, bool) {
	next := make([]models.Activity, 0, len(all))
	removed := false
	for _, a := range all {
		if a.ID == id {
			removed = true
			continue
		}
		next = append(next, a)
	}
	return next, removed
}

// ActivitiesOn returns the activities on date ordered by start time. Equal start
// times keep insertion order. HH:MM is zero-padded, so string order is time order.
func ActivitiesOn(all []models.Activity, date string) []models.Activity {
	day := make([]models.Activity, 0)
	for _, a := range all {
		if a.Date == date {
			day = append(day, a)
		}
	}
	sort.SliceStable(day, func(i, j int) bool {
		return day[i].StartTime < day[j].StartTime
	})
	return day
}

// AddGoal appends g as-is; derived fields are the caller's job.
func AddGoal(all []models.LongTermGoal, g models.LongTermGoal) []models.LongTermGoal {
	next := make([]models.LongTermGoal, len(all), len(all)+1)
	copy(next, all)
	return append(next, g)
}
