package suggest

import "github.com/julianstephens/aurapulse/internal/constants"

// Trigger decides when suggestions refresh on their own. It fires when the
// selected date, the number of activities on that day, or the number of goals
// changed since the last observation, and the day is worth analyzing.
type Trigger struct {
	seen      bool
	date      string
	dayCount  int
	goalCount int
}

// Observe records the current view and reports whether a refresh should start.
// The first observation always counts as a change.
func (t *Trigger) Observe(date string, dayCount, goalCount int) bool {
	changed := !t.seen || t.date != date || t.dayCount != dayCount || t.goalCount != goalCount
	t.seen = true
	t.date, t.dayCount, t.goalCount = date, dayCount, goalCount

	if !changed {
		return false
	}
	return dayCount >= constants.AutoRefreshMinActivities || goalCount >= constants.AutoRefreshMinGoals
}
