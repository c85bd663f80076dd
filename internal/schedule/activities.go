package schedule

import (
	"sync"

	"github.com/julianstephens/aurapulse/internal/models"
)

// ActivityStore holds every activity across all days. Mutations swap in a new
// collection and then notify subscribers.
type ActivityStore struct {
	notifier
	mu  sync.RWMutex
	all []models.Activity
}

// NewActivityStore creates a store seeded with initial, without notifying anyone.
func NewActivityStore(initial []models.Activity) *ActivityStore {
	s := &ActivityStore{}
	s.Replace(initial)
	return s
}

// Add stores a under selectedDate and returns the stored value.
func (s *ActivityStore) Add(a models.Activity, selectedDate string) models.Activity {
	s.mu.Lock()
	s.all = AddActivity(s.all, a, selectedDate)
	stored := s.all[len(s.all)-1]
	s.mu.Unlock()

	s.emit()
	return stored
}

// Remove deletes the activity with id. A missing id is not an error; it
// reports false and notifies nobody.
func (s *ActivityStore) Remove(id string) bool {
	s.mu.Lock()
	next, removed := RemoveActivity(s.all, id)
	if removed {
		s.all = next
	}
	s.mu.Unlock()

	if removed {
		s.emit()
	}
	return removed
}

// Get looks up an activity by id.
func (s *ActivityStore) Get(id string) (models.Activity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.all {
		if a.ID == id {
			return a, true
		}
	}
	return models.Activity{}, false
}

// All returns the current collection in insertion order.
func (s *ActivityStore) All() []models.Activity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Activity, len(s.all))
	copy(out, s.all)
	return out
}

// On returns the activities for date sorted by start time.
func (s *ActivityStore) On(date string) []models.Activity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return ActivitiesOn(s.all, date)
}

// Len returns the number of activities across all days.
func (s *ActivityStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.all)
}

// Replace swaps the whole collection, e.g. after loading from storage.
// Subscribers are not notified.
func (s *ActivityStore) Replace(all []models.Activity) {
	next := make([]models.Activity, len(all))
	copy(next, all)

	s.mu.Lock()
	s.all = next
	s.mu.Unlock()
}
